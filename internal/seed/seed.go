// Package seed loads a small demo catalog so a fresh in-memory deployment
// has something to browse and book against.
package seed

import (
	"fmt"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// Catalog inserts the demo catalog. Safe to call once at startup; it is
// not idempotent, so callers should only run it against an empty store.
func Catalog(catalog repository.CatalogRepository) error {
	destinations := []*models.Destination{
		{Name: "Kyoto", Country: "Japan", Description: "Temples, gardens and the old imperial capital.", Rating: 4.8, PricePerPerson: 1450},
		{Name: "Santorini", Country: "Greece", Description: "Cliffside villages over the Aegean caldera.", Rating: 4.7, PricePerPerson: 1200},
		{Name: "Marrakech", Country: "Morocco", Description: "Souks, riads and the edge of the Sahara.", Rating: 4.5, PricePerPerson: 900},
	}
	for _, d := range destinations {
		if err := catalog.CreateDestination(d); err != nil {
			return fmt.Errorf("seed destination %q: %w", d.Name, err)
		}
	}

	hotels := []*models.Hotel{
		{Name: "The Grand Meridian", Location: "Kyoto", Rating: 4.6, PricePerNight: 210, Amenities: models.StringArray{"wifi", "spa", "breakfast"}},
		{Name: "Caldera View Suites", Location: "Santorini", Rating: 4.9, PricePerNight: 340, Amenities: models.StringArray{"wifi", "pool"}},
	}
	for _, h := range hotels {
		if err := catalog.CreateHotel(h); err != nil {
			return fmt.Errorf("seed hotel %q: %w", h.Name, err)
		}
	}

	restaurants := []*models.Restaurant{
		{Name: "Hana Kaiseki", Location: "Kyoto", Cuisine: "Japanese", PriceRange: "$$$", Rating: 4.7},
		{Name: "Thalassa Taverna", Location: "Santorini", Cuisine: "Greek", PriceRange: "$$", Rating: 4.4},
	}
	for _, r := range restaurants {
		if err := catalog.CreateRestaurant(r); err != nil {
			return fmt.Errorf("seed restaurant %q: %w", r.Name, err)
		}
	}

	flights := []*models.TripPlanner{
		{Airline: "Aster Air", FromCity: "London", ToCity: "Kyoto", DepartureTime: "09:40", ArrivalTime: "07:15", Price: 740, SeatClass: "economy"},
		{Airline: "Cyclades Wings", FromCity: "Athens", ToCity: "Santorini", DepartureTime: "12:10", ArrivalTime: "12:55", Price: 95, SeatClass: "economy"},
	}
	for _, f := range flights {
		if err := catalog.CreateTripPlanner(f); err != nil {
			return fmt.Errorf("seed flight %q: %w", f.Airline, err)
		}
	}

	buses := []*models.Bus{
		{OperatorName: "Night Express", FromCity: "Kyoto", ToCity: "Tokyo", DepartureTime: "22:30", ArrivalTime: "06:10", Price: 38, TotalSeats: 40, SeatLayout: "2x2"},
		{OperatorName: "Coast Liner", FromCity: "Athens", ToCity: "Thessaloniki", DepartureTime: "08:00", ArrivalTime: "13:45", Price: 29, TotalSeats: 48, SeatLayout: "2x2"},
	}
	for _, b := range buses {
		if err := catalog.CreateBus(b); err != nil {
			return fmt.Errorf("seed bus %q: %w", b.OperatorName, err)
		}
	}

	cars := []*models.PrivateCar{
		{Model: "Toyota Alphard", CarType: "van", PricePerDay: 95, Capacity: 6, DriverIncluded: true},
		{Model: "Suzuki Jimny", CarType: "suv", PricePerDay: 45, Capacity: 4},
	}
	for _, c := range cars {
		if err := catalog.CreatePrivateCar(c); err != nil {
			return fmt.Errorf("seed car %q: %w", c.Model, err)
		}
	}

	packages := []*models.TravelPackage{
		{Name: "Classic Japan", Description: "Kyoto, Nara and Tokyo in nine days.", Destinations: models.StringArray{"Kyoto", "Nara", "Tokyo"}, DurationDays: 9, Price: 2900},
		{Name: "Aegean Hop", Description: "Athens and three islands in a week.", Destinations: models.StringArray{"Athens", "Santorini", "Naxos"}, DurationDays: 7, Price: 1800},
	}
	for _, p := range packages {
		if err := catalog.CreateTravelPackage(p); err != nil {
			return fmt.Errorf("seed package %q: %w", p.Name, err)
		}
	}

	return nil
}
