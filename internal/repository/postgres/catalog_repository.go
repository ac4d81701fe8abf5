package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// CatalogRepository handles database operations for the catalog tables
type CatalogRepository struct {
	db DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func translateGet(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// CreateDestination inserts a destination
func (r *CatalogRepository) CreateDestination(d *models.Destination) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	query := `
		INSERT INTO destinations (id, name, country, description, image_url, rating, price_per_person)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, d.ID, d.Name, d.Country, d.Description, d.ImageURL, d.Rating, d.PricePerPerson).
		Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// GetDestination retrieves a destination by id
func (r *CatalogRepository) GetDestination(id uuid.UUID) (*models.Destination, error) {
	d := &models.Destination{}
	query := `SELECT id, name, country, description, image_url, rating, price_per_person, created_at
		FROM destinations WHERE id = $1`
	if err := r.db.Get(d, query, id); err != nil {
		return nil, translateGet(err, "destination")
	}
	return d, nil
}

// ListDestinations retrieves all destinations
func (r *CatalogRepository) ListDestinations() ([]models.Destination, error) {
	out := []models.Destination{}
	query := `SELECT id, name, country, description, image_url, rating, price_per_person, created_at
		FROM destinations ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return out, nil
}

// CreateHotel inserts a hotel
func (r *CatalogRepository) CreateHotel(h *models.Hotel) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Amenities == nil {
		h.Amenities = models.StringArray{}
	}
	query := `
		INSERT INTO hotels (id, name, location, description, image_url, rating, price_per_night, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, h.ID, h.Name, h.Location, h.Description, h.ImageURL, h.Rating, h.PricePerNight, h.Amenities).
		Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetHotel retrieves a hotel by id
func (r *CatalogRepository) GetHotel(id uuid.UUID) (*models.Hotel, error) {
	h := &models.Hotel{}
	query := `SELECT id, name, location, description, image_url, rating, price_per_night, amenities, created_at
		FROM hotels WHERE id = $1`
	if err := r.db.Get(h, query, id); err != nil {
		return nil, translateGet(err, "hotel")
	}
	return h, nil
}

// ListHotels retrieves all hotels
func (r *CatalogRepository) ListHotels() ([]models.Hotel, error) {
	out := []models.Hotel{}
	query := `SELECT id, name, location, description, image_url, rating, price_per_night, amenities, created_at
		FROM hotels ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return out, nil
}

// CreateRestaurant inserts a restaurant
func (r *CatalogRepository) CreateRestaurant(rest *models.Restaurant) error {
	if rest.ID == uuid.Nil {
		rest.ID = uuid.New()
	}
	query := `
		INSERT INTO restaurants (id, name, location, cuisine, price_range, rating, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, rest.ID, rest.Name, rest.Location, rest.Cuisine, rest.PriceRange, rest.Rating, rest.ImageURL).
		Scan(&rest.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// GetRestaurant retrieves a restaurant by id
func (r *CatalogRepository) GetRestaurant(id uuid.UUID) (*models.Restaurant, error) {
	rest := &models.Restaurant{}
	query := `SELECT id, name, location, cuisine, price_range, rating, image_url, created_at
		FROM restaurants WHERE id = $1`
	if err := r.db.Get(rest, query, id); err != nil {
		return nil, translateGet(err, "restaurant")
	}
	return rest, nil
}

// ListRestaurants retrieves all restaurants
func (r *CatalogRepository) ListRestaurants() ([]models.Restaurant, error) {
	out := []models.Restaurant{}
	query := `SELECT id, name, location, cuisine, price_range, rating, image_url, created_at
		FROM restaurants ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return out, nil
}

// CreateTripPlanner inserts a flight offering
func (r *CatalogRepository) CreateTripPlanner(t *models.TripPlanner) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	query := `
		INSERT INTO trip_planners (id, airline, from_city, to_city, departure_time, arrival_time, price, seat_class)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, t.ID, t.Airline, t.FromCity, t.ToCity, t.DepartureTime, t.ArrivalTime, t.Price, t.SeatClass).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip planner: %w", err)
	}
	return nil
}

// GetTripPlanner retrieves a flight offering by id
func (r *CatalogRepository) GetTripPlanner(id uuid.UUID) (*models.TripPlanner, error) {
	t := &models.TripPlanner{}
	query := `SELECT id, airline, from_city, to_city, departure_time, arrival_time, price, seat_class, created_at
		FROM trip_planners WHERE id = $1`
	if err := r.db.Get(t, query, id); err != nil {
		return nil, translateGet(err, "trip planner")
	}
	return t, nil
}

// ListTripPlanners retrieves all flight offerings
func (r *CatalogRepository) ListTripPlanners() ([]models.TripPlanner, error) {
	out := []models.TripPlanner{}
	query := `SELECT id, airline, from_city, to_city, departure_time, arrival_time, price, seat_class, created_at
		FROM trip_planners ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list trip planners: %w", err)
	}
	return out, nil
}

// CreateBus inserts a bus offering
func (r *CatalogRepository) CreateBus(b *models.Bus) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	query := `
		INSERT INTO buses (id, operator_name, from_city, to_city, departure_time, arrival_time, price, total_seats, seat_layout)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, b.ID, b.OperatorName, b.FromCity, b.ToCity, b.DepartureTime, b.ArrivalTime, b.Price, b.TotalSeats, b.SeatLayout).
		Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bus: %w", err)
	}
	return nil
}

// GetBus retrieves a bus offering by id
func (r *CatalogRepository) GetBus(id uuid.UUID) (*models.Bus, error) {
	b := &models.Bus{}
	query := `SELECT id, operator_name, from_city, to_city, departure_time, arrival_time, price, total_seats, seat_layout, created_at
		FROM buses WHERE id = $1`
	if err := r.db.Get(b, query, id); err != nil {
		return nil, translateGet(err, "bus")
	}
	return b, nil
}

// ListBuses retrieves all bus offerings
func (r *CatalogRepository) ListBuses() ([]models.Bus, error) {
	out := []models.Bus{}
	query := `SELECT id, operator_name, from_city, to_city, departure_time, arrival_time, price, total_seats, seat_layout, created_at
		FROM buses ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}
	return out, nil
}

// CreatePrivateCar inserts a private car
func (r *CatalogRepository) CreatePrivateCar(c *models.PrivateCar) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	query := `
		INSERT INTO private_cars (id, model, car_type, price_per_day, capacity, driver_included)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, c.ID, c.Model, c.CarType, c.PricePerDay, c.Capacity, c.DriverIncluded).
		Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create private car: %w", err)
	}
	return nil
}

// GetPrivateCar retrieves a private car by id
func (r *CatalogRepository) GetPrivateCar(id uuid.UUID) (*models.PrivateCar, error) {
	c := &models.PrivateCar{}
	query := `SELECT id, model, car_type, price_per_day, capacity, driver_included, created_at
		FROM private_cars WHERE id = $1`
	if err := r.db.Get(c, query, id); err != nil {
		return nil, translateGet(err, "private car")
	}
	return c, nil
}

// ListPrivateCars retrieves all private cars
func (r *CatalogRepository) ListPrivateCars() ([]models.PrivateCar, error) {
	out := []models.PrivateCar{}
	query := `SELECT id, model, car_type, price_per_day, capacity, driver_included, created_at
		FROM private_cars ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list private cars: %w", err)
	}
	return out, nil
}

// CreateTravelPackage inserts a travel package
func (r *CatalogRepository) CreateTravelPackage(p *models.TravelPackage) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Destinations == nil {
		p.Destinations = models.StringArray{}
	}
	query := `
		INSERT INTO travel_packages (id, name, description, destinations, duration_days, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(query, p.ID, p.Name, p.Description, p.Destinations, p.DurationDays, p.Price, p.ImageURL).
		Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create travel package: %w", err)
	}
	return nil
}

// GetTravelPackage retrieves a travel package by id
func (r *CatalogRepository) GetTravelPackage(id uuid.UUID) (*models.TravelPackage, error) {
	p := &models.TravelPackage{}
	query := `SELECT id, name, description, destinations, duration_days, price, image_url, created_at
		FROM travel_packages WHERE id = $1`
	if err := r.db.Get(p, query, id); err != nil {
		return nil, translateGet(err, "travel package")
	}
	return p, nil
}

// ListTravelPackages retrieves all travel packages
func (r *CatalogRepository) ListTravelPackages() ([]models.TravelPackage, error) {
	out := []models.TravelPackage{}
	query := `SELECT id, name, description, destinations, duration_days, price, image_url, created_at
		FROM travel_packages ORDER BY created_at`
	if err := r.db.Select(&out, query); err != nil {
		return nil, fmt.Errorf("failed to list travel packages: %w", err)
	}
	return out, nil
}
