package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// collection is a keyed set of catalog records with stable listing order.
// All seven catalog entity types share create/get/list semantics, so one
// generic container backs them all.
type collection[T any] struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]T
	order []uuid.UUID
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: map[uuid.UUID]T{}}
}

func (c *collection[T]) put(id uuid.UUID, record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = record
}

func (c *collection[T]) get(id uuid.UUID) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	records := make([]T, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, c.byID[id])
	}
	return records
}

// CatalogStore holds all read-mostly catalog entities
type CatalogStore struct {
	destinations *collection[models.Destination]
	hotels       *collection[models.Hotel]
	restaurants  *collection[models.Restaurant]
	tripPlanners *collection[models.TripPlanner]
	buses        *collection[models.Bus]
	privateCars  *collection[models.PrivateCar]
	packages     *collection[models.TravelPackage]
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		destinations: newCollection[models.Destination](),
		hotels:       newCollection[models.Hotel](),
		restaurants:  newCollection[models.Restaurant](),
		tripPlanners: newCollection[models.TripPlanner](),
		buses:        newCollection[models.Bus](),
		privateCars:  newCollection[models.PrivateCar](),
		packages:     newCollection[models.TravelPackage](),
	}
}

// CreateDestination stores a destination, assigning a fresh id if missing
func (s *CatalogStore) CreateDestination(d *models.Destination) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = now()
	s.destinations.put(d.ID, *d)
	return nil
}

// GetDestination returns the destination or ErrNotFound
func (s *CatalogStore) GetDestination(id uuid.UUID) (*models.Destination, error) {
	return s.destinations.get(id)
}

// ListDestinations returns all destinations in insertion order
func (s *CatalogStore) ListDestinations() ([]models.Destination, error) {
	return s.destinations.list(), nil
}

// CreateHotel stores a hotel; omitted amenities default to an empty list
func (s *CatalogStore) CreateHotel(h *models.Hotel) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Amenities == nil {
		h.Amenities = models.StringArray{}
	}
	h.CreatedAt = now()
	s.hotels.put(h.ID, *h)
	return nil
}

// GetHotel returns the hotel or ErrNotFound
func (s *CatalogStore) GetHotel(id uuid.UUID) (*models.Hotel, error) {
	return s.hotels.get(id)
}

// ListHotels returns all hotels in insertion order
func (s *CatalogStore) ListHotels() ([]models.Hotel, error) {
	return s.hotels.list(), nil
}

// CreateRestaurant stores a restaurant, assigning a fresh id if missing
func (s *CatalogStore) CreateRestaurant(r *models.Restaurant) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = now()
	s.restaurants.put(r.ID, *r)
	return nil
}

// GetRestaurant returns the restaurant or ErrNotFound
func (s *CatalogStore) GetRestaurant(id uuid.UUID) (*models.Restaurant, error) {
	return s.restaurants.get(id)
}

// ListRestaurants returns all restaurants in insertion order
func (s *CatalogStore) ListRestaurants() ([]models.Restaurant, error) {
	return s.restaurants.list(), nil
}

// CreateTripPlanner stores a flight offering, assigning a fresh id if missing
func (s *CatalogStore) CreateTripPlanner(t *models.TripPlanner) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = now()
	s.tripPlanners.put(t.ID, *t)
	return nil
}

// GetTripPlanner returns the flight offering or ErrNotFound
func (s *CatalogStore) GetTripPlanner(id uuid.UUID) (*models.TripPlanner, error) {
	return s.tripPlanners.get(id)
}

// ListTripPlanners returns all flight offerings in insertion order
func (s *CatalogStore) ListTripPlanners() ([]models.TripPlanner, error) {
	return s.tripPlanners.list(), nil
}

// CreateBus stores a bus offering, assigning a fresh id if missing
func (s *CatalogStore) CreateBus(b *models.Bus) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now()
	s.buses.put(b.ID, *b)
	return nil
}

// GetBus returns the bus offering or ErrNotFound
func (s *CatalogStore) GetBus(id uuid.UUID) (*models.Bus, error) {
	return s.buses.get(id)
}

// ListBuses returns all bus offerings in insertion order
func (s *CatalogStore) ListBuses() ([]models.Bus, error) {
	return s.buses.list(), nil
}

// CreatePrivateCar stores a private car, assigning a fresh id if missing
func (s *CatalogStore) CreatePrivateCar(c *models.PrivateCar) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now()
	s.privateCars.put(c.ID, *c)
	return nil
}

// GetPrivateCar returns the private car or ErrNotFound
func (s *CatalogStore) GetPrivateCar(id uuid.UUID) (*models.PrivateCar, error) {
	return s.privateCars.get(id)
}

// ListPrivateCars returns all private cars in insertion order
func (s *CatalogStore) ListPrivateCars() ([]models.PrivateCar, error) {
	return s.privateCars.list(), nil
}

// CreateTravelPackage stores a package; omitted destinations default to
// an empty list
func (s *CatalogStore) CreateTravelPackage(p *models.TravelPackage) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Destinations == nil {
		p.Destinations = models.StringArray{}
	}
	p.CreatedAt = now()
	s.packages.put(p.ID, *p)
	return nil
}

// GetTravelPackage returns the package or ErrNotFound
func (s *CatalogStore) GetTravelPackage(id uuid.UUID) (*models.TravelPackage, error) {
	return s.packages.get(id)
}

// ListTravelPackages returns all packages in insertion order
func (s *CatalogStore) ListTravelPackages() ([]models.TravelPackage, error) {
	return s.packages.list(), nil
}
