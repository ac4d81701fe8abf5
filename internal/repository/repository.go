// Package repository defines the storage contracts for every entity type.
// Two backings exist: the default in-memory store (repository/memory) and
// a Postgres store (repository/postgres) selected with
// STORAGE_BACKEND=postgres. Callers only see these interfaces, so a
// compare-and-set primitive for seat reservation can later be added at
// this boundary without touching services or handlers.
package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
)

var (
	// ErrNotFound signals a well-formed but absent identifier
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail signals the unique email constraint
	ErrDuplicateEmail = errors.New("user already exists with this email")
	// ErrDuplicateUsername signals the unique username constraint
	ErrDuplicateUsername = errors.New("user already exists with this username")
)

// UserRepository stores user accounts
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}

// BookingRepository stores bookings. List returns every booking; the
// occupied-seat query is a full scan by design at current scale.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	ListByUser(userID uuid.UUID) ([]models.Booking, error)
	List() ([]models.Booking, error)
	Update(booking *models.Booking) error
}

// SessionRepository stores opaque session tokens
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	Revoke(token string) error
}

// CatalogRepository stores all read-mostly catalog entities
type CatalogRepository interface {
	CreateDestination(d *models.Destination) error
	GetDestination(id uuid.UUID) (*models.Destination, error)
	ListDestinations() ([]models.Destination, error)

	CreateHotel(h *models.Hotel) error
	GetHotel(id uuid.UUID) (*models.Hotel, error)
	ListHotels() ([]models.Hotel, error)

	CreateRestaurant(r *models.Restaurant) error
	GetRestaurant(id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants() ([]models.Restaurant, error)

	CreateTripPlanner(t *models.TripPlanner) error
	GetTripPlanner(id uuid.UUID) (*models.TripPlanner, error)
	ListTripPlanners() ([]models.TripPlanner, error)

	CreateBus(b *models.Bus) error
	GetBus(id uuid.UUID) (*models.Bus, error)
	ListBuses() ([]models.Bus, error)

	CreatePrivateCar(c *models.PrivateCar) error
	GetPrivateCar(id uuid.UUID) (*models.PrivateCar, error)
	ListPrivateCars() ([]models.PrivateCar, error)

	CreateTravelPackage(p *models.TravelPackage) error
	GetTravelPackage(id uuid.UUID) (*models.TravelPackage, error)
	ListTravelPackages() ([]models.TravelPackage, error)
}
