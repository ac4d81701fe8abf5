package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// BookingStore holds bookings keyed by id. Bookings are never physically
// deleted; cancellation is a status change through Update.
type BookingStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]models.Booking
	order []uuid.UUID // insertion order for stable listing
}

// NewBookingStore creates an empty booking store
func NewBookingStore() *BookingStore {
	return &BookingStore{byID: map[uuid.UUID]models.Booking{}}
}

// Create assigns a fresh id if missing, defaults SelectedSeats to an
// empty list, stamps timestamps and stores the booking.
func (s *BookingStore) Create(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.SelectedSeats == nil {
		booking.SelectedSeats = models.StringArray{}
	}
	ts := now()
	booking.CreatedAt = ts
	booking.UpdatedAt = ts

	s.byID[booking.ID] = *booking
	s.order = append(s.order, booking.ID)
	return nil
}

// GetByID returns the booking or ErrNotFound
func (s *BookingStore) GetByID(id uuid.UUID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &booking, nil
}

// ListByUser returns all bookings owned by the user, confirmed and
// cancelled, in insertion order. Anonymous bookings are never included.
func (s *BookingStore) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []models.Booking{}
	for _, id := range s.order {
		b := s.byID[id]
		if b.UserID != nil && *b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// List returns every booking in insertion order
func (s *BookingStore) List() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, 0, len(s.order))
	for _, id := range s.order {
		bookings = append(bookings, s.byID[id])
	}
	return bookings, nil
}

// Update merges the mutable fields into the stored record. Identity
// fields (item, type, customer contact) never change after creation;
// only status moves, and the update timestamp refreshes.
func (s *BookingStore) Update(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[booking.ID]
	if !ok {
		return repository.ErrNotFound
	}

	stored.Status = booking.Status
	stored.UpdatedAt = now()

	s.byID[booking.ID] = stored
	*booking = stored
	return nil
}
