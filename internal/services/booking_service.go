package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
	"github.com/tripora/travel-booking-backend/pkg/bookingref"
)

// BookingService implements the booking lifecycle: creation with a
// generated confirmation number, owner-scoped listing, cancellation and
// the per-bus seat occupancy query.
//
// Seat availability is not re-checked at creation time. The client
// queries occupied seats and submits the booking in separate requests,
// so two concurrent requests for the same seat can both succeed. Closing
// that race needs an atomic reserve operation at the repository boundary.
type BookingService struct {
	bookings repository.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create validates the payload, stamps a confirmation number and stores
// the booking as confirmed. userID is nil for anonymous bookings.
func (s *BookingService) Create(userID *uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	if problems := req.Validate(); problems != nil {
		return nil, &ValidationError{Fields: problems}
	}

	code, err := bookingref.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation number: %w", err)
	}

	booking := &models.Booking{
		ID:                 uuid.New(),
		UserID:             userID,
		ItemID:             req.ItemID,
		BookingType:        models.BookingType(req.BookingType),
		ConfirmationNumber: code,
		Status:             models.BookingStatusConfirmed,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      models.StringPtr(req.CustomerPhone),

		RoomType:    models.StringPtr(req.RoomType),
		CheckIn:     models.StringPtr(req.CheckIn),
		CheckOut:    models.StringPtr(req.CheckOut),
		Nights:      req.Nights,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,

		ReservationDate: models.StringPtr(req.ReservationDate),
		ReservationTime: models.StringPtr(req.ReservationTime),
		PartySize:       req.PartySize,

		TravelDate:      models.StringPtr(req.TravelDate),
		Passengers:      req.Passengers,
		SpecialRequests: models.StringPtr(req.SpecialRequests),
		SelectedSeats:   models.StringArray(req.SelectedSeats),
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	return booking, nil
}

// Get returns a booking by id. Bookings owned by another user are
// hidden behind the ownership error; anonymous bookings are readable by
// anyone holding the id.
func (s *BookingService) Get(id uuid.UUID, actingUserID *uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != nil {
		if actingUserID == nil || *booking.UserID != *actingUserID {
			return nil, ErrNotOwner
		}
	}

	return booking, nil
}

// ListForUser returns every booking owned by the user, confirmed and
// cancelled alike, in insertion order.
func (s *BookingService) ListForUser(userID uuid.UUID) ([]models.Booking, error) {
	return s.bookings.ListByUser(userID)
}

// Cancel transitions a confirmed booking to cancelled. Only the owner
// may cancel; anonymous bookings have no owner and can never be
// cancelled here. Cancelled is terminal.
func (s *BookingService) Cancel(id uuid.UUID, actingUserID uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !booking.IsOwnedBy(actingUserID) {
		return nil, ErrNotOwner
	}

	if err := booking.Cancel(); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to store cancellation: %w", err)
	}

	return booking, nil
}

// OccupiedSeats returns the union of selected seats across all
// confirmed bus bookings for the given bus and travel date, each seat
// once, sorted. This is a full scan over all bookings; fine at current
// scale.
func (s *BookingService) OccupiedSeats(busID, travelDate string) ([]string, error) {
	all, err := s.bookings.List()
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	seen := make(map[string]bool)
	for _, b := range all {
		if b.BookingType != models.BookingTypeBus || b.Status != models.BookingStatusConfirmed {
			continue
		}
		if b.ItemID != busID || !b.TravelDate.Valid || b.TravelDate.String != travelDate {
			continue
		}
		for _, seat := range b.SelectedSeats {
			seen[seat] = true
		}
	}

	seats := make([]string, 0, len(seen))
	for seat := range seen {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	return seats, nil
}
