package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// BookingType identifies which kind of catalog entity a booking is for
type BookingType string

const (
	BookingTypeHotel      BookingType = "hotel"
	BookingTypeRestaurant BookingType = "restaurant"
	BookingTypeFlight     BookingType = "flight"
	BookingTypeBus        BookingType = "bus"
	BookingTypeCar        BookingType = "car"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation against exactly one catalog entity.
// Type-specific fields are nullable and only populated for the matching
// booking type.
type Booking struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	UserID             *uuid.UUID    `json:"user_id" db:"user_id"` // nil for anonymous bookings
	ItemID             string        `json:"item_id" db:"item_id"`
	BookingType        BookingType   `json:"booking_type" db:"booking_type"`
	ConfirmationNumber string        `json:"confirmation_number" db:"confirmation_number"`
	Status             BookingStatus `json:"status" db:"status"`
	CustomerName       string        `json:"customer_name" db:"customer_name"`
	CustomerEmail      string        `json:"customer_email" db:"customer_email"`
	CustomerPhone      NullString    `json:"customer_phone,omitempty" db:"customer_phone"`

	// Hotel bookings
	RoomType    NullString `json:"room_type,omitempty" db:"room_type"`
	CheckIn     NullString `json:"check_in,omitempty" db:"check_in"`
	CheckOut    NullString `json:"check_out,omitempty" db:"check_out"`
	Nights      int        `json:"nights,omitempty" db:"nights"`
	Guests      int        `json:"guests,omitempty" db:"guests"`
	TotalAmount float64    `json:"total_amount,omitempty" db:"total_amount"`

	// Restaurant bookings
	ReservationDate NullString `json:"reservation_date,omitempty" db:"reservation_date"`
	ReservationTime NullString `json:"reservation_time,omitempty" db:"reservation_time"`
	PartySize       int        `json:"party_size,omitempty" db:"party_size"`

	// Flight, bus and car bookings
	TravelDate      NullString  `json:"travel_date,omitempty" db:"travel_date"`
	Passengers      int         `json:"passengers,omitempty" db:"passengers"`
	SpecialRequests NullString  `json:"special_requests,omitempty" db:"special_requests"`
	SelectedSeats   StringArray `json:"selected_seats" db:"selected_seats"` // bus only

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	ItemID        string  `json:"item_id" binding:"required"`
	BookingType   string  `json:"booking_type" binding:"required,oneof=hotel restaurant flight bus car"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`

	RoomType    *string `json:"room_type,omitempty"`
	CheckIn     *string `json:"check_in,omitempty"`
	CheckOut    *string `json:"check_out,omitempty"`
	Nights      int     `json:"nights,omitempty"`
	Guests      int     `json:"guests,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`

	ReservationDate *string `json:"reservation_date,omitempty"`
	ReservationTime *string `json:"reservation_time,omitempty"`
	PartySize       int     `json:"party_size,omitempty"`

	TravelDate      *string  `json:"travel_date,omitempty"`
	Passengers      int      `json:"passengers,omitempty"`
	SpecialRequests *string  `json:"special_requests,omitempty"`
	SelectedSeats   []string `json:"selected_seats,omitempty"`
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	seatRe = regexp.MustCompile(`^\d{1,2}[A-F]$`)
)

// ErrAlreadyCancelled is returned when cancelling a booking that is
// already in the terminal cancelled state.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// Validate enforces the per-type payload constraints that binding tags
// cannot express. Field names in the returned errors match the JSON keys.
func (r *CreateBookingRequest) Validate() map[string]string {
	problems := map[string]string{}

	switch BookingType(r.BookingType) {
	case BookingTypeHotel:
		if r.RoomType == nil || *r.RoomType == "" {
			problems["room_type"] = "room_type is required for hotel bookings"
		}
		if r.CheckIn == nil || !dateRe.MatchString(*r.CheckIn) {
			problems["check_in"] = "check_in is required in YYYY-MM-DD format"
		}
		if r.CheckOut == nil || !dateRe.MatchString(*r.CheckOut) {
			problems["check_out"] = "check_out is required in YYYY-MM-DD format"
		}
		if r.Guests < 1 {
			problems["guests"] = "guests must be at least 1"
		}
	case BookingTypeRestaurant:
		if r.ReservationDate == nil || !dateRe.MatchString(*r.ReservationDate) {
			problems["reservation_date"] = "reservation_date is required in YYYY-MM-DD format"
		}
		if r.ReservationTime == nil || *r.ReservationTime == "" {
			problems["reservation_time"] = "reservation_time is required"
		}
		if r.PartySize < 1 {
			problems["party_size"] = "party_size must be at least 1"
		}
	case BookingTypeFlight, BookingTypeBus, BookingTypeCar:
		if r.TravelDate == nil || !dateRe.MatchString(*r.TravelDate) {
			problems["travel_date"] = "travel_date is required in YYYY-MM-DD format"
		}
		if r.Passengers < 1 {
			problems["passengers"] = "passengers must be at least 1"
		}
		if BookingType(r.BookingType) != BookingTypeBus && len(r.SelectedSeats) > 0 {
			problems["selected_seats"] = "selected_seats is only valid for bus bookings"
		}
		for _, seat := range r.SelectedSeats {
			if !seatRe.MatchString(seat) {
				problems["selected_seats"] = "seat codes must look like 1A, 12C"
				break
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// CanBeCancelled checks if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusConfirmed
}

// Cancel flips the booking to cancelled. Cancelled is terminal.
func (b *Booking) Cancel() error {
	if !b.CanBeCancelled() {
		return ErrAlreadyCancelled
	}
	b.Status = BookingStatusCancelled
	b.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the given user owns this booking. Anonymous
// bookings have no owner.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID != nil && *b.UserID == userID
}
