package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, user_id, item_id, booking_type, confirmation_number, status,
	   customer_name, customer_email, customer_phone,
	   room_type, check_in, check_out, nights, guests, total_amount,
	   reservation_date, reservation_time, party_size,
	   travel_date, passengers, special_requests, selected_seats,
	   created_at, updated_at`

// Create inserts a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, item_id, booking_type, confirmation_number, status,
			customer_name, customer_email, customer_phone,
			room_type, check_in, check_out, nights, guests, total_amount,
			reservation_date, reservation_time, party_size,
			travel_date, passengers, special_requests, selected_seats
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING created_at, updated_at
	`

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.SelectedSeats == nil {
		booking.SelectedSeats = models.StringArray{}
	}

	err := r.db.QueryRow(
		query,
		booking.ID, booking.UserID, booking.ItemID, booking.BookingType,
		booking.ConfirmationNumber, booking.Status,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.RoomType, booking.CheckIn, booking.CheckOut,
		booking.Nights, booking.Guests, booking.TotalAmount,
		booking.ReservationDate, booking.ReservationTime, booking.PartySize,
		booking.TravelDate, booking.Passengers, booking.SpecialRequests, booking.SelectedSeats,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by id
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	if err := r.db.Get(booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListByUser retrieves all bookings for a user, newest first
func (r *BookingRepository) ListByUser(userID uuid.UUID) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.Select(&bookings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// List retrieves every booking. The occupied-seat query is a full scan by
// design at current scale; an index on (item_id, travel_date) is the
// production-scale follow-up.
func (r *BookingRepository) List() ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at`

	if err := r.db.Select(&bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Update persists the mutable fields (status) and refreshes the update
// timestamp
func (r *BookingRepository) Update(booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(query, booking.ID, booking.Status).Scan(&booking.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}
