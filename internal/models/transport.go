package models

import (
	"time"

	"github.com/google/uuid"
)

// TripPlanner represents a flight offering in the catalog
type TripPlanner struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Airline       string    `json:"airline" db:"airline"`
	FromCity      string    `json:"from_city" db:"from_city"`
	ToCity        string    `json:"to_city" db:"to_city"`
	DepartureTime string    `json:"departure_time" db:"departure_time"`
	ArrivalTime   string    `json:"arrival_time" db:"arrival_time"`
	Price         float64   `json:"price" db:"price"`
	SeatClass     string    `json:"seat_class" db:"seat_class"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Bus represents a bus offering in the catalog. SeatLayout describes the
// deck arrangement rendered by seat pickers (e.g. "2x2", "2x3").
type Bus struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OperatorName  string    `json:"operator_name" db:"operator_name"`
	FromCity      string    `json:"from_city" db:"from_city"`
	ToCity        string    `json:"to_city" db:"to_city"`
	DepartureTime string    `json:"departure_time" db:"departure_time"`
	ArrivalTime   string    `json:"arrival_time" db:"arrival_time"`
	Price         float64   `json:"price" db:"price"`
	TotalSeats    int       `json:"total_seats" db:"total_seats"`
	SeatLayout    string    `json:"seat_layout" db:"seat_layout"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PrivateCar represents a private car offering in the catalog
type PrivateCar struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Model          string    `json:"model" db:"model"`
	CarType        string    `json:"car_type" db:"car_type"`
	PricePerDay    float64   `json:"price_per_day" db:"price_per_day"`
	Capacity       int       `json:"capacity" db:"capacity"`
	DriverIncluded bool      `json:"driver_included" db:"driver_included"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// CreateTripPlannerRequest represents the request to add a flight offering
type CreateTripPlannerRequest struct {
	Airline       string  `json:"airline" binding:"required"`
	FromCity      string  `json:"from_city" binding:"required"`
	ToCity        string  `json:"to_city" binding:"required"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price" binding:"omitempty,min=0"`
	SeatClass     string  `json:"seat_class"`
}

// CreateBusRequest represents the request to add a bus offering
type CreateBusRequest struct {
	OperatorName  string  `json:"operator_name" binding:"required"`
	FromCity      string  `json:"from_city" binding:"required"`
	ToCity        string  `json:"to_city" binding:"required"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price" binding:"omitempty,min=0"`
	TotalSeats    int     `json:"total_seats" binding:"omitempty,min=1"`
	SeatLayout    string  `json:"seat_layout"`
}

// CreatePrivateCarRequest represents the request to add a private car
type CreatePrivateCarRequest struct {
	Model          string  `json:"model" binding:"required"`
	CarType        string  `json:"car_type"`
	PricePerDay    float64 `json:"price_per_day" binding:"omitempty,min=0"`
	Capacity       int     `json:"capacity" binding:"omitempty,min=1"`
	DriverIncluded bool    `json:"driver_included"`
}
