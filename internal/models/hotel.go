package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotel represents a bookable hotel in the catalog
type Hotel struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Location      string      `json:"location" db:"location"`
	Description   string      `json:"description" db:"description"`
	ImageURL      string      `json:"image_url" db:"image_url"`
	Rating        float64     `json:"rating" db:"rating"`
	PricePerNight float64     `json:"price_per_night" db:"price_per_night"`
	Amenities     StringArray `json:"amenities" db:"amenities"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// CreateHotelRequest represents the request to add a hotel. Omitted
// amenities default to an empty list, not null.
type CreateHotelRequest struct {
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Rating        float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	PricePerNight float64  `json:"price_per_night" binding:"omitempty,min=0"`
	Amenities     []string `json:"amenities,omitempty"`
}
