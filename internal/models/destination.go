package models

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a travel destination in the catalog
type Destination struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Country        string    `json:"country" db:"country"`
	Description    string    `json:"description" db:"description"`
	ImageURL       string    `json:"image_url" db:"image_url"`
	Rating         float64   `json:"rating" db:"rating"`
	PricePerPerson float64   `json:"price_per_person" db:"price_per_person"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// CreateDestinationRequest represents the request to add a destination
type CreateDestinationRequest struct {
	Name           string  `json:"name" binding:"required"`
	Country        string  `json:"country" binding:"required"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	Rating         float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	PricePerPerson float64 `json:"price_per_person" binding:"omitempty,min=0"`
}
