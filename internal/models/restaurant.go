package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a reservable restaurant in the catalog
type Restaurant struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Location   string    `json:"location" db:"location"`
	Cuisine    string    `json:"cuisine" db:"cuisine"`
	PriceRange string    `json:"price_range" db:"price_range"`
	Rating     float64   `json:"rating" db:"rating"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateRestaurantRequest represents the request to add a restaurant
type CreateRestaurantRequest struct {
	Name       string  `json:"name" binding:"required"`
	Location   string  `json:"location" binding:"required"`
	Cuisine    string  `json:"cuisine"`
	PriceRange string  `json:"price_range"`
	Rating     float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ImageURL   string  `json:"image_url"`
}
