package models

import (
	"time"

	"github.com/google/uuid"
)

// TravelPackage represents a curated multi-destination package
type TravelPackage struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Description  string      `json:"description" db:"description"`
	Destinations StringArray `json:"destinations" db:"destinations"`
	DurationDays int         `json:"duration_days" db:"duration_days"`
	Price        float64     `json:"price" db:"price"`
	ImageURL     string      `json:"image_url" db:"image_url"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

// CreateTravelPackageRequest represents the request to add a package
type CreateTravelPackageRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Destinations []string `json:"destinations,omitempty"`
	DurationDays int      `json:"duration_days" binding:"omitempty,min=1"`
	Price        float64  `json:"price" binding:"omitempty,min=0"`
	ImageURL     string   `json:"image_url"`
}
