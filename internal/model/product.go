package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the catalogue.
type Product struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	Image        string     `json:"image" db:"image"`
	Brand        string     `json:"brand" db:"brand"`
	Category     string     `json:"category" db:"category"`
	Description  string     `json:"description" db:"description"`
	Rating       float64    `json:"rating" db:"rating"`
	NumReviews   int        `json:"numReviews" db:"num_reviews"`
	Price        float64    `json:"price" db:"price"`
	CountInStock int        `json:"countInStock" db:"count_in_stock"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// Review represents a customer review of a product.
type Review struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ProductID *uuid.UUID `json:"productId,omitempty" db:"product_id"`
	UserID    *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Rating    int        `json:"rating" db:"rating"`
	Comment   string     `json:"comment" db:"comment"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// UpdateProductRequest is the admin product update payload. All listed
// fields are required; there is no partial update.
type UpdateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Brand        string  `json:"brand" validate:"required"`
	CountInStock int     `json:"countInStock" validate:"gte=0"`
	Category     string  `json:"category" validate:"required"`
	Description  string  `json:"description"`
}

// CreateReviewRequest is the payload for reviewing a product.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}
