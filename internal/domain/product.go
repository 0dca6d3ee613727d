package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog.
//
// Rating is derived from active reviews and is never set directly by a
// client request. SupplierID is the creating supplier, or nil when the
// product was created by an admin.
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Slug        string     `json:"slug" db:"slug"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	Stock       int        `json:"stock" db:"stock"`
	CategoryID  uuid.UUID  `json:"category_id" db:"category_id"`
	Rating      float64    `json:"rating" db:"rating"`
	SupplierID  *uuid.UUID `json:"supplier_id,omitempty" db:"supplier_id"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
