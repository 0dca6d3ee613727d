package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a customer review of a product. Grade is an integer
// in [1,5]; the product's rating is the rounded mean of active grades.
type Review struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Comment     string    `json:"comment" db:"comment"`
	Grade       int       `json:"grade" db:"grade"`
	CommentDate time.Time `json:"comment_date" db:"comment_date"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}
