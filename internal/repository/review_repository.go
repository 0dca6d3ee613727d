package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecommerce-api/internal/domain"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review data access.
//
// Create runs the review insert and the product rating recomputation in a
// single transaction, so the stored rating always reflects a consistent
// snapshot of the active reviews at commit time.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (newRating float64, ratingUpdated bool, err error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListActive(ctx context.Context) ([]*domain.Review, error)
	ListActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error)
}

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, user_id, product_id, comment, grade, comment_date, is_active`

func scanReview(row interface{ Scan(...interface{}) error }) (*domain.Review, error) {
	review := &domain.Review{}
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.ProductID,
		&review.Comment,
		&review.Grade,
		&review.CommentDate,
		&review.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Create inserts a review and recomputes the product's rating from all
// active reviews, atomically. The rating is the arithmetic mean of grades
// rounded to one decimal place; a NULL average (no active reviews) leaves
// the stored rating untouched.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (float64, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (id, user_id, product_id, comment, grade, comment_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(
		ctx,
		insertQuery,
		review.ID,
		review.UserID,
		review.ProductID,
		review.Comment,
		review.Grade,
		review.CommentDate,
		review.IsActive,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create review: %w", err)
	}

	avgQuery := `
		SELECT ROUND(AVG(grade)::numeric, 1)
		FROM reviews
		WHERE product_id = $1 AND is_active = TRUE
	`

	var avg sql.NullFloat64
	if err := tx.QueryRowContext(ctx, avgQuery, review.ProductID).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("failed to compute average grade: %w", err)
	}

	updated := false
	if avg.Valid {
		updateQuery := `UPDATE products SET rating = $2 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, updateQuery, review.ProductID, avg.Float64); err != nil {
			return 0, false, fmt.Errorf("failed to update product rating: %w", err)
		}
		updated = true
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit review transaction: %w", err)
	}

	return avg.Float64, updated, nil
}

// SoftDelete marks a review inactive. The row is never removed.
func (r *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE reviews SET is_active = FALSE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// FindByID retrieves a review by ID regardless of its active state
func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1`, reviewColumns)

	review, err := scanReview(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review by ID: %w", err)
	}

	return review, nil
}

// ListActive retrieves all active reviews
func (r *reviewRepository) ListActive(ctx context.Context) ([]*domain.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		WHERE is_active = TRUE
		ORDER BY comment_date DESC
	`, reviewColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ListActiveByProduct retrieves active reviews for one product
func (r *reviewRepository) ListActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		WHERE product_id = $1 AND is_active = TRUE
		ORDER BY comment_date DESC
	`, reviewColumns)

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for product: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func collectReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
