package service

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/authz"
	"ecommerce-api/internal/domain"
	"ecommerce-api/internal/repository"

	"github.com/google/uuid"
)

// ReviewService defines the business logic for reviews. Creating a review
// triggers the product rating recomputation inside the same storage
// transaction as the insert.
type ReviewService interface {
	List(ctx context.Context) ([]*domain.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error)
	Create(ctx context.Context, actor authz.Actor, productID uuid.UUID, comment string, grade int) (*domain.Review, error)
	Delete(ctx context.Context, actor authz.Actor, productID, reviewID uuid.UUID) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// List returns all active reviews
func (s *reviewService) List(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListByProduct returns active reviews for one product. An unknown product
// ID yields an empty list rather than an error.
func (s *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for product: %w", err)
	}
	return reviews, nil
}

// Create adds a review to a product and recomputes the product's rating.
// The product must exist; only customers may review.
func (s *reviewService) Create(ctx context.Context, actor authz.Actor, productID uuid.UUID, comment string, grade int) (*domain.Review, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := authz.Decide(authz.ActionCreateReview, actor, nil); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:          uuid.New(),
		UserID:      actor.ID,
		ProductID:   productID,
		Comment:     comment,
		Grade:       grade,
		CommentDate: time.Now(),
		IsActive:    true,
	}

	if _, _, err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete marks a review inactive. Admins only. Deleting an already-inactive
// review succeeds without touching the row.
func (s *reviewService) Delete(ctx context.Context, actor authz.Actor, productID, reviewID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := authz.Decide(authz.ActionDeleteReview, actor, nil); err != nil {
		return err
	}

	if !review.IsActive {
		return nil
	}

	return s.reviewRepo.SoftDelete(ctx, review.ID)
}
