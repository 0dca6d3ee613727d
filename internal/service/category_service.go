package service

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/authz"
	"ecommerce-api/internal/domain"
	"ecommerce-api/internal/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CategoryService defines the business logic for category lifecycle.
// All mutations follow the same order: resolve referenced rows first,
// then consult the authorization policy.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, actor authz.Actor, name string, parentID *uuid.UUID) (*domain.Category, error)
	Update(ctx context.Context, actor authz.Actor, categorySlug, name string, parentID *uuid.UUID) (*domain.Category, error)
	Delete(ctx context.Context, actor authz.Actor, categorySlug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// List returns all active categories
func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create creates a new category. The optional parent must reference an
// existing category; the slug is derived from the name.
func (s *categoryService) Create(ctx context.Context, actor authz.Actor, name string, parentID *uuid.UUID) (*domain.Category, error) {
	if parentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	if err := authz.Decide(authz.ActionCreateCategory, actor, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		ParentID:  parentID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Update renames a category and moves it under a new parent. The slug is
// recomputed from the new name.
func (s *categoryService) Update(ctx context.Context, actor authz.Actor, categorySlug, name string, parentID *uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(authz.ActionUpdateCategory, actor, nil); err != nil {
		return nil, err
	}

	if parentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	category.Name = name
	category.Slug = slug.Make(name)
	category.ParentID = parentID
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete marks a category inactive. Deleting an already-inactive category
// succeeds without touching the row; there is no reactivation.
func (s *categoryService) Delete(ctx context.Context, actor authz.Actor, categorySlug string) error {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return err
	}

	if err := authz.Decide(authz.ActionDeleteCategory, actor, nil); err != nil {
		return err
	}

	if !category.IsActive {
		return nil
	}

	return s.categoryRepo.SoftDelete(ctx, category.ID)
}
