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

// ProductInput carries the client-settable fields of a product. Rating and
// supplier are derived server-side and are never accepted from clients.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Stock       int
	CategoryID  uuid.UUID
}

// ProductService defines the business logic for product lifecycle
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Product, error)
	GetBySlug(ctx context.Context, productSlug string) (*domain.Product, error)
	Create(ctx context.Context, actor authz.Actor, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor authz.Actor, productSlug string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor authz.Actor, productSlug string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// List returns active, in-stock products belonging to active categories
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListByCategorySlug returns active, in-stock products of the category and
// its direct children. Grandchildren are not traversed.
func (s *productService) ListByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Product, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	children, err := s.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uuid.UUID, 0, len(children)+1)
	categoryIDs = append(categoryIDs, category.ID)
	for _, child := range children {
		categoryIDs = append(categoryIDs, child.ID)
	}

	return s.productRepo.ListActiveByCategoryIDs(ctx, categoryIDs)
}

// GetBySlug returns a single active, in-stock product
func (s *productService) GetBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	return s.productRepo.FindActiveBySlug(ctx, productSlug)
}

// Create creates a new product. The referenced category must exist and be
// active. Supplier-created products record the creator as owner; admin
// products have no owner.
func (s *productService) Create(ctx context.Context, actor authz.Actor, input ProductInput) (*domain.Product, error) {
	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, repository.ErrCategoryNotFound
	}

	if err := authz.Decide(authz.ActionCreateProduct, actor, nil); err != nil {
		return nil, err
	}

	var supplierID *uuid.UUID
	if actor.IsSupplier && !actor.IsAdmin {
		id := actor.ID
		supplierID = &id
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Rating:      0.0,
		SupplierID:  supplierID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update rewrites a product's client-settable fields. The target is
// resolved before the policy is consulted, so a missing product reports
// not-found to everyone, including actors who would have been denied.
func (s *productService) Update(ctx context.Context, actor authz.Actor, productSlug string, input ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	if err := authz.Decide(authz.ActionUpdateProduct, actor, product.SupplierID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, repository.ErrCategoryNotFound
	}

	product.Name = input.Name
	product.Slug = slug.Make(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete marks a product inactive. Deleting an already-inactive product
// succeeds without touching the row.
func (s *productService) Delete(ctx context.Context, actor authz.Actor, productSlug string) error {
	product, err := s.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		return err
	}

	if err := authz.Decide(authz.ActionDeleteProduct, actor, product.SupplierID); err != nil {
		return err
	}

	if !product.IsActive {
		return nil
	}

	return s.productRepo.SoftDelete(ctx, product.ID)
}
