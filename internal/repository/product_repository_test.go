package repository

import (
	"context"
	"testing"
	"time"

	"ecommerce-api/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: creating and retrieving a product preserves all attributes
func TestProperty_ProductCreationPreservesAttributes(t *testing.T) {
	productRepo := NewProductRepository(testDB)

	properties := gopter.NewProperties(nil)

	properties.Property("creating and retrieving a product preserves all attributes", prop.ForAll(
		func(name string, description string, price float64, imageURL string, stock int) bool {
			ctx := context.Background()
			category := createTestCategory(t, nil)

			product := &domain.Product{
				ID:          uuid.New(),
				Name:        name,
				Slug:        "product-" + uuid.New().String(),
				Description: description,
				Price:       price,
				ImageURL:    imageURL,
				Stock:       stock,
				CategoryID:  category.ID,
				Rating:      0.0,
				IsActive:    true,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}

			if err := productRepo.Create(ctx, product); err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			retrieved, err := productRepo.FindByID(ctx, product.ID)
			if err != nil {
				t.Logf("FAIL: Failed to retrieve product: %v", err)
				return false
			}

			if retrieved.Name != product.Name || retrieved.Description != product.Description {
				t.Logf("FAIL: Name or description mismatch")
				return false
			}

			if retrieved.Price < product.Price-0.01 || retrieved.Price > product.Price+0.01 {
				t.Logf("FAIL: Price mismatch. Expected %f, got %f", product.Price, retrieved.Price)
				return false
			}

			if retrieved.CategoryID != product.CategoryID || retrieved.Stock != product.Stock {
				t.Logf("FAIL: CategoryID or stock mismatch")
				return false
			}

			if retrieved.ImageURL != product.ImageURL {
				t.Logf("FAIL: ImageURL mismatch")
				return false
			}

			if retrieved.SupplierID != nil {
				t.Logf("FAIL: SupplierID should be nil for ownerless products")
				return false
			}

			return retrieved.IsActive && retrieved.Rating == 0.0
		},
		gen.RegexMatch(`[A-Za-z0-9 ]{3,50}`),
		gen.RegexMatch(`[A-Za-z0-9 .,!?]{10,200}`),
		gen.Float64Range(0.01, 9999.99),
		gen.RegexMatch(`https?://[a-z0-9.-]+/[a-z0-9/._-]{1,50}`),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProductCreate_DuplicateSlugConflicts(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()
	category := createTestCategory(t, nil)
	product := createTestProduct(t, category.ID, 5)

	duplicate := &domain.Product{
		ID:         uuid.New(),
		Name:       product.Name,
		Slug:       product.Slug,
		Price:      9.99,
		Stock:      1,
		CategoryID: category.ID,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := productRepo.Create(ctx, duplicate); err != ErrProductAlreadyExists {
		t.Fatalf("Create() error = %v, want ErrProductAlreadyExists", err)
	}
}

func TestProductSoftDelete_KeepsRowAndHidesFromCatalog(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()
	category := createTestCategory(t, nil)
	product := createTestProduct(t, category.ID, 5)

	if err := productRepo.SoftDelete(ctx, product.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	// Mutation flows still resolve the row by slug.
	found, err := productRepo.FindBySlug(ctx, product.Slug)
	if err != nil {
		t.Fatalf("FindBySlug() after soft delete error = %v", err)
	}
	if found.IsActive {
		t.Error("soft-deleted product should be inactive")
	}

	// The public catalog does not.
	if _, err := productRepo.FindActiveBySlug(ctx, product.Slug); err != ErrProductNotFound {
		t.Errorf("FindActiveBySlug() error = %v, want ErrProductNotFound", err)
	}

	products, err := productRepo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	for _, p := range products {
		if p.ID == product.ID {
			t.Error("soft-deleted product must not appear in the catalog")
		}
	}
}

func TestProductFindActiveBySlug_RequiresStock(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()
	category := createTestCategory(t, nil)
	product := createTestProduct(t, category.ID, 0)

	if _, err := productRepo.FindActiveBySlug(ctx, product.Slug); err != ErrProductNotFound {
		t.Fatalf("FindActiveBySlug() error = %v, want ErrProductNotFound for out-of-stock product", err)
	}

	if _, err := productRepo.FindBySlug(ctx, product.Slug); err != nil {
		t.Fatalf("FindBySlug() error = %v, want the row regardless of stock", err)
	}
}

func TestProductListActive_ExcludesInactiveCategories(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	categoryRepo := NewCategoryRepository(testDB)
	ctx := context.Background()

	category := createTestCategory(t, nil)
	product := createTestProduct(t, category.ID, 5)

	if err := categoryRepo.SoftDelete(ctx, category.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	products, err := productRepo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	for _, p := range products {
		if p.ID == product.ID {
			t.Error("products of inactive categories must not appear in the catalog")
		}
	}
}

func TestProductListActiveByCategoryIDs(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()

	parent := createTestCategory(t, nil)
	child := createTestCategory(t, &parent.ID)
	other := createTestCategory(t, nil)

	inParent := createTestProduct(t, parent.ID, 5)
	inChild := createTestProduct(t, child.ID, 5)
	elsewhere := createTestProduct(t, other.ID, 5)

	products, err := productRepo.ListActiveByCategoryIDs(ctx, []uuid.UUID{parent.ID, child.ID})
	if err != nil {
		t.Fatalf("ListActiveByCategoryIDs() error = %v", err)
	}

	found := make(map[uuid.UUID]bool)
	for _, p := range products {
		found[p.ID] = true
	}

	if !found[inParent.ID] || !found[inChild.ID] {
		t.Error("expected products of the requested categories")
	}
	if found[elsewhere.ID] {
		t.Error("products of other categories must not be included")
	}

	empty, err := productRepo.ListActiveByCategoryIDs(ctx, nil)
	if err != nil {
		t.Fatalf("ListActiveByCategoryIDs(nil) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListActiveByCategoryIDs(nil) returned %d products, want 0", len(empty))
	}
}
