package service

import (
	"context"
	"math"

	"ecommerce-api/internal/domain"
	"ecommerce-api/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockCategoryRepository struct {
	categories map[uuid.UUID]*domain.Category
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[uuid.UUID]*domain.Category)}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	for _, c := range m.categories {
		if c.Slug == category.Slug {
			return repository.ErrCategoryAlreadyExists
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.ID]; !exists {
		return repository.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	category, exists := m.categories[id]
	if !exists {
		return repository.ErrCategoryNotFound
	}
	category.IsActive = false
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, exists := m.categories[id]
	if !exists {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for _, category := range m.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, category := range m.categories {
		if category.IsActive {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *mockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Category, error) {
	children := []*domain.Category{}
	for _, category := range m.categories {
		if category.ParentID != nil && *category.ParentID == parentID {
			children = append(children, category)
		}
	}
	return children, nil
}

type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	for _, p := range m.products {
		if p.Slug == product.Slug {
			return repository.ErrProductAlreadyExists
		}
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	product, exists := m.products[id]
	if !exists {
		return repository.ErrProductNotFound
	}
	product.IsActive = false
	return nil
}

func (m *mockProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, product := range m.products {
		if product.Slug == slug {
			return product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, product := range m.products {
		if product.Slug == slug && product.IsActive && product.Stock > 0 {
			return product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, product := range m.products {
		if product.IsActive && product.Stock > 0 {
			products = append(products, product)
		}
	}
	return products, nil
}

func (m *mockProductRepository) ListActiveByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Product, error) {
	wanted := make(map[uuid.UUID]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	products := []*domain.Product{}
	for _, product := range m.products {
		if wanted[product.CategoryID] && product.IsActive && product.Stock > 0 {
			products = append(products, product)
		}
	}
	return products, nil
}

type mockReviewRepository struct {
	reviews  map[uuid.UUID]*domain.Review
	products *mockProductRepository
}

func newMockReviewRepository(products *mockProductRepository) *mockReviewRepository {
	return &mockReviewRepository{
		reviews:  make(map[uuid.UUID]*domain.Review),
		products: products,
	}
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) (float64, bool, error) {
	m.reviews[review.ID] = review

	sum, count := 0, 0
	for _, r := range m.reviews {
		if r.ProductID == review.ProductID && r.IsActive {
			sum += r.Grade
			count++
		}
	}
	if count == 0 {
		return 0, false, nil
	}

	rating := math.Round(float64(sum)/float64(count)*10) / 10
	if product, exists := m.products.products[review.ProductID]; exists {
		product.Rating = rating
	}
	return rating, true, nil
}

func (m *mockReviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	review, exists := m.reviews[id]
	if !exists {
		return repository.ErrReviewNotFound
	}
	review.IsActive = false
	return nil
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, exists := m.reviews[id]
	if !exists {
		return nil, repository.ErrReviewNotFound
	}
	return review, nil
}

func (m *mockReviewRepository) ListActive(ctx context.Context) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	for _, review := range m.reviews {
		if review.IsActive {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *mockReviewRepository) ListActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Review, error) {
	reviews := []*domain.Review{}
	for _, review := range m.reviews {
		if review.ProductID == productID && review.IsActive {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Username]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) SetRoleFlags(ctx context.Context, id uuid.UUID, isAdmin, isSupplier bool) error {
	for _, user := range m.users {
		if user.ID == id {
			user.IsAdmin = isAdmin
			user.IsSupplier = isSupplier
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type mockRefreshTokenRepository struct {
	tokens map[string]*domain.RefreshToken
}

func newMockRefreshTokenRepository() *mockRefreshTokenRepository {
	return &mockRefreshTokenRepository{tokens: make(map[string]*domain.RefreshToken)}
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, repository.ErrRefreshTokenRevoked
	}
	return refreshToken, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return repository.ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}
