package transport

import (
	"net/http"

	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductRequest is the payload for product create and update. Rating is
// absent on purpose: it is derived from reviews and cannot be set here.
type ProductRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Category    uuid.UUID `json:"category" validate:"required"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers product routes on the /products subrouter.
// Static segments (detail, reviews) take precedence over the category
// slug parameter, so review routes registered alongside are unaffected.
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/", h.List)
	r.Get("/detail/{product_slug}", h.Detail)
	r.Get("/{category_slug}", h.ListByCategory)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{product_slug}", h.Update)
		r.Delete("/{product_slug}", h.Delete)
	})
}

// List returns all active, in-stock products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListByCategory returns products of a category and its direct subcategories
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "category_slug")

	products, err := h.productService.ListByCategorySlug(r.Context(), categorySlug)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Detail returns a single active product by slug
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	productSlug := chi.URLParam(r, "product_slug")

	product, err := h.productService.GetBySlug(r.Context(), productSlug)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ProductRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	product, err := h.productService.Create(r.Context(), actor, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.Category,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug),
	)
	respondWithTransaction(w, http.StatusCreated, "Successful")
}

// Update handles product update by slug
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productSlug := chi.URLParam(r, "product_slug")

	var req ProductRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	product, err := h.productService.Update(r.Context(), actor, productSlug, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.Category,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product updated",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug),
	)
	respondWithTransaction(w, http.StatusOK, "Product update is successful")
}

// Delete handles product soft-deletion by slug
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productSlug := chi.URLParam(r, "product_slug")

	if err := h.productService.Delete(r.Context(), actor, productSlug); err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product deleted", zap.String("slug", productSlug))
	respondWithTransaction(w, http.StatusOK, "Product delete is successful")
}
