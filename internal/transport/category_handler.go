package transport

import (
	"net/http"

	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryRequest is the payload for category create and update
type CategoryRequest struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{category_slug}", h.Update)
			r.Delete("/{category_slug}", h.Delete)
		})
	})
}

// List returns all active categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Create handles category creation
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CategoryRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), actor, req.Name, req.ParentID)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug),
	)
	respondWithTransaction(w, http.StatusCreated, "Successful")
}

// Update handles category update by slug
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categorySlug := chi.URLParam(r, "category_slug")

	var req CategoryRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), actor, categorySlug, req.Name, req.ParentID)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category updated",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug),
	)
	respondWithTransaction(w, http.StatusOK, "Category update is successful")
}

// Delete handles category soft-deletion by slug
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categorySlug := chi.URLParam(r, "category_slug")

	if err := h.categoryService.Delete(r.Context(), actor, categorySlug); err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category deleted", zap.String("slug", categorySlug))
	respondWithTransaction(w, http.StatusOK, "Category delete is successful")
}
