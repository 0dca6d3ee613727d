package transport

import (
	"net/http"

	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewRequest is the payload for review creation. Grades outside [1,5]
// are rejected here, before the service runs.
type ReviewRequest struct {
	Comment string `json:"comment" validate:"required"`
	Grade   int    `json:"grade" validate:"required,gte=1,lte=5"`
}

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers review routes under the /products subrouter
func (h *ReviewHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{product_id}", h.ListByProduct)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/{product_id}", h.Create)
			r.Delete("/{product_id}/{review_id}", h.Delete)
		})
	})
}

// List returns all active reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, reviews)
}

// ListByProduct returns active reviews for one product
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	reviews, err := h.reviewService.ListByProduct(r.Context(), productID)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, reviews)
}

// Create handles review creation; the product's rating is recomputed as a
// side effect, atomically with the insert.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ReviewRequest
	if decodeAndRespond(w, r, h.logger, &req) {
		return
	}

	review, err := h.reviewService.Create(r.Context(), actor, productID, req.Comment, req.Grade)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("product_id", productID.String()),
		zap.Int("grade", review.Grade),
	)
	respondWithTransaction(w, http.StatusCreated, "Review is created")
}

// Delete handles review soft-deletion
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	reviewID, err := uuid.Parse(chi.URLParam(r, "review_id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	if err := h.reviewService.Delete(r.Context(), actor, productID, reviewID); err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Review deleted",
		zap.String("review_id", reviewID.String()),
		zap.String("product_id", productID.String()),
	)
	respondWithTransaction(w, http.StatusOK, "Review delete is successful")
}
