package transport

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/authz"
	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/repository"

	"go.uber.org/zap"
)

// TransactionResponse is the body returned by successful mutations: the
// status code plus a short transaction-outcome string.
type TransactionResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

func respondWithTransaction(w http.ResponseWriter, statusCode int, outcome string) {
	middleware.RespondWithJSON(w, statusCode, TransactionResponse{
		StatusCode:  statusCode,
		Transaction: outcome,
	})
}

// respondWithServiceError maps domain errors to HTTP statuses: lookup
// misses to 404, policy denials to 403, uniqueness conflicts to 409.
// Anything else is a storage failure and surfaces as 500.
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "there is no category found")
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "there is no product found")
	case errors.Is(err, repository.ErrReviewNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "there is no review found")
	case errors.Is(err, repository.ErrUserNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "there is no user found")
	case errors.Is(err, authz.ErrForbidden):
		middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, repository.ErrCategoryAlreadyExists),
		errors.Is(err, repository.ErrProductAlreadyExists),
		errors.Is(err, repository.ErrUserAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled service error", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeAndRespond handles the shared decode-and-validate failure path.
// Returns true when the request was rejected.
func decodeAndRespond(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return true
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return true
	}
	return false
}
