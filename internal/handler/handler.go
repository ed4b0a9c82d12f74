package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"proshop/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes the API's standard error body with the given status.
func writeError(w http.ResponseWriter, status int, detail string, logger zerolog.Logger) {
	logger.Error().Str("detail", detail).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeEmptyCart, model.ErrCodeValidation, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeUserExists, model.ErrCodeAlreadyReviewed, model.ErrCodeInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates a service failure into the wire format.
// Domain and validation errors become 4xx with their message; anything
// else is an opaque 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Message, logger)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeError(w, http.StatusBadRequest, validationErrs.Error(), logger)
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal server error", logger)
}
