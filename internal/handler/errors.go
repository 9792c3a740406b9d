package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shutterfolio/backend/internal/repository"
	"github.com/shutterfolio/backend/internal/service"
)

// writeServiceError maps service and repository errors onto the
// {"error": code} response shape. Unknown errors become 500 with fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe) && errors.Is(err, service.ErrMissingField):
		writeError(w, http.StatusBadRequest, fe.Field+"_required")
	case errors.Is(err, service.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid_category")
	case errors.Is(err, service.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "invalid_rating")
	case errors.Is(err, service.ErrImageHostNotAllowed):
		writeError(w, http.StatusBadRequest, "image_host_not_allowed")
	case errors.Is(err, service.ErrMessageTooLong):
		writeError(w, http.StatusBadRequest, "message_too_long")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		slog.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
