// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/poker"
)

// identify extracts the asserted identity or writes a 401 and reports
// false.
func identify(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, err := middleware.Identity(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return models.User{}, false
	}
	return user, true
}

// serviceError translates the poker error taxonomy into HTTP statuses.
// Unexpected errors are logged and surfaced as a generic 500.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poker.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, poker.ErrClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Session is closed")
	case errors.Is(err, poker.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the session creator can do this")
	case errors.Is(err, poker.ErrInvalidValue):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Value is not a valid card")
	case errors.Is(err, poker.ErrNoVotes):
		middleware.ErrorResponse(w, http.StatusConflict, "No votes have been cast yet")
	default:
		slog.Error("session operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
