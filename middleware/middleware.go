// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/planning-poker/models"
)

// ErrNoIdentity is returned when the transport did not assert a user id.
var ErrNoIdentity = errors.New("missing X-User-ID header")

// WithLogging wraps a handler with request logging. Each request gets a
// correlation id so its start and completion lines can be paired.
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		slog.Info("request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		next(w, r)

		duration := time.Since(start)
		slog.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// Identity extracts the user identity asserted by the transport layer.
// X-User-ID is required; X-Username and X-Display-Name are optional.
// There is no authentication here - the deployment fronts this API with
// the chat platform bridge, which owns identity.
func Identity(r *http.Request) (models.User, error) {
	idStr := r.Header.Get("X-User-ID")
	if idStr == "" {
		return models.User{}, ErrNoIdentity
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return models.User{}, errors.New("invalid X-User-ID header")
	}

	user := models.User{
		ID:          id,
		Username:    r.Header.Get("X-Username"),
		DisplayName: r.Header.Get("X-Display-Name"),
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	return user, nil
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
