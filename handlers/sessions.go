// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/poker"
)

type SessionHandler struct {
	svc *poker.Service
}

func NewSessionHandler(svc *poker.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	user, ok := identify(w, r)
	if !ok {
		return
	}

	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	sess, err := h.svc.CreateSession(r.Context(), user, req.Title, req.Description)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: sess.ID,
	})
}

// ListSessions handles GET /sessions
// Returns the sessions created by the caller.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	user, ok := identify(w, r)
	if !ok {
		return
	}

	sessions, err := h.svc.SessionsByCreator(r.Context(), user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sessions)
}

// GetSession handles GET /sessions/{id}
// The participant-facing view: metadata and counts only.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	detail, err := h.svc.SessionDetail(r.Context(), sessionID)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// JoinSession handles POST /sessions/{id}/join
func (h *SessionHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	sess, err := h.svc.JoinSession(r.Context(), sessionID, user)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess)
}

// CloseSession handles POST /sessions/{id}/close
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	if err := h.svc.CloseSession(r.Context(), sessionID, user); err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Session closed"})
}
