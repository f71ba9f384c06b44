// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/poker"
)

type ResultsHandler struct {
	svc *poker.Service
}

func NewResultsHandler(svc *poker.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// Reveal handles POST /sessions/{id}/reveal
// Creator-only: aggregates the votes and broadcasts the report to every
// member.
func (h *ResultsHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	report, err := h.svc.RevealResults(r.Context(), sessionID, user)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevealResponse{
		Message: "Results were sent to every participant",
		Report:  report,
	})
}

// Members handles GET /sessions/{id}/members
// Creator-only roster. Shows who has joined (and therefore, combined
// with a report's non-voter list, who is still pending) - never votes.
func (h *ResultsHandler) Members(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	members, err := h.svc.Members(r.Context(), sessionID, user)
	if err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, members)
}

// Export handles GET /sessions/{id}/export
// Creator-only CSV of votes joined with member names.
func (h *ResultsHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.ExportRows(r.Context(), sessionID, user)
	if err != nil {
		serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "poker_"+sessionID+".csv"))

	cw := csv.NewWriter(w)
	cw.Write([]string{"user_id", "username", "name", "value", "voted_at"})
	for _, row := range rows {
		cw.Write([]string{
			strconv.FormatInt(row.UserID, 10),
			row.Username,
			row.DisplayName,
			row.Value,
			row.VotedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	cw.Flush()
}
