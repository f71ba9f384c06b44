// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/poker"
)

type VotingHandler struct {
	svc *poker.Service
}

func NewVotingHandler(svc *poker.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// SubmitVote handles POST /sessions/{id}/votes
// Voting again overwrites the previous vote. Voting without a prior join
// also registers the caller as a member.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	revealed, err := h.svc.SubmitVote(r.Context(), sessionID, user, req.Value)
	if err != nil {
		serviceError(w, err)
		return
	}

	message := "Your vote was recorded (anonymously)"
	if revealed {
		message = "Your vote was recorded; everyone has voted and results were sent out"
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Message:  message,
		Revealed: revealed,
	})
}

// ResetVotes handles POST /sessions/{id}/reset
// Creator-only: clears every vote for a fresh round and re-prompts the
// members.
func (h *VotingHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	user, ok := identify(w, r)
	if !ok {
		return
	}

	if err := h.svc.ResetVotes(r.Context(), sessionID, user); err != nil {
		serviceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Votes were reset and members were asked to vote again",
	})
}
