// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/planning-poker/handlers"
	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/poker"
)

func NewRouter(svc *poker.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions", middleware.WithLogging(sessionHandler.ListSessions))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/join", middleware.WithLogging(sessionHandler.JoinSession))
	mux.HandleFunc("POST /sessions/{id}/close", middleware.WithLogging(sessionHandler.CloseSession))

	// Voting operations
	mux.HandleFunc("POST /sessions/{id}/votes", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("POST /sessions/{id}/reset", middleware.WithLogging(votingHandler.ResetVotes))

	// Results (creator operations)
	mux.HandleFunc("POST /sessions/{id}/reveal", middleware.WithLogging(resultsHandler.Reveal))
	mux.HandleFunc("GET /sessions/{id}/members", middleware.WithLogging(resultsHandler.Members))
	mux.HandleFunc("GET /sessions/{id}/export", middleware.WithLogging(resultsHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("planning-poker API v1"))
	})

	return mux
}
