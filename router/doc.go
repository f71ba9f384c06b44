// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Planning Poker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc)

# Endpoints

Health:

	GET /health

Session management:

	POST /sessions            - Create session (creator auto-joins)
	GET  /sessions            - List caller's sessions
	GET  /sessions/{id}       - Session detail with counts
	POST /sessions/{id}/join  - Join an open session
	POST /sessions/{id}/close - Close session (creator only)

Voting:

	POST /sessions/{id}/votes - Submit or overwrite a card
	POST /sessions/{id}/reset - Clear votes for a new round (creator only)

Results:

	POST /sessions/{id}/reveal  - Force reveal and broadcast (creator only)
	GET  /sessions/{id}/members - Member roster (creator only)
	GET  /sessions/{id}/export  - CSV vote export (creator only)

All routes except /health and / require the X-User-ID identity header.

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

All handlers receive the estimation service.
*/
package router
