// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Planning Poker API.

# Handler Types

Each handler is a struct holding the estimation service:

  - SessionHandler: Session lifecycle (create, list, detail, join, close)
  - VotingHandler: Card submission and vote resets
  - ResultsHandler: Manual reveal, member roster, and CSV export

Handlers are created via constructor functions that accept *poker.Service:

	sessionHandler := handlers.NewSessionHandler(svc)

# Session Lifecycle

Sessions progress through two states: open → closed

	POST /sessions            → CreateSession (creator auto-joins)
	POST /sessions/{id}/join  → JoinSession (open only)
	POST /sessions/{id}/close → CloseSession (creator only)

Every request identifies the caller via the X-User-ID header, with
X-Username and X-Display-Name carrying the readable names. Requests
without an identity get 401.

# Voting Flow

Members submit cards from the fixed scale (0 ½ 1 2 3 5 8 13 20 40 100 ?):

	POST /sessions/{id}/votes → SubmitVote (create or overwrite)
	POST /sessions/{id}/reset → ResetVotes (creator only)

Votes stay hidden while the round is running. When the last member
votes, the service reveals automatically and the SubmitVote response
carries revealed=true.

# Results

The creator can force a reveal or pull the raw ballots:

	POST /sessions/{id}/reveal  → Reveal (histogram, mean, median)
	GET  /sessions/{id}/members → Members (creator only)
	GET  /sessions/{id}/export  → Export (CSV, creator only)

Export streams text/csv with one row per recorded vote.

# Error Mapping

Service errors translate to HTTP statuses in respond.go: unknown
session → 404, closed session → 409, privilege violations → 403,
off-scale card values → 400, reveal with no votes → 409. Anything
else is a 500.
*/
package handlers
