// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Planning Poker API server.

Planning Poker is an estimation service for agile teams: a facilitator
opens a session, members vote with cards from a fixed Fibonacci-style
scale, votes stay hidden until everyone has voted, and the aggregated
results (histogram, mean, median) are broadcast to all participants.

# Starting the Server

The server runs on SQLite out of the box:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3390 -t postgres -d "postgres://..."

A .env file in the working directory is loaded at startup.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3390)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string, or file path for sqlite
    (default: poker.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - poker: Estimation service (lifecycle, auto-reveal, privileges)
  - results: Vote aggregation and report formatting
  - notify: Participant notification fan-out
  - store: Persistence over database/sql
  - middleware: Logging, identity, JSON helpers
  - models: Request/response types and the card scale
  - auth: Session ID generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
