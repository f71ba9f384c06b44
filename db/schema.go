// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as unix milliseconds (BIGINT) so the same DDL and
// queries run on both sqlite and postgres.
const schema = `
-- Sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    creator_id BIGINT NOT NULL,
    creator_name TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_creator ON session(creator_id);

-- Memberships
CREATE TABLE IF NOT EXISTS session_member (
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL,
    username TEXT NOT NULL DEFAULT '',
    display_name TEXT NOT NULL DEFAULT '',
    joined_at BIGINT NOT NULL,
    PRIMARY KEY (session_id, user_id)
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL,
    value TEXT NOT NULL,
    voted_at BIGINT NOT NULL,
    PRIMARY KEY (session_id, user_id)
);
`
