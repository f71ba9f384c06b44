// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/planning-poker/models"
)

// Store implements durable persistence for sessions, memberships, and
// votes over database/sql. It is pure data access: status transitions,
// privilege checks, and reveal policy live in the poker service.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// CreateSession persists a new session row.
func (s *Store) CreateSession(ctx context.Context, sess models.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, creator_id, creator_name, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sess.ID, sess.CreatorID, sess.CreatorName, sess.Title, sess.Description, sess.Status, toMillis(sess.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession returns the session with the given id. The error wraps
// sql.ErrNoRows when the id is unknown.
func (s *Store) GetSession(ctx context.Context, id string) (models.Session, error) {
	var sess models.Session
	var createdAt int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, creator_id, creator_name, title, description, status, created_at
		FROM session
		WHERE id = $1
	`, id).Scan(&sess.ID, &sess.CreatorID, &sess.CreatorName, &sess.Title, &sess.Description, &sess.Status, &createdAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	sess.CreatedAt = fromMillis(createdAt)
	return sess, nil
}

// SessionsByCreator returns every session created by the given user,
// oldest first.
func (s *Store) SessionsByCreator(ctx context.Context, creatorID int64) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, creator_id, creator_name, title, description, status, created_at
		FROM session
		WHERE creator_id = $1
		ORDER BY created_at, id
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("query sessions by creator: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var sess models.Session
		var createdAt int64
		if err := rows.Scan(&sess.ID, &sess.CreatorID, &sess.CreatorName, &sess.Title, &sess.Description, &sess.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt = fromMillis(createdAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SetSessionStatus updates the status of a session.
func (s *Store) SetSessionStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE session SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update session status %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// AddMember registers a user to a session. Re-joining is a no-op: the
// original joined_at and names are kept.
func (s *Store) AddMember(ctx context.Context, m models.Membership) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_member (session_id, user_id, username, display_name, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, user_id) DO NOTHING
	`, m.SessionID, m.UserID, m.Username, m.DisplayName, toMillis(m.JoinedAt))
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// Members returns the session roster in join order.
func (s *Store) Members(ctx context.Context, sessionID string) ([]models.Membership, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, user_id, username, display_name, joined_at
		FROM session_member
		WHERE session_id = $1
		ORDER BY joined_at, user_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := []models.Membership{}
	for rows.Next() {
		var m models.Membership
		var joinedAt int64
		if err := rows.Scan(&m.SessionID, &m.UserID, &m.Username, &m.DisplayName, &joinedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.JoinedAt = fromMillis(joinedAt)
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpsertVote records the user's vote, overwriting any previous one, and
// ensures the voter has a membership row in the same transaction so the
// voter set can never outgrow the member set.
func (s *Store) UpsertVote(ctx context.Context, sessionID string, user models.User, value string, at time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin vote tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO session_member (session_id, user_id, username, display_name, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, user_id) DO NOTHING
	`, sessionID, user.ID, user.Username, user.DisplayName, toMillis(at))
	if err != nil {
		return fmt.Errorf("ensure membership: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (session_id, user_id, value, voted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, user_id) DO UPDATE SET value = excluded.value, voted_at = excluded.voted_at
	`, sessionID, user.ID, value, toMillis(at))
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vote tx: %w", err)
	}
	return nil
}

// Votes returns all votes for a session.
func (s *Store) Votes(ctx context.Context, sessionID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, user_id, value, voted_at
		FROM vote
		WHERE session_id = $1
		ORDER BY voted_at, user_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var votedAt int64
		if err := rows.Scan(&v.SessionID, &v.UserID, &v.Value, &votedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		v.VotedAt = fromMillis(votedAt)
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// ClearVotes deletes every vote for a session. Memberships are untouched.
func (s *Store) ClearVotes(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM vote WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("clear votes: %w", err)
	}
	return nil
}

// Counts returns the member and vote counts for the detail view.
func (s *Store) Counts(ctx context.Context, sessionID string) (members, votes int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM session_member WHERE session_id = $1),
			(SELECT COUNT(*) FROM vote WHERE session_id = $1)
	`, sessionID).Scan(&members, &votes)
	if err != nil {
		return 0, 0, fmt.Errorf("count members and votes: %w", err)
	}
	return members, votes, nil
}

// ExportRows returns votes joined with membership info for external
// rendering, ordered by vote time.
func (s *Store) ExportRows(ctx context.Context, sessionID string) ([]models.ExportRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.user_id, m.username, m.display_name, v.value, v.voted_at
		FROM vote v
		JOIN session_member m ON m.session_id = v.session_id AND m.user_id = v.user_id
		WHERE v.session_id = $1
		ORDER BY v.voted_at, v.user_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query export rows: %w", err)
	}
	defer rows.Close()

	out := []models.ExportRow{}
	for rows.Next() {
		var r models.ExportRow
		var votedAt int64
		if err := rows.Scan(&r.UserID, &r.Username, &r.DisplayName, &r.Value, &votedAt); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		r.VotedAt = fromMillis(votedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}
