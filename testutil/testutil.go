// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/planning-poker/auth"
	"github.com/danielhkuo/planning-poker/db"
	"github.com/danielhkuo/planning-poker/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// Each call gets its own named memory database so tests stay isolated.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the memory database alive and avoids
	// table-lock errors under concurrent test traffic.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestUser returns a deterministic identity for fixtures.
func TestUser(id int64, name string) models.User {
	return models.User{ID: id, Username: name, DisplayName: name}
}

// CreateTestSession inserts a session row and auto-joins the creator,
// returning the session id. status should be "open" or "closed".
func CreateTestSession(t *testing.T, conn *sql.DB, creator models.User, status string) string {
	t.Helper()

	sessionID, err := auth.GenerateSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session id: %v", err)
	}

	now := time.Now().UTC().UnixMilli()
	_, err = conn.Exec(`
		INSERT INTO session (id, creator_id, creator_name, title, description, status, created_at)
		VALUES ($1, $2, $3, 'Test Session', 'A test session', $4, $5)
	`, sessionID, creator.ID, creator.DisplayName, status, now)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	AddTestMember(t, conn, sessionID, creator)
	return sessionID
}

// AddTestMember inserts a membership row for the given user.
func AddTestMember(t *testing.T, conn *sql.DB, sessionID string, user models.User) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO session_member (session_id, user_id, username, display_name, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, user_id) DO NOTHING
	`, sessionID, user.ID, user.Username, user.DisplayName, time.Now().UTC().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to add test member: %v", err)
	}
}

// AddTestVote inserts or overwrites a vote row for the given user.
func AddTestVote(t *testing.T, conn *sql.DB, sessionID string, userID int64, value string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (session_id, user_id, value, voted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, user_id) DO UPDATE SET value = excluded.value, voted_at = excluded.voted_at
	`, sessionID, userID, value, time.Now().UTC().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to add test vote: %v", err)
	}
}

// Notification is one delivery recorded by RecordingNotifier.
type Notification struct {
	UserID int64
	Text   string
}

// RecordingNotifier captures deliveries for assertions. Deliveries to
// users listed in Fail return an error, for partial-failure tests.
type RecordingNotifier struct {
	mu   sync.Mutex
	Sent []Notification
	Fail map[int64]bool
}

func (n *RecordingNotifier) Notify(ctx context.Context, userID int64, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Fail[userID] {
		return fmt.Errorf("user %d unreachable", userID)
	}
	n.Sent = append(n.Sent, Notification{UserID: userID, Text: text})
	return nil
}

// SentTo returns the texts delivered to a user, in order.
func (n *RecordingNotifier) SentTo(userID int64) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var texts []string
	for _, d := range n.Sent {
		if d.UserID == userID {
			texts = append(texts, d.Text)
		}
	}
	return texts
}

// MakeRequest creates an HTTP test request with identity headers set from user
func MakeRequest(method, path string, body interface{}, user *models.User) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if user != nil {
		req.Header.Set("X-User-ID", strconv.FormatInt(user.ID, 10))
		if user.Username != "" {
			req.Header.Set("X-Username", user.Username)
		}
		if user.DisplayName != "" {
			req.Header.Set("X-Display-Name", user.DisplayName)
		}
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
