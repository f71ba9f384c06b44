package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/planning-poker/models"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    models.User
		wantErr bool
	}{
		{
			name: "full identity",
			headers: map[string]string{
				"X-User-ID":      "42",
				"X-Username":     "alice",
				"X-Display-Name": "Alice A",
			},
			want: models.User{ID: 42, Username: "alice", DisplayName: "Alice A"},
		},
		{
			name: "display name falls back to username",
			headers: map[string]string{
				"X-User-ID":  "42",
				"X-Username": "alice",
			},
			want: models.User{ID: 42, Username: "alice", DisplayName: "alice"},
		},
		{
			name:    "missing user id",
			headers: map[string]string{"X-Username": "alice"},
			wantErr: true,
		},
		{
			name:    "non-numeric user id",
			headers: map[string]string{"X-User-ID": "alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			user, err := Identity(req)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Identity failed: %v", err)
			}
			if user != tt.want {
				t.Errorf("Identity = %+v, want %+v", user, tt.want)
			}
		})
	}
}

func TestIdentity_MissingHeaderSentinel(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := Identity(req)
	if !errors.Is(err, ErrNoIdentity) {
		t.Errorf("expected ErrNoIdentity, got %v", err)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"hello":"world"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Session not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Not Found") || !strings.Contains(body, "Session not found") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"value":"5"}`))
	var parsed models.SubmitVoteRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if parsed.Value != "5" {
		t.Errorf("expected value 5, got %q", parsed.Value)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader(`not json`))
	if err := ParseJSONBody(bad, &parsed); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestWithLogging_CallsNext(t *testing.T) {
	called := false
	h := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/health", nil))

	if !called {
		t.Error("wrapped handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status not propagated, got %d", w.Code)
	}
}
