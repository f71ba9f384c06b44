package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/testutil"
)

func TestSubmitVoteHandler(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewVotingHandler(svc)
	sess := createSession(t, svc, alice)
	if _, err := svc.JoinSession(context.Background(), sess.ID, bob); err != nil {
		t.Fatalf("JoinSession failed: %v", err)
	}

	tests := []struct {
		name           string
		sessionID      string
		body           interface{}
		user           *models.User
		expectedStatus int
	}{
		{
			name:           "valid vote",
			sessionID:      sess.ID,
			body:           models.SubmitVoteRequest{Value: "5"},
			user:           &alice,
			expectedStatus: 201,
		},
		{
			name:           "half card",
			sessionID:      sess.ID,
			body:           models.SubmitVoteRequest{Value: "½"},
			user:           &alice,
			expectedStatus: 201,
		},
		{
			name:           "value off the scale",
			sessionID:      sess.ID,
			body:           models.SubmitVoteRequest{Value: "7"},
			user:           &alice,
			expectedStatus: 400,
		},
		{
			name:           "unknown session",
			sessionID:      "missing",
			body:           models.SubmitVoteRequest{Value: "5"},
			user:           &alice,
			expectedStatus: 404,
		},
		{
			name:           "missing identity",
			sessionID:      sess.ID,
			body:           models.SubmitVoteRequest{Value: "5"},
			user:           nil,
			expectedStatus: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/sessions/"+tt.sessionID+"/votes", tt.body, tt.user)
			req.SetPathValue("id", tt.sessionID)
			w := httptest.NewRecorder()

			handler.SubmitVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSubmitVoteHandler_ReportsAutoReveal(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewVotingHandler(svc)
	sess := createSession(t, svc, alice)
	if _, err := svc.SubmitVote(context.Background(), sess.ID, alice, "3"); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	// bob's vote (auto-joining) completes the round
	req := testutil.MakeRequest("POST", "/sessions/"+sess.ID+"/votes", models.SubmitVoteRequest{Value: "5"}, &bob)
	req.SetPathValue("id", sess.ID)
	w := httptest.NewRecorder()

	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, 201)
	var resp models.SubmitVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Revealed {
		t.Error("response should flag that the vote completed the round")
	}
}

func TestSubmitVoteHandler_ClosedSession(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewVotingHandler(svc)
	sess := createSession(t, svc, alice)
	if err := svc.CloseSession(context.Background(), sess.ID, alice); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}

	req := testutil.MakeRequest("POST", "/sessions/"+sess.ID+"/votes", models.SubmitVoteRequest{Value: "5"}, &alice)
	req.SetPathValue("id", sess.ID)
	w := httptest.NewRecorder()

	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, 409)
}

func TestResetVotesHandler(t *testing.T) {
	svc, _ := newTestService(t)
	handler := NewVotingHandler(svc)
	sess := createSession(t, svc, alice)
	if _, err := svc.SubmitVote(context.Background(), sess.ID, alice, "8"); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	t.Run("non-creator forbidden", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/sessions/"+sess.ID+"/reset", nil, &bob)
		req.SetPathValue("id", sess.ID)
		w := httptest.NewRecorder()

		handler.ResetVotes(w, req)

		testutil.AssertStatus(t, w, 403)
	})

	t.Run("creator resets", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/sessions/"+sess.ID+"/reset", nil, &alice)
		req.SetPathValue("id", sess.ID)
		w := httptest.NewRecorder()

		handler.ResetVotes(w, req)

		testutil.AssertStatus(t, w, 200)

		detail, err := svc.SessionDetail(context.Background(), sess.ID)
		if err != nil {
			t.Fatalf("SessionDetail failed: %v", err)
		}
		if detail.VoteCount != 0 {
			t.Errorf("expected no votes after reset, got %d", detail.VoteCount)
		}
	})
}
