package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/planning-poker/models"
)

type flakyNotifier struct {
	fail  map[int64]bool
	calls []int64
}

func (f *flakyNotifier) Notify(ctx context.Context, userID int64, text string) error {
	f.calls = append(f.calls, userID)
	if f.fail[userID] {
		return errors.New("unreachable")
	}
	return nil
}

func roster(ids ...int64) []models.Membership {
	members := make([]models.Membership, 0, len(ids))
	for _, id := range ids {
		members = append(members, models.Membership{SessionID: "s1", UserID: id})
	}
	return members
}

func TestBroadcast_AllDelivered(t *testing.T) {
	n := &flakyNotifier{}
	deliveries := Broadcast(context.Background(), n, roster(1, 2, 3), "results")

	if len(deliveries) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(deliveries))
	}
	for _, d := range deliveries {
		if d.Err != nil {
			t.Errorf("unexpected error for user %d: %v", d.UserID, d.Err)
		}
	}
}

func TestBroadcast_ContinuesPastFailures(t *testing.T) {
	n := &flakyNotifier{fail: map[int64]bool{2: true}}
	deliveries := Broadcast(context.Background(), n, roster(1, 2, 3), "results")

	if len(n.calls) != 3 {
		t.Fatalf("a failure must not stop later deliveries, attempted %d", len(n.calls))
	}
	if deliveries[0].Err != nil || deliveries[2].Err != nil {
		t.Error("users 1 and 3 should have been delivered")
	}
	if deliveries[1].Err == nil {
		t.Error("user 2 delivery should have failed")
	}
}

func TestBroadcast_EmptyRoster(t *testing.T) {
	n := &flakyNotifier{}
	deliveries := Broadcast(context.Background(), n, nil, "results")
	if len(deliveries) != 0 {
		t.Errorf("expected no deliveries, got %d", len(deliveries))
	}
}
