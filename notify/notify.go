// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/planning-poker/models"
)

// Notifier delivers a text message to one user. Implementations bridge
// to the chat platform; delivery is best-effort and an error never
// aborts the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// Delivery is the outcome of one broadcast recipient.
type Delivery struct {
	UserID int64
	Err    error
}

// Broadcast sends text to every member. A failed delivery is logged and
// recorded, and the remaining recipients are still attempted.
func Broadcast(ctx context.Context, n Notifier, members []models.Membership, text string) []Delivery {
	deliveries := make([]Delivery, 0, len(members))
	for _, m := range members {
		err := n.Notify(ctx, m.UserID, text)
		if err != nil {
			slog.Warn("notification delivery failed", "user_id", m.UserID, "error", err)
		}
		deliveries = append(deliveries, Delivery{UserID: m.UserID, Err: err})
	}
	return deliveries
}

// LogNotifier is the default Notifier when no chat bridge is configured:
// it records deliveries in the server log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, userID int64, text string) error {
	slog.Info("notification", "user_id", userID, "text", text)
	return nil
}
