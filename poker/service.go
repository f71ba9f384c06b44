// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/planning-poker/auth"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/notify"
	"github.com/danielhkuo/planning-poker/results"
)

// Store is the persistence contract the service runs on. *store.Store
// satisfies it; tests may substitute their own.
type Store interface {
	CreateSession(ctx context.Context, sess models.Session) error
	GetSession(ctx context.Context, id string) (models.Session, error)
	SessionsByCreator(ctx context.Context, creatorID int64) ([]models.Session, error)
	SetSessionStatus(ctx context.Context, id, status string) error
	AddMember(ctx context.Context, m models.Membership) error
	Members(ctx context.Context, sessionID string) ([]models.Membership, error)
	UpsertVote(ctx context.Context, sessionID string, user models.User, value string, at time.Time) error
	Votes(ctx context.Context, sessionID string) ([]models.Vote, error)
	ClearVotes(ctx context.Context, sessionID string) error
	Counts(ctx context.Context, sessionID string) (members, votes int, err error)
	ExportRows(ctx context.Context, sessionID string) ([]models.ExportRow, error)
}

// Service owns the session/vote state machine: lifecycle transitions,
// facilitator privilege, vote overwrite semantics, and the auto-reveal
// trigger. All table writes go through it.
type Service struct {
	store    Store
	notifier notify.Notifier

	mu     sync.Mutex
	rounds map[string]*round
}

// round is the per-session serialization point. revealedFor remembers the
// voter-set fingerprint of the last automatic reveal so a repeat vote
// cannot re-broadcast; ResetVotes clears it.
type round struct {
	mu          sync.Mutex
	revealedFor string
}

func New(st Store, n notify.Notifier) *Service {
	return &Service{
		store:    st,
		notifier: n,
		rounds:   make(map[string]*round),
	}
}

// round returns the lock record for a session, creating it on first use.
func (s *Service) round(sessionID string) *round {
	s.mu.Lock()
	defer s.mu.Unlock()
	rd, ok := s.rounds[sessionID]
	if !ok {
		rd = &round{}
		s.rounds[sessionID] = rd
	}
	return rd
}

// getSession translates storage lookup misses into ErrNotFound.
func (s *Service) getSession(ctx context.Context, sessionID string) (models.Session, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// CreateSession opens a new estimation round and auto-admits the creator
// as its first member.
func (s *Service) CreateSession(ctx context.Context, creator models.User, title, description string) (models.Session, error) {
	id, err := auth.GenerateSessionID()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now().UTC()
	sess := models.Session{
		ID:          id,
		CreatorID:   creator.ID,
		CreatorName: creator.DisplayName,
		Title:       title,
		Description: description,
		Status:      models.StatusOpen,
		CreatedAt:   now,
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return models.Session{}, err
	}
	if err := s.store.AddMember(ctx, models.Membership{
		SessionID:   id,
		UserID:      creator.ID,
		Username:    creator.Username,
		DisplayName: creator.DisplayName,
		JoinedAt:    now,
	}); err != nil {
		return models.Session{}, err
	}

	slog.Info("session created", "session_id", id, "creator_id", creator.ID)
	return sess, nil
}

// JoinSession idempotently registers the user as a member of an open
// session and returns the session metadata.
func (s *Service) JoinSession(ctx context.Context, sessionID string, user models.User) (models.Session, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if sess.Status != models.StatusOpen {
		return models.Session{}, fmt.Errorf("join session %s: %w", sessionID, ErrClosed)
	}

	if err := s.store.AddMember(ctx, models.Membership{
		SessionID:   sessionID,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		JoinedAt:    time.Now().UTC(),
	}); err != nil {
		return models.Session{}, err
	}

	slog.Info("member joined", "session_id", sessionID, "user_id", user.ID)
	return sess, nil
}

// SubmitVote records (or overwrites) the user's vote and runs the
// auto-reveal check. The returned flag reports whether this vote
// completed the round and triggered an automatic reveal.
//
// The upsert and the completeness check hold the session lock together
// so concurrent votes cannot double-fire the reveal.
func (s *Service) SubmitVote(ctx context.Context, sessionID string, user models.User, value string) (revealed bool, err error) {
	if !models.ValidCard(value) {
		return false, fmt.Errorf("vote %q: %w", value, ErrInvalidValue)
	}

	rd := s.round(sessionID)
	rd.mu.Lock()
	defer rd.mu.Unlock()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if sess.Status != models.StatusOpen {
		return false, fmt.Errorf("vote on session %s: %w", sessionID, ErrClosed)
	}

	if err := s.store.UpsertVote(ctx, sessionID, user, value, time.Now().UTC()); err != nil {
		return false, err
	}
	slog.Info("vote recorded", "session_id", sessionID, "user_id", user.ID)

	return s.checkAutoReveal(ctx, sess, rd)
}

// checkAutoReveal reveals and broadcasts once when every member has
// voted. Caller holds the round lock.
func (s *Service) checkAutoReveal(ctx context.Context, sess models.Session, rd *round) (bool, error) {
	members, err := s.store.Members(ctx, sess.ID)
	if err != nil {
		return false, err
	}
	votes, err := s.store.Votes(ctx, sess.ID)
	if err != nil {
		return false, err
	}

	if len(members) == 0 || !allVoted(members, votes) {
		return false, nil
	}

	fp := voterFingerprint(votes)
	if fp == rd.revealedFor {
		// Same voter set already broadcast this round
		return false, nil
	}

	report := results.Aggregate(members, votes)
	s.broadcastReport(ctx, sess, members, report)

	if err := s.notifier.Notify(ctx, sess.CreatorID, "All members have voted. Results were sent to every participant."); err != nil {
		slog.Warn("facilitator notification failed", "session_id", sess.ID, "error", err)
	}

	rd.revealedFor = fp
	slog.Info("auto-reveal triggered", "session_id", sess.ID, "votes", len(votes))
	return true, nil
}

// allVoted reports whether the voter set equals the member set.
func allVoted(members []models.Membership, votes []models.Vote) bool {
	if len(votes) != len(members) {
		return false
	}
	voted := make(map[int64]bool, len(votes))
	for _, v := range votes {
		voted[v.UserID] = true
	}
	for _, m := range members {
		if !voted[m.UserID] {
			return false
		}
	}
	return true
}

// voterFingerprint identifies a voter set regardless of vote values, so
// overwriting a vote does not look like a new completion event.
func voterFingerprint(votes []models.Vote) string {
	ids := make([]string, 0, len(votes))
	for _, v := range votes {
		ids = append(ids, strconv.FormatInt(v.UserID, 10))
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func (s *Service) broadcastReport(ctx context.Context, sess models.Session, members []models.Membership, report models.ResultsReport) {
	text := results.FormatReport(sess, report)
	deliveries := notify.Broadcast(ctx, s.notifier, members, text)
	failed := 0
	for _, d := range deliveries {
		if d.Err != nil {
			failed++
		}
	}
	slog.Info("results broadcast", "session_id", sess.ID, "recipients", len(deliveries), "failed", failed)
}

// RevealResults computes the report and broadcasts it to every member.
// Only the creator may reveal; the session status is left unchanged, so
// results remain available after a close.
func (s *Service) RevealResults(ctx context.Context, sessionID string, requester models.User) (models.ResultsReport, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return models.ResultsReport{}, err
	}
	if requester.ID != sess.CreatorID {
		return models.ResultsReport{}, fmt.Errorf("reveal session %s: %w", sessionID, ErrForbidden)
	}

	members, err := s.store.Members(ctx, sessionID)
	if err != nil {
		return models.ResultsReport{}, err
	}
	votes, err := s.store.Votes(ctx, sessionID)
	if err != nil {
		return models.ResultsReport{}, err
	}
	if len(votes) == 0 {
		return models.ResultsReport{}, fmt.Errorf("reveal session %s: %w", sessionID, ErrNoVotes)
	}

	report := results.Aggregate(members, votes)
	s.broadcastReport(ctx, sess, members, report)
	slog.Info("results revealed", "session_id", sessionID, "votes", len(votes))
	return report, nil
}

// ResetVotes deletes every vote so the round can run again. Memberships
// and status are untouched; members are re-prompted best-effort.
func (s *Service) ResetVotes(ctx context.Context, sessionID string, requester models.User) error {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if requester.ID != sess.CreatorID {
		return fmt.Errorf("reset session %s: %w", sessionID, ErrForbidden)
	}

	rd := s.round(sessionID)
	rd.mu.Lock()
	defer rd.mu.Unlock()

	if err := s.store.ClearVotes(ctx, sessionID); err != nil {
		return err
	}
	rd.revealedFor = ""

	members, err := s.store.Members(ctx, sessionID)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("The facilitator reset the votes for %q (%s). Please vote again.", sess.Title, sess.ID)
	notify.Broadcast(ctx, s.notifier, members, text)

	slog.Info("votes reset", "session_id", sessionID)
	return nil
}

// CloseSession sets the session to closed. The transition is one-way.
func (s *Service) CloseSession(ctx context.Context, sessionID string, requester models.User) error {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if requester.ID != sess.CreatorID {
		return fmt.Errorf("close session %s: %w", sessionID, ErrForbidden)
	}

	if err := s.store.SetSessionStatus(ctx, sessionID, models.StatusClosed); err != nil {
		return err
	}
	slog.Info("session closed", "session_id", sessionID)
	return nil
}

// SessionsByCreator lists the sessions a user has created.
func (s *Service) SessionsByCreator(ctx context.Context, creatorID int64) ([]models.Session, error) {
	return s.store.SessionsByCreator(ctx, creatorID)
}

// Members returns the roster. Participants never see it; only the
// facilitator does.
func (s *Service) Members(ctx context.Context, sessionID string, requester models.User) ([]models.Membership, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if requester.ID != sess.CreatorID {
		return nil, fmt.Errorf("members of session %s: %w", sessionID, ErrForbidden)
	}
	return s.store.Members(ctx, sessionID)
}

// SessionDetail is the participant-facing view: metadata plus counts.
func (s *Service) SessionDetail(ctx context.Context, sessionID string) (models.SessionDetail, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return models.SessionDetail{}, err
	}
	memberCount, voteCount, err := s.store.Counts(ctx, sessionID)
	if err != nil {
		return models.SessionDetail{}, err
	}
	return models.SessionDetail{
		Session:     sess,
		MemberCount: memberCount,
		VoteCount:   voteCount,
	}, nil
}

// ExportRows returns joined (vote, membership) rows for external
// rendering. Creator only: the rows de-anonymize votes.
func (s *Service) ExportRows(ctx context.Context, sessionID string, requester models.User) ([]models.ExportRow, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if requester.ID != sess.CreatorID {
		return nil, fmt.Errorf("export session %s: %w", sessionID, ErrForbidden)
	}
	return s.store.ExportRows(ctx, sessionID)
}
