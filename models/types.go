package models

import "time"

// Session status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Card tokens with special meaning
const (
	CardHalf    = "½"
	CardAbstain = "?"
)

// Cards is the fixed estimation scale in display order. CardAbstain marks
// an abstention and is excluded from numeric statistics.
var Cards = []string{"0", "½", "1", "2", "3", "5", "8", "13", "20", "40", "100", "?"}

// ValidCard reports whether value is one of the fixed card tokens.
func ValidCard(value string) bool {
	for _, c := range Cards {
		if c == value {
			return true
		}
	}
	return false
}

// User is the identity asserted by the transport layer. The service never
// authenticates; it trusts these fields as given.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name"`
}

// Request types

type CreateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SubmitVoteRequest struct {
	Value string `json:"value"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SubmitVoteResponse struct {
	Message  string `json:"message"`
	Revealed bool   `json:"revealed"`
}

type RevealResponse struct {
	Message string        `json:"message"`
	Report  ResultsReport `json:"report"`
}

// Domain types

type Session struct {
	ID          string    `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Membership struct {
	SessionID   string    `json:"session_id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

type Vote struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"-"` // Never expose in JSON
	Value     string    `json:"value"`
	VotedAt   time.Time `json:"voted_at"`
}

// SessionDetail is the participant-facing view of a session: metadata plus
// counts, never the roster or individual votes.
type SessionDetail struct {
	Session     Session `json:"session"`
	MemberCount int     `json:"member_count"`
	VoteCount   int     `json:"vote_count"`
}

// Results types

type TokenCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ResultsReport is the aggregate outcome of one voting round. Histogram is
// ordered by the fixed card scale and omits zero-count tokens. Mean and
// Median are nil when every vote was an abstention.
type ResultsReport struct {
	Histogram  []TokenCount `json:"histogram"`
	TotalVotes int          `json:"total_votes"`
	Mean       *float64     `json:"mean,omitempty"`
	Median     *float64     `json:"median,omitempty"`
	NonVoters  []Membership `json:"non_voters"`
}

// ExportRow is one vote joined with its voter's membership record, for
// external rendering (CSV and the like).
type ExportRow struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Value       string    `json:"value"`
	VotedAt     time.Time `json:"voted_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
