// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poker implements the session and vote state machine.

# Service

Service is constructed once with its collaborators and passed to the
transport layer; there is no process-wide state:

	svc := poker.New(store.New(dbConn), notify.LogNotifier{})

Operations:

  - CreateSession: open a round, auto-admit the creator
  - JoinSession: idempotent membership registration (open sessions only)
  - SubmitVote: last-write-wins upsert, then the auto-reveal check
  - RevealResults: creator-only aggregate + broadcast
  - ResetVotes: creator-only bulk vote delete, members re-prompted
  - CloseSession: creator-only, one-way open → closed
  - SessionsByCreator, SessionDetail, Members, ExportRows: projections

# Authorization

Reveal, reset, close, roster, and export require requester id equal to
the session's creator id. Participants see only SessionDetail counts,
never the roster or any vote value before a reveal.

# Auto-Reveal

After every accepted vote the service compares the voter-id set with the
member-id set under the session lock. When they are set-equal it
aggregates, broadcasts to every member, and notifies the facilitator —
once per voter set. The fingerprint of the revealed voter set guards
against re-broadcast on repeat votes; ResetVotes clears it, and a voter
set grown by a new member counts as a new completion event.

# Concurrency

Each session has one lock serializing the vote-upsert plus completeness
check (and vote reset). Operations on different sessions never contend.

# Errors

Expected failures are the sentinel errors in errors.go, matched with
errors.Is. Anything else is a storage failure.
*/
package poker
