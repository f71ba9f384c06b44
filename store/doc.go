// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the repository over the session, session_member, and
vote tables.

# Contract

The store is pure data access keyed as the schema is keyed:

  - AddMember: idempotent insert (re-join keeps the original row)
  - UpsertVote: last-write-wins per (session, user); inserts the
    membership row in the same transaction if it is missing
  - ClearVotes: bulk delete of one session's votes
  - Members: roster in join order
  - ExportRows: votes joined with membership for external rendering

No policy lives here. Status gates, facilitator checks, and the
auto-reveal decision belong to the poker service, which is also the only
writer of these tables.

# Errors

Lookup misses wrap sql.ErrNoRows; callers translate with errors.Is.
Everything else is a storage failure surfaced as-is.
*/
package store
