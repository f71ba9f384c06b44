// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Session: one estimation round with a creator (facilitator), title,
    and open/closed status
  - Membership: a user registered to a session, at most one row per
    (session, user)
  - Vote: a user's current card choice, at most one row per (session,
    user); the user id is never serialized
  - ResultsReport: aggregate outcome of a round (histogram, mean,
    median, non-voters)
  - ExportRow: vote joined with membership for external export

# Card Scale

The estimation scale is fixed and ordered:

	0  ½  1  2  3  5  8  13  20  40  100  ?

"½" counts as 0.5 in numeric statistics; "?" is an abstention and is
excluded from them. Use ValidCard to check a submitted token.

# Constants

Status values:

	StatusOpen   = "open"
	StatusClosed = "closed"
*/
package models
