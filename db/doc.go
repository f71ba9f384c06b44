// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Three tables back the service:

  - session: estimation rounds (id, creator, title, status)
  - session_member: one row per (session, user), created on first join
  - vote: one row per (session, user), overwritten on re-vote

CreateSchema is idempotent (IF NOT EXISTS) and is called once at startup:

	if err := db.CreateSchema(dbConn); err != nil {
		// fatal
	}

# Portability

The DDL sticks to the subset both drivers accept: timestamps are BIGINT
unix milliseconds, ids are TEXT, and no server-side defaults like NOW()
are used. The store package owns the millisecond conversion.
*/
package db
