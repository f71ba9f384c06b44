// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poker

import "errors"

// Expected failures of session operations. Anything else returned by the
// service is a storage failure and should surface as a generic error to
// the end user.
var (
	ErrNotFound     = errors.New("session not found")
	ErrClosed       = errors.New("session is closed")
	ErrForbidden    = errors.New("only the session creator may do this")
	ErrInvalidValue = errors.New("value is not a valid card")
	ErrNoVotes      = errors.New("no votes have been cast")
)
