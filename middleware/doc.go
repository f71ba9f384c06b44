// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging logs request start and completion with a per-request
correlation id and duration:

	mux.HandleFunc("POST /sessions", middleware.WithLogging(h.CreateSession))

# Identity

Identity reads the caller's identity from trusted headers:

	X-User-ID       required, integer
	X-Username      optional
	X-Display-Name  optional (falls back to X-Username)

The API trusts whatever the fronting chat bridge asserts; there is no
authentication in this layer.

# JSON Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body
*/
package middleware
