// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates the random identifiers used by the service.

# Session IDs

Session ids are the only capability a participant needs to join a round,
so they must be unguessable:

	id, err := auth.GenerateSessionID()

Ids are 8 bytes from crypto/rand, base64 URL-safe encoded (11 chars),
with no relation to creation order or time.

There is no key validation here: facilitator privilege is a creator-id
comparison enforced by the poker service, and user identity is asserted
by the transport layer.
*/
package auth
