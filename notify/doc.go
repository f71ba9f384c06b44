// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify defines the outbound notification boundary.

The chat platform client is an external collaborator; the service only
needs Notify(ctx, userID, text). Broadcast fans a message out to a
roster and returns a per-recipient outcome list so callers and tests can
assert partial-failure behavior. A delivery failure is logged and never
fails the operation that triggered the broadcast.

LogNotifier is the default implementation: deliveries go to the server
log, which is enough for development and for running the HTTP API
without a chat bridge.
*/
package notify
