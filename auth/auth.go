// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionIDBytes gives 64 bits of entropy, enough to make ids
// unguessable without bloating command arguments.
const sessionIDBytes = 8

// GenerateToken creates a random URL-safe token of the specified byte length
func GenerateToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateSessionID creates an unguessable session id safe for use in
// URLs and chat command arguments. Ids carry no ordering or timing
// information.
func GenerateSessionID() (string, error) {
	return GenerateToken(sessionIDBytes)
}
