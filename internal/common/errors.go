// Package common defines shared constants and sentinel errors used across
// qprdesk components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("record not found")

	// Remote boundary errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// ErrRejected marks a mutation the server processed and refused; the
	// wrapped message carries the server-provided reason.
	ErrRejected = errors.New("rejected by server")
)
