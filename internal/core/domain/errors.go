package domain

import "errors"

var (
	// ErrUnauthorized means the backend rejected the credential (401).
	// It is handled globally: the session is cleared and the user is sent
	// back to the login page, whichever page triggered it.
	ErrUnauthorized = errors.New("backend rejected authorization")

	// ErrNotFound means the backend has no record for the requested id.
	ErrNotFound = errors.New("asset not found")

	// ErrMalformedCredential means a stored token could not be decoded
	// into an identity. It is resolved silently to the unauthenticated
	// state and never shown to the user.
	ErrMalformedCredential = errors.New("malformed credential")
)
