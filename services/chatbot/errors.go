// File: services/chatbot/errors.go
package chatbot

import "errors"

var (
	// ErrSessionNotFound means the store has no session under the given id.
	// The engine recovers by starting a fresh session.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrSessionExpired means the session outlived its inactivity window.
	// The engine recovers by silently restarting at the greeting.
	ErrSessionExpired = errors.New("chat session expired")

	// ErrStorageUnavailable means the session store or booking gateway could
	// not be reached. The turn fails without changing conversation state.
	ErrStorageUnavailable = errors.New("chat storage temporarily unavailable")
)
