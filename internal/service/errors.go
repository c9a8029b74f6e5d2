package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. The message
// texts are part of the API contract the clients already depend on.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionNotOwned    = errors.New("You do not own this session")
	ErrNoteNotOwned       = errors.New("You do not own this note")
	ErrVideoUnavailable   = errors.New("Unable to fetch video information. The video might be private, deleted, or unavailable.")
)
