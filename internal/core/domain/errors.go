package domain

import "errors"

var (
	// ErrUnauthenticated covers every session verification failure: missing
	// cookie, bad signature, expired token, revoked or unknown session, and
	// identity-store errors. Callers must not be able to tell these apart.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")

	ErrArticleNotFound  = errors.New("article not found")
	ErrSettingsNotFound = errors.New("settings not found")

	ErrAlreadySubscribed = errors.New("already subscribed")
)
