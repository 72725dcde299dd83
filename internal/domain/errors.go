package domain

import "errors"

var (
	ErrLoginRequired   = errors.New("login required")
	ErrSessionExpired  = errors.New("session expired")
	ErrNoPrincipal     = errors.New("no stored principal")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrUnexpectedShape = errors.New("unexpected response shape")
)
