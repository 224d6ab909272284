package domain

import "errors"

var (
	ErrNoData         = errors.New("no track data uploaded")
	ErrNoSelection    = errors.New("no vessel selected")
	ErrUnknownVessel  = errors.New("vessel not present in uploaded data")
	ErrSchemaMismatch = errors.New("uploaded file does not match the expected schema")
	ErrUnknownChart   = errors.New("unknown chart")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)
