package social_errors

import "errors"

// Common errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrHandleTaken      = errors.New("handle already taken")
	ErrEmailTaken       = errors.New("email already in use")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrWrongFileType    = errors.New("wrong file type")
	ErrRateLimited      = errors.New("rate limit exceeded")
)
