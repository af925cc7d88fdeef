package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so that login failures do not leak user existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is the single outcome for every token validation
	// failure: expired, tampered, malformed, or issued for an unknown user.
	// Callers cannot distinguish between these cases.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrNoFileProvided is returned when the avatar endpoint receives no
	// uploaded file.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrAvatarUploadFailed wraps failures of the external image CDN call.
	ErrAvatarUploadFailed = errors.New("failed to upload avatar")
)
