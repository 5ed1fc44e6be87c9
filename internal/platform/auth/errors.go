package auth

import "errors"

// Authentication and authorization failures are deliberately coarse. Login
// failures never reveal whether the username exists, and token failures never
// reveal whether the token was expired, forged, or malformed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("operation not permitted")
)
