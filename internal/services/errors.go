package services

import "errors"

// Domain errors returned by the services. Handlers map these onto HTTP
// status codes; nothing below the handler layer knows about HTTP.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases must stay indistinguishable to prevent
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrUserNotFound   = errors.New("user not found")

	ErrEmailTaken              = errors.New("email already registered")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDuplicateEmployeeNumber = errors.New("employee number already exists")
)
