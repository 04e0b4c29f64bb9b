package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// each to a deterministic status code in the central error handler.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("account does not exist with current role")

	ErrForbidden = errors.New("access forbidden")

	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists")

	ErrJobNotFound = errors.New("job not found")

	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrInvalidStatus       = errors.New("invalid application status")
)
