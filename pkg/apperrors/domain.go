package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for domain errors shared across services.
Repository-level sentinels (ErrUserNotFound etc.) live next to the
repositories; services translate them into these before returning.
*/

// ErrNotFound wraps a repository not-found into a 404.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation that is not allowed in the current state (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials - username/password mismatch at login.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - malformed, tampered or expired bearer token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - password below the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrUsernameTaken - registration with an existing username. A plain
// business-rule violation, not the application-conflict 409.
var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already exists",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - registration with a role other than employer/freelancer.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Authorization ---

// ErrNotOwner - caller is authenticated but does not own the resource.
var ErrNotOwner = New(
	CodeForbidden,
	"authorization",
	"You do not own this resource",
	http.StatusForbidden,
)

// ErrRoleNotAllowed - caller's role may not perform the operation.
var ErrRoleNotAllowed = New(
	CodeForbidden,
	"authorization",
	"Your role is not allowed to perform this operation",
	http.StatusForbidden,
)

// --- Applications ---

// ErrDuplicateApplication - second non-deleted application for the same (user, job).
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

// ErrApplicationUnchanged - status update with the current status; nothing to do.
var ErrApplicationUnchanged = New(
	CodeNotFound,
	"application",
	"Application not found or status unchanged",
	http.StatusNotFound,
)

// --- Jobs ---

// ErrInvalidJobStatus - unknown job status literal on create/update.
var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Invalid job status",
	http.StatusBadRequest,
)

// ErrInvalidJobType - unknown job type literal on create/update.
// (The search endpoint tolerates unknown types instead; see JobService.)
var ErrInvalidJobType = New(
	CodeInvalidStatus,
	"job",
	"Invalid job type",
	http.StatusBadRequest,
)
