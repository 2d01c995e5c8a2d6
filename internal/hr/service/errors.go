package service

import "errors"

var (
	// ErrInvalidCredentials is returned by SignIn for both unknown emails and
	// wrong passwords. Callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrDuplicateIdentity is returned by SignUp when the email is taken.
	ErrDuplicateIdentity = errors.New("duplicate_identity")

	// ErrNoActiveSession is returned when an operation needs an active
	// session and none exists.
	ErrNoActiveSession = errors.New("no_active_session")

	// ErrImmutableField is returned when an update touches an identity field
	// (id, employeeId, email or, for self-service, role).
	ErrImmutableField = errors.New("immutable_field")

	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for malformed or missing request values.
	ErrInvalidInput = errors.New("invalid_input")

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not_found")

	// ErrAlreadyCheckedIn is returned when today's attendance already has a check-in.
	ErrAlreadyCheckedIn = errors.New("already_checked_in")

	// ErrNotCheckedIn is returned by check-out when there is nothing to close.
	ErrNotCheckedIn = errors.New("not_checked_in")

	// ErrAlreadyCheckedOut is returned when today's record is already closed.
	ErrAlreadyCheckedOut = errors.New("already_checked_out")

	// ErrAlreadyReviewed is returned when reviewing a leave request that is
	// no longer pending.
	ErrAlreadyReviewed = errors.New("already_reviewed")
)
