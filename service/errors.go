// Package service holds the business rules for leave, attendance, approval
// and user provisioning. Handlers translate these errors to HTTP statuses;
// the services themselves know nothing about HTTP.
package service

import "errors"

// Sentinel errors, matched with errors.Is. Wrapped values carry the
// human-readable detail for the caller.
var (
	// ErrValidation covers malformed or missing input, caught before any
	// store access.
	ErrValidation = errors.New("invalid input")

	// Policy violations.
	ErrAdvanceNotice    = errors.New("leave must be requested in advance")
	ErrQuotaExceeded    = errors.New("monthly paid leave quota reached, consider requesting unpaid leave")
	ErrWeeklyLimit      = errors.New("only one leave request per week is allowed")
	ErrAlreadyCheckedIn = errors.New("attendance already marked for today")
	ErrNoOpenSession    = errors.New("no open attendance session for today")

	// Authorization failures.
	ErrForbidden     = errors.New("forbidden")
	ErrTargetIsAdmin = errors.New("cannot change admin role")
	ErrInvalidRole   = errors.New("role must be either 'employee' or 'manager'")

	// State failures.
	ErrInvalidStateTransition = errors.New("record is not pending")

	ErrNotFound = errors.New("not found")
)

// IsPolicyViolation reports whether the error is a business-rule rejection
// rather than bad input or an authorization failure.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrAdvanceNotice) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrWeeklyLimit) ||
		errors.Is(err, ErrAlreadyCheckedIn) ||
		errors.Is(err, ErrNoOpenSession)
}
