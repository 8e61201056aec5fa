package service

import "errors"

// Sentinel errors surfaced by the rulebook services. Handlers translate
// them into HTTP statuses; none of them ever reaches a client as a panic.
var (
	// ErrStoreNotConfigured is returned by mutating operations in demo mode,
	// where only the placeholder dataset exists to read from.
	ErrStoreNotConfigured = errors.New("backing store not configured")

	// ErrNotFound marks an operation against a section or rule that no
	// longer exists.
	ErrNotFound = errors.New("record not found")

	// ErrSectionNotEmpty rejects deletion of a section that still owns
	// rules. The check runs before any persistence call is attempted.
	ErrSectionNotEmpty = errors.New("section still contains rules")

	// ErrInvalidIcon rejects an icon name outside the closed icon set.
	ErrInvalidIcon = errors.New("unknown section icon")

	// ErrInvalidCredentials is returned for a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidBackup rejects an import document that does not match the
	// backup schema.
	ErrInvalidBackup = errors.New("invalid backup document")
)
