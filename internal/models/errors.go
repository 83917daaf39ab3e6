package models

import "errors"

// Write-time error taxonomy. Nothing here is recovered automatically; every
// error propagates to the calling layer, which decides retry vs. surfacing.
var (
	// ErrReferentialIntegrity marks a foreign reference to a nonexistent row.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrUniqueViolation marks a write that would duplicate a unique value.
	ErrUniqueViolation = errors.New("uniqueness violation")

	// ErrInvalidKind marks an enumerated field outside its declared set.
	ErrInvalidKind = errors.New("invalid kind value")

	// ErrCredentialUnavailable marks a secret-field read that failed because
	// the encryption key is missing or decryption failed. Distinct from not
	// found.
	ErrCredentialUnavailable = errors.New("credential unavailable")

	// ErrStateConflict marks a double soft-delete or a concurrent conflicting
	// mutation.
	ErrStateConflict = errors.New("state conflict")
)
