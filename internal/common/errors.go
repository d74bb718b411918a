// Package common defines shared sentinel errors used across client and
// server layers of ListShare. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrCorruptStore = errors.New("corrupt store")
	ErrNotFound     = errors.New("not found")

	// Identity errors. ErrUnauthorized deliberately covers both an
	// unknown username and a wrong password.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUnauthorized      = errors.New("unauthorized")

	// Access-policy errors. A missing list and a list the caller is not
	// a member of both map here.
	ErrForbidden = errors.New("forbidden")

	// Internal error for unexpected failures.
	ErrInternal = errors.New("internal error")
)
