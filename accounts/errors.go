// SPDX-License-Identifier: GPL-3.0-only

package accounts

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnverifiedAccount means the credentials may be fine but the
	// email has not been confirmed yet.
	ErrUnverifiedAccount = errors.New("account not verified")

	// ErrNotFoundOrAlreadyVerified deliberately folds a missing account,
	// a stale token and an already-verified account into one failure so
	// the verification endpoint cannot be used for enumeration.
	ErrNotFoundOrAlreadyVerified = errors.New("no matching unverified account")
)

// ValidationError reports the first failing input rule. Its message is
// client-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
