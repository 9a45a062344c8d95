// SPDX-License-Identifier: GPL-3.0-only

package accounts

import "regexp"

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telephonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

const minPasswordLength = 6

// validateRegistration checks the rules in fixed order (presence, email
// format, telephone format, password length) and reports only the first
// failure. The order and messages are part of the API contract.
func validateRegistration(in RegisterInput) error {
	if in.Name == "" || in.Telephone == "" || in.Email == "" || in.Nickname == "" || in.Password == "" {
		return &ValidationError{Message: "All fields are required."}
	}
	if !emailPattern.MatchString(in.Email) {
		return &ValidationError{Message: "Invalid email format."}
	}
	if !telephonePattern.MatchString(in.Telephone) {
		return &ValidationError{Message: "Invalid telephone number format."}
	}
	if len(in.Password) < minPasswordLength {
		return &ValidationError{Message: "Password must be at least 6 characters long."}
	}
	return nil
}
