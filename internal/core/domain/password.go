package domain

import "unicode"

const (
	PasswordMinLength = 6
	PasswordMaxLength = 128
)

// ValidPassword reports whether s satisfies the password policy: between
// 6 and 128 characters with at least one uppercase letter, one lowercase
// letter, one digit and one special character. The credential store
// enforces this as the last line of defense; the API layer applies the
// same rule at the input boundary for a friendlier error.
func ValidPassword(s string) bool {
	if len(s) < PasswordMinLength || len(s) > PasswordMaxLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
