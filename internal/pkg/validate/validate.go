// Package validate holds the field rules shared by the API and the client forms.
package validate

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Email reports whether s is a bare address such as "jane@example.com".
// Display-name forms like "Jane <jane@example.com>" are rejected.
func Email(s string) bool {
	if strings.TrimSpace(s) != s {
		return false
	}
	return v.Var(s, "required,email") == nil
}

// MinLen reports whether s has at least n characters.
func MinLen(s string, n int) bool {
	if n <= 0 {
		return true
	}
	return v.Var(s, "min="+strconv.Itoa(n)) == nil
}

// Required reports whether s is non-blank.
func Required(s string) bool {
	return v.Var(strings.TrimSpace(s), "required") == nil
}
