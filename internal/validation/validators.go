// Package validation holds the pure input checks for signup, login and
// profile-detail payloads. No I/O, no state.
package validation

import (
	"regexp"
	"strings"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Handle          string
}

type LoginInput struct {
	Email    string
	Password string
}

// ValidateSignupData reports whether the signup payload is acceptable and
// returns an error message for every failing field, not just the first.
func ValidateSignupData(in SignupInput) (bool, map[string]string) {
	errs := map[string]string{}

	if isEmpty(in.Email) {
		errs["email"] = "Must not be empty"
	} else if !emailPattern.MatchString(in.Email) {
		errs["email"] = "Must be a valid email address"
	}

	if isEmpty(in.Password) {
		errs["password"] = "Must not be empty"
	}
	if in.ConfirmPassword != in.Password {
		errs["confirmPassword"] = "Passwords must match"
	}
	if isEmpty(in.Handle) {
		errs["handle"] = "Must not be empty"
	}

	return len(errs) == 0, errs
}

// ValidateLoginData checks presence of email and password.
func ValidateLoginData(in LoginInput) (bool, map[string]string) {
	errs := map[string]string{}

	if isEmpty(in.Email) {
		errs["email"] = "Must not be empty"
	}
	if isEmpty(in.Password) {
		errs["password"] = "Must not be empty"
	}

	return len(errs) == 0, errs
}

// ReduceUserDetails copies only the editable fields into a Details value.
// Absent or blank fields stay nil so the update never overwrites stored
// values with empty ones. A website without a scheme gets an http:// prefix.
func ReduceUserDetails(bio, website, location *string) user.Details {
	var details user.Details

	if v, ok := trimmed(bio); ok {
		details.Bio = &v
	}
	if v, ok := trimmed(website); ok {
		if !strings.HasPrefix(v, "http") {
			v = "http://" + v
		}
		details.Website = &v
	}
	if v, ok := trimmed(location); ok {
		details.Location = &v
	}

	return details
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimmed(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
