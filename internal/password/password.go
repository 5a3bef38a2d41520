// Package password covers credential hashing and strength validation for the
// portal's email/password accounts.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

func Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func Verify(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Rule is a single strength requirement. Message is what the caller surfaces
// when the rule is violated.
type Rule struct {
	Message string
	Check   func(pw string) bool
}

const specialChars = `!@#$%^&*()-_=+[]{};:'",.<>/?\|~` + "`"

var (
	// Rules is the base strength rule set.
	Rules = []Rule{
		{"password must be at least 8 characters long", func(pw string) bool {
			return len(pw) >= 8
		}},
		{"password must contain at least one lowercase letter", func(pw string) bool {
			return strings.ContainsFunc(pw, func(r rune) bool { return r >= 'a' && r <= 'z' })
		}},
		{"password must contain at least one uppercase letter", func(pw string) bool {
			return strings.ContainsFunc(pw, func(r rune) bool { return r >= 'A' && r <= 'Z' })
		}},
		{"password must contain at least one digit", func(pw string) bool {
			return strings.ContainsFunc(pw, func(r rune) bool { return r >= '0' && r <= '9' })
		}},
	}

	// RulesExtended additionally requires a special character.
	RulesExtended = append(Rules[:len(Rules):len(Rules)], Rule{
		"password must contain at least one special character",
		func(pw string) bool {
			return strings.ContainsAny(pw, specialChars)
		},
	})
)

type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks pw against every rule and accumulates all violations.
func Validate(pw string, rules []Rule) Result {
	var errs []string
	for _, r := range rules {
		if !r.Check(pw) {
			errs = append(errs, r.Message)
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
