package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student identifier pattern - 8 digits
	IdentifierPattern = `^\d{8}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Identifier *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Identifier: regexp.MustCompile(IdentifierPattern),
}
