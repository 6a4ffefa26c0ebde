package services

import (
	"regexp"
	"strings"
	"unicode"
)

// local@domain.tld, nothing fancier.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// validPhone accepts anything with more than 9 digits once formatting
// characters are stripped.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits > 9
}
