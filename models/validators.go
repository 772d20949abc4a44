package models

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// NormalizeHexColor validates a HEX color and returns it in canonical
// `#RRGGBB` form. A leading `#` and surrounding spaces are tolerated
// on input.
func NormalizeHexColor(color string) (string, error) {
	trimmed := strings.Trim(color, " #")
	if len(trimmed) != 6 {
		return "", fmt.Errorf("color code %q has wrong length %d, expected 6 hex digits", trimmed, len(trimmed))
	}
	for _, c := range trimmed {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", fmt.Errorf("color code %q contains non-hexadecimal characters", trimmed)
		}
	}
	return "#" + strings.ToUpper(trimmed), nil
}

// ValidateUsername restricts usernames to letters, digits and @/./+/-/_.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username %q may only contain letters, digits and @/./+/-/_", username)
	}
	return nil
}

// NormalizeEmail lowercases both the local part and the domain.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return strings.ToLower(email[:at]) + "@" + strings.ToLower(email[at+1:])
}
