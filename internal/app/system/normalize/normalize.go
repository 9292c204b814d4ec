// Package normalize canonicalizes user-supplied identifiers before they
// reach queries or documents.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are compared
// case-insensitively everywhere, so every read and write goes through this.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MissionName trims surrounding whitespace from a mission name. Mission
// names are otherwise compared exactly as supplied.
func MissionName(s string) string {
	return strings.TrimSpace(s)
}
