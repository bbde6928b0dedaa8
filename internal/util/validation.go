package util

import (
	"regexp"

	"github.com/google/uuid"
)

var clientIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// IsValidUUID accepts the hyphenated 36 character form in either case.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidClientID accepts generated RED-dddd ids and admin-chosen renames.
func IsValidClientID(s string) bool {
	return clientIDRegex.MatchString(s)
}
