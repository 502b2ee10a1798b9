package utils

import "regexp"

// ValidateUsername checks that a username is 3-30 characters of letters,
// numbers, underscores, or hyphens
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]+$`, username)
	return matched
}
