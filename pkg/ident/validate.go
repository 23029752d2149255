package ident

import "regexp"

var (
	uuidV4Pattern    = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	timestampPattern = regexp.MustCompile(`(?i)^(note_|nt_)\d+_\d+_[a-z0-9]+$`)
	shortPattern     = regexp.MustCompile(`(?i)^nt_[a-z0-9]+_[a-z0-9]+$`)
)

// IsValidID reports whether id has the shape of a UUID v4, a timestamp id
// (note_ or nt_ followed by <millis>_<counter>_<random>) or a short id
// (nt_<base36>_<random>).
func IsValidID(id string) bool {
	if id == "" {
		return false
	}
	return uuidV4Pattern.MatchString(id) ||
		timestampPattern.MatchString(id) ||
		shortPattern.MatchString(id)
}
