package core

import "errors"

// Common errors.
var (
	// ErrLimitReached describes a refused OpenNote. Store operations report it
	// through their bool result and logs, never as a returned error.
	ErrLimitReached = errors.New("open note limit reached")
)
