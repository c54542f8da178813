package html5up

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidLang = errors.New("invalid language code")
)
