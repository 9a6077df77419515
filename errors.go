package jsontools

import "errors"

// Standard library errors. All failures returned by this package wrap one of
// these sentinels, so callers can match them with errors.Is.
var (
	// ErrInvalidPath reports a string that does not follow the flatten path
	// grammar segment(/segment)* with optional [index] suffixes.
	ErrInvalidPath = errors.New("invalid flatten path")
	// ErrInvalidPattern reports a key pattern that is not a compilable
	// regular expression. It is returned before any traversal begins.
	ErrInvalidPattern = errors.New("invalid key pattern")
	// ErrTypeMismatch reports a value passed where an Object or an array of
	// Objects was required.
	ErrTypeMismatch = errors.New("value is neither an object nor an array of objects")
	// ErrUnsupportedConvention reports an unknown naming convention
	// identifier.
	ErrUnsupportedConvention = errors.New("unsupported naming convention")
)
