package attrstr

import "errors"

// Builder errors.
var (
	// ErrInvalidRange indicates a range outside the text or with End < Start.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptyKey indicates an attribute key of "".
	ErrEmptyKey = errors.New("empty attribute key")
)
