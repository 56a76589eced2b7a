package editable

import "errors"

var (
	// ErrInvalidPath is returned when a path string does not follow the dot/bracket grammar.
	ErrInvalidPath = errors.New("invalid editable path")
	// ErrUnknownField is returned when a field segment names no field of the configuration.
	ErrUnknownField = errors.New("unknown field")
	// ErrIndexOutOfRange is returned when an index segment is past the end of a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotTraversable is returned when a segment is applied to a value of the wrong shape.
	ErrNotTraversable = errors.New("value cannot be traversed by segment")
	// ErrNotString is returned when writing to a leaf that does not hold a string.
	ErrNotString = errors.New("leaf is not a string")
	// ErrNotEditable is returned when writing to a field excluded from editing.
	ErrNotEditable = errors.New("field is not editable")
)
