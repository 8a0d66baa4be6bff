package accessor

import "errors"

var (
	// ErrParse is returned when contents are not valid in the accessor's format.
	ErrParse = errors.New("parse error")

	// ErrMissingField is returned when the version-bearing field is absent
	// or holds a value of the wrong type.
	ErrMissingField = errors.New("missing version field")

	// ErrMarkerNotFound is returned when the field exists but the version
	// token cannot be located inside it.
	ErrMarkerNotFound = errors.New("version marker not found")

	// ErrExternalTool is returned when a delegated version-setting tool
	// fails to start or exits unsuccessfully.
	ErrExternalTool = errors.New("external tool failed")
)
