// Package pkgjson reads and writes the top-level "version" of a JSON
// package manifest such as package.json.
package pkgjson

import (
	"encoding/json"
	"fmt"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/tidwall/sjson"
)

const versionKey = "version"

// Accessor implements accessor.Accessor for JSON manifests.
type Accessor struct{}

// New returns a JSON manifest accessor.
func New() *Accessor {
	return &Accessor{}
}

var _ accessor.Accessor = (*Accessor)(nil)

// ReadVersion returns the top-level "version" string.
func (a *Accessor) ReadVersion(contents []byte) (string, error) {
	var obj map[string]any
	if err := json.Unmarshal(contents, &obj); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %w", accessor.ErrParse, err)
	}

	value, ok := obj[versionKey]
	if !ok {
		return "", fmt.Errorf("%w: %q not found", accessor.ErrMissingField, versionKey)
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", accessor.ErrMissingField, versionKey)
	}
	return version, nil
}

// WriteVersion sets "version" with sjson so field order and indentation
// are kept.
func (a *Accessor) WriteVersion(contents []byte, version string) ([]byte, error) {
	if _, err := a.ReadVersion(contents); err != nil {
		return nil, err
	}

	updated, err := sjson.SetBytes(contents, versionKey, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set %q: %w", versionKey, err)
	}

	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}
	return updated, nil
}
