// Package action reads and writes the version pinned in the image reference
// of a YAML action descriptor:
//
//	runs:
//	  using: docker
//	  image: docker://ghcr.io/org/tool:v1.2.3
package action

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/bumpfile/internal/accessor"
)

const (
	runsKey  = "runs"
	imageKey = "image"

	// versionMarker separates the registry path from the version.
	versionMarker = ":v"
)

// trailingVersion matches the version suffix replaced on write.
var trailingVersion = regexp.MustCompile(`\d+\.\d+\.\d+$`)

// Accessor implements accessor.Accessor for action descriptors.
type Accessor struct{}

// New returns an action descriptor accessor.
func New() *Accessor {
	return &Accessor{}
}

var _ accessor.Accessor = (*Accessor)(nil)

// ReadVersion returns the part of runs.image that follows the last ":v".
func (a *Accessor) ReadVersion(contents []byte) (string, error) {
	doc, err := decode(contents)
	if err != nil {
		return "", err
	}

	image, _, err := lookupImage(doc)
	if err != nil {
		return "", err
	}

	idx := strings.LastIndex(image, versionMarker)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q has no %q in %s.%s", accessor.ErrMarkerNotFound, image, versionMarker, runsKey, imageKey)
	}

	return image[idx+len(versionMarker):], nil
}

// WriteVersion replaces the trailing major.minor.patch of runs.image with
// version and re-serializes the document, keeping key order.
func (a *Accessor) WriteVersion(contents []byte, version string) ([]byte, error) {
	doc, err := decode(contents)
	if err != nil {
		return nil, err
	}

	image, runs, err := lookupImage(doc)
	if err != nil {
		return nil, err
	}

	loc := trailingVersion.FindStringIndex(image)
	if loc == nil {
		return nil, fmt.Errorf("%w: %q does not end with a version in %s.%s", accessor.ErrMarkerNotFound, image, runsKey, imageKey)
	}

	setValue(runs, imageKey, image[:loc[0]]+version)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return out, nil
}

// decode parses contents into an ordered mapping so that re-serialization
// keeps the author's key order. A well-formed document whose top level is
// not a mapping is reported as a missing field, not a parse error.
func decode(contents []byte) (yaml.MapSlice, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(contents, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %w", accessor.ErrParse, err)
	}

	switch doc := raw.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: top level is %T, not a mapping", accessor.ErrMissingField, raw)
	}
}

// lookupImage returns the runs.image string and the runs mapping holding it.
func lookupImage(doc yaml.MapSlice) (string, yaml.MapSlice, error) {
	runsValue, ok := getValue(doc, runsKey)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q not found", accessor.ErrMissingField, runsKey)
	}

	runs, ok := runsValue.(yaml.MapSlice)
	if !ok {
		return "", nil, fmt.Errorf("%w: %q is not a mapping", accessor.ErrMissingField, runsKey)
	}

	imageValue, ok := getValue(runs, imageKey)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s.%s not found", accessor.ErrMissingField, runsKey, imageKey)
	}

	image, ok := imageValue.(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s.%s is not a string", accessor.ErrMissingField, runsKey, imageKey)
	}

	return image, runs, nil
}

func getValue(m yaml.MapSlice, key string) (any, bool) {
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}

// setValue updates key in place. The key must already exist.
func setValue(m yaml.MapSlice, key string, value any) {
	for i := range m {
		if k, ok := m[i].Key.(string); ok && k == key {
			m[i].Value = value
			return
		}
	}
}
