package manifest

import (
	"fmt"
	"reflect"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/pelletier/go-toml/v2"
)

const (
	packageKey = "package"
	versionKey = "version"
)

// Editor implements accessor.Accessor by editing the manifest directly.
type Editor struct{}

// NewEditor returns a manifest accessor that edits documents in memory.
func NewEditor() *Editor {
	return &Editor{}
}

var _ accessor.Accessor = (*Editor)(nil)

// ReadVersion returns package.version verbatim.
func (e *Editor) ReadVersion(contents []byte) (string, error) {
	doc, err := decode(contents)
	if err != nil {
		return "", err
	}

	pkg, err := packageTable(doc)
	if err != nil {
		return "", err
	}

	value, ok := pkg[versionKey]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s not found", accessor.ErrMissingField, packageKey, versionKey)
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s is not a string", accessor.ErrMissingField, packageKey, versionKey)
	}

	return version, nil
}

// WriteVersion sets package.version to version.
//
// The version assignment is rewritten in place when it appears as a plain
// key under a [package] header, so comments and formatting survive. The
// edit is kept only if the result decodes to the original document with
// package.version replaced. Otherwise the whole document is re-serialized.
func (e *Editor) WriteVersion(contents []byte, version string) ([]byte, error) {
	doc, err := decode(contents)
	if err != nil {
		return nil, err
	}

	pkg, err := packageTable(doc)
	if err != nil {
		return nil, err
	}

	if _, ok := pkg[versionKey]; !ok {
		return nil, fmt.Errorf("%w: %s.%s not found", accessor.ErrMissingField, packageKey, versionKey)
	}

	pkg[versionKey] = version

	if updated, ok := editInPlace(contents, version); ok {
		if after, err := decode(updated); err == nil && reflect.DeepEqual(after, doc) {
			return updated, nil
		}
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return out, nil
}

func decode(contents []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid TOML: %w", accessor.ErrParse, err)
	}
	return doc, nil
}

func packageTable(doc map[string]any) (map[string]any, error) {
	value, ok := doc[packageKey]
	if !ok {
		return nil, fmt.Errorf("%w: [%s] table not found", accessor.ErrMissingField, packageKey)
	}

	pkg, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a table", accessor.ErrMissingField, packageKey)
	}
	return pkg, nil
}
