package accessor

import (
	"path/filepath"
	"strings"
)

// Kind identifies which accessor handles a file.
type Kind string

const (
	// KindAction is for YAML action descriptors (action.yml).
	KindAction Kind = "action"

	// KindManifest is for TOML package manifests (Cargo.toml).
	KindManifest Kind = "manifest"

	// KindPackage is for JSON package manifests (package.json).
	KindPackage Kind = "package"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is known.
func (k Kind) IsValid() bool {
	switch k {
	case KindAction, KindManifest, KindPackage:
		return true
	default:
		return false
	}
}

// ParseKind converts a string to a Kind. The second return value reports
// whether s named a known kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.IsValid()
}

// KindForFile detects the kind from a file name. It returns false when the
// extension is not recognized.
func KindForFile(filename string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yml", ".yaml":
		return KindAction, true
	case ".toml":
		return KindManifest, true
	case ".json":
		return KindPackage, true
	default:
		return "", false
	}
}
