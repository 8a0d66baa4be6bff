package parser

import (
	"fmt"

	"github.com/indaco/bumpfile/internal/accessor"
)

// FileConfig describes the file to operate on.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Kind selects the accessor. When empty it is detected from Path.
	Kind accessor.Kind
}

// resolveKind returns cfg.Kind or the kind detected from cfg.Path.
func (cfg FileConfig) resolveKind() (accessor.Kind, error) {
	if cfg.Kind != "" {
		if !cfg.Kind.IsValid() {
			return "", fmt.Errorf("invalid kind: %s", cfg.Kind)
		}
		return cfg.Kind, nil
	}
	kind, ok := accessor.KindForFile(cfg.Path)
	if !ok {
		return "", fmt.Errorf("cannot detect kind of %q; pass one of %s, %s, %s",
			cfg.Path, accessor.KindAction, accessor.KindManifest, accessor.KindPackage)
	}
	return kind, nil
}

// Result describes a completed read or write.
type Result struct {
	// Version is the version read, or the version requested on write.
	Version string

	// Previous is the version found before a write. Empty on read.
	Previous string

	// Path is the file path that was used.
	Path string

	// Kind is the kind that was used.
	Kind accessor.Kind

	// Contents holds the document produced by a write. It is empty for a
	// dry run through a deferred accessor.
	Contents []byte

	// Pending is set when the write was delegated; the file changes once
	// Pending.Wait returns nil.
	Pending accessor.Deferred
}
