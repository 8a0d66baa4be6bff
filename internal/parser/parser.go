package parser

import (
	"context"
	"fmt"

	"github.com/indaco/bumpfile/internal/core"
)

// Reader reads versions from files.
type Reader struct {
	fs       core.FileSystem
	resolver *Resolver
}

// NewReader creates a new Reader with the given filesystem and resolver.
func NewReader(fs core.FileSystem, resolver *Resolver) *Reader {
	return &Reader{fs: fs, resolver: resolver}
}

// Read reads the version from the file described by cfg.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	kind, err := cfg.resolveKind()
	if err != nil {
		return nil, err
	}

	a, err := r.resolver.For(kind)
	if err != nil {
		return nil, err
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	version, err := a.ReadVersion(data)
	if err != nil {
		return nil, fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	return &Result{
		Version: version,
		Path:    cfg.Path,
		Kind:    kind,
	}, nil
}

// ReadVersion is a convenience method that reads and returns just the version string.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}
