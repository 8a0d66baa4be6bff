package parser

import (
	"bytes"
	"context"
	"fmt"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/core"
)

// Writer writes versions to files.
type Writer struct {
	fs       core.FileSystem
	resolver *Resolver
}

// NewWriter creates a new Writer with the given filesystem and resolver.
func NewWriter(fs core.FileSystem, resolver *Resolver) *Writer {
	return &Writer{fs: fs, resolver: resolver}
}

// WriteOptions tunes a single write.
type WriteOptions struct {
	// DryRun computes the new contents without persisting them or
	// starting a delegated tool.
	DryRun bool
}

// Write sets the version of the file described by cfg.
//
// Contents produced by a deferred accessor are never written back: the
// delegated tool owns the file, and persisting the unchanged text would race
// with it. The caller waits on Result.Pending instead.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, version string, opts WriteOptions) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	kind, err := cfg.resolveKind()
	if err != nil {
		return nil, err
	}

	a, err := w.resolver.For(kind)
	if err != nil {
		return nil, err
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	previous, err := a.ReadVersion(data)
	if err != nil {
		return nil, fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	result := &Result{
		Version:  version,
		Previous: previous,
		Path:     cfg.Path,
		Kind:     kind,
	}

	deferred, isDeferred := a.(accessor.Deferred)
	if opts.DryRun && isDeferred {
		// Nothing to compute without running the tool.
		return result, nil
	}

	updated, err := a.WriteVersion(data, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set version in %q: %w", cfg.Path, err)
	}
	result.Contents = updated

	if isDeferred {
		result.Pending = deferred
		return result, nil
	}

	if opts.DryRun || bytes.Equal(updated, data) {
		return result, nil
	}

	if err := w.fs.WriteFile(ctx, cfg.Path, updated, core.PermOwnerRW); err != nil {
		return nil, fmt.Errorf("failed to write file %q: %w", cfg.Path, err)
	}

	return result, nil
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a new ReadWriter sharing fs and resolver.
func NewReadWriter(fs core.FileSystem, resolver *Resolver) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs, resolver),
		Writer: NewWriter(fs, resolver),
	}
}
