// Package clix holds the plumbing shared by bumpfile commands: flag
// definitions, accessor resolution from configuration, and the write flow.
package clix

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/accessor/manifest"
	"github.com/indaco/bumpfile/internal/config"
	"github.com/indaco/bumpfile/internal/core"
	"github.com/indaco/bumpfile/internal/parser"
	"github.com/urfave/cli/v3"
)

// Env carries state shared by commands. Config is filled in by the root
// command's Before hook.
type Env struct {
	Config *config.Config
	FS     core.FileSystem
}

// FileConfig builds a parser.FileConfig from the first argument and the
// --kind flag.
func FileConfig(cmd *cli.Command) (parser.FileConfig, error) {
	path := cmd.Args().First()
	if path == "" {
		return parser.FileConfig{}, fmt.Errorf("missing file argument")
	}

	cfg := parser.FileConfig{Path: path}
	if k := cmd.String("kind"); k != "" {
		kind, ok := accessor.ParseKind(k)
		if !ok {
			return parser.FileConfig{}, fmt.Errorf("invalid --kind %q: expected %s, %s or %s",
				k, accessor.KindAction, accessor.KindManifest, accessor.KindPackage)
		}
		cfg.Kind = kind
	}
	return cfg, nil
}

// manifestMode returns --mode when given, else the configured mode.
func manifestMode(cmd *cli.Command, cfg *config.Config) string {
	if mode := cmd.String("mode"); mode != "" {
		return mode
	}
	if cfg != nil && cfg.Manifest != nil {
		return cfg.Manifest.Mode
	}
	return config.ModeEdit
}

// NewResolver returns the resolver for path. Manifests use a Delegate
// running in the manifest's directory when delegate mode is selected; its
// tool runs are bound to ctx.
func NewResolver(ctx context.Context, cmd *cli.Command, cfg *config.Config, path string) (*parser.Resolver, error) {
	resolver := parser.NewResolver()

	switch mode := manifestMode(cmd, cfg); mode {
	case config.ModeEdit:
		return resolver, nil
	case config.ModeDelegate:
		opts := []manifest.Option{
			manifest.WithContext(ctx),
			manifest.WithDir(filepath.Dir(path)),
		}
		if cfg != nil && cfg.Manifest != nil {
			timeout, err := cfg.Manifest.TimeoutDuration()
			if err != nil {
				return nil, err
			}
			opts = append(opts,
				manifest.WithCommand(cfg.Manifest.Command...),
				manifest.WithTimeout(timeout),
			)
		}
		return resolver.Register(accessor.KindManifest, manifest.NewDelegate(opts...)), nil
	default:
		return nil, fmt.Errorf("invalid manifest mode %q: expected %q or %q", mode, config.ModeEdit, config.ModeDelegate)
	}
}

// NewReadWriter wires a parser.ReadWriter for the file named by cmd.
func NewReadWriter(ctx context.Context, cmd *cli.Command, env *Env) (*parser.ReadWriter, parser.FileConfig, error) {
	fileCfg, err := FileConfig(cmd)
	if err != nil {
		return nil, parser.FileConfig{}, err
	}

	resolver, err := NewResolver(ctx, cmd, env.Config, fileCfg.Path)
	if err != nil {
		return nil, parser.FileConfig{}, err
	}

	fs := env.FS
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return parser.NewReadWriter(fs, resolver), fileCfg, nil
}

// ReadCurrent reads the current version of the file named by cmd.
func ReadCurrent(ctx context.Context, cmd *cli.Command, env *Env) (string, error) {
	rw, fileCfg, err := NewReadWriter(ctx, cmd, env)
	if err != nil {
		return "", err
	}
	return rw.ReadVersion(ctx, fileCfg)
}
