package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/commands/bumpcmd"
	"github.com/indaco/bumpfile/internal/commands/readcmd"
	"github.com/indaco/bumpfile/internal/commands/writecmd"
	"github.com/indaco/bumpfile/internal/config"
	"github.com/indaco/bumpfile/internal/printer"
	"github.com/indaco/bumpfile/internal/tui"
	"github.com/indaco/bumpfile/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds the root command. Configuration is loaded in the Before hook
// so that --config is honored, and stored in env for the subcommands.
func New(env *clix.Env) *urfavecli.Command {
	var (
		noColor    bool
		configPath string
	)

	return &urfavecli.Command{
		Name:                  "bumpfile",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Read and write versions in action descriptors and package manifests",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to configuration file",
				DefaultText: config.DefaultConfigFile,
				Destination: &configPath,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)

			cfg, err := config.LoadConfigFn(configPath)
			if err != nil {
				return ctx, err
			}
			if err := config.FirstError(config.Validate(cfg)); err != nil {
				return ctx, fmt.Errorf("invalid configuration: %w", err)
			}
			if cfg.Theme != "" && !tui.IsValidTheme(cfg.Theme) {
				printer.PrintWarning(fmt.Sprintf("Unknown theme %q, using default (available: %s)",
					cfg.Theme, strings.Join(tui.ThemeNames(), ", ")))
			}
			tui.SetTheme(cfg.Theme)

			env.Config = cfg
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			readcmd.Run(env),
			writecmd.Run(env),
			bumpcmd.Run(env),
		},
	}
}
