package writecmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/tui"
	"github.com/urfave/cli/v3"
)

// promptVersion is replaced in tests.
var promptVersion = tui.PromptVersion

// Run returns the "write" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Set the version stored in a file",
		UsageText: "bumpfile write <file> [version] [--kind kind] [--mode edit|delegate] [--dry-run]",
		Flags:     clix.WriteFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWrite(ctx, cmd, env)
		},
	}
}

func runWrite(ctx context.Context, cmd *cli.Command, env *clix.Env) error {
	version := cmd.Args().Get(1)
	if version == "" {
		current, err := clix.ReadCurrent(ctx, cmd, env)
		if err != nil {
			return err
		}

		version, err = promptVersion(cmd.Args().First(), current)
		if err != nil {
			if errors.Is(err, tui.ErrNotInteractive) {
				return fmt.Errorf("missing version argument")
			}
			return err
		}
	}

	return clix.Apply(ctx, cmd, env, version)
}
