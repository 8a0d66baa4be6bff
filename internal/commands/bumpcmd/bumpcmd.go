package bumpcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "bump" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump the version stored in a file (" + strings.Join(semver.Labels, ", ") + ")",
		UsageText: "bumpfile bump <file> <label> [--kind kind] [--mode edit|delegate] [--dry-run]",
		Flags:     clix.WriteFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBump(ctx, cmd, env)
		},
	}
}

func runBump(ctx context.Context, cmd *cli.Command, env *clix.Env) error {
	label := cmd.Args().Get(1)
	if label == "" {
		return fmt.Errorf("missing bump label: expected one of %s", strings.Join(semver.Labels, ", "))
	}

	current, err := clix.ReadCurrent(ctx, cmd, env)
	if err != nil {
		return err
	}

	parsed, err := semver.ParseVersion(current)
	if err != nil {
		return fmt.Errorf("cannot bump %q: %w", current, err)
	}

	next, err := semver.Bump(parsed, label)
	if err != nil {
		return err
	}

	return clix.Apply(ctx, cmd, env, next.String())
}
