package clix

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/parser"
	"github.com/indaco/bumpfile/internal/printer"
	"github.com/indaco/bumpfile/internal/semver"
	"github.com/indaco/bumpfile/internal/tui"
	"github.com/urfave/cli/v3"
)

// waitWithSpinner is replaced in tests.
var waitWithSpinner = tui.WithSpinner

// Apply writes version to the file named by cmd and reports the outcome.
// Delegated writes are awaited before returning so that a failure of the
// external tool becomes the command's error.
func Apply(ctx context.Context, cmd *cli.Command, env *Env, version string) error {
	rw, fileCfg, err := NewReadWriter(ctx, cmd, env)
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	result, err := rw.Write(ctx, fileCfg, version, parser.WriteOptions{DryRun: dryRun})
	if err != nil {
		return err
	}

	warnIfLower(result.Previous, version)

	if dryRun {
		if len(result.Contents) > 0 {
			printer.Plain(strings.TrimRight(string(result.Contents), "\n"))
		}
		printer.PrintFaint(fmt.Sprintf("Dry run: %s would change from %s to %s", result.Path, result.Previous, version))
		return nil
	}

	if result.Pending != nil {
		title := fmt.Sprintf("Setting %s to %s", result.Path, version)
		if err := waitWithSpinner(title, result.Pending.Wait); err != nil {
			return fmt.Errorf("failed to update %q: %w", result.Path, err)
		}

		got, err := rw.ReadVersion(ctx, fileCfg)
		if err != nil {
			return fmt.Errorf("failed to verify %q: %w", result.Path, err)
		}
		if got != version {
			return fmt.Errorf("%w: %s is at %s after the tool finished, expected %s",
				accessor.ErrExternalTool, result.Path, got, version)
		}
	}

	if result.Previous == version {
		printer.PrintInfo(fmt.Sprintf("%s already at %s", result.Path, version))
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("Updated %s from %s to %s", result.Path, result.Previous, version))
	return nil
}

// warnIfLower prints a warning when both versions parse and next sorts
// below previous.
func warnIfLower(previous, next string) {
	prev, err := semver.ParseVersion(previous)
	if err != nil {
		return
	}
	nv, err := semver.ParseVersion(next)
	if err != nil {
		return
	}
	if nv.Compare(prev) < 0 {
		printer.PrintWarning(fmt.Sprintf("New version %s is lower than current version %s", next, previous))
	}
}
