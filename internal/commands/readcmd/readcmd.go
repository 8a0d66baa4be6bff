package readcmd

import (
	"context"

	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/printer"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

// Run returns the "read" command.
func Run(env *clix.Env) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Print the version stored in a file",
		UsageText: "bumpfile read <file> [--kind kind] [--json]",
		Flags: []cli.Flag{
			clix.KindFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print path, kind and version as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRead(ctx, cmd, env)
		},
	}
}

func runRead(ctx context.Context, cmd *cli.Command, env *clix.Env) error {
	rw, fileCfg, err := clix.NewReadWriter(ctx, cmd, env)
	if err != nil {
		return err
	}

	result, err := rw.Read(ctx, fileCfg)
	if err != nil {
		return err
	}

	if !cmd.Bool("json") {
		printer.Plain(result.Version)
		return nil
	}

	out := "{}"
	for _, kv := range [][2]string{
		{"path", result.Path},
		{"kind", result.Kind.String()},
		{"version", result.Version},
	} {
		if out, err = sjson.Set(out, kv[0], kv[1]); err != nil {
			return err
		}
	}
	printer.Plain(out)
	return nil
}
