package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/indaco/bumpfile/internal/cli"
	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/core"
	"github.com/indaco/bumpfile/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &clix.Env{FS: core.NewOSFileSystem()}
	return cli.New(env).Run(ctx, args)
}
