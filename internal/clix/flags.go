package clix

import (
	"github.com/indaco/bumpfile/internal/config"
	"github.com/urfave/cli/v3"
)

// KindFlag overrides file kind detection.
func KindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "File kind: action, manifest or package (detected from the extension by default)",
	}
}

// WriteFlags are shared by commands that change a version.
func WriteFlags() []cli.Flag {
	return []cli.Flag{
		KindFlag(),
		&cli.StringFlag{
			Name:  "mode",
			Usage: "Manifest write mode: " + config.ModeEdit + " or " + config.ModeDelegate + " (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the updated contents instead of writing them",
		},
	}
}
