// Package main provides the stride CLI for inspecting the library's
// kernels and host capabilities.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/stride-ml/stride/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "stride",
		Usage: "Elementwise array library CLI",
		Flags: loggingFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log, err := buildLogger()
			if err != nil {
				return ctx, err
			}
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			versionCmd(),
			infoCmd(),
			opsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLogger resolves the logging flags into a Logger.
func buildLogger() (logger.Logger, error) {
	if debug {
		logLevel = "debug"
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	if logFormat == "json" {
		return logger.JSON(os.Stderr, level), nil
	}
	return logger.Text(os.Stderr, level), nil
}
