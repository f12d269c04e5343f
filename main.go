package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/takaishi/minigrep/app"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/logger"
)

const (
	configStage = "get config error"
	runStage    = "run error"
)

// Settings that are not part of the search itself come from the environment,
// so every command-line argument stays positional.
const (
	envFileEnv   = "MINIGREP_ENV_FILE"
	verboseEnv   = "MINIGREP_VERBOSE"
	logFormatEnv = "MINIGREP_LOG_FORMAT"
)

// stageError tags an error with the step of the invocation that failed
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return e.stage + ": " + e.err.Error() }

func (e *stageError) Unwrap() error { return e.err }

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var se *stageError
		if !errors.As(err, &se) {
			err = &stageError{stage: configStage, err: err}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "minigrep",
		Usage:     "print the lines of a file that contain a query",
		ArgsUsage: "<query> <file_path>",
		Description: "Matching is case-sensitive unless " + config.IgnoreCaseEnv + " is set to 1. " +
			envFileEnv + " names a dotenv file for variables missing from the environment, " +
			verboseEnv + "=1 enables debug logs on stderr and " + logFormatEnv + " selects text or json.",
		Writer:    stdout,
		ErrWriter: stderr,
		// queries such as "help", "-h" or "--verbose" are searched for like any other text
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logCfg := logger.DefaultConfig()
			logCfg.Output = stderr
			if os.Getenv(verboseEnv) == "1" {
				logCfg.Level = slog.LevelDebug
			}
			if format := os.Getenv(logFormatEnv); format != "" {
				logCfg.Format = format
			}
			logger.New(logCfg)

			args := append([]string{cmd.Name}, cmd.Args().Slice()...)
			cfg, err := config.Build(args, config.DotenvLookup(os.Getenv(envFileEnv)))
			if err != nil {
				return &stageError{stage: configStage, err: err}
			}
			slog.Debug("config resolved", "query", cfg.Query, "file_path", cfg.FilePath, "ignore_case", cfg.IgnoreCase)

			if err := app.Run(cfg, stdout); err != nil {
				return &stageError{stage: runStage, err: err}
			}
			return nil
		},
	}
}
