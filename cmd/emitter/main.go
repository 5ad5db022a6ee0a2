package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/infracollect/emitter/internal/engine"
	"github.com/infracollect/emitter/internal/runner"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "emitter"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, afero.NewOsFs()))
}

// app holds the process resources shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	logger *zap.Logger
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	a := &app{stdout: stdout, stderr: stderr, fs: fs}

	err := a.command().Run(ctx, args)

	if a.logger != nil {
		defer func() {
			_ = a.logger.Sync()
		}()
	}

	if err == nil {
		return exitOK
	}

	a.report(err)

	var usageErr *engine.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "Write a hello world payload as text, JSON or CSV",
		UsageText: appName + " [-o PATH] [-f text|json|csv]",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the payload to `PATH` instead of standard output",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(engine.DefaultFormat),
				Usage:   "Payload format (text, json, csv)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "warn",
				Usage:   "Log Level (debug, info, warn, error)",
				Sources: cli.EnvVars("EMITTER_LOG_LEVEL"),
				Action: func(ctx context.Context, command *cli.Command, s string) error {
					_, err := zapcore.ParseLevel(s)
					if err != nil {
						return &engine.UsageError{Err: fmt.Errorf("invalid log level %s: %w", s, err)}
					}
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			versionCommand,
			a.settingsCommand(),
			a.rectangleCommand(),
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger, _, err := createLogger(command.Bool("debug"), command.String("log-level"), a.stderr, isInteractiveEnvironment(a.stderr))
			if err != nil {
				return ctx, &engine.UsageError{Err: err}
			}

			logger.Debug("logger created", zap.String("log_level", command.String("log-level")))
			a.logger = logger

			return withLogger(ctx, logger), nil
		},
		OnUsageError: onUsageError,
		Action:       a.emit,
	}
}

// emit is the root action: parse the request, then build and write the payload.
func (a *app) emit(ctx context.Context, command *cli.Command) error {
	logger := getLogger(ctx)

	if command.Args().Present() {
		return &engine.UsageError{Err: fmt.Errorf("unexpected argument %q", command.Args().First())}
	}

	request, err := engine.NewRequest(command.String("output"), command.IsSet("output"), command.String("format"))
	if err != nil {
		return err
	}

	r, err := runner.New(logger.Named("runner"), request, runner.Config{
		Stdout: a.stdout,
		Fs:     a.fs,
	})
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	return r.Run(ctx)
}

// report writes err to stderr. Usage errors get plain text and a pointer to
// --help; everything else goes through the logger once it exists.
func (a *app) report(err error) {
	var usageErr *engine.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(a.stderr, "Error: %v\nRun '%s --help' for usage.\n", usageErr, appName)
		return
	}

	if a.logger != nil {
		a.logger.Error("failed to run application", zap.Error(err))
		return
	}

	fmt.Fprintf(a.stderr, "failed to run application: %v\n", err)
}

func onUsageError(ctx context.Context, command *cli.Command, err error, isSubcommand bool) error {
	return &engine.UsageError{Err: err}
}
