package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/infracollect/emitter/internal/settings"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func (a *app) settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Load, validate and print the settings source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Value: settings.DefaultName,
				Usage: "Settings source `NAME`, looked up as NAME.yaml, NAME.yml or NAME.json",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory to look in (default: working directory)",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, command *cli.Command) error {
			logger := getLogger(ctx)

			dir := command.String("dir")
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				dir = wd
			}

			s, path, err := settings.Load(a.fs, dir, command.String("name"))
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", formatValidationError(err))
			}

			logger.Debug("settings loaded", zap.String("path", path))

			out, err := yaml.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}

			if _, err := command.Root().Writer.Write(out); err != nil {
				return fmt.Errorf("failed to print settings: %w", err)
			}
			return nil
		},
	}
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("settings have %d validation error(s):", len(validationErrs)))
		for _, fe := range validationErrs {
			sb.WriteString(fmt.Sprintf("\n  • %s: failed '%s' validation", fe.Namespace(), fe.Tag()))
			if fe.Param() != "" {
				sb.WriteString(fmt.Sprintf(" (param: %s)", fe.Param()))
			}
		}
		return errors.New(sb.String())
	}
	return err
}
