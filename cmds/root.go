package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/swatch/internal/logger"
)

// Output formats shared by list and show.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "swatch",
		Usage: "inspect the built-in color themes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   string(logger.LevelInfo),
				Sources: cli.EnvVars("SWATCH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("SWATCH_LOG_FORMAT"),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger.Setup(&logger.Config{
				Level:  logger.ParseLevelFromString(c.String("log-level")),
				Format: c.String("log-format"),
				Output: c.Root().ErrWriter,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			newListCmd(),
			newShowCmd(),
			newVersionCmd(),
		},
	}
}

// Execute runs the swatch command line.
func Execute(ctx context.Context, args []string) error {
	return newRootCmd().Run(ctx, args)
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "The output format (text, json, yaml)",
		Value:   formatText,
		Validator: func(s string) error {
			switch s {
			case formatText, formatJSON, formatYAML:
				return nil
			}
			return fmt.Errorf("unknown format value: %s", s)
		},
	}
}
