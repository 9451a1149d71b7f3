package cmds

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/swatch/internal/logger"
	"github.com/telton/swatch/theme"
	"github.com/telton/swatch/ui"
)

func newShowCmd() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"s"},
		Usage:   "show a single theme",
		Description: `Show prints the colors of one theme: the stored channel list, its hex
value and its CSS rgb() form.

Unknown themes are an error unless --fallback is set, in which case the
default theme is shown instead.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "theme",
			},
		},
		Flags: []cli.Flag{
			formatFlag(),
			&cli.BoolFlag{
				Name:  "fallback",
				Usage: "Show the default theme when the requested one does not exist",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.StringArg("theme")
			if name == "" {
				return errors.New("missing required argument: <theme>")
			}

			t, err := theme.Find(name)
			if err != nil {
				if !c.Bool("fallback") {
					return err
				}
				logger.Warn("Theme not found, using default", "theme", name)
				name, t = theme.Default, theme.OrDefault(name)
			}

			w := c.Root().Writer
			outFmt := c.String("format")
			if outFmt != formatText {
				return encode(w, outFmt, newThemeEntry(name, t))
			}

			_, err = fmt.Fprintln(w, ui.NewSwatchRenderer().RenderTheme(name, t))
			return err
		},
	}
}
