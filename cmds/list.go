package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/swatch/internal/logger"
	"github.com/telton/swatch/theme"
	"github.com/telton/swatch/ui"
)

func newListCmd() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Aliases:     []string{"ls"},
		Usage:       "list all built-in themes",
		Description: `List prints every registered theme with its colors, default first.`,
		Flags: []cli.Flag{
			formatFlag(),
			&cli.BoolFlag{
				Name:  "pretty-print",
				Usage: "Enable pretty-print formatting",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			outFmt := c.String("format")
			prettyPrint := c.Bool("pretty-print")
			w := c.Root().Writer

			names := theme.Names()
			logger.Debug("Listing themes", "count", len(names), "format", outFmt, "pretty_print", prettyPrint)

			if outFmt != formatText {
				entries := make([]themeEntry, 0, len(names))
				for _, name := range names {
					entries = append(entries, newThemeEntry(name, theme.Get(name)))
				}
				return encode(w, outFmt, entries)
			}

			if prettyPrint {
				_, err := fmt.Fprintln(w, ui.NewHeader("Available Themes").WithMargin().Render()+"\n"+
					ui.NewSwatchRenderer().RenderIndex(names))
				return err
			}

			for _, name := range names {
				t := theme.Get(name)
				fmt.Fprintf(w, "%s: primaryColor=%q primaryTextColor=%q\n", name, t.PrimaryColor, t.PrimaryTextColor)
			}
			return nil
		},
	}
}
