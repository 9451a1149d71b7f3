package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned when a Color does not hold three channel
// values in [0, 255].
var ErrMalformedColor = errors.New("malformed color")

// RGB decodes the channel list. Whitespace around each channel is ignored.
func (c Color) RGB() (RGB, error) {
	parts := strings.Split(string(c), ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q: want 3 channels, got %d", ErrMalformedColor, string(c), len(parts))
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: channel %d: %w", ErrMalformedColor, string(c), i, err)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// CSS returns the color as a CSS rgb() expression around the stored list.
func (c Color) CSS() string {
	return "rgb(" + string(c) + ")"
}

// Colorful decodes the color into a go-colorful value.
func (c Color) Colorful() (colorful.Color, error) {
	rgb, err := c.RGB()
	if err != nil {
		return colorful.Color{}, err
	}
	return rgb.Colorful(), nil
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() (string, error) {
	cf, err := c.Colorful()
	if err != nil {
		return "", err
	}
	return cf.Hex(), nil
}

// Colorful converts the triplet to a go-colorful value.
func (rgb RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}

func (rgb RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", rgb.R, rgb.G, rgb.B)
}
