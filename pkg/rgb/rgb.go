// Package rgb provides the color type used for keypad LEDs and a few
// conversion helpers for building animations and picking colors from
// configuration.
package rgb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGB value as accepted by the LED drivers.
type Color struct {
	R, G, B uint8
}

// Off is the "LED off" color.
var Off = Color{}

var ErrInvalidHex = errors.New("invalid hex color")

// IsOff reports whether the color is black, which the keypad treats as
// "LED not lit".
func (c Color) IsOff() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromHSV converts an HSV color to RGB. All inputs are in the range
// 0.0-1.0; hue wraps around.
func FromHSV(h, s, v float64) Color {
	h = h - float64(int(h))
	if h < 0 {
		h++
	}
	r, g, b := colorful.Hsv(h*360, s, v).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// FromHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		// Short form: each digit doubles up.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
