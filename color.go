package xpm

import "fmt"

// Color is a single pixel value with either one (gray), three (RGB) or four
// (RGBA) 8-bit channels. Colors are comparable; two colors with the same
// channels are the same palette entry. The zero Color has no channels and
// is rejected by the encoder.
type Color struct {
	n int
	c [4]uint8
}

// Gray returns a single channel color.
func Gray(y uint8) Color {
	return Color{n: 1, c: [4]uint8{y}}
}

// RGB returns a three channel color.
func RGB(r, g, b uint8) Color {
	return Color{n: 3, c: [4]uint8{r, g, b}}
}

// RGBA returns a four channel color. The alpha channel is not premultiplied.
func RGBA(r, g, b, a uint8) Color {
	return Color{n: 4, c: [4]uint8{r, g, b, a}}
}

// NewColor returns a color from the given channels which must number one,
// three or four.
func NewColor(channels ...uint8) (Color, error) {
	switch len(channels) {
	case 1, 3, 4:
		c := Color{n: len(channels)}
		copy(c.c[:], channels)
		return c, nil
	default:
		return Color{}, fmt.Errorf("%w: %d", ErrUnsupportedArity, len(channels))
	}
}

// Channels returns the channel values of c.
func (c Color) Channels() []uint8 {
	return append([]uint8(nil), c.c[:c.n]...)
}

func (c Color) validate() error {
	switch c.n {
	case 1, 3, 4:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedArity, c.n)
	}
}

// FormatColor returns the color table value for c. The transparent color, if
// any, is written as None. Otherwise gray is written as #yy, RGB as #rrggbb
// and RGBA as #aarrggbb with the alpha channel first, optionally complemented
// when inverseAlpha is set.
func FormatColor(c Color, transparent *Color, inverseAlpha bool) (string, error) {
	if transparent != nil && c == *transparent {
		return transparentToken, nil
	}

	switch c.n {
	case 1:
		return fmt.Sprintf("#%02x", c.c[0]), nil
	case 3:
		return fmt.Sprintf("#%02x%02x%02x", c.c[0], c.c[1], c.c[2]), nil
	case 4:
		a := c.c[3]
		if inverseAlpha {
			a = 0xff - a
		}
		return fmt.Sprintf("#%02x%02x%02x%02x", a, c.c[0], c.c[1], c.c[2]), nil
	}

	return "", c.validate()
}
