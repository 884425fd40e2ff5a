/*
Package xpm implements an XPM (X PixMap) image encoder.

An XPM image is valid C source declaring a static array of strings. The first
string holds the width, height, number of colors and the number of characters
used per pixel. It is followed by one string per color pairing a code with a
color value and finally one string per row of pixels where each pixel is
written as the code of its color.

Colors are ranked by how often they occur so the most common colors receive
the simplest codes, and the six most common colors are written using
distinctive punctuation so the image is recognisable when the raw text is
viewed.
*/
package xpm

import "errors"

const (
	header = "/* XPM */\n"
	footer = "};"

	// DefaultName is the variable name used when none is given.
	DefaultName = "picture"

	transparentToken = "None"
)

var (
	// ErrEmptyImage is returned when the image has no pixels.
	ErrEmptyImage = errors.New("xpm: empty image")
	// ErrUnsupportedArity is returned for a color that isn't gray, RGB or
	// RGBA.
	ErrUnsupportedArity = errors.New("xpm: unsupported number of color channels")
	// ErrInvalidIdentifier is returned when the variable name is not a
	// valid C identifier.
	ErrInvalidIdentifier = errors.New("xpm: invalid variable name")
	// ErrPaletteOverflow is returned when there are more colors than codes
	// of the chosen width.
	ErrPaletteOverflow = errors.New("xpm: too many colors for code width")

	errUnstableSource = errors.New("xpm: color missing from palette")
)
