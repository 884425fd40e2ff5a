package xpm

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Options are the encoding parameters.
type Options struct {
	// Name is the C identifier of the emitted array, DefaultName if empty.
	Name string
	// InverseAlpha complements the alpha channel of RGBA colors.
	InverseAlpha bool
	// Transparent is written as None in the color table.
	Transparent *Color
	// Workers is the number of goroutines used to scan the image. Values
	// less than two scan sequentially.
	Workers int
}

func (o *Options) name() string {
	if o.Name == "" {
		return DefaultName
	}
	return o.Name
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ValidName reports whether s is a bare ASCII C identifier.
func ValidName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

type encoder struct {
	s Source
	o *Options
	p *Palette
}

func (e *encoder) writeInfo(b *bytes.Buffer) {
	r := e.s.Bounds()
	fmt.Fprintf(b, "\"%d %d %d %d\"", r.Dx(), r.Dy(), len(e.p.Colors), e.p.Width)
}

func (e *encoder) writeColorTable(b *bytes.Buffer) error {
	for _, c := range e.p.Colors {
		token, err := FormatColor(c, e.o.Transparent, e.o.InverseAlpha)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, ",\n\"%s\tc %s\"", e.p.Codes[c], token)
	}
	return nil
}

func (e *encoder) renderRows(r image.Rectangle, rows []string) error {
	var sb strings.Builder
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sb.Reset()
		sb.Grow(r.Dx()*e.p.Width + 2)
		sb.WriteByte('"')
		for x := r.Min.X; x < r.Max.X; x++ {
			code, ok := e.p.Codes[e.s.At(x, y)]
			if !ok {
				return fmt.Errorf("%w at (%d, %d)", errUnstableSource, x, y)
			}
			sb.WriteString(code)
		}
		sb.WriteByte('"')
		rows[y-r.Min.Y] = sb.String()
	}
	return nil
}

func (e *encoder) writePixels(b *bytes.Buffer) error {
	r := e.s.Bounds()
	rows := make([]string, r.Dy())

	var g errgroup.Group
	for _, band := range bands(r, e.o.Workers) {
		band := band
		g.Go(func() error {
			return e.renderRows(band, rows[band.Min.Y-r.Min.Y:band.Max.Y-r.Min.Y])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, row := range rows {
		b.WriteString(",\n")
		b.WriteString(row)
	}
	return nil
}

func (e *encoder) encode(b *bytes.Buffer) error {
	var err error
	if e.p, err = BuildPalette(e.s, e.o.Transparent, e.o.Workers); err != nil {
		return err
	}

	b.WriteString(header)
	fmt.Fprintf(b, "static char* %s[] = {\n", e.o.name())

	e.writeInfo(b)
	if err := e.writeColorTable(b); err != nil {
		return err
	}
	if err := e.writePixels(b); err != nil {
		return err
	}

	b.WriteString("\n")
	b.WriteString(footer)

	return nil
}

// Marshal returns the XPM encoding of s. If o is nil the default options are
// used.
func Marshal(s Source, o *Options) ([]byte, error) {
	if o == nil {
		o = &Options{}
	}
	if !ValidName(o.name()) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, o.Name)
	}

	e := encoder{s: s, o: o}

	var b bytes.Buffer
	if err := e.encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodeSource writes s to w in XPM format. Nothing is written if s cannot
// be encoded.
func EncodeSource(w io.Writer, s Source, o *Options) error {
	b, err := Marshal(s, o)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Encode writes the Image m to w in XPM format using four channel colors. If
// no transparent color is given in o and m is paletted, the palette's fully
// transparent color is used.
func Encode(w io.Writer, m image.Image, o *Options) error {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Transparent == nil {
		opts.Transparent = TransparentColor(m, ModelRGBA)
	}
	return EncodeSource(w, NewImageSource(m, ModelRGBA), &opts)
}
