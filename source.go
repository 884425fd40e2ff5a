package xpm

import (
	"image"
	"image/color"
)

// Source is a grid of pixels to be encoded. At must return a color for every
// point within Bounds and must return the same color each time it is asked.
type Source interface {
	Bounds() image.Rectangle
	At(x, y int) Color
}

// Model determines how the pixels of an image.Image are converted to colors.
type Model int

const (
	// ModelRGBA converts pixels to non-premultiplied four channel colors.
	ModelRGBA Model = iota
	// ModelRGB converts pixels to three channel colors, discarding alpha.
	ModelRGB
	// ModelGray converts pixels to single channel colors.
	ModelGray
)

// Convert returns c converted to the model.
func (m Model) Convert(c color.Color) Color {
	switch m {
	case ModelGray:
		g := color.GrayModel.Convert(c).(color.Gray)
		return Gray(g.Y)
	case ModelRGB:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return RGB(n.R, n.G, n.B)
	default:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return RGBA(n.R, n.G, n.B, n.A)
	}
}

type imageSource struct {
	m     image.Image
	model Model
}

// NewImageSource returns a Source reading the pixels of m through model.
func NewImageSource(m image.Image, model Model) Source {
	return &imageSource{
		m:     m,
		model: model,
	}
}

func (s *imageSource) Bounds() image.Rectangle {
	return s.m.Bounds()
}

func (s *imageSource) At(x, y int) Color {
	return s.model.Convert(s.m.At(x, y))
}

// TransparentColor returns the color used for transparency by a paletted
// image such as a GIF, which is the first palette entry that is fully
// transparent. It returns nil if m has no palette, there is no such entry,
// or the model discards alpha.
func TransparentColor(m image.Image, model Model) *Color {
	if model != ModelRGBA {
		return nil
	}

	p, ok := m.ColorModel().(color.Palette)
	if !ok {
		return nil
	}

	for _, c := range p {
		if _, _, _, a := c.RGBA(); a == 0 {
			t := model.Convert(c)
			return &t
		}
	}

	return nil
}
