package convert

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
)

func resize(m image.Image, width, height int) image.Image {
	g := gift.New(gift.Resize(width, height, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}

func reduce(m image.Image, colors int) image.Image {
	b := m.Bounds()

	// Already few enough colors
	if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= colors {
		return m
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// Prepare returns m resized and color reduced according to the
// configuration. If neither is configured m is returned unchanged.
func (c *Converter) Prepare(m image.Image) image.Image {
	if c.config.Width > 0 || c.config.Height > 0 {
		m = resize(m, c.config.Width, c.config.Height)
	}
	if c.config.Colors > 0 {
		m = reduce(m, c.config.Colors)
	}
	return m
}
