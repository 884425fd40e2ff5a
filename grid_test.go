package xpm

import "image"

// grid is a Source backed by a slice of colors in row-major order
type grid struct {
	r   image.Rectangle
	pix []Color
}

func newGrid(w, h int, pix ...Color) *grid {
	return &grid{r: image.Rect(0, 0, w, h), pix: pix}
}

func (g *grid) Bounds() image.Rectangle {
	return g.r
}

func (g *grid) At(x, y int) Color {
	return g.pix[(y-g.r.Min.Y)*g.r.Dx()+x-g.r.Min.X]
}
