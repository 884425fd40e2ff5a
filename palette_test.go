package xpm

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red        = RGBA(0xff, 0, 0, 0xff)
	green      = RGBA(0, 0xff, 0, 0xff)
	blue       = RGBA(0, 0, 0xff, 0xff)
	clearColor = RGBA(0, 0, 0, 0)
)

// Image with n distinct colors where color i occurs n-i times
func rankedGrid(n int) *grid {
	var pix []Color
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			pix = append(pix, RGBA(uint8(i), uint8(i>>8), 0, 0xff))
		}
	}
	return newGrid(len(pix), 1, pix...)
}

func TestBuildPaletteFrequency(t *testing.T) {
	g := newGrid(3, 2,
		red, blue, blue,
		green, blue, green,
	)

	p, err := BuildPalette(g, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, []Color{blue, green, red}, p.Colors)
	assert.Equal(t, 1, p.Width)
	assert.Equal(t, map[Color]string{blue: " ", green: "X", red: "+"}, p.Codes)
}

func TestBuildPaletteTies(t *testing.T) {
	g := newGrid(2, 2,
		green, red,
		blue, red,
	)

	p, err := BuildPalette(g, nil, 1)
	require.NoError(t, err)

	// Equal counts keep the order first seen scanning row by row
	assert.Equal(t, []Color{red, green, blue}, p.Colors)
}

func TestBuildPaletteCodes(t *testing.T) {
	p, err := BuildPalette(rankedGrid(8), nil, 1)
	require.NoError(t, err)

	want := []string{" ", "X", "+", ".", "|", "/", "6", "7"}
	for i, c := range p.Colors {
		assert.Equal(t, want[i], p.Codes[c])
	}
}

func TestBuildPaletteWidth(t *testing.T) {
	p, err := BuildPalette(rankedGrid(40), nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Width)
	assert.Len(t, p.Colors, 40)
	assert.Equal(t, "  ", p.Codes[p.Colors[0]])
	assert.Equal(t, "//", p.Codes[p.Colors[5]])
	assert.Equal(t, "06", p.Codes[p.Colors[6]])
	assert.Equal(t, "13", p.Codes[p.Colors[39]])

	seen := make(map[string]struct{})
	for _, c := range p.Colors {
		assert.Len(t, p.Codes[c], 2)
		seen[p.Codes[c]] = struct{}{}
	}
	assert.Len(t, seen, 40)
}

func TestBuildPaletteTransparent(t *testing.T) {
	g := newGrid(4, 2,
		red, red, red, red,
		red, green, green, clearColor,
	)

	p, err := BuildPalette(g, &clearColor, 1)
	require.NoError(t, err)

	assert.Equal(t, []Color{red, green, clearColor}, p.Colors)
	assert.Equal(t, map[Color]string{clearColor: " ", red: "X", green: "+"}, p.Codes)
}

func TestBuildPaletteTransparentDisplaces(t *testing.T) {
	g := rankedGrid(7)
	transparent := g.pix[len(g.pix)-1]

	p, err := BuildPalette(g, &transparent, 1)
	require.NoError(t, err)

	assert.Equal(t, " ", p.Codes[transparent])
	assert.Equal(t, "X", p.Codes[p.Colors[0]])
	assert.Equal(t, "/", p.Codes[p.Colors[4]])
	assert.Equal(t, "5", p.Codes[p.Colors[5]])
}

func TestBuildPaletteTransparentAbsent(t *testing.T) {
	g := newGrid(2, 1, red, green)

	p, err := BuildPalette(g, &clearColor, 1)
	require.NoError(t, err)

	assert.Equal(t, map[Color]string{red: " ", green: "X"}, p.Codes)
}

func TestBuildPaletteParallel(t *testing.T) {
	var pix []Color
	for i := 0; i < 64*48; i++ {
		pix = append(pix, RGB(uint8(i*7%23), uint8(i*13%31), uint8(i%5)))
	}
	g := newGrid(64, 48, pix...)

	want, err := BuildPalette(g, nil, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 100} {
		got, err := BuildPalette(g, nil, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%d workers", workers)
	}
}

func TestBuildPaletteErrors(t *testing.T) {
	_, err := BuildPalette(newGrid(0, 5), nil, 1)
	assert.Equal(t, ErrEmptyImage, err)

	_, err = BuildPalette(newGrid(5, 0), nil, 1)
	assert.Equal(t, ErrEmptyImage, err)

	_, err = BuildPalette(newGrid(2, 1, red, Color{}), nil, 1)
	assert.True(t, errors.Is(err, ErrUnsupportedArity))

	_, err = BuildPalette(newGrid(2, 2, red, red, red, Color{}), nil, 2)
	assert.True(t, errors.Is(err, ErrUnsupportedArity))
}

func TestBands(t *testing.T) {
	r := image.Rect(0, 10, 4, 15)

	assert.Equal(t, []image.Rectangle{r}, bands(r, 0))
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 10, 4, 12),
		image.Rect(0, 12, 4, 15),
	}, bands(r, 2))
	assert.Len(t, bands(r, 10), 5)
}
