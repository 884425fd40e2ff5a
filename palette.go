package xpm

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Palette is the set of distinct colors in an image along with the code
// assigned to each.
type Palette struct {
	// Colors holds every distinct color, most frequent first. Colors that
	// occur equally often are in the order they were first seen scanning
	// the image row by row.
	Colors []Color
	// Codes maps each color to its code.
	Codes map[Color]string
	// Width is the number of characters in every code.
	Width int
}

type tally struct {
	order  []Color
	counts map[Color]int
}

func newTally() *tally {
	return &tally{
		counts: make(map[Color]int),
	}
}

func (t *tally) add(c Color, n int) {
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c] += n
}

// Merge the counts from o which must cover rows after those already counted
func (t *tally) merge(o *tally) {
	for _, c := range o.order {
		t.add(c, o.counts[c])
	}
}

// Split r into at most n bands of whole rows
func bands(r image.Rectangle, n int) []image.Rectangle {
	if n < 1 {
		n = 1
	}
	if h := r.Dy(); n > h {
		n = h
	}

	b := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, image.Rect(r.Min.X, r.Min.Y+r.Dy()*i/n, r.Max.X, r.Min.Y+r.Dy()*(i+1)/n))
	}
	return b
}

func countColors(s Source, r image.Rectangle) (*tally, error) {
	t := newTally()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := s.At(x, y)
			if err := c.validate(); err != nil {
				return nil, fmt.Errorf("%w at (%d, %d)", err, x, y)
			}
			t.add(c, 1)
		}
	}
	return t, nil
}

// Count each band in parallel, merging the results in band order so the
// outcome is identical to a single pass
func countParallel(s Source, r image.Rectangle, workers int) (*tally, error) {
	b := bands(r, workers)
	if len(b) == 1 {
		return countColors(s, r)
	}

	tallies := make([]*tally, len(b))
	errs := make([]error, len(b))

	var g errgroup.Group
	for i := range b {
		i := i
		g.Go(func() error {
			tallies[i], errs[i] = countColors(s, b[i])
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		// Report the first failure in scan order
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	for _, t := range tallies[1:] {
		tallies[0].merge(t)
	}
	return tallies[0], nil
}

// BuildPalette counts the colors in s, ranks them by frequency and assigns
// each one a code. The six highest ranked colors are given codes spelt with
// a single repeated symbol. If transparent is present in the image it is
// ranked first for this purpose. Counting is split across up to workers
// goroutines.
func BuildPalette(s Source, transparent *Color, workers int) (*Palette, error) {
	r := s.Bounds()
	if r.Empty() {
		return nil, ErrEmptyImage
	}

	t, err := countParallel(s, r, workers)
	if err != nil {
		return nil, err
	}
	if len(t.order) == 0 {
		return nil, ErrEmptyImage
	}

	sort.SliceStable(t.order, func(i, j int) bool {
		return t.counts[t.order[i]] > t.counts[t.order[j]]
	})

	p := &Palette{
		Colors: t.order,
		Codes:  make(map[Color]string, len(t.order)),
		Width:  codeWidth(len(t.order)),
	}

	next := Codes(p.Width)
	for _, c := range p.Colors {
		code, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: %d colors, width %d", ErrPaletteOverflow, len(p.Colors), p.Width)
		}
		p.Codes[c] = code
	}

	p.prettify(transparent)

	return p, nil
}

func (p *Palette) prettify(transparent *Color) {
	candidates := make([]Color, 0, len(prettyNames))

	if transparent != nil {
		if _, ok := p.Codes[*transparent]; ok {
			candidates = append(candidates, *transparent)
		}
	}

	for _, c := range p.Colors {
		if len(candidates) == len(prettyNames) {
			break
		}
		if transparent != nil && c == *transparent {
			continue
		}
		candidates = append(candidates, c)
	}

	for i, c := range candidates {
		p.Codes[c] = strings.Repeat(prettyNames[i:i+1], p.Width)
	}
}
