/*
Package convert decodes images from disk, optionally resizes and reduces their
colors, and writes them out in XPM format, either one at a time or for a whole
directory tree.
*/
package convert

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/bodgit/xpm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Config controls how each image is prepared and encoded.
type Config struct {
	xpm.Options

	// Model selects the color channels written.
	Model xpm.Model
	// Colors, if non-zero, reduces the image to at most this many colors.
	Colors int
	// Width and Height, if non-zero, resize the image first.
	Width, Height int
}

type Converter struct {
	config Config
	logger *log.Logger
}

// New returns a Converter using config. Progress is written to logger.
func New(config Config, logger *log.Logger) *Converter {
	return &Converter{
		config: config,
		logger: logger,
	}
}

func decodeFile(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

// Marshal returns m prepared and encoded in XPM format.
func (c *Converter) Marshal(m image.Image) ([]byte, error) {
	opts := c.config.Options
	if opts.Transparent == nil {
		// Prepare discards the palette so look before
		opts.Transparent = xpm.TransparentColor(m, c.config.Model)
	}

	m = c.Prepare(m)

	return xpm.Marshal(xpm.NewImageSource(m, c.config.Model), &opts)
}

// EncodeFile decodes the image in file and writes it to w in XPM format.
func (c *Converter) EncodeFile(w io.Writer, file string) error {
	m, err := decodeFile(file)
	if err != nil {
		return err
	}

	b, err := c.Marshal(m)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
