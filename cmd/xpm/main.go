package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/xpm"
	"github.com/bodgit/xpm/convert"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var encodeFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "variable-name",
		Aliases: []string{"n"},
		EnvVars: []string{"XPM_VARIABLE_NAME"},
		Value:   xpm.DefaultName,
		Usage:   "name of the C variable holding the image",
	},
	&cli.BoolFlag{
		Name:    "inverse-alpha",
		Aliases: []string{"i"},
		Usage:   "write alpha as 255 minus its value",
	},
	&cli.BoolFlag{
		Name:  "gray",
		Usage: "write grayscale colors",
	},
	&cli.IntFlag{
		Name:  "colors",
		Usage: "reduce the image to at most this many colors",
	},
	&cli.StringFlag{
		Name:  "resize",
		Usage: "resize the image to `WxH` first, either may be 0 to preserve the aspect ratio",
	},
}

func newConverter(c *cli.Context) (*convert.Converter, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	config := convert.Config{
		Options: xpm.Options{
			Name:         c.String("variable-name"),
			InverseAlpha: c.Bool("inverse-alpha"),
		},
		Colors: c.Int("colors"),
	}

	if !xpm.ValidName(config.Name) {
		return nil, fmt.Errorf("%w: %q", xpm.ErrInvalidIdentifier, config.Name)
	}

	if c.Bool("gray") {
		config.Model = xpm.ModelGray
	}

	if s := c.String("resize"); s != "" {
		if _, err := fmt.Sscanf(s, "%dx%d", &config.Width, &config.Height); err != nil || config.Width < 0 || config.Height < 0 {
			return nil, fmt.Errorf("invalid size %q", s)
		}
	}

	return convert.New(config, logger), nil
}

func main() {
	app := cli.NewApp()

	app.Name = "xpm"
	app.Usage = "XPM image conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Write an image to stdout in XPM format",
			Description: "",
			ArgsUsage:   "FILE",
			Flags:       encodeFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := m.EncodeFile(os.Stdout, c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert every image beneath a directory to XPM format",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of images to convert at once",
				},
			}, encodeFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := m.Scan(c.Args().First(), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
