package main

import (
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/retile"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const defaultTileSize = "8x8"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// parseSize parses a "WxH" pair such as "16x16".
func parseSize(s string) (image.Point, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return image.Point{}, fmt.Errorf("invalid size %q, expected WxH", s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid width %q", parts[0])
	}

	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid height %q", parts[1])
	}

	return image.Point{X: w, Y: h}, nil
}

// parseOrdering parses a comma-separated list of tile indices such as
// "3,2,1,0".
func parseOrdering(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}

	fields := strings.Split(s, ",")
	ordering := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid tile index %q", field)
		}
		ordering[i] = n
	}

	return ordering, nil
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func main() {
	app := cli.NewApp()

	app.Name = "retile"
	app.Usage = "split an image into tiles and rearrange them"
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
			Name:      "rearrange",
			Usage:     "Rearrange the tiles of an image",
			ArgsUsage: "INPUT OUTPUT ORDERING",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "tile-size",
					Aliases: []string{"t"},
					Value:   defaultTileSize,
					Usage:   "tile size as WxH",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				size, err := parseSize(c.String("tile-size"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ordering, err := parseOrdering(c.Args().Get(2))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r := retile.New(newLogger(c.Bool("verbose")))
				if err := r.Rearrange(c.Args().Get(0), size, ordering, c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "check",
			Usage:     "Check a tile size and ordering against an image size",
			ArgsUsage: "IMAGE_SIZE ORDERING",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "tile-size",
					Aliases: []string{"t"},
					Value:   defaultTileSize,
					Usage:   "tile size as WxH",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				imageSize, err := parseSize(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				tileSize, err := parseSize(c.String("tile-size"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ordering, err := parseOrdering(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if !retile.ValidInput(imageSize, tileSize, ordering) {
					return cli.NewExitError(retile.ErrInvalidArrangement, 1)
				}

				fmt.Println("valid")

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
