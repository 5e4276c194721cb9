package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/tileslice"
	"github.com/urfave/cli/v2"
)

// Tiles are read from and written to this directory, relative to the
// current working directory
var defaultDir = filepath.Join("public", "assets", "tiles")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "tileslice"
	app.Usage = "Cut the mahjong sprite sheet into individual tiles"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() > 0 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		if err := tileslice.New(defaultDir, logger).Run(); err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Fprintln(c.App.Writer, tileslice.Summary())

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
