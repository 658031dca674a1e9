package main

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/urfave/cli"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tinyrt"
	app.Usage = "Execute blocks of balance transfers and content claims"
	app.Version = common.VersionString()
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "Execute built-in demo scenario",
			Flags:  []cli.Flag{debugFlag},
			Action: demo,
		},
		{
			Name:      "run",
			Usage:     "Execute scenario from YAML file",
			UsageText: "tinyrt run --config scenario.yml [--debug]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "Path to the scenario file",
				},
				debugFlag,
			},
			Action: run,
		},
	}

	return app
}

var debugFlag = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "Dump the final runtime state",
}
