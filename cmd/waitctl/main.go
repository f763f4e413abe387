// Command waitctl is a small demo/dev binary exercising waitkit end to end:
// it wires a Dispatch to one or more channels and prints callback activity
// to stdout. It is not part of the library's tested surface.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "waitctl",
		Usage: "drive waitkit's channels, dispatch, random engines, fixed-width integers and paths from the command line",
		Commands: []*cli.Command{
			timerCommand,
			queueCommand,
			bufferCommand,
			signalsCommand,
			randtestCommand,
			fixedbinCommand,
			pathlsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
