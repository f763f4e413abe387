package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/fspath"
)

var pathlsCommand = &cli.Command{
	Name:  "pathls",
	Usage: "list a directory, optionally recursing, printing each entry's kind",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "recurse", Usage: "walk the whole subtree instead of one level"},
		&cli.BoolFlag{Name: "no-hidden", Usage: "filter out dotfiles/hidden entries"},
	},
	ArgsUsage: "<path>",
	Action: func(c *cli.Context) error {
		arg := c.Args().First()
		if arg == "" {
			arg = "."
		}
		p, err := fspath.New(arg, 0)
		if err != nil {
			return err
		}

		var flags fspath.Flags
		if c.Bool("no-hidden") {
			flags |= fspath.NoHidden
		}

		var it fspath.Iterator
		if c.Bool("recurse") {
			it = p.DeepSearch(flags)
		} else {
			it = p.Directory(flags)
		}

		count := 0
		for it.Next() {
			entry := it.Path()
			fmt.Printf("%-10s %s\n", entry.FileKind(0), entry.String())
			count++
		}
		if err := it.Err(); err != nil {
			return err
		}
		fmt.Printf("%d entr(y/ies)\n", count)
		return nil
	},
}
