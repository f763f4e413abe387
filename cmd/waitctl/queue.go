package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/channel"
	"github.com/northbound-labs/waitkit/dispatch"
)

var queueCommand = &cli.Command{
	Name:  "queue",
	Usage: "push the given items through a Dispatch-bound Queue channel",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "item", Usage: "an item to enqueue; may be repeated"},
	},
	Action: func(c *cli.Context) error {
		items := c.StringSlice("item")
		if len(items) == 0 {
			items = []string{"alpha", "beta", "gamma"}
		}

		q := channel.NewQueue[string]()
		d := dispatch.New()

		seen := 0
		if err := dispatch.Add(d, q, func(v string) {
			seen++
			fmt.Printf("dequeued %q (%d/%d)\n", v, seen, len(items))
			if seen == len(items) {
				_ = q.Close()
			}
		}); err != nil {
			return err
		}

		for _, item := range items {
			q.Write(item)
		}

		fault := d.Run()
		if fault.Err != nil {
			return fault.Err
		}
		return nil
	},
}
