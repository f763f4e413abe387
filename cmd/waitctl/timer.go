package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/channel"
	"github.com/northbound-labs/waitkit/dispatch"
)

var timerCommand = &cli.Command{
	Name:  "timer",
	Usage: "fire a periodic tick through a Dispatch-bound Timer channel",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "interval", Value: 200 * time.Millisecond, Usage: "tick interval"},
		&cli.IntFlag{Name: "count", Value: 5, Usage: "number of ticks before the channel closes (0 = unbounded)"},
	},
	Action: func(c *cli.Context) error {
		interval := c.Duration("interval")
		count := c.Int("count")

		t := channel.NewTimer(interval, count)
		d := dispatch.New()

		n := 0
		if err := dispatch.AddVoid(d, t, func() {
			n++
			fmt.Printf("tick %d at %s\n", n, time.Now().Format(time.RFC3339Nano))
		}); err != nil {
			return err
		}

		fault := d.Run()
		if fault.Err != nil {
			return fault.Err
		}
		fmt.Printf("timer channel closed after %d tick(s)\n", n)
		return nil
	},
}
