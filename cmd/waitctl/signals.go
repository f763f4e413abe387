package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/channel"
	"github.com/northbound-labs/waitkit/dispatch"
)

var signalsCommand = &cli.Command{
	Name:  "signals",
	Usage: "print SIGINT/SIGTERM deliveries through a Dispatch-bound Signal channel until one arrives or --timeout elapses",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "give up and exit cleanly after this long"},
	},
	Action: func(c *cli.Context) error {
		s := channel.NewSignal(os.Interrupt, syscall.SIGTERM)
		d := dispatch.New()

		if err := dispatch.Add(d, s, func(n int) {
			fmt.Printf("received signal %d\n", n)
			_ = s.Close()
		}); err != nil {
			return err
		}

		done := make(chan dispatch.Fault, 1)
		go func() { done <- d.Run() }()

		select {
		case fault := <-done:
			if fault.Err != nil {
				return fault.Err
			}
		case <-time.After(c.Duration("timeout")):
			fmt.Println("no signal received within timeout, stopping")
			d.Stop()
		}
		return nil
	},
}
