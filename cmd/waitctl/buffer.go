package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/channel"
	"github.com/northbound-labs/waitkit/dispatch"
)

var bufferCommand = &cli.Command{
	Name:  "buffer",
	Usage: "write the given text through a Dispatch-bound Buffer stream channel",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "text", Value: "the quick brown fox jumps over the lazy dog", Usage: "text to write"},
		&cli.IntFlag{Name: "block-size", Value: 8, Usage: "per-Append read ceiling in bytes"},
	},
	Action: func(c *cli.Context) error {
		text := c.String("text")
		b := channel.NewBuffer()
		b.SetBlockSize(c.Int("block-size"))
		d := dispatch.New()

		total := 0
		if err := dispatch.AddStream(d, b, func(chunk *[]byte) {
			total += len(*chunk)
			fmt.Printf("chunk %q (%d/%d bytes so far)\n", string(*chunk), total, len(text))
			*chunk = (*chunk)[:0]
			if total >= len(text) {
				_ = b.Close()
			}
		}); err != nil {
			return err
		}

		if _, err := b.Write([]byte(text)); err != nil {
			return err
		}

		fault := d.Run()
		if fault.Err != nil {
			return fault.Err
		}
		return nil
	},
}
