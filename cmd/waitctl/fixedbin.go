package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/fixedbinary"
)

var fixedbinCommand = &cli.Command{
	Name:  "fixedbin",
	Usage: "perform one fixed-width binary-integer operation on two hex operands",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "bits", Value: 128, Usage: "width in bits"},
		&cli.StringFlag{Name: "a", Required: true, Usage: "left-hand hex operand, e.g. 0x1F"},
		&cli.StringFlag{Name: "b", Required: true, Usage: "right-hand hex operand"},
		&cli.StringFlag{Name: "op", Value: "add", Usage: "add | sub | mul | div | mod | xor | or | and | rotl"},
	},
	Action: func(c *cli.Context) error {
		bits := c.Int("bits")
		a, err := fixedbinary.Parse(bits, c.String("a"), 16)
		if err != nil {
			return err
		}
		b, err := fixedbinary.Parse(bits, c.String("b"), 16)
		if err != nil {
			return err
		}

		var result fixedbinary.Binary
		switch c.String("op") {
		case "sub":
			result = a.Sub(b)
		case "mul":
			result = a.Mul(b)
		case "div":
			result = a.Div(b)
		case "mod":
			result = a.Mod(b)
		case "xor":
			result = a.Xor(b)
		case "or":
			result = a.Or(b)
		case "and":
			result = a.And(b)
		case "rotl":
			result = a.Rotl(int(b.Uint64()))
		default:
			result = a.Add(b)
		}

		fmt.Printf("bits=%d hex=%s dec=%s\n", bits, result.Hex(), result.Dec())
		return nil
	},
}
