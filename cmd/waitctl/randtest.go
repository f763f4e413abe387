package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/northbound-labs/waitkit/random/dist"
	"github.com/northbound-labs/waitkit/random/engine"
)

var randtestCommand = &cli.Command{
	Name:  "randtest",
	Usage: "draw samples from an engine/distribution pair and print summary statistics",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "engine", Value: "xoshiro256ss", Usage: "xoshiro256ss | pcg64 | pcg64dxsm"},
		&cli.StringFlag{Name: "dist", Value: "uniform-int", Usage: "uniform-int | uniform-real | bernoulli | normal | poisson"},
		&cli.Uint64Flag{Name: "seed", Value: 0xC0FFEE, Usage: "seed word"},
		&cli.IntFlag{Name: "samples", Value: 10000, Usage: "number of draws"},
	},
	Action: func(c *cli.Context) error {
		seed := c.Uint64("seed")
		var src dist.Source
		switch c.String("engine") {
		case "pcg64":
			src = engine.NewPCG64(seed, seed^0x9E3779B97F4A7C15, 1, 1)
		case "pcg64dxsm":
			src = engine.NewPCG64DXSM(seed, seed^0x9E3779B97F4A7C15, 1, 1)
		default:
			src = engine.NewXoshiro256SS(seed, seed+1, seed+2, seed+3)
		}

		n := c.Int("samples")

		switch c.String("dist") {
		case "uniform-real":
			d, err := dist.NewUniformReal(0, 1)
			if err != nil {
				return err
			}
			var sum float64
			for i := 0; i < n; i++ {
				sum += d.Sample(src)
			}
			fmt.Printf("uniform-real: mean=%.6f theoretical=%.6f over %d samples\n", sum/float64(n), d.Mean(), n)
		case "bernoulli":
			d, err := dist.NewBernoulli(0.3)
			if err != nil {
				return err
			}
			var hits int
			for i := 0; i < n; i++ {
				if d.Sample(src) {
					hits++
				}
			}
			fmt.Printf("bernoulli(p=0.3): empirical=%.6f theoretical=%.6f over %d samples\n", float64(hits)/float64(n), d.Mean(), n)
		case "normal":
			d, err := dist.NewNormal(0, 1)
			if err != nil {
				return err
			}
			var sum float64
			for i := 0; i < n; i++ {
				sum += d.Sample(src)
			}
			fmt.Printf("normal(0,1): mean=%.6f theoretical=%.6f over %d samples\n", sum/float64(n), d.Mean(), n)
		case "poisson":
			d, err := dist.NewPoisson(4)
			if err != nil {
				return err
			}
			var sum float64
			for i := 0; i < n; i++ {
				sum += float64(d.Sample(src))
			}
			fmt.Printf("poisson(lambda=4): mean=%.6f theoretical=%.6f over %d samples\n", sum/float64(n), d.Mean(), n)
		default:
			d, err := dist.NewUniformInt(1, 6)
			if err != nil {
				return err
			}
			var sum float64
			for i := 0; i < n; i++ {
				sum += float64(d.Sample(src))
			}
			fmt.Printf("uniform-int[1,6]: mean=%.6f theoretical=%.6f over %d samples\n", sum/float64(n), d.Mean(), n)
		}
		return nil
	},
}
