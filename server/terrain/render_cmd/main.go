// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"heightfield/server/terrain"
	"heightfield/server/terrain/noise"
)

func main() {
	var (
		cpuProfile string
		out        string
		size       int
		seed       int64
		spacing    float64
	)

	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&out, "out", "out.png", "output png path")
	flag.IntVar(&size, "size", 512, "grid vertices per side")
	flag.Int64Var(&seed, "seed", noise.Seed, "noise seed")
	flag.Float64Var(&spacing, "spacing", 25, "meters between grid vertices")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	run(out, size, seed, float32(spacing))
}

func run(out string, size int, seed int64, spacing float32) {
	field, err := terrain.FromSource(noise.New(seed), size, size, spacing)
	if err != nil {
		log.Fatal(err)
	}

	img := terrain.Render(field)

	file, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
}
