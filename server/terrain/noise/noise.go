// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	frequency     = 0.02
	zoneFrequency = 0.003

	// Elevation range of the land layer in meters.
	landAmplitude = 40
	// Extra relief added by the detail layer.
	detailAmplitude = 6
)

// Seed default seed.
const Seed = int64(56)

// Generator generates an elevation grid using perlin noise.
// It implements terrain.Source.
type Generator struct {
	landLo  *perlin.Perlin // for larger/lower frequency landmasses
	landHi  *perlin.Perlin // for smaller/higher frequency details
	rolloff *perlin.Perlin // flattens very low frequency zones toward sea level
}

func NewDefault() *Generator {
	return New(Seed)
}

// New creates a new Generator with a seed.
// The same seed always generates the same grid.
func New(seed int64) *Generator {
	return &Generator{
		landLo:  perlin.NewPerlin(2.5, 3.0, 4, seed),
		landHi:  perlin.NewPerlin(1.5, 2.0, 4, seed+1),
		rolloff: perlin.NewPerlin(2, 3.0, 3, seed+2),
	}
}

// Generate implements terrain.Source.Generate.
func (g *Generator) Generate(width, depth int) [][]float32 {
	rows := make([][]float32, depth)

	for j := range rows {
		row := make([]float32, width)
		z := float64(j)

		for i := range row {
			x := float64(i)

			h := g.landLo.Noise2D(x*frequency, z*frequency) * landAmplitude
			h += g.landHi.Noise2D(x*frequency*4, z*frequency*4) * detailAmplitude

			// Zone is very low frequency
			zone := g.rolloff.Noise2D(x*zoneFrequency, z*zoneFrequency)*2.0 + 0.4
			if zone > 1 {
				zone = 1
			}
			h *= zone

			row[i] = float32(h)
		}

		rows[j] = row
	}

	return rows
}
