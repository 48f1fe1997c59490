// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"
	"image/color"

	"heightfield/server/world"
)

type ColorVec [3]float32

// Hypsometric tints from deep water to snow.
var colors = [...]ColorVec{
	RGB(0, 50, 115),
	RGB(0, 75, 130),
	RGB(194, 178, 128),
	RGB(90, 180, 30),
	RGB(105, 110, 115),
	Gray(220),
}

// Render draws one pixel per grid vertex, tinted by elevation relative to
// the field's own min/max. Debug tooling only; queries never render.
func Render(f *HeightField) image.Image {
	min, max := f.At(0, 0), f.At(0, 0)
	for z := 0; z < f.Depth(); z++ {
		for x := 0; x < f.Width(); x++ {
			h := f.At(x, z)
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}

	scale := float32(0)
	if max > min {
		scale = 1 / (max - min)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Depth()))

	for z := 0; z < f.Depth(); z++ {
		for x := 0; x < f.Width(); x++ {
			// Normalized elevation mapped across the palette bands
			t := (f.At(x, z) - min) * scale * float32(len(colors)-1)
			band := int(t)
			if band >= len(colors)-1 {
				band = len(colors) - 2
			}
			c := colors[band].Lerp(colors[band+1], clamp(t-float32(band)))
			img.Set(x, z, c.Color())
		}
	}

	return img
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] = world.Lerp(vec[i], other[i], factor)
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func clamp(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
