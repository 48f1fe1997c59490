// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"fmt"
	"math"

	"heightfield/server/world"
)

var (
	// ErrInvalidArgument means the supplied grid or spacing cannot define a field.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange means a sample position mapped outside the stored grid.
	// Callers gate SampleHeight with WithinBounds to never see it.
	ErrOutOfRange = errors.New("position out of range")
)

// Source generates heightmap grids.
type Source interface {
	Generate(width, depth int) [][]float32
}

// HeightField is a regularly spaced elevation grid centered on the world
// origin along the horizontal plane. It is immutable once constructed, so
// all of its methods can be called concurrently.
type HeightField struct {
	heights     [][]float32 // heights[z][x], row lengths all equal
	cellSpacing float32
	extentX     float32
	extentZ     float32
	origin      world.Vec3
}

// NewHeightField constructs a field from a grid of elevations and the
// world-space distance between adjacent grid vertices. The grid is copied;
// the field owns its storage.
func NewHeightField(heights [][]float32, cellSpacing float32) (*HeightField, error) {
	if cellSpacing <= 0 {
		return nil, fmt.Errorf("%w: cell spacing %v", ErrInvalidArgument, cellSpacing)
	}

	depth := len(heights)
	if depth < 2 {
		return nil, fmt.Errorf("%w: grid depth %d", ErrInvalidArgument, depth)
	}
	width := len(heights[0])
	if width < 2 {
		return nil, fmt.Errorf("%w: grid width %d", ErrInvalidArgument, width)
	}

	copied := make([][]float32, depth)
	for z, row := range heights {
		if len(row) != width {
			return nil, fmt.Errorf("%w: ragged grid row %d", ErrInvalidArgument, z)
		}
		copied[z] = copyFloats(row)
	}

	extentX := float32(width-1) * cellSpacing
	extentZ := float32(depth-1) * cellSpacing

	return &HeightField{
		heights:     copied,
		cellSpacing: cellSpacing,
		extentX:     extentX,
		extentZ:     extentZ,
		origin:      world.Vec3{X: extentX * -0.5, Z: extentZ * -0.5},
	}, nil
}

// FromSource generates a grid from source and constructs a field around it.
func FromSource(source Source, width, depth int, cellSpacing float32) (*HeightField, error) {
	return NewHeightField(source.Generate(width, depth), cellSpacing)
}

// Width is the number of grid vertices along X.
func (f *HeightField) Width() int {
	return len(f.heights[0])
}

// Depth is the number of grid vertices along Z.
func (f *HeightField) Depth() int {
	return len(f.heights)
}

func (f *HeightField) CellSpacing() float32 {
	return f.cellSpacing
}

func (f *HeightField) ExtentX() float32 {
	return f.extentX
}

func (f *HeightField) ExtentZ() float32 {
	return f.extentZ
}

// Origin is the world-space position of the grid vertex at (0, 0).
func (f *HeightField) Origin() world.Vec3 {
	return f.origin
}

// At reads the stored elevation at a grid vertex.
func (f *HeightField) At(x, z int) float32 {
	return f.heights[z][x]
}

// Bounds is the field's world-space footprint on the horizontal plane.
func (f *HeightField) Bounds() world.AABB {
	return world.AABBFrom(f.origin.X, f.origin.Z, f.extentX, f.extentZ)
}

// WithinBounds reports whether pos is strictly inside the field's footprint.
// Positions exactly on the boundary, including the minimum corner, are out.
func (f *HeightField) WithinBounds(pos world.Vec3) bool {
	local := pos.Sub(f.origin)
	return local.X > 0 && local.X < f.extentX && local.Z > 0 && local.Z < f.extentZ
}

// SampleHeight bilinearly interpolates the elevation at pos over the four
// grid vertices of the cell containing it. Callers must check WithinBounds
// first; positions whose cell falls outside the grid get ErrOutOfRange.
func (f *HeightField) SampleHeight(pos world.Vec3) (float32, error) {
	local := pos.Sub(f.origin)

	// Fractional cell coordinates
	gx := local.X / f.cellSpacing
	gz := local.Z / f.cellSpacing

	// Use math.Floor instead because it uses assembly
	left := int(math.Floor(float64(gx)))
	top := int(math.Floor(float64(gz)))

	if left < 0 || top < 0 || gx > float32(f.Width()-1) || gz > float32(f.Depth()-1) {
		return 0, fmt.Errorf("%w: cell (%d, %d) of %dx%d grid", ErrOutOfRange, left, top, f.Width(), f.Depth())
	}

	// The division can round an in-bounds position up onto the far
	// row/column; clamp so the neighbor vertex stays on the grid and the
	// sample degenerates to the far edge.
	if left > f.Width()-2 {
		left = f.Width() - 2
	}
	if top > f.Depth()-2 {
		top = f.Depth() - 2
	}

	tx := gx - float32(left)
	tz := gz - float32(top)

	return blerp(
		f.heights[top][left], f.heights[top][left+1],
		f.heights[top+1][left], f.heights[top+1][left+1],
		tx, tz,
	), nil
}
