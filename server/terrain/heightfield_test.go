// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"heightfield/server/world"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 0.0001
}

func mustField(t *testing.T, heights [][]float32, cellSpacing float32) *HeightField {
	t.Helper()
	field, err := NewHeightField(heights, cellSpacing)
	if err != nil {
		t.Fatal(err)
	}
	return field
}

func TestNewHeightField_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		heights     [][]float32
		cellSpacing float32
	}{
		{"nil grid", nil, 1},
		{"empty grid", [][]float32{}, 1},
		{"single row", [][]float32{{1, 2}}, 1},
		{"single column", [][]float32{{1}, {2}}, 1},
		{"ragged rows", [][]float32{{1, 2}, {3}}, 1},
		{"zero spacing", [][]float32{{1, 2}, {3, 4}}, 0},
		{"negative spacing", [][]float32{{1, 2}, {3, 4}}, -2},
	}

	for _, test := range tests {
		field, err := NewHeightField(test.heights, test.cellSpacing)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", test.name, err)
		}
		if field != nil {
			t.Errorf("%s: expected nil field", test.name)
		}
	}
}

func TestHeightField_Extents(t *testing.T) {
	tests := []struct {
		width, depth int
		cellSpacing  float32
	}{
		{2, 2, 2},
		{3, 5, 0.5},
		{16, 9, 25},
	}

	for _, test := range tests {
		heights := make([][]float32, test.depth)
		for z := range heights {
			heights[z] = make([]float32, test.width)
		}
		field := mustField(t, heights, test.cellSpacing)

		extentX := float32(test.width-1) * test.cellSpacing
		extentZ := float32(test.depth-1) * test.cellSpacing
		if field.ExtentX() != extentX || field.ExtentZ() != extentZ {
			t.Errorf("%dx%d spacing %v: expected extents (%v, %v), got (%v, %v)",
				test.width, test.depth, test.cellSpacing, extentX, extentZ, field.ExtentX(), field.ExtentZ())
		}

		origin := world.Vec3{X: extentX * -0.5, Z: extentZ * -0.5}
		if field.Origin() != origin {
			t.Errorf("expected origin %v, got %v", origin, field.Origin())
		}

		bounds := world.AABBFrom(origin.X, origin.Z, extentX, extentZ)
		if field.Bounds() != bounds {
			t.Errorf("expected bounds %v, got %v", bounds, field.Bounds())
		}
	}
}

func TestHeightField_WithinBounds(t *testing.T) {
	field := mustField(t, [][]float32{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, 4)

	origin := field.Origin()
	extent := world.Vec3{X: field.ExtentX(), Z: field.ExtentZ()}

	tests := []struct {
		pos      world.Vec3
		expected bool
	}{
		// Boundary is exclusive on all sides
		{origin, false},
		{origin.Add(extent), false},
		{origin.Add(world.Vec3{X: extent.X}), false},
		{origin.Add(world.Vec3{Z: extent.Z}), false},
		{origin.Add(world.Vec3{X: extent.X * 0.5}), false},
		// Center is always in
		{origin.AddScaled(extent, 0.5), true},
		{world.Vec3{X: 0.1, Z: 0.1}, true},
		{world.Vec3{X: -100, Z: 0}, false},
		{world.Vec3{X: 0, Z: 100}, false},
	}

	for _, test := range tests {
		if got := field.WithinBounds(test.pos); got != test.expected {
			t.Errorf("expected WithinBounds(%v): %v, got %v", test.pos, test.expected, got)
		}
	}
}

func TestHeightField_SampleVertices(t *testing.T) {
	heights := [][]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	field := mustField(t, heights, 2)
	origin := field.Origin()

	// Interpolation degenerates to the stored height at every interior vertex
	// (the boundary vertices are outside the exclusive bounds).
	pos := origin.Add(world.Vec3{X: 2, Z: 2})
	got, err := field.SampleHeight(pos)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(got, heights[1][1]) {
		t.Errorf("expected vertex height %v, got %v", heights[1][1], got)
	}

	// Just inside each corner vertex the sample converges on the stored height.
	const eps = 1e-3
	corners := []struct {
		pos      world.Vec3
		expected float32
	}{
		{origin.Add(world.Vec3{X: eps, Z: eps}), heights[0][0]},
		{origin.Add(world.Vec3{X: 4 - eps, Z: eps}), heights[0][2]},
		{origin.Add(world.Vec3{X: eps, Z: 4 - eps}), heights[2][0]},
		{origin.Add(world.Vec3{X: 4 - eps, Z: 4 - eps}), heights[2][2]},
	}

	for _, corner := range corners {
		if !field.WithinBounds(corner.pos) {
			t.Fatalf("expected %v within bounds", corner.pos)
		}
		got, err := field.SampleHeight(corner.pos)
		if err != nil {
			t.Fatal(err)
		}
		if math32.Abs(got-corner.expected) > 0.01 {
			t.Errorf("expected ~%v at %v, got %v", corner.expected, corner.pos, got)
		}
	}
}

func TestHeightField_SampleCellMidpoint(t *testing.T) {
	heights := [][]float32{
		{2, 6, 1},
		{4, 8, 3},
		{0, 2, 4},
	}
	field := mustField(t, heights, 3)
	origin := field.Origin()

	// Midpoint of the cell (x, z) averages its four corners.
	for z := 0; z < 2; z++ {
		for x := 0; x < 2; x++ {
			pos := origin.Add(world.Vec3{X: (float32(x) + 0.5) * 3, Z: (float32(z) + 0.5) * 3})
			mean := (heights[z][x] + heights[z][x+1] + heights[z+1][x] + heights[z+1][x+1]) * 0.25

			got, err := field.SampleHeight(pos)
			if err != nil {
				t.Fatal(err)
			}
			if !approx(got, mean) {
				t.Errorf("cell (%d, %d): expected mean %v, got %v", x, z, mean, got)
			}
		}
	}
}

// The worked 2x2 example: a single cell with one raised corner.
func TestHeightField_SingleCell(t *testing.T) {
	field := mustField(t, [][]float32{
		{0, 0},
		{0, 10},
	}, 2)

	if field.ExtentX() != 2 || field.ExtentZ() != 2 {
		t.Fatal("expected extents (2, 2), got", field.ExtentX(), field.ExtentZ())
	}
	if expected := (world.Vec3{X: -1, Z: -1}); field.Origin() != expected {
		t.Fatal("expected origin", expected, "got", field.Origin())
	}

	if !field.WithinBounds(world.Vec3{}) {
		t.Error("expected world origin within bounds")
	}
	if field.WithinBounds(world.Vec3{X: -1, Z: -1}) {
		t.Error("expected field origin out of bounds")
	}

	got, err := field.SampleHeight(world.Vec3{})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(got, 2.5) {
		t.Error("expected 2.5, got", got)
	}
}

func TestHeightField_SampleOutOfRange(t *testing.T) {
	field := mustField(t, [][]float32{
		{0, 0},
		{0, 0},
	}, 1)

	for _, pos := range []world.Vec3{
		{X: -10, Z: 0},
		{X: 0, Z: -10},
		{X: 10, Z: 10},
	} {
		if _, err := field.SampleHeight(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange at %v, got %v", pos, err)
		}
	}
}

// Any position that passes the bounds check must sample, even when float32
// division rounds the cell coordinate up onto the far row/column.
func TestHeightField_SampleFarEdge(t *testing.T) {
	heights := make([][]float32, 7)
	for z := range heights {
		heights[z] = make([]float32, 7)
		for x := range heights[z] {
			heights[z][x] = float32(x + z)
		}
	}
	field := mustField(t, heights, 1.1)

	maxX := field.Origin().X + field.ExtentX()
	maxZ := field.Origin().Z + field.ExtentZ()

	positions := []world.Vec3{
		// 3.2999997/1.1 lands exactly on the last column after rounding
		{X: 3.2999997, Z: 0},
		{X: 0, Z: 3.2999997},
		{X: 3.2999997, Z: 3.2999997},
		{X: math32.Nextafter(maxX, 0), Z: math32.Nextafter(maxZ, 0)},
	}
	// Walk the last few representable positions toward the far corner.
	x, z := maxX, maxZ
	for i := 0; i < 16; i++ {
		x = math32.Nextafter(x, 0)
		z = math32.Nextafter(z, 0)
		positions = append(positions, world.Vec3{X: x}, world.Vec3{Z: z}, world.Vec3{X: x, Z: z})
	}

	min, max := heights[0][0], heights[6][6]
	for _, pos := range positions {
		if !field.WithinBounds(pos) {
			continue
		}
		got, err := field.SampleHeight(pos)
		if err != nil {
			t.Fatalf("in-bounds sample at %v failed: %v", pos, err)
		}
		if got < min || got > max {
			t.Fatalf("sample at %v outside grid range: %v", pos, got)
		}
	}

	// A position past the far edge still errors when the bounds check is bypassed.
	if _, err := field.SampleHeight(world.Vec3{X: maxX + 1, Z: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange past the far edge, got %v", err)
	}
}

func TestHeightField_Immutable(t *testing.T) {
	heights := [][]float32{
		{1, 2},
		{3, 4},
	}
	field := mustField(t, heights, 1)

	pos := world.Vec3{X: 0.25, Z: 0.25}
	before, err := field.SampleHeight(pos)
	if err != nil {
		t.Fatal(err)
	}

	// The field owns a copy; scribbling on the input changes nothing.
	heights[0][0] = 100
	heights[1][1] = -100

	for i := 0; i < 3; i++ {
		after, err := field.SampleHeight(pos)
		if err != nil {
			t.Fatal(err)
		}
		if after != before {
			t.Fatal("expected repeated samples to stay", before, "got", after)
		}
	}
}

// flatSource generates a constant-elevation grid.
type flatSource struct {
	height float32
}

func (s flatSource) Generate(width, depth int) [][]float32 {
	rows := make([][]float32, depth)
	for z := range rows {
		rows[z] = make([]float32, width)
		for x := range rows[z] {
			rows[z][x] = s.height
		}
	}
	return rows
}

func TestFromSource(t *testing.T) {
	field, err := FromSource(flatSource{height: 7}, 8, 6, 2)
	if err != nil {
		t.Fatal(err)
	}
	if field.Width() != 8 || field.Depth() != 6 {
		t.Fatal("expected 8x6 grid, got", field.Width(), field.Depth())
	}

	// Interpolating a constant field yields the constant everywhere.
	for i := 0; i < 100; i++ {
		pos := world.Vec3{
			X: (rand.Float32() - 0.5) * field.ExtentX() * 0.99,
			Z: (rand.Float32() - 0.5) * field.ExtentZ() * 0.99,
		}
		got, err := field.SampleHeight(pos)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(got, 7) {
			t.Fatal("expected 7 at", pos, "got", got)
		}
	}
}

func BenchmarkHeightField_SampleHeight(b *testing.B) {
	const size = 256
	heights := make([][]float32, size)
	for z := range heights {
		heights[z] = make([]float32, size)
		for x := range heights[z] {
			heights[z][x] = rand.Float32() * 50
		}
	}

	field, err := NewHeightField(heights, 25)
	if err != nil {
		b.Fatal(err)
	}

	const count = 1024
	positions := make([]world.Vec3, count)
	for i := range positions {
		positions[i] = world.Vec3{
			X: (rand.Float32() - 0.5) * field.ExtentX() * 0.99,
			Z: (rand.Float32() - 0.5) * field.ExtentZ() * 0.99,
		}
	}
	b.ResetTimer()

	var acc float32
	for i := 0; i < b.N; i++ {
		h, _ := field.SampleHeight(positions[i&(count-1)])
		acc += h
	}
	_ = acc
}
