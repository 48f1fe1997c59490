// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// AABB is an axis-aligned rectangle on the horizontal (X/Z) plane.
// X and Z are the minimum corner.
type AABB struct {
	X     float32 `json:"x"`
	Z     float32 `json:"z"`
	Width float32 `json:"width"`
	Depth float32 `json:"depth"`
}

func AABBFrom(x, z, width, depth float32) AABB {
	return AABB{
		X:     x,
		Z:     z,
		Width: width,
		Depth: depth,
	}
}

// Intersects a and b are intersecting
func (a AABB) Intersects(b AABB) bool {
	return a.X+a.Width >= b.X && a.X <= b.X+b.Width && a.Z+a.Depth >= b.Z && a.Z <= b.Z+b.Depth
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.X <= b.X && a.Z <= b.Z && a.X+a.Width >= b.X+b.Width && a.Z+a.Depth >= b.Z+b.Depth
}
