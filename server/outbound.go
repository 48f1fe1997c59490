// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"heightfield/server/terrain"
	"heightfield/server/world"
)

type (
	// Height is the answer to a SampleHeight query. Height is only
	// meaningful when Within is true.
	Height struct {
		Position world.Vec3 `json:"position"`
		Height   float32    `json:"height"`
		Within   bool       `json:"within"`
	}

	// Within is the answer to a WithinBounds query.
	Within struct {
		Position world.Vec3 `json:"position"`
		Within   bool       `json:"within"`
	}

	// Field describes the hub's height field.
	Field struct {
		Width       int        `json:"width"`
		Depth       int        `json:"depth"`
		CellSpacing float32    `json:"cellSpacing"`
		Bounds      world.AABB `json:"bounds"`
	}
)

func init() {
	registerOutbound(
		Height{},
		Within{},
		Field{},
	)
}

func fieldOutbound(f *terrain.HeightField) Field {
	return Field{
		Width:       f.Width(),
		Depth:       f.Depth(),
		CellSpacing: f.CellSpacing(),
		Bounds:      f.Bounds(),
	}
}

// None of the outbounds are pooled; they are small enough to allocate per send.

func (Height) Pool() {}

func (Within) Pool() {}

func (Field) Pool() {}
