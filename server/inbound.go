// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"heightfield/server/world"
)

// Make sure to register in init function
type (
	// SampleHeight queries the terrain elevation under a world position.
	SampleHeight struct {
		Position world.Vec3 `json:"position"`
	}

	// WithinBounds asks whether a world position is over the field at all.
	WithinBounds struct {
		Position world.Vec3 `json:"position"`
	}

	// FieldInfo requests the field's dimensions and footprint.
	FieldInfo struct{}

	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}
)

func init() {
	registerInbound(
		SampleHeight{},
		WithinBounds{},
		FieldInfo{},
	)
}

func (data SampleHeight) Inbound(h *Hub, client Client) {
	out := Height{Position: data.Position}

	// The field requires the bounds check before every sample.
	if h.field.WithinBounds(data.Position) {
		height, err := h.field.SampleHeight(data.Position)
		if err != nil {
			// Unreachable once gated, but a wrong height must never go out silently
			panic(err)
		}
		out.Height = height
		out.Within = true
	}

	client.Send(out)
}

func (data WithinBounds) Inbound(h *Hub, client Client) {
	client.Send(Within{
		Position: data.Position,
		Within:   h.field.WithinBounds(data.Position),
	})
}

func (FieldInfo) Inbound(h *Hub, client Client) {
	client.Send(fieldOutbound(h.field))
}
