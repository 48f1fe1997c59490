// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "heightfield/server/world"

// blerp does bi-linear interpolation on 4 corner heights given the tx and tz offsets.
func blerp(c00, c10, c01, c11, tx, tz float32) float32 {
	return world.Lerp(
		world.Lerp(c00, c10, tx),
		world.Lerp(c01, c11, tx),
		tz,
	)
}

func copyFloats(a []float32) []float32 {
	b := make([]float32, len(a))
	copy(b, a)
	return b
}
