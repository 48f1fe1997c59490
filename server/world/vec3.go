// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"math"
)

// Vec3 is a world-space position or offset.
// Y is the vertical axis; terrain extends along X and Z.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (vec Vec3) Mul(factor float32) Vec3 {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	return vec
}

func (vec Vec3) Div(divisor float32) Vec3 {
	return vec.Mul(1.0 / divisor)
}

func (vec Vec3) AddScaled(otherVec Vec3, factor float32) Vec3 {
	vec.X += otherVec.X * factor
	vec.Y += otherVec.Y * factor
	vec.Z += otherVec.Z * factor
	return vec
}

func (vec Vec3) Add(otherVec Vec3) Vec3 {
	vec.X += otherVec.X
	vec.Y += otherVec.Y
	vec.Z += otherVec.Z
	return vec
}

func (vec Vec3) Sub(otherVec Vec3) Vec3 {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	vec.Z -= otherVec.Z
	return vec
}

func (vec Vec3) Dot(otherVec Vec3) float32 {
	return vec.X*otherVec.X + vec.Y*otherVec.Y + vec.Z*otherVec.Z
}

func (vec Vec3) Distance(otherVec Vec3) float32 {
	return vec.Sub(otherVec).Length()
}

func (vec Vec3) DistanceSquared(otherVec Vec3) float32 {
	x := vec.X - otherVec.X
	y := vec.Y - otherVec.Y
	z := vec.Z - otherVec.Z
	return x*x + y*y + z*z
}

func (vec Vec3) Length() float32 {
	return math32.Sqrt(vec.LengthSquared())
}

func (vec Vec3) LengthSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

func (vec Vec3) Lerp(otherVec Vec3, factor float32) Vec3 {
	vec.X = Lerp(vec.X, otherVec.X, factor)
	vec.Y = Lerp(vec.Y, otherVec.Y, factor)
	vec.Z = Lerp(vec.Z, otherVec.Z, factor)
	return vec
}

func (vec Vec3) Abs() Vec3 {
	vec.X = math32.Abs(vec.X)
	vec.Y = math32.Abs(vec.Y)
	vec.Z = math32.Abs(vec.Z)
	return vec
}

func (vec Vec3) Floor() Vec3 {
	// Use math.Floor instead because it uses assembly
	vec.X = float32(math.Floor(float64(vec.X)))
	vec.Y = float32(math.Floor(float64(vec.Y)))
	vec.Z = float32(math.Floor(float64(vec.Z)))
	return vec
}

func (vec Vec3) Ceil() Vec3 {
	// Use math.Ceil instead because it uses assembly
	vec.X = float32(math.Ceil(float64(vec.X)))
	vec.Y = float32(math.Ceil(float64(vec.Y)))
	vec.Z = float32(math.Ceil(float64(vec.Z)))
	return vec
}

func (vec Vec3) Norm() Vec3 {
	return vec.Div(vec.Length())
}

func (vec Vec3) Round() Vec3 {
	vec.X = float32(math.Round(float64(vec.X)))
	vec.Y = float32(math.Round(float64(vec.Y)))
	vec.Z = float32(math.Round(float64(vec.Z)))
	return vec
}
