// seehuhn.de/go/cglab - rasterization and clipping algorithms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cglab holds the types shared by the rasterization, fill and
// clipping packages of this module.
//
// The algorithms themselves live in sub-packages:
//
//   - [seehuhn.de/go/cglab/line]: DDA, Bresenham variants and Wu's algorithm
//   - [seehuhn.de/go/cglab/conic]: circles and ellipses
//   - [seehuhn.de/go/cglab/scanfill]: active edge table polygon fill
//   - [seehuhn.de/go/cglab/seedfill]: span based flood fill
//   - [seehuhn.de/go/cglab/clip]: Cohen–Sutherland, Cyrus–Beck and
//     Sutherland–Hodgman clipping
//
// Points are represented by [vec.Vec2] throughout.  Device coordinates have
// the origin at the top left, x increasing to the right and y increasing
// downwards.
package cglab

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// MaxIntensity is the intensity of a pixel which is fully covered.
const MaxIntensity = 255

// Pixel is a discrete pixel position.
type Pixel struct {
	X, Y int
}

// Round returns the pixel closest to p.
// Halfway cases are rounded away from zero.
func Round(p vec.Vec2) Pixel {
	return Pixel{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Vec returns the pixel position as a point.
func (p Pixel) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Shade is a pixel together with an intensity in the range 0 to
// [MaxIntensity].
type Shade struct {
	Pixel
	I float64
}

// Span is a horizontal run of pixels on row Y, from X0 to X1 inclusive.
type Span struct {
	Y      int
	X0, X1 int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// IsDegenerate reports whether both end points coincide.
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

// At returns the point A + t*(B-A).
func (s Segment) At(t float64) vec.Vec2 {
	return s.A.Add(s.B.Sub(s.A).Mul(t))
}
