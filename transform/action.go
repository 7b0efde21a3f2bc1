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

// Package transform implements undoable affine transformations of plane
// figures, and a bisection root finder used to construct the sample
// figure.
package transform

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// An Action is an invertible affine transformation.
type Action interface {
	// Matrix returns the transformation matrix, using the PDF convention
	// x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
	Matrix() matrix.Matrix

	// Inverse returns the action which undoes this one.
	Inverse() Action

	fmt.Stringer
}

// Translate shifts by (DX, DY).
type Translate struct {
	DX, DY float64
}

func (t Translate) Matrix() matrix.Matrix {
	return matrix.Identity.Translate(t.DX, t.DY)
}

func (t Translate) Inverse() Action {
	return Translate{DX: -t.DX, DY: -t.DY}
}

func (t Translate) String() string {
	return fmt.Sprintf("translate(%g, %g)", t.DX, t.DY)
}

// Scale scales by KX horizontally and KY vertically, keeping Center fixed.
type Scale struct {
	KX, KY float64
	Center vec.Vec2
}

func (s Scale) Matrix() matrix.Matrix {
	c := s.Center
	return matrix.Matrix{s.KX, 0, 0, s.KY, c.X - s.KX*c.X, c.Y - s.KY*c.Y}
}

func (s Scale) Inverse() Action {
	return Scale{KX: 1 / s.KX, KY: 1 / s.KY, Center: s.Center}
}

func (s Scale) String() string {
	return fmt.Sprintf("scale(%g, %g) about (%g, %g)", s.KX, s.KY, s.Center.X, s.Center.Y)
}

// Rotate turns counter-clockwise by Deg degrees around Center.
type Rotate struct {
	Deg    float64
	Center vec.Vec2
}

func (r Rotate) Matrix() matrix.Matrix {
	c := r.Center
	return matrix.Identity.Translate(-c.X, -c.Y).RotateDeg(r.Deg).Translate(c.X, c.Y)
}

func (r Rotate) Inverse() Action {
	return Rotate{Deg: -r.Deg, Center: r.Center}
}

func (r Rotate) String() string {
	return fmt.Sprintf("rotate(%g°) about (%g, %g)", r.Deg, r.Center.X, r.Center.Y)
}

// Check returns an error if the action is not invertible or has
// non-finite parameters.
func Check(a Action) error {
	m := a.Matrix()
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %w", a, cglab.ErrDegenerateInput)
		}
	}
	if det(m) == 0 {
		return fmt.Errorf("%s: singular: %w", a, cglab.ErrDegenerateInput)
	}
	return nil
}

// Concat returns the matrix which first applies a and then b.
func Concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

// ApplyPoint maps p using m.
func ApplyPoint(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Apply maps every point of pts using m, in place.
func Apply(m matrix.Matrix, pts []vec.Vec2) {
	for i, p := range pts {
		pts[i] = ApplyPoint(m, p)
	}
}

// Flips reports whether m reverses the orientation of the plane.
func Flips(m matrix.Matrix) bool {
	return det(m) < 0
}

func det(m matrix.Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}
