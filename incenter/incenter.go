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

// Package incenter constructs the incenter of a triangle as the
// intersection of its angle bisectors, and searches two point sets for the
// pair of triangles whose incenters are joined by the flattest line.
package incenter

import (
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

// Triangle holds the three corners of a triangle.
type Triangle [3]vec.Vec2

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t[1].Sub(t[0]), t[2].Sub(t[0]))) / 2
}

// IsDegenerate reports whether the corners are (nearly) collinear.
func (t Triangle) IsDegenerate() bool {
	l := max(t[1].Sub(t[0]).Length(), t[2].Sub(t[1]).Length(), t[0].Sub(t[2]).Length())
	return 2*t.Area() <= eps*l*l
}

// Bisector returns the bisector of the angle at corner a, as the segment
// from a to the opposite side bc.  The bisector divides bc in the ratio of
// the adjacent sides.
func Bisector(a, b, c vec.Vec2) cglab.Segment {
	ab := b.Sub(a).Length()
	ac := c.Sub(a).Length()
	if ab+ac == 0 {
		return cglab.Segment{A: a, B: a}
	}
	return cglab.Segment{A: a, B: b.Add(c.Sub(b).Mul(ab / (ab + ac)))}
}

// Incenter returns the center of the inscribed circle of the triangle abc.
func Incenter(a, b, c vec.Vec2) (vec.Vec2, error) {
	t := Triangle{a, b, c}
	if t.IsDegenerate() {
		return vec.Vec2{}, fmt.Errorf("triangle %v: %w", t, cglab.ErrDegenerateInput)
	}
	p, ok := intersect(Bisector(a, b, c), Bisector(b, c, a))
	if !ok {
		return vec.Vec2{}, fmt.Errorf("triangle %v: %w", t, cglab.ErrDegenerateInput)
	}
	return p, nil
}

// Incenter returns the center of the inscribed circle of t.
func (t Triangle) Incenter() (vec.Vec2, error) {
	return Incenter(t[0], t[1], t[2])
}

// intersect returns the intersection of the lines through the two
// segments.  The second return value is false if the lines are parallel.
func intersect(s, u cglab.Segment) (vec.Vec2, bool) {
	d1 := s.B.Sub(s.A)
	d2 := u.B.Sub(u.A)
	det := cross(d1, d2)
	if math.Abs(det) <= eps*d1.Length()*d2.Length() {
		return vec.Vec2{}, false
	}
	t := cross(u.A.Sub(s.A), d2) / det
	return s.A.Add(d1.Mul(t)), true
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Triangles iterates over all triangles formed by three distinct elements
// of pts, in lexicographic order of the indices.
func Triangles(pts []vec.Vec2) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		n := len(pts)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					if !yield(Triangle{pts[i], pts[j], pts[k]}) {
						return
					}
				}
			}
		}
	}
}

// Result describes the best pair of triangles found by Search.
type Result struct {
	A, B             Triangle
	CenterA, CenterB vec.Vec2

	// Angle is the angle in radians, between 0 and pi/2, which the line
	// through both incenters makes with the x-axis.
	Angle float64
}

// Join returns the segment connecting the two incenters.
func (r *Result) Join() cglab.Segment {
	return cglab.Segment{A: r.CenterA, B: r.CenterB}
}

// Search tries every triangle with corners from setA against every
// triangle with corners from setB, and returns the pair for which the line
// joining the incenters is closest to horizontal.  Degenerate triangles and
// pairs with coinciding incenters are skipped.  If several pairs attain the
// minimum, the first one is returned.  The second return value is false if
// no pair qualifies.
func Search(setA, setB []vec.Vec2) (*Result, bool) {
	type candidate struct {
		t Triangle
		c vec.Vec2
	}
	centers := func(pts []vec.Vec2) []candidate {
		var res []candidate
		for t := range Triangles(pts) {
			if c, err := t.Incenter(); err == nil {
				res = append(res, candidate{t, c})
			}
		}
		return res
	}
	as := centers(setA)
	bs := centers(setB)

	var best *Result
	for _, a := range as {
		for _, b := range bs {
			d := b.c.Sub(a.c)
			if d.Length() <= eps {
				continue
			}
			angle := math.Atan2(math.Abs(d.Y), math.Abs(d.X))
			if best == nil || angle < best.Angle {
				best = &Result{
					A:       a.t,
					B:       b.t,
					CenterA: a.c,
					CenterB: b.c,
					Angle:   angle,
				}
			}
		}
	}

	cglab.Logger().Debug("incenter search",
		"trianglesA", len(as),
		"trianglesB", len(bs),
		"found", best != nil)
	return best, best != nil
}
