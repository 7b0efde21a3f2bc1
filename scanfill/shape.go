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

// Package scanfill fills polygons using an active edge table.
//
// A [Shape] collects one or more closed rings of vertices.  [Fill] converts
// the shape into horizontal spans using the even-odd rule, processing the
// scanlines from top (largest y) to bottom.  A [Canvas] runs the same
// algorithm while another goroutine polls the spans produced so far.
package scanfill

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is a polygon consisting of one or more closed rings.
//
// Points are added to the current ring until the ring is closed, either
// explicitly with [Shape.Close] or by adding the first point of the ring
// again.  The next point then starts a new ring.
//
// The zero value is an empty shape, ready to use.
type Shape struct {
	points []vec.Vec2
	ends   []int // end index (exclusive) of every closed ring
}

func (s *Shape) ringStart() int {
	if len(s.ends) == 0 {
		return 0
	}
	return s.ends[len(s.ends)-1]
}

// AddPoint appends a vertex to the current ring.  If p equals the first
// vertex of the ring, the ring is closed instead, provided it has enough
// vertices.  Otherwise the repeated point is ignored.
func (s *Shape) AddPoint(p vec.Vec2) {
	start := s.ringStart()
	if len(s.points) > start && s.points[start] == p {
		if err := s.Close(); err != nil {
			cglab.Logger().Debug("repeated first vertex ignored", "error", err)
		}
		return
	}
	s.points = append(s.points, p)
}

// Close closes the current ring.  The ring must contain at least three
// distinct vertices, otherwise an error wrapping [cglab.ErrUnclosedPolygon]
// is returned and the ring stays open.
func (s *Shape) Close() error {
	start := s.ringStart()
	ring := s.points[start:]

	distinct := make(map[vec.Vec2]struct{}, len(ring))
	for _, p := range ring {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return fmt.Errorf("ring with %d distinct vertices: %w",
			len(distinct), cglab.ErrUnclosedPolygon)
	}

	s.ends = append(s.ends, len(s.points))
	return nil
}

// IsOpen reports whether the shape has vertices which do not yet belong to
// a closed ring.
func (s *Shape) IsOpen() bool {
	return len(s.points) > s.ringStart()
}

// Rings returns the closed rings of the shape.  The closing edge from the
// last vertex back to the first one is implicit.
func (s *Shape) Rings() [][]vec.Vec2 {
	res := make([][]vec.Vec2, 0, len(s.ends))
	start := 0
	for _, end := range s.ends {
		res = append(res, s.points[start:end])
		start = end
	}
	return res
}

// Points returns all vertices of the shape, including those of an open
// ring.
func (s *Shape) Points() []vec.Vec2 {
	return s.points
}

// Bounds returns the bounding box of all vertices.
func (s *Shape) Bounds() rect.Rect {
	if len(s.points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range s.points {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Reset removes all vertices and rings.
func (s *Shape) Reset() {
	s.points = s.points[:0]
	s.ends = s.ends[:0]
}

// AppendPath adds the subpaths of p as new rings.  Curves are flattened so
// that the polygon deviates from the curve by at most flatness.  Open
// subpaths are closed implicitly, as for filling in PDF.  Subpaths with
// fewer than three distinct vertices are dropped.
//
// Any open ring of s is discarded first.
func (s *Shape) AppendPath(p path.Path, flatness float64) {
	s.points = s.points[:s.ringStart()]

	push := func(v vec.Vec2) {
		if len(s.points) > s.ringStart() && s.points[len(s.points)-1] == v {
			return
		}
		s.points = append(s.points, v)
	}
	finish := func() {
		start := s.ringStart()
		if len(s.points) > start+1 && s.points[len(s.points)-1] == s.points[start] {
			s.points = s.points[:len(s.points)-1]
		}
		if s.Close() != nil {
			s.points = s.points[:start]
		}
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if s.IsOpen() {
				finish()
			}
			current = pts[0]
			push(current)
		case path.CmdLineTo:
			current = pts[0]
			push(current)
		case path.CmdQuadTo:
			flattenQuadratic(current, pts[0], pts[1], flatness, push)
			current = pts[1]
		case path.CmdCubeTo:
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, push)
			current = pts[2]
		case path.CmdClose:
			if s.IsOpen() {
				current = s.points[s.ringStart()]
				finish()
			}
		}
	}
	if s.IsOpen() {
		finish()
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments
// and calls emit for the end point of every segment.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// the maximal deviation of the chord is |P0 - 2*P1 + P2| / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if e > flatness {
		n = int(math.Ceil(math.Sqrt(e / flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments and calls
// emit for the end point of every segment.  The number of segments is
// chosen using Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t)))
	}
}
