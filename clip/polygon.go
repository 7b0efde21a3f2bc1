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

// Package clip implements segment and polygon clipping.
//
// [CohenSutherland] clips a segment against an axis-aligned rectangle.
// [ClipSegment] clips a segment against a convex polygon, using the
// parametric half-plane method of Cyrus and Beck.  [ClipPolygon] clips a
// polygon against a convex polygon, using the algorithm of Sutherland and
// Hodgman.
//
// Clip polygons must be closed and convex; their orientation does not
// matter.
package clip

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// eps is the tolerance for sign tests and denominators.
const eps = 1e-9

// Polygon is a polygon built up vertex by vertex.
//
// After Close, the first vertex is repeated at the end of Vertices and
// Closed is set.
type Polygon struct {
	Vertices []vec.Vec2
	Closed   bool
}

// NewPolygon returns the closed polygon with the given vertices.
func NewPolygon(pts ...vec.Vec2) (*Polygon, error) {
	p := &Polygon{}
	for _, v := range pts {
		p.Push(v)
	}
	if err := p.Close(); err != nil {
		return nil, err
	}
	return p, nil
}

// Push appends a vertex.  A vertex equal to the previous one is skipped,
// and nothing can be added to a closed polygon.  The return value reports
// whether the vertex was added.
func (p *Polygon) Push(v vec.Vec2) bool {
	if p.Closed {
		return false
	}
	if n := len(p.Vertices); n > 0 && p.Vertices[n-1] == v {
		return false
	}
	p.Vertices = append(p.Vertices, v)
	return true
}

// Close closes the polygon by repeating the first vertex.  At least three
// distinct vertices are required.
func (p *Polygon) Close() error {
	if p.Closed {
		return nil
	}
	ring := openRing(p.Vertices)
	if countDistinct(ring) < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", len(ring), cglab.ErrUnclosedPolygon)
	}
	p.Vertices = append(ring, ring[0])
	p.Closed = true
	return nil
}

// Ring returns the vertices without the repeated closing vertex.
func (p *Polygon) Ring() []vec.Vec2 {
	return openRing(p.Vertices)
}

// Reset removes all vertices.
func (p *Polygon) Reset() {
	p.Vertices = p.Vertices[:0]
	p.Closed = false
}

// convexRing returns the vertices of p in counter-clockwise order.  An
// error is returned if p is not closed or not convex.
func (p *Polygon) convexRing() ([]vec.Vec2, error) {
	if p == nil || !p.Closed {
		return nil, fmt.Errorf("clip polygon: %w", cglab.ErrUnclosedPolygon)
	}
	ring := Orient(p.Ring())
	if !IsConvex(ring) {
		return nil, fmt.Errorf("clip polygon: %w", cglab.ErrNonConvexPolygon)
	}
	return ring, nil
}

// SignedArea returns the area enclosed by the ring, computed with the
// shoelace formula.  The area is positive if the vertices are in
// counter-clockwise order (with y pointing up).
func SignedArea(ring []vec.Vec2) float64 {
	ring = openRing(ring)
	area := 0.0
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// Orient returns a copy of the ring in counter-clockwise order.
func Orient(ring []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(openRing(ring))
	if SignedArea(res) < 0 {
		slices.Reverse(res)
	}
	return res
}

// IsConvex reports whether the ring bounds a convex region.  The ring needs
// at least three vertices and a non-zero area; every pair of consecutive
// edges must turn in the same direction, and the edges must wind around
// the interior exactly once.  Collinear vertices are allowed.
func IsConvex(ring []vec.Vec2) bool {
	ring = Orient(ring)
	n := len(ring)
	if n < 3 || math.Abs(SignedArea(ring)) <= eps {
		return false
	}

	turn := 0.0
	for i := range n {
		a, b, c := ring[i], ring[(i+1)%n], ring[(i+2)%n]
		e1, e2 := b.Sub(a), c.Sub(b)
		cr := cross(e1, e2)
		if cr < -eps*e1.Length()*e2.Length() {
			return false
		}
		turn += math.Atan2(cr, e1.Dot(e2))
	}
	return math.Abs(turn-2*math.Pi) < 1e-6
}

// openRing drops a final vertex which repeats the first one.
func openRing(pts []vec.Vec2) []vec.Vec2 {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}

func countDistinct(pts []vec.Vec2) int {
	seen := make(map[vec.Vec2]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
