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

package clip

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// ClipPolygon clips the subject polygon to the convex polygon clip.  The
// subject may be given with or without a repeated closing vertex; it need
// not be convex.
//
// The result is closed (its first vertex is repeated at the end), or empty
// if the polygons do not overlap or only touch.  An error is returned if clip is not
// closed or not convex, or if the subject has fewer than three distinct
// vertices.
func ClipPolygon(subject []vec.Vec2, clip *Polygon) ([]vec.Vec2, error) {
	ring, err := clip.convexRing()
	if err != nil {
		return nil, err
	}
	out := openRing(subject)
	if countDistinct(out) < 3 {
		return nil, fmt.Errorf("subject polygon with %d vertices: %w",
			len(out), cglab.ErrUnclosedPolygon)
	}

	log := cglab.Logger()
	n := len(ring)
	for i, b := range ring {
		e := ring[(i+1)%n]
		out = clipToEdge(out, b, e)
		log.Debug("clip stage", "edge", i, "vertices", len(out))
		if len(out) == 0 {
			return nil, nil
		}
	}
	if countDistinct(out) < 3 || math.Abs(SignedArea(out)) <= eps {
		// the polygons only touch along an edge or at a vertex
		return nil, nil
	}
	return append(out, out[0]), nil
}

// clipToEdge keeps the part of the ring which lies to the left of the
// directed line from b to e.
func clipToEdge(in []vec.Vec2, b, e vec.Vec2) []vec.Vec2 {
	var out []vec.Vec2

	dir := e.Sub(b)
	tol := eps * dir.Length()
	side := func(p vec.Vec2) float64 {
		return cross(dir, p.Sub(b))
	}

	prev := in[len(in)-1]
	sPrev := side(prev)
	for _, cur := range in {
		sCur := side(cur)
		if (sPrev > tol && sCur < -tol) || (sPrev < -tol && sCur > tol) {
			if p, ok := intersect(prev, cur, b, e); ok {
				out = append(out, p)
			}
		}
		if sCur >= -tol {
			out = append(out, cur)
		}
		prev, sPrev = cur, sCur
	}
	return out
}

// intersect returns the intersection point of the lines through p0, p1
// and q0, q1.  The second return value is false if the lines are parallel.
func intersect(p0, p1, q0, q1 vec.Vec2) (vec.Vec2, bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	det := cross(d1, d2)
	if math.Abs(det) <= eps*d1.Length()*d2.Length() {
		return vec.Vec2{}, false
	}
	t := cross(q0.Sub(p0), d2) / det
	return p0.Add(d1.Mul(t)), true
}
