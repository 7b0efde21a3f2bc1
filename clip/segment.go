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
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// ClipSegment clips the segment s to the convex polygon clip.  The second
// return value is false if no part of the segment lies inside the polygon.
// An error is returned if the polygon is not closed or not convex.
//
// For every edge, the segment parameter where the segment crosses the
// edge's line bounds the visible parameter range from below (entering) or
// above (leaving).  Segments parallel to an edge are either entirely
// inside or entirely outside its half-plane.
func ClipSegment(s cglab.Segment, clip *Polygon) (cglab.Segment, bool, error) {
	ring, err := clip.convexRing()
	if err != nil {
		return cglab.Segment{}, false, err
	}
	res, ok := clipSegment(s, ring)
	return res, ok, nil
}

func clipSegment(s cglab.Segment, ring []vec.Vec2) (cglab.Segment, bool) {
	d := s.B.Sub(s.A)
	tMin, tMax := 0.0, 1.0

	n := len(ring)
	for i, a := range ring {
		f := ring[(i+1)%n].Sub(a)
		normal := vec.Vec2{X: -f.Y, Y: f.X} // inward, since ring is counter-clockwise

		dn := d.Dot(normal)
		wn := s.A.Sub(a).Dot(normal)
		if math.Abs(dn) <= eps*d.Length()*normal.Length() {
			if wn < 0 {
				return cglab.Segment{}, false
			}
			continue
		}

		t := -wn / dn
		if dn > 0 {
			if t > 1 {
				return cglab.Segment{}, false
			}
			tMin = max(tMin, t)
		} else {
			if t < 0 {
				return cglab.Segment{}, false
			}
			tMax = min(tMax, t)
		}
	}

	if tMin > tMax {
		return cglab.Segment{}, false
	}
	res := s
	if tMin > 0 {
		res.A = s.At(tMin)
	}
	if tMax < 1 {
		res.B = s.At(tMax)
	}
	return res, true
}

// ClipSegments clips every segment to the convex polygon clip and returns
// the visible parts, in order.
func ClipSegments(segs []cglab.Segment, clip *Polygon) ([]cglab.Segment, error) {
	ring, err := clip.convexRing()
	if err != nil {
		return nil, err
	}

	var res []cglab.Segment
	for _, s := range segs {
		if v, ok := clipSegment(s, ring); ok {
			res = append(res, v)
		}
	}
	cglab.Logger().Debug("clip segments",
		"edges", len(ring),
		"in", len(segs),
		"visible", len(res))
	return res, nil
}
