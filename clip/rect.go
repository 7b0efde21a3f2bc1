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
	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode bits, classifying a point relative to the clip rectangle.
const (
	outBelow = 1 << iota // y < LLy
	outAbove             // y > URy
	outRight             // x > URx
	outLeft              // x < LLx
)

// maxClipSteps bounds the number of intersection steps.  Every step moves
// one end point onto a rectangle edge, so four steps suffice for
// well-behaved input.
const maxClipSteps = 8

func outcode(p vec.Vec2, r rect.Rect) int {
	code := 0
	if p.X < r.LLx {
		code |= outLeft
	} else if p.X > r.URx {
		code |= outRight
	}
	if p.Y < r.LLy {
		code |= outBelow
	} else if p.Y > r.URy {
		code |= outAbove
	}
	return code
}

// CohenSutherland clips the segment s to the rectangle r.  The second
// return value is false if no part of the segment is visible.
//
// Segments entirely inside r are returned unchanged.  The function also
// reports false, instead of looping, if r is inverted or if rounding keeps
// an end point from converging onto the rectangle.
func CohenSutherland(s cglab.Segment, r rect.Rect) (cglab.Segment, bool) {
	if r.LLx > r.URx || r.LLy > r.URy {
		return cglab.Segment{}, false
	}

	a, b := s.A, s.B
	codeA, codeB := outcode(a, r), outcode(b, r)
	for range maxClipSteps {
		if codeA|codeB == 0 {
			return cglab.Segment{A: a, B: b}, true
		}
		if codeA&codeB != 0 {
			return cglab.Segment{}, false
		}

		code := codeA
		if code == 0 {
			code = codeB
		}

		d := b.Sub(a)
		var p vec.Vec2
		switch {
		case code&outAbove != 0:
			if d.Y == 0 {
				return cglab.Segment{}, false
			}
			p = vec.Vec2{X: a.X + d.X*(r.URy-a.Y)/d.Y, Y: r.URy}
		case code&outBelow != 0:
			if d.Y == 0 {
				return cglab.Segment{}, false
			}
			p = vec.Vec2{X: a.X + d.X*(r.LLy-a.Y)/d.Y, Y: r.LLy}
		case code&outRight != 0:
			if d.X == 0 {
				return cglab.Segment{}, false
			}
			p = vec.Vec2{X: r.URx, Y: a.Y + d.Y*(r.URx-a.X)/d.X}
		default: // outLeft
			if d.X == 0 {
				return cglab.Segment{}, false
			}
			p = vec.Vec2{X: r.LLx, Y: a.Y + d.Y*(r.LLx-a.X)/d.X}
		}

		if code == codeA {
			a, codeA = p, outcode(p, r)
		} else {
			b, codeB = p, outcode(p, r)
		}
	}
	return cglab.Segment{}, false
}
