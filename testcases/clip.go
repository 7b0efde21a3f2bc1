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

package testcases

import (
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/line"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var clipScenes = []Scene{
	{
		Name:   "rect_fan",
		Width:  128,
		Height: 128,
		Op: ClipRect{
			Window:   rect.Rect{LLx: 32, LLy: 40, URx: 96, URy: 88},
			Segments: line.Spectrum(pt(64, 64), 60, 10),
		},
	},
	{
		Name:   "rect_outside",
		Width:  128,
		Height: 128,
		Op: ClipRect{
			Window: rect.Rect{LLx: 32, LLy: 32, URx: 96, URy: 96},
			Segments: []cglab.Segment{
				seg(4, 4, 124, 20),   // below
				seg(4, 100, 28, 124), // corner region
				seg(0, 64, 127, 64),  // through
				seg(16, 48, 80, 112), // diagonal, both ends out
				seg(40, 40, 90, 90),  // inside
			},
		},
	},
	{
		Name:   "hexagon_fan",
		Width:  128,
		Height: 128,
		Op: ClipConvex{
			Window:   regular(64, 64, 40, 6, 0),
			Segments: line.Spectrum(pt(64, 64), 60, 10),
		},
	},
	{
		Name:   "hexagon_grid",
		Width:  128,
		Height: 128,
		Op: ClipConvex{
			Window:   regular(64, 64, 48, 6, 0.3),
			Segments: grid(8, 8, 120, 120, 16),
		},
	},
	{
		Name:   "triangle_star",
		Width:  128,
		Height: 128,
		Op: ClipConvex{
			Window:  []vec.Vec2{pt(10, 20), pt(118, 30), pt(60, 120)},
			Subject: starPoints(64, 64, 56, 24),
		},
	},
	{
		Name:   "octagon_square",
		Width:  128,
		Height: 128,
		Op: ClipConvex{
			Window:  regular(64, 64, 50, 8, 0),
			Subject: []vec.Vec2{pt(20, 20), pt(120, 20), pt(120, 120), pt(20, 120)},
		},
	},
}

// grid returns the lines of a square grid.
func grid(x1, y1, x2, y2, gap float64) []cglab.Segment {
	var res []cglab.Segment
	for x := x1; x <= x2; x += gap {
		res = append(res, seg(x, y1, x, y2))
	}
	for y := y1; y <= y2; y += gap {
		res = append(res, seg(x1, y, x2, y))
	}
	return res
}

// starPoints returns the outline of a five-pointed star, alternating
// between the outer and the inner radius.
func starPoints(cx, cy, outer, inner float64) []vec.Vec2 {
	o := regular(cx, cy, outer, 5, 0.5)
	in := regular(cx, cy, inner, 5, 0.5+math.Pi/5)
	res := make([]vec.Vec2, 0, 10)
	for i := range 5 {
		res = append(res, o[i], in[i])
	}
	return res
}
