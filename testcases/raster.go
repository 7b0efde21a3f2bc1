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
	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/conic"
	"seehuhn.de/go/cglab/line"
)

var lineScenes = []Scene{
	{
		Name:   "dda_fan",
		Width:  128,
		Height: 128,
		Op:     Lines{Method: line.MethodDDA, Segments: line.Spectrum(pt(64, 64), 60, 15)},
	},
	{
		Name:   "bresenham_float_fan",
		Width:  128,
		Height: 128,
		Op:     Lines{Method: line.MethodBresenhamFloat, Segments: line.Spectrum(pt(64, 64), 60, 15)},
	},
	{
		Name:   "bresenham_int_fan",
		Width:  128,
		Height: 128,
		Op:     Lines{Method: line.MethodBresenhamInt, Segments: line.Spectrum(pt(64, 64), 60, 15)},
	},
	{
		Name:   "bresenham_smooth_fan",
		Width:  128,
		Height: 128,
		Op:     Lines{Method: line.MethodBresenhamSmooth, Segments: line.Spectrum(pt(64, 64), 60, 15)},
	},
	{
		Name:   "wu_fan",
		Width:  128,
		Height: 128,
		Op:     Lines{Method: line.MethodWu, Segments: line.Spectrum(pt(64, 64), 60, 15)},
	},

	// near-horizontal and near-vertical lines, where the step pattern is
	// easiest to see
	{
		Name:   "wu_shallow",
		Width:  64,
		Height: 32,
		Op: Lines{Method: line.MethodWu, Segments: []cglab.Segment{
			seg(2, 4, 61, 9),
			seg(2, 12, 61, 14),
			seg(61, 20, 2, 28),
		}},
	},
	{
		Name:   "bresenham_int_steep",
		Width:  32,
		Height: 64,
		Op: Lines{Method: line.MethodBresenhamInt, Segments: []cglab.Segment{
			seg(4, 2, 9, 61),
			seg(12, 2, 14, 61),
			seg(28, 61, 20, 2),
		}},
	},
	{
		Name:   "dda_degenerate",
		Width:  16,
		Height: 16,
		Op:     Lines{Method: line.MethodDDA, Segments: []cglab.Segment{seg(8, 8, 8, 8)}},
	},
}

var conicScenes = concentric()

func concentric() []Scene {
	var res []Scene
	for _, m := range conic.Methods {
		res = append(res,
			Scene{
				Name:   m.String() + "_circles",
				Width:  128,
				Height: 128,
				Op: Conics{
					Method: m,
					Center: pt(64, 64),
					RX:     10,
					Step:   10,
					Count:  5,
				},
			},
			Scene{
				Name:   m.String() + "_ellipses",
				Width:  128,
				Height: 128,
				Op: Conics{
					Method: m,
					Center: pt(64, 64),
					RX:     30,
					RY:     15,
					Step:   10,
					Count:  4,
				},
			},
		)
	}
	return res
}
