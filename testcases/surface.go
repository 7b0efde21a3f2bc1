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
	"strings"

	"seehuhn.de/go/cglab/horizon"
	"seehuhn.de/go/geom/vec"
)

var horizonScenes = surfaceScenes()

func surfaceScenes() []Scene {
	var res []Scene
	for _, s := range horizon.Surfaces {
		g := horizon.Grid{Begin: -3, End: 3, Step: 0.05}
		scale := 30.0
		if s.Name == "A" {
			g = horizon.Grid{Begin: 0, End: 2 * math.Pi, Step: 0.05}
			scale = 20
		}
		zs := g
		zs.Step = 0.25
		res = append(res, Scene{
			Name:   "surface_" + strings.ToLower(s.Name),
			Width:  320,
			Height: 240,
			Op: Horizon{
				Surface: s.Name,
				X:       g,
				Z:       zs,
				Scale:   scale,
				RotX:    25,
				RotY:    15,
			},
		})
	}
	return res
}

var incenterScenes = []Scene{
	{
		Name:   "two_sets",
		Width:  128,
		Height: 128,
		Op: Incenters{
			A: []vec.Vec2{pt(8, 10), pt(50, 12), pt(20, 60), pt(40, 40), pt(10, 90)},
			B: []vec.Vec2{pt(70, 20), pt(120, 30), pt(90, 80), pt(110, 110)},
		},
	},
	{
		Name:   "collinear",
		Width:  64,
		Height: 64,
		Op: Incenters{
			A: []vec.Vec2{pt(4, 4), pt(16, 16), pt(28, 28)},
			B: []vec.Vec2{pt(40, 10), pt(60, 12), pt(50, 40)},
		},
	},
}
