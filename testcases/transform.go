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

import "seehuhn.de/go/cglab/transform"

// fit maps the sample region, which spans about [-0.7, 0.7] x [0.5, 1],
// onto the middle of a 200x200 canvas.
var fit = []transform.Action{
	transform.Scale{KX: 120, KY: 120},
	transform.Translate{DX: 100, DY: 10},
}

var transformScenes = []Scene{
	{
		Name:   "region",
		Width:  200,
		Height: 200,
		Op:     Transform{Actions: fit},
	},
	{
		Name:   "rotate",
		Width:  200,
		Height: 200,
		Op: Transform{Actions: append(fit[:len(fit):len(fit)],
			transform.Rotate{Deg: 90, Center: pt(100, 100)})},
	},
	{
		Name:   "mirror",
		Width:  200,
		Height: 200,
		Op: Transform{Actions: append(fit[:len(fit):len(fit)],
			transform.Scale{KX: 1, KY: -1, Center: pt(100, 100)})},
	},
	{
		Name:   "stretch",
		Width:  200,
		Height: 200,
		Op: Transform{Actions: append(fit[:len(fit):len(fit)],
			transform.Scale{KX: 0.5, KY: 2, Center: pt(100, 100)},
			transform.Rotate{Deg: -30, Center: pt(100, 100)})},
	},
	{
		Name:   "undo",
		Width:  200,
		Height: 200,
		Op: Transform{
			Step: 0.05,
			Actions: append(fit[:len(fit):len(fit)],
				transform.Rotate{Deg: 45, Center: pt(100, 100)},
				transform.Translate{DX: 30, DY: -30}),
			Undo: 2,
		},
	},
}
