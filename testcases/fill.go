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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var scanFillScenes = []Scene{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Op:     ScanFill{Path: polygon(pt(10, 50), pt(32, 10), pt(54, 50))},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Op:     ScanFill{Path: rectangle(10, 10, 44, 44)},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Op:     ScanFill{Path: fivePointStar(32, 32, 25)},
	},
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Op:     ScanFill{Path: ringShape(32, 32, 24, 10)},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Op:     ScanFill{Path: circle(32, 32, 26).Iter(), Flatness: 0.05},
	},
	{
		Name:   "concave",
		Width:  64,
		Height: 64,
		Op: ScanFill{Path: polygon(
			pt(4, 4), pt(60, 4), pt(60, 60), pt(32, 20), pt(4, 60),
		)},
	},
}

var seedFillScenes = []Scene{
	{
		Name:   "square",
		Width:  64,
		Height: 64,
		Op: SeedFill{
			Polygons: [][]vec.Vec2{{pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)}},
			Seed:     cglab.Pixel{X: 32, Y: 32},
		},
	},
	{
		Name:   "square_recursive",
		Width:  64,
		Height: 64,
		Op: SeedFill{
			Polygons:  [][]vec.Vec2{{pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)}},
			Seed:      cglab.Pixel{X: 32, Y: 32},
			Recursive: true,
		},
	},
	{
		Name:   "annulus",
		Width:  64,
		Height: 64,
		Op: SeedFill{
			Circles: []Circle{{Center: pt(32, 32), R: 28}},
			Polygons: [][]vec.Vec2{
				{pt(22, 22), pt(42, 22), pt(42, 42), pt(22, 42)},
			},
			Seed: cglab.Pixel{X: 32, Y: 8},
		},
	},
	{
		Name:   "comb",
		Width:  64,
		Height: 64,
		Op: SeedFill{
			Polygons: [][]vec.Vec2{{
				pt(4, 4), pt(60, 4), pt(60, 60), pt(48, 60), pt(48, 16),
				pt(40, 16), pt(40, 60), pt(28, 60), pt(28, 16), pt(20, 16),
				pt(20, 60), pt(4, 60),
			}},
			Seed:      cglab.Pixel{X: 10, Y: 50},
			Recursive: true,
		},
	},
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return
		}
		for _, p := range pts[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

func fivePointStar(cx, cy, r float64) path.Path {
	// five points, connecting every second point
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// ringShape builds a square with a square hole.  Both squares have the
// same orientation, so the hole relies on the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	outer := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	inner := rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range outer {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range inner {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// regular returns the corners of a regular n-gon, counter-clockwise.
func regular(cx, cy, r float64, n int, phase float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		sin, cos := math.Sincos(phase + 2*math.Pi*float64(i)/float64(n))
		pts[i] = pt(cx+r*cos, cy+r*sin)
	}
	return pts
}

// ringsPath builds a path with one closed subpath per ring.  Rings with
// fewer than three points are skipped.
func ringsPath(rings [][]vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, ring := range rings {
			if len(ring) < 3 {
				continue
			}
			for cmd, pts := range polygon(ring...) {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
