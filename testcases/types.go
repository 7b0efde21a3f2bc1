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
	"seehuhn.de/go/cglab/horizon"
	"seehuhn.de/go/cglab/line"
	"seehuhn.de/go/cglab/transform"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene defines the input of one algorithm run.
type Scene struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Op     Operation // the algorithm and its input
}

// Operation is the algorithm to run on a scene.
type Operation interface {
	isOperation()
}

// Lines rasterizes line segments.
type Lines struct {
	Method   line.Method
	Segments []cglab.Segment
}

func (Lines) isOperation() {}

// Conics rasterizes Count concentric circles (RY == 0) or ellipses.  The
// radii grow by Step from one figure to the next.
type Conics struct {
	Method conic.Method
	Center vec.Vec2
	RX, RY float64
	Step   float64
	Count  int
}

func (Conics) isOperation() {}

// ScanFill fills a path with the scanline algorithm.  Curves are
// flattened to the given tolerance (zero means 0.1).
type ScanFill struct {
	Path     path.Path
	Flatness float64
}

func (ScanFill) isOperation() {}

// Circle is a circle outline on a seed fill canvas.
type Circle struct {
	Center vec.Vec2
	R      float64
}

// SeedFill draws border outlines and flood fills from Seed.
type SeedFill struct {
	Polygons  [][]vec.Vec2
	Circles   []Circle
	Seed      cglab.Pixel
	Recursive bool
}

func (SeedFill) isOperation() {}

// ClipRect clips segments to an upright rectangle.
type ClipRect struct {
	Window   rect.Rect
	Segments []cglab.Segment
}

func (ClipRect) isOperation() {}

// ClipConvex clips segments, and the optional Subject polygon, to a
// convex window.
type ClipConvex struct {
	Window   []vec.Vec2
	Segments []cglab.Segment
	Subject  []vec.Vec2
}

func (ClipConvex) isOperation() {}

// Horizon draws one of the named sample surfaces.
type Horizon struct {
	Surface          string
	X, Z             horizon.Grid
	Scale            float64
	RotX, RotY, RotZ float64
}

func (Horizon) isOperation() {}

// Incenters searches two point sets for the triangle pair with the
// flattest line between incenters.
type Incenters struct {
	A, B []vec.Vec2
}

func (Incenters) isOperation() {}

// Transform applies Actions, in order, to the region bounded by y = x²,
// y = exp(x) and y = exp(-x), and then takes back the last Undo of them.
// The boundary is sampled every Step units (zero means 0.02).
type Transform struct {
	Step    float64
	Actions []transform.Action
	Undo    int
}

func (Transform) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func seg(x1, y1, x2, y2 float64) cglab.Segment {
	return cglab.Segment{A: pt(x1, y1), B: pt(x2, y2)}
}
