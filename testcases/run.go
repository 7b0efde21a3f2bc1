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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/clip"
	"seehuhn.de/go/cglab/conic"
	"seehuhn.de/go/cglab/horizon"
	"seehuhn.de/go/cglab/incenter"
	"seehuhn.de/go/cglab/line"
	"seehuhn.de/go/cglab/scanfill"
	"seehuhn.de/go/cglab/seedfill"
	"seehuhn.de/go/cglab/transform"
	"seehuhn.de/go/geom/vec"
)

// Colors used on seed fill canvases.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Border     = color.RGBA{A: 255}
	FillColor  = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

// Output is the result of running the algorithm of a scene.  Only the
// fields which make sense for the operation are set.
type Output struct {
	Shades   []cglab.Shade   // rasterized pixels
	Spans    []cglab.Span    // filled spans
	Window   []vec.Vec2      // clip window outline
	Input    []cglab.Segment // segments before clipping
	Segments []cglab.Segment // vector output
	Polygons [][]vec.Vec2    // filled vector polygons
	Image    *image.RGBA     // canvas of seed fill scenes
}

// Run executes the algorithm of scene s.
func Run(s Scene) (*Output, error) {
	out := &Output{}
	switch op := s.Op.(type) {
	case Lines:
		for _, l := range op.Segments {
			out.Shades = append(out.Shades, line.Draw(op.Method, l.A, l.B)...)
		}

	case Conics:
		var figs [][]cglab.Pixel
		var err error
		if op.RY == 0 {
			figs, err = conic.ConcentricCircles(op.Method, op.Center, op.RX, op.Step, op.Count)
		} else {
			figs, err = conic.ConcentricEllipses(op.Method, op.Center, op.RX, op.RY, op.Step, op.Count)
		}
		if err != nil {
			return nil, err
		}
		for _, fig := range figs {
			for _, p := range fig {
				out.Shades = append(out.Shades, cglab.Shade{Pixel: p, I: cglab.MaxIntensity})
			}
		}

	case ScanFill:
		flatness := op.Flatness
		if flatness <= 0 {
			flatness = 0.1
		}
		shape := &scanfill.Shape{}
		shape.AppendPath(op.Path, flatness)
		spans, err := scanfill.Fill(shape)
		if err != nil {
			return nil, err
		}
		out.Spans = spans

	case SeedFill:
		c := seedfill.NewCanvas(s.Width, s.Height, Background)
		for _, p := range op.Polygons {
			c.DrawPolygon(Border, p...)
		}
		for _, circ := range op.Circles {
			if err := c.DrawCircle(Border, circ.Center, circ.R); err != nil {
				return nil, err
			}
		}
		fill := seedfill.Fill
		if op.Recursive {
			fill = seedfill.FillRecursive
		}
		res, err := fill(c, op.Seed, FillColor, Border)
		if err != nil {
			return nil, err
		}
		out.Spans = res.Spans
		out.Image = c.Image()

	case ClipRect:
		r := op.Window
		out.Window = []vec.Vec2{
			{X: r.LLx, Y: r.LLy}, {X: r.URx, Y: r.LLy},
			{X: r.URx, Y: r.URy}, {X: r.LLx, Y: r.URy},
		}
		out.Input = op.Segments
		for _, l := range op.Segments {
			if v, ok := clip.CohenSutherland(l, r); ok {
				out.Segments = append(out.Segments, v)
			}
		}

	case ClipConvex:
		window, err := clip.NewPolygon(op.Window...)
		if err != nil {
			return nil, err
		}
		out.Window = op.Window
		out.Input = op.Segments
		out.Segments, err = clip.ClipSegments(op.Segments, window)
		if err != nil {
			return nil, err
		}
		if len(op.Subject) > 0 {
			res, err := clip.ClipPolygon(op.Subject, window)
			if err != nil {
				return nil, err
			}
			if res != nil {
				out.Polygons = append(out.Polygons, res)
			}
		}

	case Horizon:
		surf, ok := horizon.Lookup(op.Surface)
		if !ok {
			return nil, fmt.Errorf("unknown surface %q", op.Surface)
		}
		r := &horizon.Renderer{
			Width:  s.Width,
			Height: s.Height,
			Scale:  op.Scale,
			RotX:   op.RotX,
			RotY:   op.RotY,
			RotZ:   op.RotZ,
		}
		lines, err := r.Render(surf.F, op.X, op.Z)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			out.Segments = append(out.Segments, cglab.Segment{A: l.A.Vec(), B: l.B.Vec()})
		}

	case Incenters:
		res, ok := incenter.Search(op.A, op.B)
		if !ok {
			break
		}
		for _, t := range []incenter.Triangle{res.A, res.B} {
			out.Polygons = append(out.Polygons, t[:])
			for i := range 3 {
				out.Segments = append(out.Segments, incenter.Bisector(t[i], t[(i+1)%3], t[(i+2)%3]))
			}
		}
		out.Segments = append(out.Segments, res.Join())

	case Transform:
		step := op.Step
		if step <= 0 {
			step = 0.02
		}
		region, err := transform.Region(step)
		if err != nil {
			return nil, err
		}
		fig := &transform.Figure{Curves: [][]vec.Vec2{region}}
		for _, a := range op.Actions {
			if err := fig.Do(a); err != nil {
				return nil, err
			}
		}
		for range op.Undo {
			if !fig.Undo() {
				return nil, fmt.Errorf("cannot undo %d of %d actions", op.Undo, len(op.Actions))
			}
		}

		// the outline before the last action in effect
		if fig.Undo() {
			out.Input = outline(fig.Curves[0])
			fig.Redo()
		}
		out.Polygons = append(out.Polygons, fig.Curves[0])

	default:
		return nil, fmt.Errorf("unsupported operation %T", s.Op)
	}
	return out, nil
}

// outline returns the edges of the closed polyline pts.
func outline(pts []vec.Vec2) []cglab.Segment {
	var res []cglab.Segment
	for i := 1; i < len(pts); i++ {
		res = append(res, cglab.Segment{A: pts[i-1], B: pts[i]})
	}
	return res
}
