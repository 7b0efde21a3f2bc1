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

// Package horizon draws surfaces y = f(x, z) using the floating horizon
// hidden line algorithm.
//
// The surface is sampled along curves of constant z, from the front
// (largest z) to the back.  For every screen column the renderer keeps the
// highest and the lowest y drawn so far.  A point of a later curve is
// visible only if it lies above the upper or below the lower horizon.
package horizon

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
)

// Grid is a range of sample positions Begin, Begin+Step, ..., up to End.
type Grid struct {
	Begin, End, Step float64
}

// Len returns the number of sample positions.
func (g Grid) Len() int {
	if !(g.Step > 0) || g.End < g.Begin {
		return 0
	}
	return int(math.Floor((g.End-g.Begin)/g.Step+1e-9)) + 1
}

// At returns the i-th sample position.
func (g Grid) At(i int) float64 {
	return g.Begin + float64(i)*g.Step
}

// Line is a visible line segment in screen coordinates.
type Line struct {
	A, B cglab.Pixel
}

// Renderer holds the view parameters.
type Renderer struct {
	// Width and Height give the screen size in pixels.  The origin of the
	// surface coordinates is mapped to the screen center.
	Width, Height int

	// Scale is the number of pixels per surface unit.
	Scale float64

	// RotX, RotY and RotZ are rotation angles in degrees, applied in this
	// order.
	RotX, RotY, RotZ float64
}

type state struct {
	r           *Renderer
	top, bottom []int
	lines       []Line
}

// unset marks a column which has not been drawn to yet.
const (
	unsetTop    = math.MinInt
	unsetBottom = math.MaxInt
)

// Render returns the visible parts of the surface y = f(x, z), sampled at
// the grid positions xs and zs.
func (r *Renderer) Render(f func(x, z float64) float64, xs, zs Grid) ([]Line, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("screen size %dx%d: %w", r.Width, r.Height, cglab.ErrDegenerateInput)
	}
	if xs.Len() == 0 || zs.Len() == 0 {
		return nil, fmt.Errorf("empty sample grid: %w", cglab.ErrDegenerateInput)
	}

	s := &state{
		r:      r,
		top:    make([]int, r.Width),
		bottom: make([]int, r.Width),
	}
	for i := range s.top {
		s.top[i] = unsetTop
		s.bottom[i] = unsetBottom
	}

	var left, right *cglab.Pixel
	for k := zs.Len() - 1; k >= 0; k-- {
		z := zs.At(k)

		var prev cglab.Pixel
		prevVis := 0
		first := true
		for i := range xs.Len() {
			x := xs.At(i)
			cur := r.Project(x, f(x, z), z)
			if !s.inside(cur.X) {
				continue
			}
			vis := s.visibility(cur)
			if first {
				if left != nil {
					s.draw(*left, cur)
				}
				p := cur
				left = &p
				first = false
			} else {
				s.segment(prev, prevVis, cur, vis)
			}
			prev, prevVis = cur, vis
		}
		if !first {
			if right != nil {
				s.draw(*right, prev)
			}
			p := prev
			right = &p
		}
	}

	cglab.Logger().Debug("horizon",
		"curves", zs.Len(),
		"samples", xs.Len(),
		"lines", len(s.lines))
	return s.lines, nil
}

// segment handles the piece of a curve between two consecutive samples.
func (s *state) segment(prev cglab.Pixel, prevVis int, cur cglab.Pixel, vis int) {
	switch {
	case vis == prevVis:
		if vis != 0 {
			s.draw(prev, cur)
		}
	case vis == 0:
		hor := s.top
		if prevVis < 0 {
			hor = s.bottom
		}
		s.draw(prev, s.intersect(prev, cur, hor))
	case prevVis == 0:
		hor := s.top
		if vis < 0 {
			hor = s.bottom
		}
		s.draw(s.intersect(prev, cur, hor), cur)
	default:
		// crossing from above the upper horizon to below the lower one,
		// or the other way round
		hor1, hor2 := s.top, s.bottom
		if prevVis < 0 {
			hor1, hor2 = s.bottom, s.top
		}
		s.draw(prev, s.intersect(prev, cur, hor1))
		s.draw(s.intersect(prev, cur, hor2), cur)
	}
}

func (s *state) inside(x int) bool {
	return x >= 0 && x < s.r.Width
}

// visibility returns 1 if p is on or above the upper horizon, -1 if p is on
// or below the lower horizon, and 0 if p is hidden.
func (s *state) visibility(p cglab.Pixel) int {
	switch {
	case p.Y >= s.top[p.X]:
		return 1
	case p.Y <= s.bottom[p.X]:
		return -1
	default:
		return 0
	}
}

// intersect finds the first column between a and b where the straight line
// from a to b crosses the given horizon.
func (s *state) intersect(a, b cglab.Pixel, hor []int) cglab.Pixel {
	if a.X == b.X {
		if hor[b.X] == unsetTop || hor[b.X] == unsetBottom {
			return b
		}
		return cglab.Pixel{X: b.X, Y: hor[b.X]}
	}

	step := 1
	if b.X < a.X {
		step = -1
	}
	m := float64(b.Y-a.Y) / float64(b.X-a.X)
	above := a.Y >= hor[a.X]
	for x := a.X + step; x != b.X; x += step {
		y := int(math.Round(float64(a.Y) + m*float64(x-a.X)))
		if (y >= hor[x]) != above {
			return cglab.Pixel{X: x, Y: y}
		}
	}
	return b
}

// draw records the line from a to b and raises the horizons along it.
func (s *state) draw(a, b cglab.Pixel) {
	if !s.inside(a.X) || !s.inside(b.X) {
		return
	}
	s.lines = append(s.lines, Line{A: a, B: b})

	if a.X > b.X {
		a, b = b, a
	}
	if a.X == b.X {
		s.update(a.X, a.Y)
		s.update(b.X, b.Y)
		return
	}
	m := float64(b.Y-a.Y) / float64(b.X-a.X)
	for x := a.X; x <= b.X; x++ {
		s.update(x, int(math.Round(float64(a.Y)+m*float64(x-a.X))))
	}
}

func (s *state) update(x, y int) {
	s.top[x] = max(s.top[x], y)
	s.bottom[x] = min(s.bottom[x], y)
}

// Project maps the surface point (x, y, z) to the screen.
func (r *Renderer) Project(x, y, z float64) cglab.Pixel {
	y, z = rotate(y, z, r.RotX)
	z, x = rotate(z, x, r.RotY)
	x, y = rotate(x, y, r.RotZ)
	return cglab.Pixel{
		X: int(math.Round(x*r.Scale + float64(r.Width)/2)),
		Y: int(math.Round(y*r.Scale + float64(r.Height)/2)),
	}
}

// rotate turns the vector (u, v) by deg degrees.
func rotate(u, v, deg float64) (float64, float64) {
	if deg == 0 {
		return u, v
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return u*cos - v*sin, u*sin + v*cos
}
