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

// Package line implements line rasterization algorithms.
//
// All functions take two end points and return the pixels which approximate
// the segment between them, ordered from the first end point towards the
// second.  The functions are stateless and can be called concurrently.
//
// If both end points coincide (after rounding, for the integer algorithms)
// exactly one pixel is returned.
package line

import (
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// DDA rasterizes the segment from a to b using the digital differential
// analyzer.  The number of pixels is ceil(max(|dx|, |dy|)); the pixel
// positions are obtained by repeatedly adding a fixed increment and
// rounding.
func DDA(a, b vec.Vec2) []cglab.Pixel {
	if a == b {
		return []cglab.Pixel{cglab.Round(a)}
	}

	d := b.Sub(a)
	n := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	inc := d.Mul(1 / float64(n))

	res := make([]cglab.Pixel, 0, n)
	p := a
	for range n {
		res = append(res, cglab.Round(p))
		p = p.Add(inc)
	}
	return res
}

// BresenhamFloat rasterizes the segment from a to b using Bresenham's
// algorithm with a real valued error term.  The error starts at m-0.5,
// where m is the slope along the major axis, and the minor axis advances
// whenever the sign bit of the error is clear.
//
// The end points are rounded to pixels first.  The result contains
// max(|dx|, |dy|) pixels, starting at a and excluding b.
func BresenhamFloat(a, b vec.Vec2) []cglab.Pixel {
	s, ok := newStepper(a, b)
	if !ok {
		return []cglab.Pixel{s.pixel()}
	}

	res := make([]cglab.Pixel, 0, s.major)
	m := float64(s.minor) / float64(s.major)
	e := m - 0.5
	for range s.major {
		res = append(res, s.pixel())
		if !math.Signbit(e) {
			s.stepMinor()
			e -= 1
		}
		s.stepMajor()
		e += m
	}
	return res
}

// BresenhamInt rasterizes the segment from a to b using the integer form of
// Bresenham's algorithm.  The error term starts at 2·dy-dx and the minor
// axis advances whenever the error is non-negative.
//
// The end points are rounded to pixels first.  The result contains
// max(|dx|, |dy|) pixels, starting at a and excluding b.
func BresenhamInt(a, b vec.Vec2) []cglab.Pixel {
	s, ok := newStepper(a, b)
	if !ok {
		return []cglab.Pixel{s.pixel()}
	}

	res := make([]cglab.Pixel, 0, s.major)
	e := 2*s.minor - s.major
	for range s.major {
		res = append(res, s.pixel())
		if e >= 0 {
			s.stepMinor()
			e -= 2 * s.major
		}
		s.stepMajor()
		e += 2 * s.minor
	}
	return res
}

// BresenhamSmooth rasterizes the segment from a to b using Bresenham's
// algorithm with intensity weighting.  There is one output pixel per
// major-axis step; its intensity is the current value of the weight e,
// which starts at half of [cglab.MaxIntensity] and is compared against
// w = 255 - 255·dy/dx to decide between an axial and a diagonal step.
//
// This is a single sample approximation and differs from the two pixel per
// step Gupta–Sproull scheme.
func BresenhamSmooth(a, b vec.Vec2) []cglab.Shade {
	s, ok := newStepper(a, b)
	if !ok {
		return []cglab.Shade{{Pixel: s.pixel(), I: cglab.MaxIntensity}}
	}

	res := make([]cglab.Shade, 0, s.major)
	m := cglab.MaxIntensity * float64(s.minor) / float64(s.major)
	w := cglab.MaxIntensity - m
	e := cglab.MaxIntensity / 2.0
	for range s.major {
		res = append(res, cglab.Shade{Pixel: s.pixel(), I: e})
		if e < w {
			s.stepMajor()
			e += m
		} else {
			s.stepMajor()
			s.stepMinor()
			e -= w
		}
	}
	return res
}

// Wu rasterizes the segment from a to b using Xiaolin Wu's algorithm.
// The two end points are emitted first, with full intensity.  Then, for
// every column strictly between the end points along the major axis, two
// pixels are emitted: the pixel y = floor(t) with intensity 255·f and the
// pixel y+1 with intensity 255·(1-f), where t is the ideal minor coordinate
// and f = t - y its fractional part.
//
// The end points are rounded to pixels first.  On non-negative coordinates
// floor and truncation agree; floor keeps f in [0, 1) left of the origin.
func Wu(a, b vec.Vec2) []cglab.Shade {
	p0 := cglab.Round(a)
	p1 := cglab.Round(b)
	if p0 == p1 {
		return []cglab.Shade{{Pixel: p0, I: cglab.MaxIntensity}}
	}

	res := make([]cglab.Shade, 0, 2*max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)))
	res = append(res,
		cglab.Shade{Pixel: p0, I: cglab.MaxIntensity},
		cglab.Shade{Pixel: p1, I: cglab.MaxIntensity})

	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x1 < x0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	grad := 1.0
	if dx != 0 {
		grad = float64(dy) / float64(dx)
	}

	plot := func(x, y int, i float64) {
		if steep {
			x, y = y, x
		}
		res = append(res, cglab.Shade{Pixel: cglab.Pixel{X: x, Y: y}, I: i})
	}

	intery := float64(y0) + grad
	for x := x0 + 1; x < x1; x++ {
		fy := math.Floor(intery)
		f := intery - fy
		y := int(fy)
		plot(x, y, cglab.MaxIntensity*f)
		plot(x, y+1, cglab.MaxIntensity*(1-f))
		intery += grad
	}
	return res
}

// stepper holds the state shared by the Bresenham variants.  The major axis
// is x unless swapped is set.
type stepper struct {
	x, y    int
	sx, sy  int
	major   int // number of steps along the major axis
	minor   int // extent along the minor axis
	swapped bool
}

// newStepper rounds the end points and sets up the axis bookkeeping.
// It returns false if both end points round to the same pixel.
func newStepper(a, b vec.Vec2) (*stepper, bool) {
	p0 := cglab.Round(a)
	p1 := cglab.Round(b)
	s := &stepper{x: p0.X, y: p0.Y}
	if p0 == p1 {
		return s, false
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	s.sx = sign(dx)
	s.sy = sign(dy)
	dx, dy = abs(dx), abs(dy)
	if dx > dy {
		s.major, s.minor = dx, dy
	} else {
		s.major, s.minor = dy, dx
		s.swapped = true
	}
	return s, true
}

func (s *stepper) pixel() cglab.Pixel {
	return cglab.Pixel{X: s.x, Y: s.y}
}

func (s *stepper) stepMajor() {
	if s.swapped {
		s.y += s.sy
	} else {
		s.x += s.sx
	}
}

func (s *stepper) stepMinor() {
	if s.swapped {
		s.x += s.sx
	} else {
		s.y += s.sy
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
