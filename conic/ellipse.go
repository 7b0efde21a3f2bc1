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

package conic

import (
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// The integer ellipse algorithms use 64-bit arithmetic.  The largest
// intermediate values are of order a²·b, so semi-axes up to about 10⁵
// pixels are safe.

// EllipseCanonical rasterizes an axis-aligned ellipse with semi-axes a
// (along x) and b (along y) from its canonical equation.  The first pass
// steps x up to the point where the slope of the outline is -1, the second
// pass steps y over the remaining part of the quadrant.
func EllipseCanonical(center vec.Vec2, a, b float64) ([]cglab.Pixel, error) {
	if err := checkRadius(a, b); err != nil {
		return nil, err
	}
	c := cglab.Round(center)

	var res []cglab.Pixel
	a2, b2 := a*a, b*b
	hyp := math.Sqrt(a2 + b2)

	k := b / a
	xMax := a2/hyp + 1
	for x := 0; float64(x) <= xMax; x++ {
		fx := float64(x)
		y := k * math.Sqrt(max(0, a2-fx*fx))
		res = plot4(res, c, x, int(math.Round(y)))
	}

	k = a / b
	yMax := b2/hyp + 1
	for y := 0; float64(y) <= yMax; y++ {
		fy := float64(y)
		x := k * math.Sqrt(max(0, b2-fy*fy))
		res = plot4(res, c, int(math.Round(x)), y)
	}
	return res, nil
}

// EllipseParametric rasterizes an ellipse by sampling (a·cos t, b·sin t)
// for t in [0, π/2] with step 1/max(a, b).
func EllipseParametric(center vec.Vec2, a, b float64) ([]cglab.Pixel, error) {
	if err := checkRadius(a, b); err != nil {
		return nil, err
	}
	c := cglab.Round(center)

	var res []cglab.Pixel
	step := 1 / max(a, b)
	for t := 0.0; t <= math.Pi/2; t += step {
		sin, cos := math.Sincos(t)
		res = plot4(res, c, int(math.Round(a*cos)), int(math.Round(b*sin)))
	}
	return res, nil
}

// EllipseMidpoint rasterizes an ellipse using the midpoint algorithm.  The
// quadrant is split where the outline's slope crosses -1: in the first
// interval x advances on every step, in the second interval y does.
func EllipseMidpoint(center vec.Vec2, a, b float64) ([]cglab.Pixel, error) {
	if err := checkRadius(a, b); err != nil {
		return nil, err
	}
	c := cglab.Round(center)
	ra := int64(math.Round(a))
	rb := int64(math.Round(b))

	var res []cglab.Pixel
	a2, b2 := ra*ra, rb*rb
	a22, b22 := 2*a2, 2*b2

	x, y := int64(0), rb
	trial := 2 * (b22 - a22*(rb-1))
	dx, dy := int64(0), a22*y
	for dx <= dy {
		res = plot4(res, c, int(x), int(y))
		x++
		dx += b22
		if trial >= 0 {
			y--
			dy -= a22
			trial -= 4 * dy
		}
		trial += 4 * (dx + b2)
	}

	trial -= 4 * (b2*(x+3) + a2*(y-3))
	for dy >= 0 {
		res = plot4(res, c, int(x), int(y))
		y--
		dy -= a22
		if trial < 0 {
			x++
			dx += b22
			trial += 4 * dx
		}
		trial -= 4 * (dy - a2)
	}
	return res, nil
}

// EllipseBresenham rasterizes an ellipse using Bresenham's algorithm.
// Starting at (0, b) it walks the first quadrant until y becomes negative,
// choosing between a horizontal, a diagonal and a vertical step.
func EllipseBresenham(center vec.Vec2, a, b float64) ([]cglab.Pixel, error) {
	if err := checkRadius(a, b); err != nil {
		return nil, err
	}
	c := cglab.Round(center)
	ra := int64(math.Round(a))
	rb := int64(math.Round(b))

	var res []cglab.Pixel
	a2, b2 := ra*ra, rb*rb

	x, y := int64(0), rb
	capDelta := b2 - a2*(2*rb-1)
	diagonal := func() {
		x++
		y--
		capDelta += 2*x*b2 - 2*y*a2 + a2 + b2
	}
	for y >= 0 {
		res = plot4(res, c, int(x), int(y))

		switch {
		case capDelta < 0:
			delta := 2*capDelta + a2*(2*y-1)
			if delta <= 0 {
				x++
				capDelta += b2 * (2*x + 1)
			} else {
				diagonal()
			}
		case capDelta > 0:
			delta := 2*capDelta - b2*(2*x+1)
			if delta <= 0 {
				diagonal()
			} else {
				y--
				capDelta += a2 * (1 - 2*y)
			}
		default:
			diagonal()
		}
	}
	return res, nil
}

// plot4 appends the four symmetric images of the quadrant point (x, y).
func plot4(res []cglab.Pixel, c cglab.Pixel, x, y int) []cglab.Pixel {
	return append(res,
		cglab.Pixel{X: c.X + x, Y: c.Y + y},
		cglab.Pixel{X: c.X - x, Y: c.Y + y},
		cglab.Pixel{X: c.X + x, Y: c.Y - y},
		cglab.Pixel{X: c.X - x, Y: c.Y - y},
	)
}
