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

// Package conic rasterizes circles and ellipses.
//
// Each shape is available through four algorithms: the canonical equation,
// the parametric form, the midpoint algorithm and Bresenham's algorithm.
// The algorithms compute one octant (circles) or one quadrant (ellipses)
// and obtain the rest of the outline by symmetry, so the returned pixel
// lists may contain duplicates on the axes and on the diagonals.
//
// Centers are rounded to the nearest pixel.  Radii must be finite and at
// least one half, otherwise [cglab.ErrInvalidRadius] is returned.
package conic

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// CircleCanonical rasterizes a circle by evaluating y = sqrt(r²-x²) for
// every integer x in the first octant.
func CircleCanonical(center vec.Vec2, r float64) ([]cglab.Pixel, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	c := cglab.Round(center)

	var res []cglab.Pixel
	r2 := r * r
	xMax := r/math.Sqrt2 + 1
	for x := 0; float64(x) <= xMax; x++ {
		y := math.Round(math.Sqrt(max(0, r2-float64(x*x))))
		res = plot8(res, c, x, int(y))
	}
	return res, nil
}

// CircleParametric rasterizes a circle by sampling (r·cos t, r·sin t) for
// t in [0, π/4] with step 1/r.
func CircleParametric(center vec.Vec2, r float64) ([]cglab.Pixel, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	c := cglab.Round(center)

	var res []cglab.Pixel
	step := 1 / r
	for t := 0.0; t <= math.Pi/4; t += step {
		sin, cos := math.Sincos(t)
		res = plot8(res, c, int(math.Round(r*cos)), int(math.Round(r*sin)))
	}
	return res, nil
}

// CircleMidpoint rasterizes a circle using the midpoint algorithm.  The
// decision variable is scaled by four so that only integer arithmetic is
// needed; it starts at 5-4r.
func CircleMidpoint(center vec.Vec2, r float64) ([]cglab.Pixel, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	c := cglab.Round(center)
	ri := int(math.Round(r))

	var res []cglab.Pixel
	x, y := 0, ri
	trial := 5 - 4*ri
	for x <= y {
		res = plot8(res, c, x, y)
		x++
		if trial > 0 {
			y--
			trial -= 8 * y
		}
		trial += 8*x + 4
	}
	return res, nil
}

// CircleBresenham rasterizes a circle using Bresenham's algorithm.  The
// error term measures the deviation of the diagonal neighbour from the
// ideal circle and selects between a horizontal, a diagonal and a
// vertical step.
func CircleBresenham(center vec.Vec2, r float64) ([]cglab.Pixel, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	c := cglab.Round(center)
	ri := int(math.Round(r))

	var res []cglab.Pixel
	x, y := 0, ri
	capDelta := 2 * (1 - ri)
	for y >= x {
		res = plot8(res, c, x, y)

		switch {
		case capDelta < 0:
			delta := 2*capDelta + 2*y - 1
			x++
			if delta <= 0 {
				capDelta += 2*x + 1
			} else {
				y--
				capDelta += 2 * (x - y + 1)
			}
		case capDelta > 0:
			delta := 2*capDelta - 2*x - 1
			y--
			if delta <= 0 {
				x++
				capDelta += 2 * (x - y + 1)
			} else {
				capDelta += 1 - 2*y
			}
		default:
			x++
			y--
			capDelta += 2 * (x - y + 1)
		}
	}
	return res, nil
}

// plot8 appends the eight symmetric images of the octant point (x, y).
func plot8(res []cglab.Pixel, c cglab.Pixel, x, y int) []cglab.Pixel {
	return append(res,
		cglab.Pixel{X: c.X + x, Y: c.Y + y}, cglab.Pixel{X: c.X + y, Y: c.Y + x},
		cglab.Pixel{X: c.X - x, Y: c.Y + y}, cglab.Pixel{X: c.X - y, Y: c.Y + x},
		cglab.Pixel{X: c.X + x, Y: c.Y - y}, cglab.Pixel{X: c.X + y, Y: c.Y - x},
		cglab.Pixel{X: c.X - x, Y: c.Y - y}, cglab.Pixel{X: c.X - y, Y: c.Y - x},
	)
}

// checkRadius rejects radii which are not positive and finite.  Radii below
// one half round to zero pixels and are rejected as well, since the integer
// algorithms cannot step along a zero axis.
func checkRadius(radii ...float64) error {
	for _, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("radius %g: %w", r, cglab.ErrInvalidRadius)
		}
		if math.Round(r) == 0 {
			return fmt.Errorf("radius %g rounds to zero: %w", r, cglab.ErrInvalidRadius)
		}
	}
	return nil
}
