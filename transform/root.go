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

package transform

import (
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// maxBisections bounds the number of interval halvings in FindRoot.
const maxBisections = 200

// FindRoot locates a zero of f in [a, b] by bisection.  The function stops
// once the interval is shorter than tol or |f| drops below tol at the
// midpoint.  f(a) and f(b) must not have the same strict sign.
func FindRoot(f func(float64) float64, a, b, tol float64) (float64, error) {
	if !(tol > 0) || math.IsNaN(a) || math.IsNaN(b) {
		return 0, fmt.Errorf("bisection on [%g, %g] with tolerance %g: %w",
			a, b, tol, cglab.ErrDegenerateInput)
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case (fa > 0) == (fb > 0):
		return 0, fmt.Errorf("no sign change on [%g, %g]: %w", a, b, cglab.ErrDegenerateInput)
	}

	for range maxBisections {
		if b-a <= tol {
			break
		}
		c := (a + b) / 2
		fc := f(c)
		if math.Abs(fc) < tol {
			return c, nil
		}
		if (fa > 0) != (fc > 0) {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return (a + b) / 2, nil
}

// Region returns the closed boundary of the region above y = x² and
// below both y = exp(x) and y = exp(-x).  Boundary points are sampled
// every step units along the x-axis.  The boundary is counter-clockwise
// and its first point is repeated at the end.
func Region(step float64) ([]vec.Vec2, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("step %g: %w", step, cglab.ErrDegenerateInput)
	}
	r, err := FindRoot(func(x float64) float64 { return x*x - math.Exp(x) }, -1, 0, 1e-12)
	if err != nil {
		return nil, err
	}

	n := int(math.Ceil(-2 * r / step))
	var res []vec.Vec2
	for i := 0; i < n; i++ {
		x := r - 2*r*float64(i)/float64(n)
		res = append(res, vec.Vec2{X: x, Y: x * x})
	}
	for i := 0; i < n; i++ {
		x := -r + 2*r*float64(i)/float64(n)
		res = append(res, vec.Vec2{X: x, Y: math.Exp(-math.Abs(x))})
	}
	return append(res, res[0]), nil
}
