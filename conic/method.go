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
	"fmt"
	"math"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// Method identifies one of the conic rasterization algorithms.
type Method int

// The available conic rasterization algorithms.
const (
	MethodCanonical Method = iota
	MethodParametric
	MethodMidpoint
	MethodBresenham
)

// Methods lists all conic rasterization algorithms.
var Methods = []Method{
	MethodCanonical,
	MethodParametric,
	MethodMidpoint,
	MethodBresenham,
}

var methodNames = map[Method]string{
	MethodCanonical:  "canonical",
	MethodParametric: "parametric",
	MethodMidpoint:   "midpoint",
	MethodBresenham:  "bresenham",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the method with the given name.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown conic method %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("unknown conic method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Circle rasterizes a circle with the given method.
func Circle(m Method, center vec.Vec2, r float64) ([]cglab.Pixel, error) {
	switch m {
	case MethodCanonical:
		return CircleCanonical(center, r)
	case MethodParametric:
		return CircleParametric(center, r)
	case MethodMidpoint:
		return CircleMidpoint(center, r)
	case MethodBresenham:
		return CircleBresenham(center, r)
	default:
		return nil, fmt.Errorf("unknown conic method %d", int(m))
	}
}

// Ellipse rasterizes an axis-aligned ellipse with the given method.
func Ellipse(m Method, center vec.Vec2, a, b float64) ([]cglab.Pixel, error) {
	switch m {
	case MethodCanonical:
		return EllipseCanonical(center, a, b)
	case MethodParametric:
		return EllipseParametric(center, a, b)
	case MethodMidpoint:
		return EllipseMidpoint(center, a, b)
	case MethodBresenham:
		return EllipseBresenham(center, a, b)
	default:
		return nil, fmt.Errorf("unknown conic method %d", int(m))
	}
}

// ConcentricCircles rasterizes n circles around center, with radii r,
// r+step, r+2·step, and so on.
func ConcentricCircles(m Method, center vec.Vec2, r, step float64, n int) ([][]cglab.Pixel, error) {
	res := make([][]cglab.Pixel, 0, n)
	for i := range n {
		px, err := Circle(m, center, r+float64(i)*step)
		if err != nil {
			return nil, err
		}
		res = append(res, px)
	}
	return res, nil
}

// ConcentricEllipses rasterizes n ellipses around center.  The semi-axis a
// grows by step from one ellipse to the next, and b grows by the rounded
// amount which keeps the initial aspect ratio.
func ConcentricEllipses(m Method, center vec.Vec2, a, b, step float64, n int) ([][]cglab.Pixel, error) {
	if err := checkRadius(a, b); err != nil {
		return nil, err
	}
	stepB := math.Round(step * b / a)

	res := make([][]cglab.Pixel, 0, n)
	for i := range n {
		fi := float64(i)
		px, err := Ellipse(m, center, a+fi*step, b+fi*stepB)
		if err != nil {
			return nil, err
		}
		res = append(res, px)
	}
	return res, nil
}
