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

package horizon

import "math"

// Surface is a named function y = F(x, z).
type Surface struct {
	Name    string
	Formula string
	F       func(x, z float64) float64
}

// Surfaces lists the sample surfaces.
var Surfaces = []Surface{
	{
		Name:    "A",
		Formula: "sin(x)cos(z)/5 - 3/2 cos(7c/4) exp(-c), c = (x-pi)^2 + (z-pi)^2",
		F: func(x, z float64) float64 {
			c := (x-math.Pi)*(x-math.Pi) + (z-math.Pi)*(z-math.Pi)
			return math.Sin(x)*math.Cos(z)/5 - 1.5*math.Cos(7*c/4)*math.Exp(-c)
		},
	},
	{
		Name:    "B",
		Formula: "exp(z) - cos(x)",
		F: func(x, z float64) float64 {
			return math.Exp(z) - math.Cos(x)
		},
	},
	{
		Name:    "C",
		Formula: "cos(x) sin(z)",
		F: func(x, z float64) float64 {
			return math.Cos(x) * math.Sin(z)
		},
	},
	{
		Name:    "D",
		Formula: "sin(x)",
		F: func(x, z float64) float64 {
			return math.Sin(x)
		},
	},
	{
		Name:    "E",
		Formula: "cos(z)",
		F: func(x, z float64) float64 {
			return math.Cos(z)
		},
	},
	{
		Name:    "F",
		Formula: "8 cos(1.2 r) / (r + 1), r = sqrt(x^2 + z^2)",
		F: func(x, z float64) float64 {
			r := math.Hypot(x, z)
			return 8 * math.Cos(1.2*r) / (r + 1)
		},
	},
}

// Lookup returns the surface with the given name.
func Lookup(name string) (Surface, bool) {
	for _, s := range Surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}
