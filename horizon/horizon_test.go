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

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cglab"
)

func TestGridLen(t *testing.T) {
	cases := []struct {
		g    Grid
		want int
	}{
		{Grid{0, 1, 0.1}, 11},
		{Grid{0, 1, 0.3}, 4},
		{Grid{-5, 5, 1}, 11},
		{Grid{2, 2, 1}, 1},
		{Grid{0, 1, 0}, 0},
		{Grid{1, 0, 1}, 0},
		{Grid{0, 1, math.NaN()}, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.g.Len(), "%v", c.g)
	}
}

func TestProject(t *testing.T) {
	r := &Renderer{Width: 200, Height: 100, Scale: 10}
	assert.Equal(t, cglab.Pixel{X: 100, Y: 50}, r.Project(0, 0, 0))
	assert.Equal(t, cglab.Pixel{X: 110, Y: 70}, r.Project(1, 2, 3))

	r.RotZ = 90
	assert.Equal(t, cglab.Pixel{X: 100, Y: 60}, r.Project(1, 0, 0))

	r.RotZ = 0
	r.RotY = 90
	assert.Equal(t, cglab.Pixel{X: 100, Y: 50}, r.Project(1, 0, 0))
	assert.Equal(t, cglab.Pixel{X: 110, Y: 50}, r.Project(0, 0, 1))
}

func TestRotatePreservesLength(t *testing.T) {
	for deg := -180.0; deg <= 180; deg += 15 {
		u, v := rotate(3, 4, deg)
		assert.InDelta(t, 5, math.Hypot(u, v), 1e-12)
	}
}

func TestHiddenCurve(t *testing.T) {
	// Curves are drawn front to back: z=2 at height 0, z=1 at height 2,
	// and z=0 at height 1, which lies between the two horizons.
	heights := map[float64]float64{0: 1, 1: 2, 2: 0}
	f := func(x, z float64) float64 {
		return heights[math.Round(z)]
	}
	r := &Renderer{Width: 200, Height: 100, Scale: 10}
	lines, err := r.Render(f, Grid{-5, 5, 1}, Grid{0, 2, 1})
	require.NoError(t, err)

	count := map[int]int{}
	for _, l := range lines {
		if l.A.Y == l.B.Y && l.A.X != l.B.X {
			count[l.A.Y]++
		}
	}
	assert.Equal(t, 10, count[50])
	assert.Equal(t, 10, count[70])
	assert.Zero(t, count[60])

	// left and right edges join the curve ends
	assert.Contains(t, lines, Line{A: cglab.Pixel{X: 50, Y: 50}, B: cglab.Pixel{X: 50, Y: 70}})
	assert.Contains(t, lines, Line{A: cglab.Pixel{X: 150, Y: 50}, B: cglab.Pixel{X: 150, Y: 70}})
}

func TestIntersect(t *testing.T) {
	s := &state{
		r:      &Renderer{Width: 10, Height: 100},
		top:    make([]int, 10),
		bottom: make([]int, 10),
	}
	for i := range s.top {
		s.top[i] = 50
		s.bottom[i] = 20
	}

	p := s.intersect(cglab.Pixel{X: 0, Y: 40}, cglab.Pixel{X: 9, Y: 58}, s.top)
	assert.Equal(t, cglab.Pixel{X: 5, Y: 50}, p)

	p = s.intersect(cglab.Pixel{X: 9, Y: 58}, cglab.Pixel{X: 0, Y: 40}, s.top)
	assert.Equal(t, cglab.Pixel{X: 4, Y: 48}, p)

	p = s.intersect(cglab.Pixel{X: 3, Y: 10}, cglab.Pixel{X: 3, Y: 30}, s.bottom)
	assert.Equal(t, cglab.Pixel{X: 3, Y: 20}, p)
}

func TestSurfacesOnScreen(t *testing.T) {
	r := &Renderer{Width: 400, Height: 300, Scale: 30, RotX: 20, RotY: 15, RotZ: 5}
	xs := Grid{-3, 3, 0.1}
	zs := Grid{-3, 3, 0.25}
	for _, s := range Surfaces {
		t.Run(s.Name, func(t *testing.T) {
			lines, err := r.Render(s.F, xs, zs)
			require.NoError(t, err)
			require.NotEmpty(t, lines)
			for _, l := range lines {
				assert.True(t, l.A.X >= 0 && l.A.X < r.Width)
				assert.True(t, l.B.X >= 0 && l.B.X < r.Width)
			}

			again, err := r.Render(s.F, xs, zs)
			require.NoError(t, err)
			assert.Equal(t, lines, again)
		})
	}
}

func TestSurfaces(t *testing.T) {
	require.Len(t, Surfaces, 6)
	for _, s := range Surfaces {
		y := s.F(1, 1)
		assert.False(t, math.IsNaN(y) || math.IsInf(y, 0), s.Name)
	}

	f, ok := Lookup("F")
	require.True(t, ok)
	assert.Equal(t, 8.0, f.F(0, 0))

	_, ok = Lookup("Z")
	assert.False(t, ok)
}

func TestRenderErrors(t *testing.T) {
	f := Surfaces[0].F
	r := &Renderer{Width: 0, Height: 10, Scale: 1}
	_, err := r.Render(f, Grid{0, 1, 0.5}, Grid{0, 1, 0.5})
	assert.True(t, errors.Is(err, cglab.ErrDegenerateInput))

	r.Width = 10
	_, err = r.Render(f, Grid{0, 1, 0}, Grid{0, 1, 0.5})
	assert.True(t, errors.Is(err, cglab.ErrDegenerateInput))
}
