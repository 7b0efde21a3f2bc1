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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

func pixelSet(px []cglab.Pixel) map[cglab.Pixel]bool {
	res := make(map[cglab.Pixel]bool, len(px))
	for _, p := range px {
		res[p] = true
	}
	return res
}

func TestCircleSymmetry(t *testing.T) {
	center := vec.Vec2{X: 7.2, Y: -3.6}
	c := cglab.Round(center)
	for _, m := range Methods {
		for _, r := range []float64{1, 5, 17, 40} {
			px, err := Circle(m, center, r)
			require.NoError(t, err)
			set := pixelSet(px)
			for p := range set {
				dx, dy := p.X-c.X, p.Y-c.Y
				for _, q := range []cglab.Pixel{
					{X: c.X - dx, Y: c.Y + dy},
					{X: c.X + dx, Y: c.Y - dy},
					{X: c.X + dy, Y: c.Y + dx},
				} {
					assert.True(t, set[q], "%s r=%g: %v has no mirror %v", m, r, p, q)
				}
			}
		}
	}
}

func TestCircleDistance(t *testing.T) {
	center := vec.Vec2{X: 100, Y: 50}
	for _, m := range Methods {
		for r := 1; r <= 60; r++ {
			px, err := Circle(m, center, float64(r))
			require.NoError(t, err)
			require.NotEmpty(t, px)
			for _, p := range px {
				d := math.Hypot(float64(p.X)-100, float64(p.Y)-50)
				if math.Abs(d-float64(r)) > 1 {
					t.Fatalf("%s r=%d: pixel %v at distance %g", m, r, p, d)
				}
			}
			set := pixelSet(px)
			assert.True(t, set[cglab.Pixel{X: 100 + r, Y: 50}], "%s r=%d", m, r)
			assert.True(t, set[cglab.Pixel{X: 100, Y: 50 - r}], "%s r=%d", m, r)
		}
	}
}

func TestCircleMidpointMatchesBresenham(t *testing.T) {
	for r := 1.0; r <= 200; r++ {
		a, err := CircleMidpoint(vec.Vec2{}, r)
		require.NoError(t, err)
		b, err := CircleBresenham(vec.Vec2{}, r)
		require.NoError(t, err)
		assert.Equal(t, a, b, "r=%g", r)
	}
}

func TestEllipseSymmetry(t *testing.T) {
	center := vec.Vec2{X: -4, Y: 9}
	c := cglab.Round(center)
	for _, m := range Methods {
		px, err := Ellipse(m, center, 23, 11)
		require.NoError(t, err)
		set := pixelSet(px)
		for p := range set {
			dx, dy := p.X-c.X, p.Y-c.Y
			assert.True(t, set[cglab.Pixel{X: c.X - dx, Y: c.Y + dy}], "%s", m)
			assert.True(t, set[cglab.Pixel{X: c.X + dx, Y: c.Y - dy}], "%s", m)
		}
	}
}

func TestEllipseDistance(t *testing.T) {
	for _, m := range Methods {
		for a := 3; a <= 40; a += 3 {
			for b := 3; b <= 40; b += 4 {
				fa, fb := float64(a), float64(b)
				px, err := Ellipse(m, vec.Vec2{}, fa, fb)
				require.NoError(t, err)
				for _, p := range px {
					e := math.Abs(math.Hypot(float64(p.X)/fa, float64(p.Y)/fb)-1) * min(fa, fb)
					if e > 1 {
						t.Fatalf("%s a=%d b=%d: pixel %v too far from the outline (%g)", m, a, b, p, e)
					}
				}
				if m == MethodCanonical {
					set := pixelSet(px)
					assert.True(t, set[cglab.Pixel{X: a, Y: 0}], "a=%d b=%d", a, b)
					assert.True(t, set[cglab.Pixel{X: 0, Y: b}], "a=%d b=%d", a, b)
				}
			}
		}
	}
}

func TestEllipseLarge(t *testing.T) {
	// Semi-axes of this size overflow 32-bit decision variables.
	const a, b = 100000, 60000
	for _, m := range []Method{MethodMidpoint, MethodBresenham} {
		px, err := Ellipse(m, vec.Vec2{}, a, b)
		require.NoError(t, err)
		set := pixelSet(px)
		assert.True(t, set[cglab.Pixel{X: a, Y: 0}], "%s", m)
		assert.True(t, set[cglab.Pixel{X: 0, Y: -b}], "%s", m)
		for i := 0; i < len(px); i += 997 {
			p := px[i]
			e := math.Abs(math.Hypot(float64(p.X)/a, float64(p.Y)/b)-1) * b
			assert.LessOrEqual(t, e, 1.0, "%s: %v", m, p)
		}
	}
}

func TestInvalidRadius(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1)}
	for _, m := range Methods {
		for _, r := range bad {
			_, err := Circle(m, vec.Vec2{}, r)
			assert.ErrorIs(t, err, cglab.ErrInvalidRadius, "%s r=%g", m, r)
			_, err = Ellipse(m, vec.Vec2{}, 10, r)
			assert.ErrorIs(t, err, cglab.ErrInvalidRadius, "%s b=%g", m, r)
			_, err = Ellipse(m, vec.Vec2{}, r, 10)
			assert.ErrorIs(t, err, cglab.ErrInvalidRadius, "%s a=%g", m, r)
		}
	}

	_, err := Circle(Method(99), vec.Vec2{}, 5)
	assert.Error(t, err)
}

func TestSubPixelRadius(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0.4, 5},
		{5, 0.4},
		{0.3, 0.3},
		{0.49, 100},
	}
	for _, m := range Methods {
		for _, tc := range cases {
			done := make(chan error, 2)
			go func() {
				_, err := Ellipse(m, vec.Vec2{X: 10, Y: 10}, tc.a, tc.b)
				done <- err
			}()
			go func() {
				_, err := Circle(m, vec.Vec2{X: 10, Y: 10}, min(tc.a, tc.b))
				done <- err
			}()
			for range 2 {
				select {
				case err := <-done:
					assert.ErrorIs(t, err, cglab.ErrInvalidRadius, "%s a=%g b=%g", m, tc.a, tc.b)
				case <-time.After(5 * time.Second):
					t.Fatalf("%s a=%g b=%g did not return", m, tc.a, tc.b)
				}
			}
		}
	}

	// one half rounds to one pixel and is accepted
	for _, m := range Methods {
		px, err := Ellipse(m, vec.Vec2{}, 0.5, 3)
		require.NoError(t, err, "%s", m)
		assert.NotEmpty(t, px, "%s", m)
		px, err = Circle(m, vec.Vec2{}, 0.5)
		require.NoError(t, err, "%s", m)
		assert.NotEmpty(t, px, "%s", m)
	}
}

func TestConcentric(t *testing.T) {
	circles, err := ConcentricCircles(MethodMidpoint, vec.Vec2{}, 10, 5, 4)
	require.NoError(t, err)
	require.Len(t, circles, 4)
	for i, px := range circles {
		r := 10 + 5*i
		assert.Contains(t, px, cglab.Pixel{X: r, Y: 0})
	}

	ellipses, err := ConcentricEllipses(MethodBresenham, vec.Vec2{}, 20, 10, 4, 3)
	require.NoError(t, err)
	require.Len(t, ellipses, 3)
	for i, px := range ellipses {
		assert.Contains(t, px, cglab.Pixel{X: 20 + 4*i, Y: 0})
		assert.Contains(t, px, cglab.Pixel{X: 0, Y: 10 + 2*i})
	}

	_, err = ConcentricCircles(MethodCanonical, vec.Vec2{}, 10, -5, 3)
	assert.ErrorIs(t, err, cglab.ErrInvalidRadius)
}

func TestMethodText(t *testing.T) {
	for _, m := range Methods {
		text, err := m.MarshalText()
		require.NoError(t, err)
		var back Method
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}
	_, err := ParseMethod("spline")
	assert.Error(t, err)
}
