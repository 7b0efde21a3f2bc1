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

package incenter

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

func TestIncenterRightTriangle(t *testing.T) {
	c, err := Incenter(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 0, Y: 3})
	require.NoError(t, err)
	assert.InDelta(t, 1, c.X, 1e-12)
	assert.InDelta(t, 1, c.Y, 1e-12)
}

func TestIncenterEquilateral(t *testing.T) {
	h := math.Sqrt(3)
	tri := Triangle{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: h}}
	c, err := tri.Incenter()
	require.NoError(t, err)
	assert.InDelta(t, 0, c.X, 1e-12)
	assert.InDelta(t, h/3, c.Y, 1e-12)
}

func TestIncenterRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pt := func() vec.Vec2 {
		return vec.Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
	}
	for range 500 {
		a, b, c := pt(), pt(), pt()
		tri := Triangle{a, b, c}
		if tri.Area() < 1 {
			continue
		}
		got, err := tri.Incenter()
		require.NoError(t, err)

		la := c.Sub(b).Length()
		lb := a.Sub(c).Length()
		lc := b.Sub(a).Length()
		want := a.Mul(la).Add(b.Mul(lb)).Add(c.Mul(lc)).Mul(1 / (la + lb + lc))
		assert.InDelta(t, want.X, got.X, 1e-7)
		assert.InDelta(t, want.Y, got.Y, 1e-7)

		// equal distance to all three sides
		r := 2 * tri.Area() / (la + lb + lc)
		for i := range 3 {
			p, q := tri[i], tri[(i+1)%3]
			d := math.Abs(cross(q.Sub(p), got.Sub(p))) / q.Sub(p).Length()
			assert.InDelta(t, r, d, 1e-7)
		}
	}
}

func TestIncenterDegenerate(t *testing.T) {
	cases := []Triangle{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}},
		{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 1}},
	}
	for _, tri := range cases {
		assert.True(t, tri.IsDegenerate(), "%v", tri)
		_, err := tri.Incenter()
		assert.True(t, errors.Is(err, cglab.ErrDegenerateInput), "%v", tri)
	}
}

func TestBisector(t *testing.T) {
	s := Bisector(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 0, Y: 3})
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, s.A)
	assert.InDelta(t, 12.0/7, s.B.X, 1e-12)
	assert.InDelta(t, 12.0/7, s.B.Y, 1e-12)
}

func TestTriangles(t *testing.T) {
	pts := []vec.Vec2{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}
	n := 0
	for range Triangles(pts) {
		n++
	}
	assert.Equal(t, 10, n)

	n = 0
	for range Triangles(pts) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	for range Triangles(pts[:2]) {
		t.Fatal("unexpected triangle")
	}
}

func TestSearch(t *testing.T) {
	setA := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	setB := []vec.Vec2{{X: 10, Y: 0}, {X: 14, Y: 0}, {X: 10, Y: 3}, {X: 30, Y: 25}}

	res, ok := Search(setA, setB)
	require.True(t, ok)
	assert.InDelta(t, 0, res.Angle, 1e-9)
	assert.Equal(t, Triangle{setB[0], setB[1], setB[2]}, res.B)
	assert.InDelta(t, 1, res.CenterA.Y, 1e-12)
	assert.InDelta(t, 11, res.CenterB.X, 1e-12)

	j := res.Join()
	assert.Equal(t, res.CenterA, j.A)
	assert.Equal(t, res.CenterB, j.B)
}

func TestSearchAngle(t *testing.T) {
	setA := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	setB := []vec.Vec2{{X: 0, Y: 10}, {X: 4, Y: 10}, {X: 0, Y: 13}}

	res, ok := Search(setA, setB)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, res.Angle, 1e-9)
}

func TestSearchNone(t *testing.T) {
	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	collinear := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 5, Y: 5}}

	_, ok := Search(tri, tri[:2])
	assert.False(t, ok)
	_, ok = Search(collinear, tri)
	assert.False(t, ok)

	// identical incenters do not define a line
	_, ok = Search(tri, tri)
	assert.False(t, ok)
}
