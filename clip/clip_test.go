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

package clip

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func seg(x0, y0, x1, y1 float64) cglab.Segment {
	return cglab.Segment{A: pt(x0, y0), B: pt(x1, y1)}
}

func mustPolygon(t *testing.T, pts ...vec.Vec2) *Polygon {
	t.Helper()
	p, err := NewPolygon(pts...)
	require.NoError(t, err)
	return p
}

func pentagram() []vec.Vec2 {
	var res []vec.Vec2
	for k := range 5 {
		sin, cos := math.Sincos((90 + 144*float64(k)) * math.Pi / 180)
		res = append(res, pt(cos, sin))
	}
	return res
}

func TestPolygonBuilder(t *testing.T) {
	p := &Polygon{}
	assert.True(t, p.Push(pt(0, 0)))
	assert.False(t, p.Push(pt(0, 0)))
	assert.True(t, p.Push(pt(1, 0)))
	assert.ErrorIs(t, p.Close(), cglab.ErrUnclosedPolygon)
	assert.False(t, p.Closed)

	assert.True(t, p.Push(pt(1, 1)))
	require.NoError(t, p.Close())
	assert.True(t, p.Closed)
	assert.Equal(t, []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 0)}, p.Vertices)
	assert.Equal(t, []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1)}, p.Ring())
	assert.False(t, p.Push(pt(5, 5)))
	require.NoError(t, p.Close())
	assert.Len(t, p.Vertices, 4)

	p.Reset()
	assert.Empty(t, p.Vertices)
	assert.False(t, p.Closed)
}

func TestSignedArea(t *testing.T) {
	square := []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	assert.Equal(t, 1.0, SignedArea(square))
	assert.Equal(t, 1.0, SignedArea(append(square, square[0])))

	cw := Orient([]vec.Vec2{pt(0, 1), pt(1, 1), pt(1, 0), pt(0, 0)})
	assert.Equal(t, 1.0, SignedArea(cw))
	assert.Equal(t, []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}, cw)
}

func TestIsConvex(t *testing.T) {
	cases := []struct {
		name string
		ring []vec.Vec2
		want bool
	}{
		{"triangle", []vec.Vec2{pt(0, 0), pt(4, 0), pt(1, 3)}, true},
		{"triangle_cw", []vec.Vec2{pt(0, 0), pt(1, 3), pt(4, 0)}, true},
		{"square_closed", []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1), pt(0, 0)}, true},
		{"collinear_vertex", []vec.Vec2{pt(0, 0), pt(1, 0), pt(2, 0), pt(2, 2), pt(0, 2)}, true},
		{"bowtie", []vec.Vec2{pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1)}, false},
		{"skewed_bowtie", []vec.Vec2{pt(0, 0), pt(3, 2), pt(3, 0), pt(0, 1)}, false},
		{"concave", []vec.Vec2{pt(0, 0), pt(4, 0), pt(2, 1), pt(4, 4), pt(0, 4)}, false},
		{"pentagram", pentagram(), false},
		{"line", []vec.Vec2{pt(0, 0), pt(1, 1), pt(2, 2)}, false},
		{"two_points", []vec.Vec2{pt(0, 0), pt(1, 1)}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsConvex(c.ring), c.name)
	}
}

func TestCohenSutherland(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}

	inside := seg(1, 1, 9, 4)
	got, ok := CohenSutherland(inside, r)
	require.True(t, ok)
	assert.Equal(t, inside, got)

	// both end points left of the rectangle
	_, ok = CohenSutherland(seg(-5, -1, -1, 8), r)
	assert.False(t, ok)
	// both end points above
	_, ok = CohenSutherland(seg(0, 6, 10, 7), r)
	assert.False(t, ok)

	got, ok = CohenSutherland(seg(-5, 2, 15, 2), r)
	require.True(t, ok)
	assert.Equal(t, seg(0, 2, 10, 2), got)

	got, ok = CohenSutherland(seg(5, -5, 5, 10), r)
	require.True(t, ok)
	assert.Equal(t, seg(5, 0, 5, 5), got)

	// crosses two outside regions but misses the rectangle
	_, ok = CohenSutherland(seg(-2, 4, 2, 8), r)
	assert.False(t, ok)

	got, ok = CohenSutherland(seg(2, 2, 2, 2), r)
	require.True(t, ok)
	assert.Equal(t, seg(2, 2, 2, 2), got)

	_, ok = CohenSutherland(inside, rect.Rect{LLx: 10, LLy: 0, URx: 0, URy: 5})
	assert.False(t, ok)
}

func TestClipSegment(t *testing.T) {
	square := mustPolygon(t, pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4))

	got, ok, err := ClipSegment(seg(-2, 2, 6, 2), square)
	require.NoError(t, err)
	require.True(t, ok)
	assertSegment(t, seg(0, 2, 4, 2), got)

	inside := seg(1, 1, 3, 2)
	got, ok, err = ClipSegment(inside, square)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, inside, got)

	// parallel to an edge, outside
	_, ok, err = ClipSegment(seg(-1, 5, 5, 5), square)
	require.NoError(t, err)
	assert.False(t, ok)

	// on the line of an edge
	got, ok, err = ClipSegment(seg(-1, 0, 2, 0), square)
	require.NoError(t, err)
	require.True(t, ok)
	assertSegment(t, seg(0, 0, 2, 0), got)

	_, ok, err = ClipSegment(seg(5, 5, 9, 9), square)
	require.NoError(t, err)
	assert.False(t, ok)

	// a triangle in clockwise order
	tri := mustPolygon(t, pt(0, 0), pt(2, 4), pt(4, 0))
	got, ok, err = ClipSegment(seg(-1, 1, 5, 1), tri)
	require.NoError(t, err)
	require.True(t, ok)
	assertSegment(t, seg(0.5, 1, 3.5, 1), got)
}

func TestClipSegmentErrors(t *testing.T) {
	open := &Polygon{Vertices: []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1)}}
	_, _, err := ClipSegment(seg(0, 0, 1, 1), open)
	assert.ErrorIs(t, err, cglab.ErrUnclosedPolygon)

	bowtie := mustPolygon(t, pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1))
	_, _, err = ClipSegment(seg(0, 0, 1, 1), bowtie)
	assert.ErrorIs(t, err, cglab.ErrNonConvexPolygon)

	_, err = ClipSegments([]cglab.Segment{seg(0, 0, 1, 1)}, bowtie)
	assert.ErrorIs(t, err, cglab.ErrNonConvexPolygon)

	_, _, err = ClipSegment(seg(0, 0, 1, 1), nil)
	assert.ErrorIs(t, err, cglab.ErrUnclosedPolygon)
}

// Against a rectangle, both segment clippers must agree.
func TestClipSegmentMatchesCohenSutherland(t *testing.T) {
	r := rect.Rect{LLx: -3, LLy: -2, URx: 5, URy: 7}
	poly := mustPolygon(t, pt(r.LLx, r.LLy), pt(r.URx, r.LLy), pt(r.URx, r.URy), pt(r.LLx, r.URy))

	rng := rand.New(rand.NewPCG(5, 6))
	coord := func() float64 { return rng.Float64()*30 - 15 }
	var segs []cglab.Segment
	for range 1000 {
		s := cglab.Segment{A: pt(coord(), coord()), B: pt(coord(), coord())}
		segs = append(segs, s)

		want, okWant := CohenSutherland(s, r)
		got, okGot, err := ClipSegment(s, poly)
		require.NoError(t, err)
		if okWant != okGot {
			// grazing a corner may go either way
			if okWant {
				assert.InDelta(t, 0, want.B.Sub(want.A).Length(), 1e-6, "%v", s)
			} else {
				assert.InDelta(t, 0, got.B.Sub(got.A).Length(), 1e-6, "%v", s)
			}
			continue
		}
		if okWant {
			assertSegment(t, want, got)
		}
	}

	visible, err := ClipSegments(segs, poly)
	require.NoError(t, err)
	assert.NotEmpty(t, visible)
	assert.Less(t, len(visible), len(segs))
}

func TestClipPolygonSelf(t *testing.T) {
	square := []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	clip := mustPolygon(t, square...)

	got, err := ClipPolygon(square, clip)
	require.NoError(t, err)
	assert.Equal(t, append(square, square[0]), got)
}

func TestClipPolygonDisjoint(t *testing.T) {
	clip := mustPolygon(t, pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1))
	got, err := ClipPolygon([]vec.Vec2{pt(5, 5), pt(6, 5), pt(6, 6), pt(5, 6)}, clip)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClipPolygonTouching(t *testing.T) {
	clip := mustPolygon(t, pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1))
	cases := [][]vec.Vec2{
		{pt(1, 0), pt(2, 0), pt(2, 1), pt(1, 1)}, // shared edge
		{pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2)}, // shared corner
		{pt(0, 1), pt(1, 1), pt(0.5, 3)},         // triangle on the top edge
		{pt(-1, 0.5), pt(0.5, 0.5), pt(2, 0.5)},  // collinear vertices
	}
	for _, subject := range cases {
		got, err := ClipPolygon(subject, clip)
		require.NoError(t, err, "%v", subject)
		assert.Empty(t, got, "%v", subject)
	}
}

func TestClipPolygonOverlap(t *testing.T) {
	clip := mustPolygon(t, pt(1, 1), pt(1, 3), pt(3, 3), pt(3, 1)) // clockwise
	subject := []vec.Vec2{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2), pt(0, 0)}

	got, err := ClipPolygon(subject, clip)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, got[0], got[len(got)-1])
	assert.InDelta(t, 1, math.Abs(SignedArea(got)), 1e-9)
	for _, p := range got {
		assert.True(t, p.X >= 1-1e-9 && p.X <= 2+1e-9 && p.Y >= 1-1e-9 && p.Y <= 2+1e-9, "%v", p)
	}

	// a concave subject, clipped by a triangle
	tri := mustPolygon(t, pt(0, 0), pt(10, 0), pt(0, 10))
	concave := []vec.Vec2{pt(-2, -2), pt(8, -2), pt(8, 8), pt(3, 3), pt(-2, 8)}
	got, err = ClipPolygon(concave, tri)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	// the triangle minus the notch between (3,3) and the hypotenuse
	area := math.Abs(SignedArea(got))
	assert.Greater(t, area, 0.0)
	assert.Less(t, area, 50.0)
}

func TestClipPolygonErrors(t *testing.T) {
	clip := mustPolygon(t, pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1))
	_, err := ClipPolygon([]vec.Vec2{pt(0, 0), pt(1, 1)}, clip)
	assert.ErrorIs(t, err, cglab.ErrUnclosedPolygon)

	star := mustPolygon(t, pentagram()...)
	_, err = ClipPolygon([]vec.Vec2{pt(0, 0), pt(1, 0), pt(0, 1)}, star)
	assert.ErrorIs(t, err, cglab.ErrNonConvexPolygon)
}

func TestIntersect(t *testing.T) {
	p, ok := intersect(pt(0, 0), pt(2, 2), pt(0, 2), pt(2, 0))
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	_, ok = intersect(pt(0, 0), pt(1, 1), pt(0, 1), pt(1, 2))
	assert.False(t, ok)
}

func assertSegment(t *testing.T, want, got cglab.Segment) {
	t.Helper()
	assert.InDelta(t, want.A.X, got.A.X, 1e-9)
	assert.InDelta(t, want.A.Y, got.A.Y, 1e-9)
	assert.InDelta(t, want.B.X, got.B.X, 1e-9)
	assert.InDelta(t, want.B.Y, got.B.Y, 1e-9)
}
