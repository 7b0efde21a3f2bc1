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

package scanfill

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/vec"
)

// edge is an entry of the edge table.
type edge struct {
	x  float64 // x coordinate on the current scanline
	dx float64 // change of x when moving down one scanline
	dy int     // number of scanlines still to cover
}

func compareEdges(a, b edge) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}
	if c := cmp.Compare(a.dy, b.dy); c != 0 {
		return c
	}
	return cmp.Compare(a.dx, b.dx)
}

// Fill computes the spans covering the closed rings of s, using the
// even-odd rule.
//
// Vertex y coordinates are rounded to integers.  An edge from y0 to y1 >
// y0 covers the scanlines y0, ..., y1-1, so a shape with vertices between
// yMin and yMax produces spans for the scanlines yMin, ..., yMax-1.  The
// spans are returned from the top scanline downwards, and from left to
// right within a scanline.  Horizontal edges are ignored.
//
// If s has no closed rings, or if it has an open ring, an error wrapping
// [cglab.ErrUnclosedPolygon] is returned.
func Fill(s *Shape) ([]cglab.Span, error) {
	var res []cglab.Span
	err := fill(s, func(sp cglab.Span) {
		res = append(res, sp)
	}, nil)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// fill runs the scanline algorithm and calls emit for every span.  If
// scanlineDone is not nil, it is called after every scanline.
func fill(s *Shape, emit func(cglab.Span), scanlineDone func(y int)) error {
	if s.IsOpen() {
		return fmt.Errorf("shape has an open ring: %w", cglab.ErrUnclosedPolygon)
	}
	rings := s.Rings()
	if len(rings) == 0 {
		return fmt.Errorf("shape has no closed rings: %w", cglab.ErrUnclosedPolygon)
	}

	table, yMin, yMax := buildEdgeTable(rings)
	cglab.Logger().Debug("scanline fill",
		"rings", len(rings),
		"buckets", len(table),
		"yMin", yMin,
		"yMax", yMax)

	var active []edge
	for y := yMax - 1; y >= yMin; y-- {
		active = append(active, table[y]...)
		slices.SortFunc(active, compareEdges)

		for i := 0; i+1 < len(active); i += 2 {
			emit(cglab.Span{
				Y:  y,
				X0: int(math.Round(active[i].x)),
				X1: int(math.Round(active[i+1].x)),
			})
		}

		keep := active[:0]
		for _, e := range active {
			e.dy--
			if e.dy > 0 {
				e.x += e.dx
				keep = append(keep, e)
			}
		}
		active = keep

		if scanlineDone != nil {
			scanlineDone(y)
		}
	}
	return nil
}

// buildEdgeTable collects the non-horizontal edges of all rings.  Every
// edge is stored in the bucket of the first scanline it covers when
// scanning downwards.
func buildEdgeTable(rings [][]vec.Vec2) (table map[int][]edge, yMin, yMax int) {
	table = make(map[int][]edge)
	yMin, yMax = math.MaxInt, math.MinInt

	for _, ring := range rings {
		prev := ring[len(ring)-1]
		for _, cur := range ring {
			p0, p1 := prev, cur
			prev = cur

			y0 := int(math.Round(p0.Y))
			y1 := int(math.Round(p1.Y))
			yMin = min(yMin, y0, y1)
			yMax = max(yMax, y0, y1)
			if y0 == y1 {
				continue
			}
			if y0 > y1 {
				p0, p1 = p1, p0
				y0, y1 = y1, y0
			}

			dy := y1 - y0
			table[y1-1] = append(table[y1-1], edge{
				x:  p1.X,
				dx: (p0.X - p1.X) / float64(dy),
				dy: dy,
			})
		}
	}
	return table, yMin, yMax
}
