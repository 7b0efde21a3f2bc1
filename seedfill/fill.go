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

package seedfill

import (
	"fmt"
	"image/color"
	"time"

	"seehuhn.de/go/cglab"
)

// ErrSeedOutside is returned when the seed pixel lies outside the canvas.
// It wraps [cglab.ErrDegenerateInput].
var ErrSeedOutside = fmt.Errorf("seed outside of canvas: %w", cglab.ErrDegenerateInput)

// Result describes a completed fill.
type Result struct {
	Spans   []cglab.Span
	Elapsed time.Duration
}

// Fill paints the 4-connected region around seed with the fill color,
// using an explicit stack of seed pixels.  The region is bounded by pixels
// of the border color, pixels which already have the fill color, and the
// edges of the canvas.
//
// For every filled span, the rows above and below are scanned and one new
// seed is pushed for each run of fillable pixels.  If the seed pixel
// itself is not fillable, nothing is painted.
func Fill(c *Canvas, seed cglab.Pixel, fill, border color.RGBA) (*Result, error) {
	f, err := newFiller(c, seed, fill, border)
	if err != nil {
		return nil, err
	}

	stack := []cglab.Pixel{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.blocked(p.X, p.Y) {
			continue
		}

		s := f.paintSpan(p)
		for _, y := range []int{s.Y + 1, s.Y - 1} {
			f.scanRow(y, s.X0, s.X1, func(x, y int) {
				stack = append(stack, cglab.Pixel{X: x, Y: y})
			})
		}
	}
	return f.finish(false), nil
}

// FillRecursive paints the same region as [Fill], but uses recursion
// instead of an explicit stack.
func FillRecursive(c *Canvas, seed cglab.Pixel, fill, border color.RGBA) (*Result, error) {
	f, err := newFiller(c, seed, fill, border)
	if err != nil {
		return nil, err
	}

	var fillAt func(x, y int)
	fillAt = func(x, y int) {
		if f.blocked(x, y) {
			return
		}
		s := f.paintSpan(cglab.Pixel{X: x, Y: y})
		for _, y := range []int{s.Y - 1, s.Y + 1} {
			f.scanRow(y, s.X0, s.X1, fillAt)
		}
	}
	fillAt(seed.X, seed.Y)
	return f.finish(true), nil
}

type filler struct {
	c            *Canvas
	fill, border color.RGBA
	start        time.Time
	spans        []cglab.Span
}

func newFiller(c *Canvas, seed cglab.Pixel, fill, border color.RGBA) (*filler, error) {
	if !c.Contains(seed) {
		return nil, fmt.Errorf("seed %s on %dx%d canvas: %w",
			seed, c.Width, c.Height, ErrSeedOutside)
	}
	c.setElapsed(0)
	f := &filler{
		c:      c,
		fill:   fill,
		border: border,
		start:  time.Now(),
	}
	return f, nil
}

// blocked reports whether the pixel at (x, y) must not be filled.
func (f *filler) blocked(x, y int) bool {
	p := cglab.Pixel{X: x, Y: y}
	if !f.c.Contains(p) {
		return true
	}
	col := f.c.At(p)
	return col == f.border || col == f.fill
}

// paintSpan extends the fillable pixel p to the maximal horizontal run and
// paints it.
func (f *filler) paintSpan(p cglab.Pixel) cglab.Span {
	s := cglab.Span{Y: p.Y, X0: p.X, X1: p.X}
	for !f.blocked(s.X0-1, s.Y) {
		s.X0--
	}
	for !f.blocked(s.X1+1, s.Y) {
		s.X1++
	}

	f.c.paint(s, f.fill)
	f.spans = append(f.spans, s)
	if f.c.Delay > 0 {
		time.Sleep(f.c.Delay)
	}
	f.c.setElapsed(time.Since(f.start))
	return s
}

// scanRow finds the runs of fillable pixels in row y between x0 and x1
// and calls seed for the rightmost pixel of each run.
func (f *filler) scanRow(y, x0, x1 int, seed func(x, y int)) {
	x := x0
	for x <= x1 {
		for x <= x1 && f.blocked(x, y) {
			x++
		}
		if x > x1 {
			break
		}
		for x <= x1 && !f.blocked(x, y) {
			x++
		}
		seed(x-1, y)
	}
}

func (f *filler) finish(recursive bool) *Result {
	res := &Result{
		Spans:   f.spans,
		Elapsed: time.Since(f.start),
	}
	f.c.setElapsed(res.Elapsed)
	cglab.Logger().Debug("seed fill",
		"recursive", recursive,
		"spans", len(res.Spans),
		"elapsed", res.Elapsed)
	return res
}
