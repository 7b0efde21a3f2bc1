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

// Package seedfill implements span based seed (flood) fill.
//
// The fill operates on a [Canvas], a sparse bounded pixel surface which
// may be read by other goroutines while a fill is running.
package seedfill

import (
	"image"
	"image/color"
	"slices"
	"sync"
	"time"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/cglab/conic"
	"seehuhn.de/go/cglab/line"
	"seehuhn.de/go/geom/vec"
)

// Canvas is a sparse pixel surface of fixed size.  Pixels which were never
// painted have the background color.
//
// All methods are safe for concurrent use.  Each pixel access takes the
// lock individually, so a reader may observe a fill in progress.
type Canvas struct {
	Width, Height int
	Background    color.RGBA

	// Delay is the pause after every filled span.  This slows down the fill
	// so that it can be watched.
	Delay time.Duration

	mu      sync.Mutex
	border  map[cglab.Pixel]color.RGBA
	filled  map[cglab.Pixel]color.RGBA
	elapsed time.Duration
}

// NewCanvas returns an empty canvas of the given size.  A Canvas literal
// with Width and Height set is equally usable.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: background,
	}
}

// init allocates the pixel maps.  The caller must hold c.mu.
func (c *Canvas) init() {
	if c.border == nil {
		c.border = make(map[cglab.Pixel]color.RGBA)
	}
	if c.filled == nil {
		c.filled = make(map[cglab.Pixel]color.RGBA)
	}
}

// Contains reports whether p lies inside the canvas.
func (c *Canvas) Contains(p cglab.Pixel) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// At returns the color of the pixel at p.  Filled pixels take precedence
// over border pixels.
func (c *Canvas) At(p cglab.Pixel) color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at(p)
}

func (c *Canvas) at(p cglab.Pixel) color.RGBA {
	if col, ok := c.filled[p]; ok {
		return col
	}
	if col, ok := c.border[p]; ok {
		return col
	}
	return c.Background
}

// Set paints a single border pixel.  Pixels outside the canvas are
// ignored.
func (c *Canvas) Set(p cglab.Pixel, col color.RGBA) {
	if !c.Contains(p) {
		return
	}
	c.mu.Lock()
	c.init()
	c.border[p] = col
	c.mu.Unlock()
}

func (c *Canvas) setAll(pixels []cglab.Pixel, col color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()
	for _, p := range pixels {
		if c.Contains(p) {
			c.border[p] = col
		}
	}
}

// DrawPolyline draws the border line through the given points.
func (c *Canvas) DrawPolyline(col color.RGBA, pts ...vec.Vec2) {
	for i := 1; i < len(pts); i++ {
		c.setAll(line.DDA(pts[i-1], pts[i]), col)
	}
	if len(pts) > 0 {
		c.Set(cglab.Round(pts[len(pts)-1]), col)
	}
}

// DrawPolygon draws the closed border line through the given points.
func (c *Canvas) DrawPolygon(col color.RGBA, pts ...vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	c.DrawPolyline(col, append(slices.Clip(pts), pts[0])...)
}

// DrawCircle draws a circular border.
func (c *Canvas) DrawCircle(col color.RGBA, center vec.Vec2, r float64) error {
	pixels, err := conic.CircleCanonical(center, r)
	if err != nil {
		return err
	}
	c.setAll(pixels, col)
	return nil
}

// DrawEllipse draws an elliptical border with semi-axes a and b.
func (c *Canvas) DrawEllipse(col color.RGBA, center vec.Vec2, a, b float64) error {
	pixels, err := conic.EllipseCanonical(center, a, b)
	if err != nil {
		return err
	}
	c.setAll(pixels, col)
	return nil
}

func (c *Canvas) paint(s cglab.Span, col color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init()
	for x := s.X0; x <= s.X1; x++ {
		c.filled[cglab.Pixel{X: x, Y: s.Y}] = col
	}
}

// Filled returns the set of filled pixels.
func (c *Canvas) Filled() map[cglab.Pixel]color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make(map[cglab.Pixel]color.RGBA, len(c.filled))
	for p, col := range c.filled {
		res[p] = col
	}
	return res
}

// ClearFill removes all filled pixels but keeps the borders.
func (c *Canvas) ClearFill() {
	c.mu.Lock()
	clear(c.filled)
	c.elapsed = 0
	c.mu.Unlock()
}

// Clear removes all pixels.
func (c *Canvas) Clear() {
	c.mu.Lock()
	clear(c.filled)
	clear(c.border)
	c.elapsed = 0
	c.mu.Unlock()
}

// Elapsed returns the time spent on the current or most recent fill.
func (c *Canvas) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *Canvas) setElapsed(d time.Duration) {
	c.mu.Lock()
	c.elapsed = d
	c.mu.Unlock()
}

// Image returns a snapshot of the canvas.  Row y of the canvas becomes row
// Height-1-y of the image, so that y grows upwards as on a plot.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	c.mu.Lock()
	defer c.mu.Unlock()
	for y := range c.Height {
		for x := range c.Width {
			img.SetRGBA(x, c.Height-1-y, c.at(cglab.Pixel{X: x, Y: y}))
		}
	}
	return img
}
