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
	"slices"
	"sync"
	"time"

	"seehuhn.de/go/cglab"
)

// Canvas runs a scanline fill which can be observed while it is running.
//
// Spans and Elapsed may be called from other goroutines at any time.  The
// lock is held only for individual updates, never while sleeping.
type Canvas struct {
	// Shape is the polygon to fill.  It must not be modified while Fill is
	// running.
	Shape *Shape

	// Delay is the pause before every span is added.  This slows down the
	// fill so that it can be watched.
	Delay time.Duration

	mu      sync.Mutex
	spans   []cglab.Span
	elapsed time.Duration
}

// NewCanvas returns a canvas for filling the given shape.
func NewCanvas(s *Shape) *Canvas {
	return &Canvas{Shape: s}
}

// Fill clears the spans of previous runs and fills the shape.  The method
// returns once the fill is complete; there is no way to stop it early.
func (c *Canvas) Fill() error {
	c.mu.Lock()
	c.spans = c.spans[:0]
	c.elapsed = 0
	c.mu.Unlock()

	start := time.Now()
	err := fill(c.Shape, func(sp cglab.Span) {
		if c.Delay > 0 {
			time.Sleep(c.Delay)
		}
		c.mu.Lock()
		c.spans = append(c.spans, sp)
		c.mu.Unlock()
	}, func(int) {
		c.mu.Lock()
		c.elapsed = time.Since(start)
		c.mu.Unlock()
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.elapsed = time.Since(start)
	n, d := len(c.spans), c.elapsed
	c.mu.Unlock()

	cglab.Logger().Debug("scanline fill done", "spans", n, "elapsed", d)
	return nil
}

// Spans returns a copy of the spans produced so far.
func (c *Canvas) Spans() []cglab.Span {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.spans)
}

// Elapsed returns the time spent on the current or most recent fill.
func (c *Canvas) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
