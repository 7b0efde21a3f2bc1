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

package cglab

import "errors"

// Errors reported by the algorithm packages.  Callers should use
// [errors.Is], since the packages wrap these with additional context.
var (
	// ErrInvalidRadius is returned by the conic rasterizers when a radius is
	// zero, negative or not finite.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrNonConvexPolygon is returned when a clip polygon fails the
	// convexity test.
	ErrNonConvexPolygon = errors.New("clip polygon is not convex")

	// ErrUnclosedPolygon is returned when an operation needs a closed ring
	// with at least three vertices.
	ErrUnclosedPolygon = errors.New("polygon is not closed")

	// ErrDegenerateInput is returned for inputs which have no meaningful
	// result, for example a seed pixel outside the canvas.
	ErrDegenerateInput = errors.New("degenerate input")
)
