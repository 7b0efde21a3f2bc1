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

package transform

import (
	"slices"

	"seehuhn.de/go/cglab"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// History records a sequence of actions with undo and redo.
//
// Actions after the current position can be redone until a new action is
// recorded, which discards them.
type History struct {
	actions []Action
	pos     int
}

// Do records a new action at the current position.
func (h *History) Do(a Action) error {
	if err := Check(a); err != nil {
		return err
	}
	h.actions = append(h.actions[:h.pos], a)
	h.pos++
	return nil
}

// Undo steps back and returns the action which reverts the last recorded
// action.  The second return value is false at the start of the history.
func (h *History) Undo() (Action, bool) {
	if h.pos == 0 {
		return nil, false
	}
	h.pos--
	return h.actions[h.pos].Inverse(), true
}

// Redo steps forward and returns the action to apply again.
func (h *History) Redo() (Action, bool) {
	if h.pos == len(h.actions) {
		return nil, false
	}
	a := h.actions[h.pos]
	h.pos++
	return a, true
}

func (h *History) CanUndo() bool { return h.pos > 0 }
func (h *History) CanRedo() bool { return h.pos < len(h.actions) }

// Len returns the number of actions in effect.
func (h *History) Len() int {
	return h.pos
}

// Matrix returns the combined effect of all actions in effect.
func (h *History) Matrix() matrix.Matrix {
	m := matrix.Identity
	for _, a := range h.actions[:h.pos] {
		m = Concat(m, a.Matrix())
	}
	return m
}

// Figure is a set of curves transformed together.
//
// Closed curves keep their orientation: when an action mirrors the plane,
// the vertex order of every curve is reversed.
type Figure struct {
	Curves  [][]vec.Vec2
	History History
}

// Do applies a and records it.
func (f *Figure) Do(a Action) error {
	if err := f.History.Do(a); err != nil {
		return err
	}
	f.apply(a)
	return nil
}

// Undo reverts the last action.  It returns false if there is nothing to
// undo.
func (f *Figure) Undo() bool {
	a, ok := f.History.Undo()
	if ok {
		f.apply(a)
	}
	return ok
}

// Redo applies the next undone action again.
func (f *Figure) Redo() bool {
	a, ok := f.History.Redo()
	if ok {
		f.apply(a)
	}
	return ok
}

func (f *Figure) apply(a Action) {
	m := a.Matrix()
	flip := Flips(m)
	for _, c := range f.Curves {
		Apply(m, c)
		if flip {
			slices.Reverse(c)
		}
	}
	cglab.Logger().Debug("transform", "action", a.String(), "curves", len(f.Curves))
}
