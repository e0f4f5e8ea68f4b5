// seehuhn.de/go/pdfannot - annotation geometry and lifecycle for PDF pages
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

package annot

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// InkMark is a view of a record of kind [KindInk].
type InkMark struct {
	Record
}

type inkPayload struct {
	paths [][]vec.Vec2
}

func (*inkPayload) kind() Kind { return KindInk }

// NewInk returns a new, detached freehand drawing record.
func NewInk() InkMark {
	return InkMark{newRecord(&inkPayload{})}
}

// AsInk returns the ink view of r.
func (r Record) AsInk() (InkMark, bool) {
	if r.Kind() != KindInk {
		return InkMark{}, false
	}
	return InkMark{r}, true
}

func (m InkMark) data() *inkPayload {
	return m.p.payload.(*inkPayload)
}

// Paths returns the strokes in normalized coordinates.
func (m InkMark) Paths() [][]vec.Vec2 {
	t, ok := m.state().(*tied)
	if !ok {
		return clonePaths(m.data().paths)
	}
	a, ok := t.obj.(*backing.Ink)
	if !ok || len(a.InkList) == 0 {
		return nil
	}
	M := t.matrix()
	res := make([][]vec.Vec2, len(a.InkList))
	for i, path := range a.InkList {
		res[i] = transform.ApplyAll(M, path)
	}
	return res
}

// SetPaths sets the strokes.
func (m InkMark) SetPaths(paths [][]vec.Vec2) {
	t, ok := m.state().(*tied)
	if !ok {
		m.data().paths = clonePaths(paths)
		return
	}
	a, ok := t.obj.(*backing.Ink)
	if !ok {
		return
	}
	if len(paths) == 0 {
		a.InkList = nil
		return
	}
	M := t.matrix()
	a.InkList = make([][]vec.Vec2, len(paths))
	for i, path := range paths {
		a.InkList[i] = transform.InverseApplyAll(M, path)
	}
}

func clonePaths(paths [][]vec.Vec2) [][]vec.Vec2 {
	if paths == nil {
		return nil
	}
	res := make([][]vec.Vec2, len(paths))
	for i, p := range paths {
		res[i] = slices.Clone(p)
	}
	return res
}

func (*inkPayload) subtype() backing.Subtype {
	return backing.SubtypeInk
}

func (p *inkPayload) flush(r Record) error {
	InkMark{r}.SetPaths(p.paths)
	return nil
}
