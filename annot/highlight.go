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

	"seehuhn.de/go/pdfannot/backing"
)

// HighlightType selects how marked text is decorated.
type HighlightType int

// Valid values for HighlightType.
const (
	MarkHighlight HighlightType = 0
	MarkSquiggly  HighlightType = 1
	MarkUnderline HighlightType = 2
	MarkStrikeOut HighlightType = 3
)

func (t HighlightType) subtype() backing.Subtype {
	switch t {
	case MarkSquiggly:
		return backing.SubtypeSquiggly
	case MarkUnderline:
		return backing.SubtypeUnderline
	case MarkStrikeOut:
		return backing.SubtypeStrikeOut
	default:
		return backing.SubtypeHighlight
	}
}

// HighlightMark is a view of a record of kind [KindHighlight].
type HighlightMark struct {
	Record
}

type highlightPayload struct {
	hlType HighlightType
	quads  []Quad
}

func (*highlightPayload) kind() Kind { return KindHighlight }

// NewHighlight returns a new, detached text markup record.
func NewHighlight(t HighlightType) HighlightMark {
	return HighlightMark{newRecord(&highlightPayload{hlType: t})}
}

// AsHighlight returns the highlight view of r.
func (r Record) AsHighlight() (HighlightMark, bool) {
	if r.Kind() != KindHighlight {
		return HighlightMark{}, false
	}
	return HighlightMark{r}, true
}

func (m HighlightMark) data() *highlightPayload {
	return m.p.payload.(*highlightPayload)
}

func (m HighlightMark) tied() (*tied, *backing.TextMarkup) {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.TextMarkup)
		return t, a
	}
	return nil, nil
}

// HighlightType returns how the text is decorated.
func (m HighlightMark) HighlightType() HighlightType {
	t, a := m.tied()
	if t == nil {
		return m.data().hlType
	}
	if a == nil {
		return MarkHighlight
	}
	switch a.Subtype() {
	case backing.SubtypeSquiggly:
		return MarkSquiggly
	case backing.SubtypeUnderline:
		return MarkUnderline
	case backing.SubtypeStrikeOut:
		return MarkStrikeOut
	default:
		return MarkHighlight
	}
}

// SetHighlightType sets how the text is decorated.
func (m HighlightMark) SetHighlightType(typ HighlightType) {
	t, a := m.tied()
	if t == nil {
		m.data().hlType = typ
		return
	}
	if a != nil {
		a.Type = typ.subtype()
	}
}

// Quads returns the marked regions in normalized coordinates.
// Quads read from a page always have both caps set and feather 0.1.
func (m HighlightMark) Quads() []Quad {
	t, a := m.tied()
	if t == nil {
		return slices.Clone(m.data().quads)
	}
	if a == nil {
		return nil
	}
	return quadsFromNative(t.matrix(), a.QuadPoints)
}

// SetQuads sets the marked regions.
// Caps and feather are not stored for tied records.
func (m HighlightMark) SetQuads(quads []Quad) {
	t, a := m.tied()
	if t == nil {
		m.data().quads = slices.Clone(quads)
		return
	}
	if a != nil {
		a.QuadPoints = quadsToNative(t.matrix(), quads)
	}
}

func (p *highlightPayload) subtype() backing.Subtype {
	return p.hlType.subtype()
}

func (p *highlightPayload) flush(r Record) error {
	HighlightMark{r}.SetQuads(p.quads)
	return nil
}
