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

import "seehuhn.de/go/pdfannot/backing"

// CaretSymbol is the symbol drawn by a caret record.
type CaretSymbol int

// Valid values for CaretSymbol.
const (
	CaretNone      CaretSymbol = 0
	CaretParagraph CaretSymbol = 1
)

func (s CaretSymbol) String() string {
	if s == CaretParagraph {
		return "P"
	}
	return "None"
}

// ParseCaretSymbol converts the name of a caret symbol.
// Unknown names map to [CaretNone].
func ParseCaretSymbol(s string) CaretSymbol {
	if s == "P" {
		return CaretParagraph
	}
	return CaretNone
}

// CaretMark is a view of a record of kind [KindCaret].
type CaretMark struct {
	Record
}

type caretPayload struct {
	symbol CaretSymbol
}

func (*caretPayload) kind() Kind { return KindCaret }

// NewCaret returns a new, detached caret record.
func NewCaret() CaretMark {
	return CaretMark{newRecord(&caretPayload{})}
}

// AsCaret returns the caret view of r.
func (r Record) AsCaret() (CaretMark, bool) {
	if r.Kind() != KindCaret {
		return CaretMark{}, false
	}
	return CaretMark{r}, true
}

// Symbol returns the caret symbol.
func (m CaretMark) Symbol() CaretSymbol {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.Caret); ok && a.Symbol == backing.CaretParagraph {
			return CaretParagraph
		}
		return CaretNone
	}
	return m.p.payload.(*caretPayload).symbol
}

// SetSymbol sets the caret symbol.
func (m CaretMark) SetSymbol(s CaretSymbol) {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.Caret); ok {
			a.Symbol = backing.CaretSymbol(s.String())
		}
		return
	}
	m.p.payload.(*caretPayload).symbol = s
}

func (*caretPayload) subtype() backing.Subtype {
	return backing.SubtypeCaret
}

func (p *caretPayload) flush(r Record) error {
	CaretMark{r}.SetSymbol(p.symbol)
	return nil
}
