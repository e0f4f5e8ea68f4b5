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

// GeomType selects the shape of a geometry record.
type GeomType int

// Valid values for GeomType.
const (
	InscribedSquare GeomType = 0
	InscribedCircle GeomType = 1
)

// GeomMark is a view of a record of kind [KindGeom].
type GeomMark struct {
	Record
}

type geomPayload struct {
	geomType   GeomType
	innerColor Color
}

func (*geomPayload) kind() Kind { return KindGeom }

// NewGeom returns a new, detached square or circle record.
func NewGeom(t GeomType) GeomMark {
	return GeomMark{newRecord(&geomPayload{geomType: t})}
}

// AsGeom returns the geometry view of r.
func (r Record) AsGeom() (GeomMark, bool) {
	if r.Kind() != KindGeom {
		return GeomMark{}, false
	}
	return GeomMark{r}, true
}

func (m GeomMark) data() *geomPayload {
	return m.p.payload.(*geomPayload)
}

func (m GeomMark) obj() (*backing.Geometry, bool) {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.Geometry)
		return a, true
	}
	return nil, false
}

// GeomType returns the shape.
func (m GeomMark) GeomType() GeomType {
	if a, ok := m.obj(); ok {
		if a != nil && a.Circle {
			return InscribedCircle
		}
		return InscribedSquare
	}
	return m.data().geomType
}

// SetGeomType sets the shape.  Unlike most type setters this also works
// for tied records.
func (m GeomMark) SetGeomType(t GeomType) {
	if a, ok := m.obj(); ok {
		if a != nil {
			a.Circle = t == InscribedCircle
		}
		return
	}
	m.data().geomType = t
}

// InnerColor returns the fill color.
func (m GeomMark) InnerColor() Color {
	if a, ok := m.obj(); ok {
		if a != nil {
			return colorFromBacking(a.FillColor)
		}
		return Color{}
	}
	return m.data().innerColor
}

// SetInnerColor sets the fill color.
func (m GeomMark) SetInnerColor(c Color) {
	if a, ok := m.obj(); ok {
		if a != nil {
			a.FillColor = colorToBacking(c)
		}
		return
	}
	m.data().innerColor = c
}

func (p *geomPayload) subtype() backing.Subtype {
	if p.geomType == InscribedCircle {
		return backing.SubtypeCircle
	}
	return backing.SubtypeSquare
}

func (p *geomPayload) flush(r Record) error {
	GeomMark{r}.SetInnerColor(p.innerColor)
	return nil
}
