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

// LineType selects between a straight line and a polygonal line.
type LineType int

// Valid values for LineType.
const (
	StraightLine LineType = 0
	Polyline     LineType = 1
)

// TermStyle is the shape drawn at the end of a line.
type TermStyle int

// Valid values for TermStyle.
const (
	TermSquare TermStyle = iota
	TermCircle
	TermDiamond
	TermOpenArrow
	TermClosedArrow
	TermNone
	TermButt
	TermROpenArrow
	TermRClosedArrow
	TermSlash
)

var lineEndings = []backing.LineEnding{
	backing.LineEndingSquare,
	backing.LineEndingCircle,
	backing.LineEndingDiamond,
	backing.LineEndingOpenArrow,
	backing.LineEndingClosedArrow,
	backing.LineEndingNone,
	backing.LineEndingButt,
	backing.LineEndingROpenArrow,
	backing.LineEndingRClosedArrow,
	backing.LineEndingSlash,
}

func termStyleFromBacking(e backing.LineEnding) TermStyle {
	if i := slices.Index(lineEndings, e); i >= 0 {
		return TermStyle(i)
	}
	return TermNone
}

func termStyleToBacking(s TermStyle) backing.LineEnding {
	if s < 0 || int(s) >= len(lineEndings) {
		return backing.LineEndingNone
	}
	return lineEndings[s]
}

// LineIntent describes the purpose of a line.
type LineIntent int

// Valid values for LineIntent.
const (
	LineUnknown      LineIntent = 0
	LineArrow        LineIntent = 1
	LineDimension    LineIntent = 2
	LinePolygonCloud LineIntent = 3
)

// LineMark is a view of a record of kind [KindLine].
type LineMark struct {
	Record
}

type linePayload struct {
	lineType    LineType
	points      []vec.Vec2
	startStyle  TermStyle
	endStyle    TermStyle
	closed      bool
	showCaption bool
	innerColor  Color
	leadFwd     float64
	leadBack    float64
	intent      LineIntent
}

func (*linePayload) kind() Kind { return KindLine }

// NewLine returns a new, detached line record.
func NewLine(t LineType) LineMark {
	return LineMark{newRecord(&linePayload{
		lineType:   t,
		startStyle: TermNone,
		endStyle:   TermNone,
	})}
}

// AsLine returns the line view of r.
func (r Record) AsLine() (LineMark, bool) {
	if r.Kind() != KindLine {
		return LineMark{}, false
	}
	return LineMark{r}, true
}

func (m LineMark) data() *linePayload {
	return m.p.payload.(*linePayload)
}

func (m LineMark) tied() (*tied, *backing.Line, *backing.Polygon) {
	t, ok := m.state().(*tied)
	if !ok {
		return nil, nil, nil
	}
	switch a := t.obj.(type) {
	case *backing.Line:
		return t, a, nil
	case *backing.Polygon:
		return t, nil, a
	}
	return t, nil, nil
}

// LineType returns whether the record is a straight line or a polyline.
func (m LineMark) LineType() LineType {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			return StraightLine
		}
		return Polyline
	}
	return m.data().lineType
}

// SetLineType changes the line type of a detached record.
// For tied records [ErrTied] is returned.
func (m LineMark) SetLineType(typ LineType) error {
	if m.IsTied() {
		return ErrTied
	}
	m.data().lineType = typ
	return nil
}

// Points returns the vertices of the line in normalized coordinates.
func (m LineMark) Points() []vec.Vec2 {
	t, line, poly := m.tied()
	switch {
	case line != nil:
		return transform.ApplyAll(t.matrix(), line.Coords[:])
	case poly != nil:
		return transform.ApplyAll(t.matrix(), poly.Vertices)
	case t != nil:
		return nil
	}
	return slices.Clone(m.data().points)
}

// SetPoints sets the vertices of the line.  Straight lines need exactly
// two points; otherwise an [*InvalidGeometryError] is returned and the
// record is unchanged.
func (m LineMark) SetPoints(points []vec.Vec2) error {
	if m.LineType() == StraightLine && len(points) != 2 {
		return &InvalidGeometryError{Op: "SetPoints", Want: "two", Got: len(points)}
	}
	t, line, poly := m.tied()
	switch {
	case line != nil:
		M := t.matrix()
		line.Coords[0] = transform.InverseApply(M, points[0])
		line.Coords[1] = transform.InverseApply(M, points[1])
	case poly != nil:
		poly.Vertices = transform.InverseApplyAll(t.matrix(), points)
	case t == nil:
		m.data().points = slices.Clone(points)
	}
	return nil
}

// StartStyle returns the shape drawn at the first point.
func (m LineMark) StartStyle() TermStyle {
	if t, line, poly := m.tied(); t != nil {
		return termStyleFromBacking(lineEndingsOf(line, poly)[0])
	}
	return m.data().startStyle
}

// SetStartStyle sets the shape drawn at the first point.
func (m LineMark) SetStartStyle(s TermStyle) {
	if t, line, poly := m.tied(); t != nil {
		if e := lineEndingsPtr(line, poly); e != nil {
			e[0] = termStyleToBacking(s)
		}
		return
	}
	m.data().startStyle = s
}

// EndStyle returns the shape drawn at the last point.
func (m LineMark) EndStyle() TermStyle {
	if t, line, poly := m.tied(); t != nil {
		return termStyleFromBacking(lineEndingsOf(line, poly)[1])
	}
	return m.data().endStyle
}

// SetEndStyle sets the shape drawn at the last point.
func (m LineMark) SetEndStyle(s TermStyle) {
	if t, line, poly := m.tied(); t != nil {
		if e := lineEndingsPtr(line, poly); e != nil {
			e[1] = termStyleToBacking(s)
		}
		return
	}
	m.data().endStyle = s
}

func lineEndingsOf(line *backing.Line, poly *backing.Polygon) [2]backing.LineEnding {
	if e := lineEndingsPtr(line, poly); e != nil {
		return *e
	}
	return [2]backing.LineEnding{backing.LineEndingNone, backing.LineEndingNone}
}

func lineEndingsPtr(line *backing.Line, poly *backing.Polygon) *[2]backing.LineEnding {
	switch {
	case line != nil:
		return &line.LineEndings
	case poly != nil:
		return &poly.LineEndings
	}
	return nil
}

// IsClosed reports whether a polyline is drawn as a closed polygon.
func (m LineMark) IsClosed() bool {
	if t, _, poly := m.tied(); t != nil {
		return poly != nil && poly.Closed
	}
	return m.data().closed
}

// SetClosed sets whether a polyline is drawn as a closed polygon.
// For tied polylines this also switches between the polygon and polyline
// variants of the dimension intent.
func (m LineMark) SetClosed(closed bool) {
	t, _, poly := m.tied()
	if t == nil {
		m.data().closed = closed
		return
	}
	if poly == nil {
		return
	}
	poly.Closed = closed
	switch {
	case closed && poly.Intent == backing.IntentPolyLineDimension:
		poly.Intent = backing.IntentPolygonDimension
	case !closed && poly.Intent == backing.IntentPolygonDimension:
		poly.Intent = backing.IntentPolyLineDimension
	}
}

// InnerColor returns the color used to fill the line endings or the
// closed polygon.
func (m LineMark) InnerColor() Color {
	t, line, poly := m.tied()
	switch {
	case line != nil:
		return colorFromBacking(line.FillColor)
	case poly != nil:
		return colorFromBacking(poly.FillColor)
	case t != nil:
		return Color{}
	}
	return m.data().innerColor
}

// SetInnerColor sets the fill color.
func (m LineMark) SetInnerColor(c Color) {
	t, line, poly := m.tied()
	switch {
	case line != nil:
		line.FillColor = colorToBacking(c)
	case poly != nil:
		poly.FillColor = colorToBacking(c)
	case t == nil:
		m.data().innerColor = c
	}
}

// LeadingForward returns the length of the leader lines.
// Only straight lines have leader lines.
func (m LineMark) LeadingForward() float64 {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			return line.LeaderLength
		}
		return 0
	}
	return m.data().leadFwd
}

// SetLeadingForward sets the length of the leader lines.
func (m LineMark) SetLeadingForward(x float64) {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			line.LeaderLength = x
		}
		return
	}
	m.data().leadFwd = x
}

// LeadingBack returns the length of the leader line extensions.
func (m LineMark) LeadingBack() float64 {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			return line.LeaderExtension
		}
		return 0
	}
	return m.data().leadBack
}

// SetLeadingBack sets the length of the leader line extensions.
func (m LineMark) SetLeadingBack(x float64) {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			line.LeaderExtension = x
		}
		return
	}
	m.data().leadBack = x
}

// ShowCaption reports whether the contents are shown as a caption.
func (m LineMark) ShowCaption() bool {
	if t, line, _ := m.tied(); t != nil {
		return line != nil && line.Caption
	}
	return m.data().showCaption
}

// SetShowCaption sets whether the contents are shown as a caption.
func (m LineMark) SetShowCaption(show bool) {
	if t, line, _ := m.tied(); t != nil {
		if line != nil {
			line.Caption = show
		}
		return
	}
	m.data().showCaption = show
}

// Intent returns the purpose of the line.
func (m LineMark) Intent() LineIntent {
	t, line, poly := m.tied()
	switch {
	case line != nil:
		switch line.Intent {
		case backing.IntentLineArrow:
			return LineArrow
		case backing.IntentLineDimension:
			return LineDimension
		}
		return LineUnknown
	case poly != nil:
		switch poly.Intent {
		case backing.IntentPolygonCloud:
			return LinePolygonCloud
		case backing.IntentPolygonDimension, backing.IntentPolyLineDimension:
			return LineDimension
		}
		return LineUnknown
	case t != nil:
		return LineUnknown
	}
	return m.data().intent
}

// SetIntent sets the purpose of the line.  For tied records, intents which
// do not apply to the stored line type are ignored.
func (m LineMark) SetIntent(intent LineIntent) {
	t, line, poly := m.tied()
	switch {
	case line != nil:
		switch intent {
		case LineArrow:
			line.Intent = backing.IntentLineArrow
		case LineDimension:
			line.Intent = backing.IntentLineDimension
		case LineUnknown:
			line.Intent = ""
		}
	case poly != nil:
		switch intent {
		case LinePolygonCloud:
			poly.Intent = backing.IntentPolygonCloud
		case LineDimension:
			if poly.Closed {
				poly.Intent = backing.IntentPolygonDimension
			} else {
				poly.Intent = backing.IntentPolyLineDimension
			}
		case LineUnknown:
			poly.Intent = ""
		}
	case t == nil:
		m.data().intent = intent
	}
}

func (p *linePayload) subtype() backing.Subtype {
	switch {
	case p.lineType == StraightLine:
		return backing.SubtypeLine
	case p.closed:
		return backing.SubtypePolygon
	default:
		return backing.SubtypePolyLine
	}
}

func (p *linePayload) flush(r Record) error {
	m := LineMark{r}
	// a line without points is stored with its default coordinates
	if len(p.points) > 0 {
		if err := m.SetPoints(p.points); err != nil {
			return err
		}
	}
	m.SetStartStyle(p.startStyle)
	m.SetEndStyle(p.endStyle)
	m.SetInnerColor(p.innerColor)
	m.SetLeadingForward(p.leadFwd)
	m.SetLeadingBack(p.leadBack)
	m.SetShowCaption(p.showCaption)
	m.SetIntent(p.intent)
	return nil
}
