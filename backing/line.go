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

package backing

import "seehuhn.de/go/geom/vec"

// LineEnding is the style of a line end.
type LineEnding string

// Valid values for LineEnding.
const (
	LineEndingSquare       LineEnding = "Square"
	LineEndingCircle       LineEnding = "Circle"
	LineEndingDiamond      LineEnding = "Diamond"
	LineEndingOpenArrow    LineEnding = "OpenArrow"
	LineEndingClosedArrow  LineEnding = "ClosedArrow"
	LineEndingNone         LineEnding = "None"
	LineEndingButt         LineEnding = "Butt"
	LineEndingROpenArrow   LineEnding = "ROpenArrow"
	LineEndingRClosedArrow LineEnding = "RClosedArrow"
	LineEndingSlash        LineEnding = "Slash"
)

// Line is a single straight line on the page.
type Line struct {
	Common
	Markup

	// Coords are the start and end points of the line in native page
	// coordinates.
	//
	// This corresponds to the /L entry in the PDF annotation dictionary.
	Coords [2]vec.Vec2

	// LineEndings are the styles of the start and end of the line.
	// Empty values mean [LineEndingNone].
	//
	// This corresponds to the /LE entry in the PDF annotation dictionary.
	LineEndings [2]LineEnding

	// FillColor (optional) is used to fill closed line endings.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor Color

	// LeaderLength is the length of the leader lines, extending from the
	// end points perpendicular to the line.
	//
	// This corresponds to the /LL entry in the PDF annotation dictionary.
	LeaderLength float64

	// LeaderExtension is the length of the leader line extensions.
	//
	// This corresponds to the /LLE entry in the PDF annotation dictionary.
	LeaderExtension float64

	// LeaderOffset is the gap between the end points and the leader lines.
	//
	// This corresponds to the /LLO entry in the PDF annotation dictionary.
	LeaderOffset float64

	// Caption specifies whether the contents are shown as a caption.
	//
	// This corresponds to the /Cap entry in the PDF annotation dictionary.
	Caption bool
}

// Subtype returns "Line".
// This implements the [Annotation] interface.
func (l *Line) Subtype() Subtype {
	return SubtypeLine
}

// Polygon is a closed polygon (subtype "Polygon") or an open polyline
// (subtype "PolyLine").
type Polygon struct {
	Common
	Markup

	// Closed selects between the "Polygon" and the "PolyLine" subtypes.
	Closed bool

	// Vertices are the vertices in native page coordinates.
	Vertices []vec.Vec2

	// LineEndings (PolyLine only) are the styles of the first and last
	// vertex.
	LineEndings [2]LineEnding

	// FillColor (optional) is the interior color.
	FillColor Color

	// BorderEffect (Polygon only) is a border effect applied to the
	// outline.
	BorderEffect *BorderEffect
}

// Subtype returns "Polygon" or "PolyLine".
// This implements the [Annotation] interface.
func (p *Polygon) Subtype() Subtype {
	if p.Closed {
		return SubtypePolygon
	}
	return SubtypePolyLine
}
