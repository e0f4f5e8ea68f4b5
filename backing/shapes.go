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

// Geometry is a square (subtype "Square") or a circle (subtype "Circle")
// inscribed in the annotation rectangle.
type Geometry struct {
	Common
	Markup

	// Circle selects between the "Circle" and the "Square" subtypes.
	Circle bool

	// FillColor (optional) is the interior color.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor Color

	// BorderEffect (optional) is a border effect applied to the outline.
	BorderEffect *BorderEffect
}

// Subtype returns "Square" or "Circle".
// This implements the [Annotation] interface.
func (g *Geometry) Subtype() Subtype {
	if g.Circle {
		return SubtypeCircle
	}
	return SubtypeSquare
}

// TextMarkup represents the text markup annotations Highlight, Underline,
// Squiggly and StrikeOut.
type TextMarkup struct {
	Common
	Markup

	// Type is one of [SubtypeHighlight], [SubtypeUnderline],
	// [SubtypeSquiggly] or [SubtypeStrikeOut].  The empty value means
	// [SubtypeHighlight].
	Type Subtype

	// QuadPoints contains four points for each marked region, in native
	// page coordinates.
	QuadPoints []vec.Vec2
}

// Subtype returns the markup type.
// This implements the [Annotation] interface.
func (tm *TextMarkup) Subtype() Subtype {
	switch tm.Type {
	case SubtypeUnderline, SubtypeSquiggly, SubtypeStrikeOut:
		return tm.Type
	default:
		return SubtypeHighlight
	}
}

// Ink is a freehand "scribble" composed of one or more disjoint paths.
type Ink struct {
	Common
	Markup

	// InkList contains the stroked paths, in native page coordinates.
	InkList [][]vec.Vec2
}

// Subtype returns "Ink".
// This implements the [Annotation] interface.
func (i *Ink) Subtype() Subtype {
	return SubtypeInk
}

// CaretSymbol is the symbol associated with a caret annotation.
type CaretSymbol string

// Valid values for CaretSymbol.
const (
	CaretNone      CaretSymbol = "None"
	CaretParagraph CaretSymbol = "P"
)

// Caret marks the presence of text edits.
type Caret struct {
	Common
	Markup

	// Symbol is the symbol associated with the caret.  The empty value means
	// [CaretNone].
	//
	// This corresponds to the /Sy entry in the PDF annotation dictionary.
	Symbol CaretSymbol
}

// Subtype returns "Caret".
// This implements the [Annotation] interface.
func (c *Caret) Subtype() Subtype {
	return SubtypeCaret
}

// StampIconDraft is the default icon of a stamp annotation.
const StampIconDraft = "Draft"

// StampImage is a raster image used as the appearance of a stamp.
// Samples are stored as 8-bit RGB triples, row by row from the top, with a
// separate 8-bit alpha channel.
type StampImage struct {
	Width, Height int
	RGB           []byte

	// Alpha is nil if the image is fully opaque.
	Alpha []byte
}

// Stamp displays text or graphics intended to look like a rubber stamp.
type Stamp struct {
	Common
	Markup

	// Icon is the name of the stamp icon.  When reading, an empty Icon
	// means [StampIconDraft].
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	Icon string

	// Image (optional) is a custom appearance for the stamp.
	Image *StampImage
}

// Subtype returns "Stamp".
// This implements the [Annotation] interface.
func (s *Stamp) Subtype() Subtype {
	return SubtypeStamp
}
