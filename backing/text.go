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

// TextState is the review state which a Text annotation assigns to the
// annotation it replies to.
type TextState int

// Valid values for TextState.
const (
	// TextStateUnknown indicates that no state is set.
	TextStateUnknown TextState = iota

	// Values following the "Marked" state model.
	TextStateMarked
	TextStateUnmarked

	// Values following the "Review" state model.
	TextStateAccepted
	TextStateRejected
	TextStateCancelled
	TextStateCompleted
	TextStateNone
)

// TextIconNote is the default icon of a Text annotation.
const TextIconNote = "Note"

// Text is a "sticky note" attached to a point on the page.
type Text struct {
	Common
	Markup

	// Open specifies whether the popup window should initially be open.
	Open bool

	// Icon is the name of the icon used to display the annotation.
	// When reading, an empty Icon means [TextIconNote].
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	Icon string

	// State (optional) is the state of the annotation given by
	// [Markup.InReplyTo].
	State TextState
}

// Subtype returns "Text".
// This implements the [Annotation] interface.
func (t *Text) Subtype() Subtype {
	return SubtypeText
}

// Quadding is the justification of variable text.
type Quadding int

// Valid values for Quadding.
const (
	QuaddingLeft     Quadding = 0
	QuaddingCentered Quadding = 1
	QuaddingRight    Quadding = 2
)

// UndefinedFontSize is stored in a default appearance when no usable font
// size is known.
const UndefinedFontSize = 10

// DefaultAppearance describes how the text of a FreeText annotation is
// drawn.
//
// This corresponds to the /DA entry in the PDF annotation dictionary.
type DefaultAppearance struct {
	Font  string
	Size  float64
	Color Color
}

// FreeText displays text directly on the page.
type FreeText struct {
	Common
	Markup

	// DefaultAppearance specifies the font and color of the text.
	DefaultAppearance DefaultAppearance

	// Quadding is the justification of the text.
	//
	// This corresponds to the /Q entry in the PDF annotation dictionary.
	Quadding Quadding

	// CalloutLine (optional) is a callout line with two or three points,
	// in native page coordinates.
	//
	// This corresponds to the /CL entry in the PDF annotation dictionary.
	CalloutLine []vec.Vec2

	// BorderEffect (optional) is a border effect applied to the annotation
	// rectangle.
	//
	// This corresponds to the /BE entry in the PDF annotation dictionary.
	BorderEffect *BorderEffect
}

// Subtype returns "FreeText".
// This implements the [Annotation] interface.
func (f *FreeText) Subtype() Subtype {
	return SubtypeFreeText
}
