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

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/action"
)

// LinkHighlight is the visual effect used when a link or widget is
// activated.
type LinkHighlight string

// Valid values for LinkHighlight.
const (
	LinkHighlightNone    LinkHighlight = "N"
	LinkHighlightInvert  LinkHighlight = "I"
	LinkHighlightOutline LinkHighlight = "O"
	LinkHighlightPush    LinkHighlight = "P"
)

// Link represents a hypertext link.
type Link struct {
	Common

	// Action (optional) is performed when the link is activated.
	Action action.Action

	// Highlight is the highlighting mode.  The empty value means
	// [LinkHighlightInvert].
	//
	// This corresponds to the /H entry in the PDF annotation dictionary.
	Highlight LinkHighlight

	// QuadPoints (optional) contains four points for each region where the
	// link is active, in native page coordinates.
	QuadPoints []vec.Vec2
}

// Subtype returns "Link".
// This implements the [Annotation] interface.
func (l *Link) Subtype() Subtype {
	return SubtypeLink
}

// Widget represents an interactive form field on the page.
type Widget struct {
	Common

	// FieldName is the fully qualified name of the form field.
	FieldName string

	// Highlight is the highlighting mode.
	Highlight LinkHighlight

	// Action (optional) is performed when the widget is activated.
	Action action.Action
}

// Subtype returns "Widget".
// This implements the [Annotation] interface.
func (w *Widget) Subtype() Subtype {
	return SubtypeWidget
}

// Screen specifies a region of the page on which media clips are played.
type Screen struct {
	Common

	// Title (optional) is the title of the annotation.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	Title string

	// Action (optional) is performed when the annotation is activated.
	Action action.Action
}

// Subtype returns "Screen".
// This implements the [Annotation] interface.
func (s *Screen) Subtype() Subtype {
	return SubtypeScreen
}

// Popup displays text in a popup window for another annotation.
type Popup struct {
	Common

	// Parent is the annotation this popup belongs to.
	Parent Ref

	// Open specifies whether the popup window is initially open.
	Open bool
}

// Subtype returns "Popup".
// This implements the [Annotation] interface.
func (p *Popup) Subtype() Subtype {
	return SubtypePopup
}

// Unsupported is a backing object of a type which this package does not
// model, for example "PrinterMark" or "3D".
type Unsupported struct {
	Common

	// Type is the subtype tag as stored in the document.
	Type Subtype
}

// Subtype returns the stored subtype tag.
// This implements the [Annotation] interface.
func (u *Unsupported) Subtype() Subtype {
	return u.Type
}
