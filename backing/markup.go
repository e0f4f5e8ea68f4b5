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

import "time"

// Markup contains fields common to all markup annotations.
type Markup struct {
	// User (optional) is the text label that is displayed in the title bar
	// of the annotation's popup window.  This entry identifies the user who
	// added the annotation.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	User string

	// Popup (optional) is a popup annotation for displaying the
	// annotation's contents.
	Popup *Popup

	// Transparency is one minus the constant opacity value used when
	// drawing the annotation.
	//
	// This corresponds to the /CA entry in the PDF annotation dictionary,
	// via CA = 1 - Transparency.
	Transparency float64

	// CreationDate (optional) is the time when the annotation was created.
	CreationDate time.Time

	// InReplyTo (optional) is the annotation that this annotation is "in
	// reply to".  Both annotations must be on the same page.
	//
	// This corresponds to the /IRT entry in the PDF annotation dictionary.
	InReplyTo Ref

	// Subject (optional) is the subject of the annotation.
	//
	// This corresponds to the /Subj entry in the PDF annotation dictionary.
	Subject string

	// ReplyType (meaningful only if InReplyTo is set) specifies the
	// relationship between this annotation and the one it refers to.
	// The empty value means [ReplyTypeReply].
	//
	// This corresponds to the /RT entry in the PDF annotation dictionary.
	ReplyType ReplyType

	// Intent (optional) describes the intent of the markup annotation.
	// Valid values vary by annotation type.
	//
	// This corresponds to the /IT entry in the PDF annotation dictionary.
	Intent Intent
}

// GetMarkup returns the markup fields.
// This implements part of the [MarkupAnnotation] interface.
func (m *Markup) GetMarkup() *Markup {
	return m
}

// Opacity returns the constant opacity of the annotation.
func (m *Markup) Opacity() float64 {
	return 1 - m.Transparency
}

// SetOpacity sets the constant opacity of the annotation.
func (m *Markup) SetOpacity(alpha float64) {
	m.Transparency = 1 - alpha
}

// IsReply reports whether the annotation refers to a parent annotation.
func (m *Markup) IsReply() bool {
	return m.InReplyTo != NoRef
}

// ReplyType describes how a reply relates to its parent annotation.
type ReplyType string

// Valid values for ReplyType.
const (
	ReplyTypeReply ReplyType = "R"
	ReplyTypeGroup ReplyType = "Group"
)

// Intent describes the intent of a markup annotation.
type Intent string

// These are the intents used by this package.
const (
	IntentFreeTextCallout    Intent = "FreeTextCallout"
	IntentFreeTextTypeWriter Intent = "FreeTextTypeWriter"
	IntentLineArrow          Intent = "LineArrow"
	IntentLineDimension      Intent = "LineDimension"
	IntentPolygonCloud       Intent = "PolygonCloud"
	IntentPolygonDimension   Intent = "PolygonDimension"
	IntentPolyLineDimension  Intent = "PolyLineDimension"
)
