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
	"errors"
	"fmt"
	"math"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Ref identifies a backing object within a document.
// The zero value [NoRef] means that the object has no stable identifier.
type Ref uint32

// NoRef is the Ref of an object which does not live in an indirect object
// of its own.
const NoRef Ref = 0

// Subtype is the type tag of a backing object.
type Subtype string

// These are the subtypes known to this package.
const (
	SubtypeText           Subtype = "Text"
	SubtypeFreeText       Subtype = "FreeText"
	SubtypeLine           Subtype = "Line"
	SubtypeSquare         Subtype = "Square"
	SubtypeCircle         Subtype = "Circle"
	SubtypePolygon        Subtype = "Polygon"
	SubtypePolyLine       Subtype = "PolyLine"
	SubtypeHighlight      Subtype = "Highlight"
	SubtypeUnderline      Subtype = "Underline"
	SubtypeSquiggly       Subtype = "Squiggly"
	SubtypeStrikeOut      Subtype = "StrikeOut"
	SubtypeStamp          Subtype = "Stamp"
	SubtypeCaret          Subtype = "Caret"
	SubtypeInk            Subtype = "Ink"
	SubtypePopup          Subtype = "Popup"
	SubtypeFileAttachment Subtype = "FileAttachment"
	SubtypeSound          Subtype = "Sound"
	SubtypeMovie          Subtype = "Movie"
	SubtypeScreen         Subtype = "Screen"
	SubtypeWidget         Subtype = "Widget"
	SubtypeLink           Subtype = "Link"
	SubtypeRichMedia      Subtype = "RichMedia"
	SubtypePrinterMark    Subtype = "PrinterMark"
	SubtypeTrapNet        Subtype = "TrapNet"
	SubtypeWatermark      Subtype = "Watermark"
	Subtype3D             Subtype = "3D"
	SubtypeRedact         Subtype = "Redact"
	SubtypeProjection     Subtype = "Projection"
)

// Annotation is a backing object stored on a page.
type Annotation interface {
	// Subtype returns the type tag of the annotation, e.g. "Text" or "Link".
	Subtype() Subtype

	// GetCommon returns the fields shared by all annotation types.
	GetCommon() *Common
}

// MarkupAnnotation is implemented by all markup annotations.
type MarkupAnnotation interface {
	Annotation

	// GetMarkup returns the fields shared by all markup annotations.
	GetMarkup() *Markup
}

var (
	_ MarkupAnnotation = (*Text)(nil)
	_ MarkupAnnotation = (*FreeText)(nil)
	_ MarkupAnnotation = (*Line)(nil)
	_ MarkupAnnotation = (*Geometry)(nil)
	_ MarkupAnnotation = (*Polygon)(nil)
	_ MarkupAnnotation = (*TextMarkup)(nil)
	_ MarkupAnnotation = (*Caret)(nil)
	_ MarkupAnnotation = (*Stamp)(nil)
	_ MarkupAnnotation = (*Ink)(nil)
	_ MarkupAnnotation = (*FileAttachment)(nil)
	_ MarkupAnnotation = (*Sound)(nil)
	_ Annotation       = (*Link)(nil)
	_ Annotation       = (*Popup)(nil)
	_ Annotation       = (*Movie)(nil)
	_ Annotation       = (*Screen)(nil)
	_ Annotation       = (*Widget)(nil)
	_ Annotation       = (*RichMedia)(nil)
	_ Annotation       = (*Unsupported)(nil)
)

// Common contains fields common to all annotation types.
type Common struct {
	// Ref is the identifier of the annotation object.  It is assigned by
	// the page store when the annotation is added to a page.
	Ref Ref

	// Rect is the annotation rectangle in native page coordinates.
	Rect rect.Rect

	// Contents (optional) is the text displayed for the annotation, or an
	// alternate description for annotations which do not display text.
	Contents string

	// Name (optional) uniquely identifies the annotation among all
	// annotations on its page.
	//
	// This corresponds to the /NM entry in the PDF annotation dictionary.
	Name string

	// Modified (optional) is the time when the annotation was last modified.
	//
	// This corresponds to the /M entry in the PDF annotation dictionary.
	Modified time.Time

	// Flags is a set of flags specifying various characteristics of the
	// annotation.
	//
	// This corresponds to the /F entry in the PDF annotation dictionary.
	Flags Flags

	// Color (optional) is the color used for the annotation's background,
	// title bar or border, depending on the annotation type.
	//
	// This corresponds to the /C entry in the PDF annotation dictionary.
	Color Color

	// Border (optional) specifies the annotation border.  If this is nil,
	// a solid border of width 1 is used.
	Border *Border
}

// GetCommon returns the common annotation fields.
// This implements part of the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}

// MalformedError is returned when a backing object cannot be stored on a
// page because it violates a structural constraint.
type MalformedError struct {
	Subtype Subtype
	Err     error
}

func (err *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s annotation: %v", err.Subtype, err.Err)
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

var (
	errBadRect    = errors.New("invalid annotation rectangle")
	errQuadCount  = errors.New("number of quad points is not a multiple of four")
	errBadOpacity = errors.New("transparency out of range")
)

// Validate checks the structural constraints which a page store requires
// before accepting an annotation.
func Validate(a Annotation) error {
	c := a.GetCommon()
	for _, x := range []float64{c.Rect.LLx, c.Rect.LLy, c.Rect.URx, c.Rect.URy} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &MalformedError{Subtype: a.Subtype(), Err: errBadRect}
		}
	}

	if m, ok := a.(MarkupAnnotation); ok {
		t := m.GetMarkup().Transparency
		if t < 0 || t > 1 {
			return &MalformedError{Subtype: a.Subtype(), Err: errBadOpacity}
		}
	}

	var quads []vec.Vec2
	switch a := a.(type) {
	case *TextMarkup:
		quads = a.QuadPoints
	case *Link:
		quads = a.QuadPoints
	}
	if len(quads)%4 != 0 {
		return &MalformedError{Subtype: a.Subtype(), Err: errQuadCount}
	}
	return nil
}
