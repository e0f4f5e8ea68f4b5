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

// Package page implements an in-memory store for the annotations of
// document pages.
//
// The store allocates identifiers for the annotations it holds, keeps
// popup annotations next to their parents, and checks annotations for
// obvious defects before accepting them.  A [*Page] can be used wherever
// the annotation lifecycle code needs access to page storage.
//
// Pages are not safe for concurrent use.
package page

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// Options configures a [Document].
type Options struct {
	// Logger receives debug messages about changes to the pages.
	// If this is nil, a new logrus logger is used.
	Logger logrus.FieldLogger
}

// Document is a collection of pages which share one space of annotation
// identifiers.
type Document struct {
	log     logrus.FieldLogger
	pages   []*Page
	lastRef backing.Ref
}

// NewDocument returns a new, empty document.
func NewDocument(opt *Options) *Document {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = logrus.New()
	}
	return &Document{log: log}
}

// NewPage appends a new page to the document.
// The rotation is given in degrees and is snapped to a multiple of 90.
func (d *Document) NewPage(mediaBox rect.Rect, rotate int) *Page {
	p := &Page{
		doc:      d,
		MediaBox: mediaBox,
		Rotate:   int(transform.NewRotation(rotate)),
	}
	d.pages = append(d.pages, p)
	return p
}

// Pages returns the pages of the document, in order.
func (d *Document) Pages() []*Page {
	return slices.Clone(d.pages)
}

func (d *Document) allocRef() backing.Ref {
	d.lastRef++
	return d.lastRef
}

// Errors returned by page operations.
var (
	ErrUnsupportedSubtype = errors.New("unsupported annotation subtype")
	ErrNotOnPage          = errors.New("annotation is not on this page")
	ErrDuplicate          = errors.New("annotation is already on this page")
)

// Page is a single page of a document.
type Page struct {
	doc *Document

	// MediaBox defines the boundaries of the physical medium on which the
	// page is displayed or printed.
	MediaBox rect.Rect

	// Rotate specifies the clockwise rotation of the page when displayed,
	// in degrees.
	Rotate int

	cropBox *rect.Rect

	annots []backing.Annotation
}

// Rotation returns the display rotation of the page.
func (p *Page) Rotation() transform.Rotation {
	return transform.NewRotation(p.Rotate)
}

// CropBox returns the visible region of the page.
// Default: MediaBox.
func (p *Page) CropBox() rect.Rect {
	if p.cropBox != nil {
		return *p.cropBox
	}
	return p.MediaBox
}

// SetCropBox sets the visible region of the page.
// A nil argument resets the crop box to the media box.
func (p *Page) SetCropBox(box *rect.Rect) {
	if box == nil {
		p.cropBox = nil
		return
	}
	b := *box
	p.cropBox = &b
}

// CreateBacking returns a new annotation object of the given subtype,
// with all fields set to their defaults.  The object is not added to the
// page.  Widgets and popups are not created this way: widgets belong to
// form fields, and popups are created together with their parent.
func (p *Page) CreateBacking(st backing.Subtype, native rect.Rect) (backing.Annotation, error) {
	c := backing.Common{Rect: native, Flags: backing.FlagPrint}
	noEndings := [2]backing.LineEnding{backing.LineEndingNone, backing.LineEndingNone}

	var a backing.Annotation
	switch st {
	case backing.SubtypeText:
		a = &backing.Text{Common: c, Icon: backing.TextIconNote}
	case backing.SubtypeFreeText:
		a = &backing.FreeText{
			Common:            c,
			DefaultAppearance: backing.DefaultAppearance{Size: backing.UndefinedFontSize},
		}
	case backing.SubtypeLine:
		a = &backing.Line{Common: c, LineEndings: noEndings}
	case backing.SubtypePolygon, backing.SubtypePolyLine:
		a = &backing.Polygon{Common: c, Closed: st == backing.SubtypePolygon, LineEndings: noEndings}
	case backing.SubtypeSquare, backing.SubtypeCircle:
		a = &backing.Geometry{Common: c, Circle: st == backing.SubtypeCircle}
	case backing.SubtypeHighlight, backing.SubtypeUnderline,
		backing.SubtypeSquiggly, backing.SubtypeStrikeOut:
		a = &backing.TextMarkup{Common: c, Type: st}
	case backing.SubtypeStamp:
		a = &backing.Stamp{Common: c, Icon: backing.StampIconDraft}
	case backing.SubtypeInk:
		a = &backing.Ink{Common: c}
	case backing.SubtypeCaret:
		a = &backing.Caret{Common: c, Symbol: backing.CaretNone}
	case backing.SubtypeLink:
		a = &backing.Link{Common: c, Highlight: backing.LinkHighlightInvert}
	case backing.SubtypeFileAttachment:
		a = &backing.FileAttachment{Common: c, Icon: backing.FileIconPushPin}
	case backing.SubtypeSound:
		a = &backing.Sound{Common: c, Icon: backing.SoundIconSpeaker}
	case backing.SubtypeMovie:
		a = &backing.Movie{Common: c}
	case backing.SubtypeScreen:
		a = &backing.Screen{Common: c}
	case backing.SubtypeRichMedia:
		a = &backing.RichMedia{Common: c}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSubtype, st)
	}
	return a, nil
}

// AddAnnot appends an annotation to the page and allocates an identifier
// for it.  If the annotation is a markup annotation with a popup which is
// not yet on the page, the popup is added directly after its parent.
//
// Either both annotations are added, or the page is left unchanged.
func (p *Page) AddAnnot(a backing.Annotation) error {
	var popup *backing.Popup
	if m, ok := a.(backing.MarkupAnnotation); ok {
		if pp := m.GetMarkup().Popup; pp != nil && !p.contains(pp) {
			if err := backing.Validate(pp); err != nil {
				return err
			}
			popup = pp
		}
	}

	if err := p.add(a, true); err != nil {
		return err
	}
	if popup != nil {
		popup.Parent = a.GetCommon().Ref
		if err := p.add(popup, true); err != nil {
			p.annots = slices.DeleteFunc(p.annots, func(b backing.Annotation) bool { return b == a })
			return err
		}
	}
	return nil
}

// AddInline appends an annotation to the page without allocating an
// identifier.  This models annotations which are stored directly in the
// page's annotation list, rather than as separate objects.  Such
// annotations cannot be the target of replies.
func (p *Page) AddInline(a backing.Annotation) error {
	return p.add(a, false)
}

func (p *Page) add(a backing.Annotation, alloc bool) error {
	if err := backing.Validate(a); err != nil {
		return err
	}
	if p.contains(a) {
		return ErrDuplicate
	}

	c := a.GetCommon()
	if alloc && c.Ref == backing.NoRef {
		c.Ref = p.doc.allocRef()
	}
	p.annots = append(p.annots, a)

	p.doc.log.WithFields(logrus.Fields{
		"subtype": a.Subtype(),
		"ref":     c.Ref,
	}).Debug("annotation added")
	return nil
}

// RemoveAnnot removes an annotation, and its popup, from the page.
func (p *Page) RemoveAnnot(a backing.Annotation) error {
	idx := p.index(a)
	if idx < 0 {
		return ErrNotOnPage
	}
	p.annots = slices.Delete(p.annots, idx, idx+1)

	if m, ok := a.(backing.MarkupAnnotation); ok {
		if popup := m.GetMarkup().Popup; popup != nil {
			if i := p.index(popup); i >= 0 {
				p.annots = slices.Delete(p.annots, i, i+1)
			}
		}
	}

	p.doc.log.WithFields(logrus.Fields{
		"subtype": a.Subtype(),
		"ref":     a.GetCommon().Ref,
	}).Debug("annotation removed")
	return nil
}

// Annots returns the annotations on the page, in page order.
func (p *Page) Annots() []backing.Annotation {
	return slices.Clone(p.annots)
}

// Lookup returns the annotation with the given identifier, or nil.
func (p *Page) Lookup(ref backing.Ref) backing.Annotation {
	if ref == backing.NoRef {
		return nil
	}
	for _, a := range p.annots {
		if a.GetCommon().Ref == ref {
			return a
		}
	}
	return nil
}

func (p *Page) contains(a backing.Annotation) bool {
	return p.index(a) >= 0
}

// index returns the position of a on the page, or -1.  Annotations are
// compared by identity.
func (p *Page) index(a backing.Annotation) int {
	for i, b := range p.annots {
		if b == a {
			return i
		}
	}
	return -1
}
