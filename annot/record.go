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
	"time"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// PageStore gives access to the persisted annotations of one page.
//
// Implementations are not required to be safe for concurrent use; callers
// which share a page between goroutines must serialize access.
type PageStore interface {
	// Rotation returns the display rotation of the page.
	Rotation() transform.Rotation

	// CropBox returns the crop box of the page in native coordinates.
	CropBox() rect.Rect

	// CreateBacking allocates a new, empty backing object of the given
	// subtype.  The object is not yet part of the page.
	CreateBacking(st backing.Subtype, native rect.Rect) (backing.Annotation, error)

	// AddAnnot appends a backing object to the page.  If the object is a
	// markup annotation with a popup which is not yet on the page, the
	// popup is added as well.
	AddAnnot(a backing.Annotation) error

	// RemoveAnnot removes a backing object, and its popup, from the page.
	RemoveAnnot(a backing.Annotation) error

	// Annots returns the backing objects on the page, in page order.
	Annots() []backing.Annotation
}

// Record is a handle to an annotation.
//
// Records start out detached, holding all fields locally.  Once a record
// is materialized onto a page, or returned by a page scan, it is tied: all
// fields are then read from and written to a backing object owned by the
// page store, and geometry is converted between native and normalized
// coordinates on the fly.
//
// Copies of a Record refer to the same annotation.  Changes made through
// one copy are visible through all others.  The zero Record is invalid.
type Record struct {
	p *record
}

type record struct {
	kind    Kind
	payload payload
	state   state
}

// payload holds the kind-specific fields of a record.  For tied records
// only the eagerly loaded data is kept here.
type payload interface {
	kind() Kind

	// subtype returns the backing subtype used when materializing.
	subtype() backing.Subtype

	// flush writes the fields to a freshly tied record.
	flush(r Record) error
}

// state is either *detached or *tied.  It is nil once a record has been
// removed from its page.
type state interface {
	isState()
}

type detached struct {
	author     string
	contents   string
	uniqueName string
	modified   time.Time
	created    time.Time
	flags      Flags
	boundary   transform.Rect
	style      Style
	popup      Popup

	revScope  RevScope
	revType   RevType
	revisions []Record
}

func (*detached) isState() {}

type tied struct {
	obj  backing.Annotation
	page PageStore
	ctl  *Controller

	// attached is set once obj has been added to the page.
	attached bool
}

func (*tied) isState() {}

func newRecord(p payload) Record {
	return Record{p: &record{
		kind:    p.kind(),
		payload: p,
		state: &detached{
			style: DefaultStyle(),
			popup: NoPopup(),
		},
	}}
}

func (r Record) state() state {
	if r.p == nil {
		return nil
	}
	return r.p.state
}

// Kind returns the variant of the record.
func (r Record) Kind() Kind {
	if r.p == nil {
		return 0
	}
	return r.p.kind
}

// IsValid reports whether r refers to an annotation which has not been
// removed from its page.
func (r Record) IsValid() bool {
	return r.state() != nil
}

// IsTied reports whether r is bound to a backing object.
func (r Record) IsTied() bool {
	_, ok := r.state().(*tied)
	return ok
}

// Alias returns a second handle to the same annotation.
func (r Record) Alias() Record {
	return Record{p: r.p}
}

// Same reports whether r and other refer to the same annotation.
func (r Record) Same(other Record) bool {
	return r.p != nil && r.p == other.p
}

// Ref returns the identifier of the backing object.  Detached records,
// and tied records whose backing object has no identifier of its own,
// return [backing.NoRef].
func (r Record) Ref() backing.Ref {
	if t, ok := r.state().(*tied); ok {
		return t.common().Ref
	}
	return backing.NoRef
}

// Page returns the page store of a tied record, or nil.
func (r Record) Page() PageStore {
	if t, ok := r.state().(*tied); ok {
		return t.page
	}
	return nil
}

// Backing returns the backing object of a tied record, or nil.
func (r Record) Backing() backing.Annotation {
	if t, ok := r.state().(*tied); ok {
		return t.obj
	}
	return nil
}

// Author returns the name of the user who created the annotation.
func (r Record) Author() string {
	switch s := r.state().(type) {
	case *detached:
		return s.author
	case *tied:
		if m := s.markup(); m != nil {
			return m.User
		}
	}
	return ""
}

// SetAuthor sets the name of the user who created the annotation.
// For tied records this has no effect unless the annotation is a markup
// annotation.
func (r Record) SetAuthor(author string) {
	switch s := r.state().(type) {
	case *detached:
		s.author = author
	case *tied:
		s.setAuthor(author)
	}
}

// Contents returns the text of the annotation.
func (r Record) Contents() string {
	switch s := r.state().(type) {
	case *detached:
		return s.contents
	case *tied:
		return s.common().Contents
	}
	return ""
}

// SetContents sets the text of the annotation.
func (r Record) SetContents(contents string) {
	switch s := r.state().(type) {
	case *detached:
		s.contents = contents
	case *tied:
		s.common().Contents = contents
	}
}

// UniqueName returns the name which identifies the annotation on its page.
func (r Record) UniqueName() string {
	switch s := r.state().(type) {
	case *detached:
		return s.uniqueName
	case *tied:
		return s.common().Name
	}
	return ""
}

// SetUniqueName sets the name which identifies the annotation on its
// page.  The name is stored in Unicode normalization form C.
func (r Record) SetUniqueName(name string) {
	name = norm.NFC.String(name)
	switch s := r.state().(type) {
	case *detached:
		s.uniqueName = name
	case *tied:
		s.common().Name = name
	}
}

// ModificationDate returns the time of the last modification.
func (r Record) ModificationDate() time.Time {
	switch s := r.state().(type) {
	case *detached:
		return s.modified
	case *tied:
		return s.common().Modified
	}
	return time.Time{}
}

// SetModificationDate sets the time of the last modification.
func (r Record) SetModificationDate(t time.Time) {
	switch s := r.state().(type) {
	case *detached:
		s.modified = t
	case *tied:
		s.common().Modified = t
	}
}

// CreationDate returns the creation time of the annotation.  For tied
// records without a stored creation time the modification time is
// returned.
func (r Record) CreationDate() time.Time {
	switch s := r.state().(type) {
	case *detached:
		return s.created
	case *tied:
		if m := s.markup(); m != nil && !m.CreationDate.IsZero() {
			return m.CreationDate
		}
		return s.common().Modified
	}
	return time.Time{}
}

// SetCreationDate sets the creation time of the annotation.
// For tied records this has no effect unless the annotation is a markup
// annotation.
func (r Record) SetCreationDate(t time.Time) {
	switch s := r.state().(type) {
	case *detached:
		s.created = t
	case *tied:
		s.setCreated(t)
	}
}

// Flags returns the annotation flags.
func (r Record) Flags() Flags {
	switch s := r.state().(type) {
	case *detached:
		return s.flags
	case *tied:
		return fromBackingFlags(s.common().Flags)
	}
	return 0
}

// SetFlags sets the annotation flags.
func (r Record) SetFlags(f Flags) {
	switch s := r.state().(type) {
	case *detached:
		s.flags = f
	case *tied:
		s.common().Flags = toBackingFlags(f)
	}
}

// Boundary returns the annotation rectangle in normalized coordinates.
// The result always satisfies Left <= Right and Top <= Bottom.
func (r Record) Boundary() transform.Rect {
	switch s := r.state().(type) {
	case *detached:
		return s.boundary
	case *tied:
		return transform.ToNormalized(s.matrix(), s.common().Rect)
	}
	return transform.Rect{}
}

// SetBoundary sets the annotation rectangle in normalized coordinates.
func (r Record) SetBoundary(b transform.Rect) {
	b = b.Normalize()
	switch s := r.state().(type) {
	case *detached:
		s.boundary = b
	case *tied:
		s.common().Rect = s.toNative(b, s.fixedRotation())
	}
}

// Style returns the border style of the annotation.
func (r Record) Style() Style {
	switch s := r.state().(type) {
	case *detached:
		return s.style.clone()
	case *tied:
		return s.style()
	}
	return DefaultStyle()
}

// SetStyle sets the border style of the annotation.
func (r Record) SetStyle(style Style) {
	switch s := r.state().(type) {
	case *detached:
		s.style = style.clone()
	case *tied:
		s.setStyle(style)
	}
}

// Popup returns the popup window of the annotation.
func (r Record) Popup() Popup {
	switch s := r.state().(type) {
	case *detached:
		return s.popup
	case *tied:
		return s.popup()
	}
	return NoPopup()
}

// SetPopup sets the popup window of the annotation.
// For tied records only the geometry, flags and summary are stored, and
// only for markup annotations.
func (r Record) SetPopup(p Popup) error {
	switch s := r.state().(type) {
	case *detached:
		s.popup = p
	case *tied:
		return s.setPopup(p)
	}
	return nil
}

// RevisionScope returns how the record relates to its parent record.
func (r Record) RevisionScope() RevScope {
	switch s := r.state().(type) {
	case *detached:
		return s.revScope
	case *tied:
		m := s.markup()
		if m == nil || !m.IsReply() {
			return ScopeRoot
		}
		if m.ReplyType == backing.ReplyTypeGroup {
			return ScopeGroup
		}
		return ScopeReply
	}
	return ScopeRoot
}

// RevisionType returns the review state of the record.
func (r Record) RevisionType() RevType {
	switch s := r.state().(type) {
	case *detached:
		return s.revType
	case *tied:
		if t, ok := s.obj.(*backing.Text); ok && t.IsReply() {
			return revTypeFromState(t.State)
		}
	}
	return RevNone
}

// SetRevision sets the revision scope and type of a detached record.
// For tied records, [ErrTied] is returned and the record is unchanged.
func (r Record) SetRevision(scope RevScope, typ RevType) error {
	switch s := r.state().(type) {
	case *detached:
		s.revScope = scope
		s.revType = typ
		return nil
	case *tied:
		return ErrTied
	}
	return ErrInvalidated
}

func (t *tied) common() *backing.Common {
	return t.obj.GetCommon()
}

func (t *tied) markup() *backing.Markup {
	if m, ok := t.obj.(backing.MarkupAnnotation); ok {
		return m.GetMarkup()
	}
	return nil
}

func (t *tied) fixedRotation() bool {
	return t.common().Flags&backing.FlagNoRotate != 0
}

// matrix returns the transformation from the native coordinates of the
// backing object to normalized coordinates.
func (t *tied) matrix() matrix.Matrix {
	c := t.common()
	return transform.ForAnnotation(t.page.Rotation(), t.page.CropBox(), t.fixedRotation(), c.Rect)
}

func (t *tied) toNative(b transform.Rect, fixedRotation bool) rect.Rect {
	return transform.ToNative(t.page.Rotation(), t.page.CropBox(), b, fixedRotation)
}

func (t *tied) setAuthor(author string) {
	if m := t.markup(); m != nil {
		m.User = author
	}
}

func (t *tied) setCreated(created time.Time) {
	if m := t.markup(); m != nil {
		m.CreationDate = created
	}
}

func (t *tied) style() Style {
	s := DefaultStyle()
	c := t.common()
	s.Color = colorFromBacking(c.Color)
	if m := t.markup(); m != nil {
		s.Opacity = m.Opacity()
	}
	if b := c.Border; b != nil {
		s.Width = b.Width
		s.LineStyle = lineStyleFromBacking(b.Style)
		s.XCorners = b.HCornerRadius
		s.YCorners = b.VCornerRadius
		if b.DashArray != nil {
			s.DashArray = slices.Clone(b.DashArray)
		}
	}
	if be := t.borderEffect(); be != nil {
		if be.IsCloudy() {
			s.LineEffect = Cloudy
		}
		s.EffectIntensity = be.Intensity
	}
	return s
}

func (t *tied) setStyle(s Style) {
	c := t.common()
	c.Color = colorToBacking(s.Color)
	if m := t.markup(); m != nil {
		m.SetOpacity(s.Opacity)
	}
	c.Border = &backing.Border{
		Width:         s.Width,
		Style:         lineStyleToBacking(s.LineStyle),
		DashArray:     slices.Clone(s.DashArray),
		HCornerRadius: s.XCorners,
		VCornerRadius: s.YCorners,
	}

	var be *backing.BorderEffect
	if !s.IsDefaultEffect() {
		be = &backing.BorderEffect{Style: backing.EffectNone, Intensity: s.EffectIntensity}
		if s.LineEffect == Cloudy {
			be.Style = backing.EffectCloudy
		}
	}
	switch a := t.obj.(type) {
	case *backing.FreeText:
		a.BorderEffect = be
	case *backing.Geometry:
		a.BorderEffect = be
	case *backing.Polygon:
		a.BorderEffect = be
	}
}

func (t *tied) borderEffect() *backing.BorderEffect {
	switch a := t.obj.(type) {
	case *backing.FreeText:
		return a.BorderEffect
	case *backing.Geometry:
		return a.BorderEffect
	case *backing.Polygon:
		return a.BorderEffect
	}
	return nil
}

const popupFlagMask = Hidden | FixedSize | FixedRotation

func (t *tied) popup() Popup {
	w := NoPopup()
	m := t.markup()
	if m != nil {
		w.Summary = m.Subject
		if p := m.Popup; p != nil {
			w.Flags = fromBackingFlags(p.Flags) & popupFlagMask
			if !p.Open {
				w.Flags |= Hidden
			}
			M := transform.ForAnnotation(t.page.Rotation(), t.page.CropBox(),
				p.Flags&backing.FlagNoRotate != 0, p.Rect)
			w.Geometry = transform.ToNormalized(M, p.Rect)
		}
	}

	if text, ok := t.obj.(*backing.Text); ok {
		// text annotations default to the annotation rectangle
		if w.Flags == NoPopupFlags {
			w.Flags = 0
			w.Geometry = transform.ToNormalized(t.matrix(), t.common().Rect)
		}
		if !text.Open {
			w.Flags |= Hidden
		}
	}
	return w
}

func (t *tied) setPopup(w Popup) error {
	m := t.markup()
	if m == nil {
		return nil
	}
	m.Subject = w.Summary
	if text, ok := t.obj.(*backing.Text); ok && w.Flags != NoPopupFlags {
		text.Open = w.Flags&Hidden == 0
	}

	if w.Flags == NoPopupFlags {
		if m.Popup != nil && t.attached {
			if err := t.page.RemoveAnnot(m.Popup); err != nil {
				return err
			}
		}
		m.Popup = nil
		return nil
	}

	fixed := w.Flags&FixedRotation != 0
	p := m.Popup
	isNew := p == nil
	if isNew {
		p = &backing.Popup{}
	}
	p.Rect = t.toNative(w.Geometry.Normalize(), fixed)
	p.Flags = toBackingFlags(w.Flags & (FixedSize | FixedRotation))
	p.Open = w.Flags&Hidden == 0
	p.Parent = t.common().Ref

	if isNew && t.attached {
		if err := t.page.AddAnnot(p); err != nil {
			return err
		}
	}
	m.Popup = p
	return nil
}
