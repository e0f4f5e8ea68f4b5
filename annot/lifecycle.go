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
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// Config holds the settings of a [Controller].
// The zero value gives a controller which logs to a fresh logrus logger.
type Config struct {
	// Logger receives diagnostics, for example about annotations which
	// are skipped during a page scan.
	Logger logrus.FieldLogger
}

// Controller moves records between the detached and tied states.
//
// A controller has no state of its own, apart from its diagnostics sink.
// Tied records keep a reference to the controller which tied them.
type Controller struct {
	log logrus.FieldLogger
}

// NewController returns a new controller.  If cfg is nil, default
// settings are used.
func NewController(cfg *Config) *Controller {
	if cfg == nil {
		cfg = &Config{}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}
	return &Controller{log: log}
}

var errNotMarkup = errors.New("replies must be markup annotations")

// Materialize creates a backing object for the detached record r on the
// given page and ties r to it.
//
// If r is already tied, [ErrAlreadyTied] is returned and r is unchanged.
// If any step before the record is added to the page fails, r stays
// detached and unchanged.  Revisions added to r while it was detached are
// materialized as replies after r itself has been tied; failures at that
// stage are logged and do not affect r.
func (c *Controller) Materialize(r Record, page PageStore) error {
	d, err := detachedState(r)
	if err != nil {
		return err
	}
	return c.materialize(r, d, page, backing.NoRef)
}

// MaterializeReply is like [Controller.Materialize], but stores r as a
// reply to the tied record parent.  The revision scope and type of r are
// written to the backing object.
func (c *Controller) MaterializeReply(r, parent Record, page PageStore) error {
	d, err := detachedState(r)
	if err != nil {
		return err
	}
	switch s := parent.state().(type) {
	case nil:
		return ErrInvalidated
	case *detached:
		return ErrNotTied
	case *tied:
		if s.page != page {
			return ErrWrongPage
		}
	}
	ref := parent.Ref()
	if ref == backing.NoRef {
		return ErrNoIdentifier
	}
	return c.materialize(r, d, page, ref)
}

func detachedState(r Record) (*detached, error) {
	switch s := r.state().(type) {
	case *detached:
		return s, nil
	case *tied:
		return nil, ErrAlreadyTied
	default:
		return nil, ErrInvalidated
	}
}

func (c *Controller) materialize(r Record, d *detached, page PageStore, parent backing.Ref) error {
	if r.p.kind == KindWidget {
		return ErrNotCreatable
	}

	st := r.p.payload.subtype()
	native := transform.ToNative(page.Rotation(), page.CropBox(), d.boundary, d.flags&FixedRotation != 0)
	obj, err := page.CreateBacking(st, native)
	if err != nil {
		return fmt.Errorf("create %s annotation: %w", st, err)
	}
	obj.GetCommon().Rect = native

	t := &tied{obj: obj, page: page, ctl: c}
	tmp := Record{p: &record{kind: r.p.kind, payload: r.p.payload, state: t}}

	tmp.SetFlags(d.flags)
	tmp.SetAuthor(d.author)
	tmp.SetContents(d.contents)
	tmp.SetUniqueName(d.uniqueName)
	tmp.SetModificationDate(d.modified)
	tmp.SetCreationDate(d.created)
	tmp.SetStyle(d.style)

	if parent != backing.NoRef {
		m := t.markup()
		if m == nil {
			return &backing.MalformedError{Subtype: st, Err: errNotMarkup}
		}
		m.InReplyTo = parent
		m.ReplyType = backing.ReplyTypeReply
		if d.revScope == ScopeGroup {
			m.ReplyType = backing.ReplyTypeGroup
		}
		if text, ok := obj.(*backing.Text); ok {
			text.State = stateFromRevType(d.revType)
		}
	}

	if err := r.p.payload.flush(tmp); err != nil {
		return err
	}
	if err := tmp.SetPopup(d.popup); err != nil {
		return err
	}

	if err := page.AddAnnot(obj); err != nil {
		return fmt.Errorf("add %s annotation: %w", st, err)
	}
	t.attached = true
	r.p.state = t

	c.log.WithFields(logrus.Fields{
		"subtype": st,
		"ref":     obj.GetCommon().Ref,
		"kind":    r.p.kind,
	}).Debug("annotation materialized")

	if len(d.revisions) > 0 {
		c.materializeRevisions(obj.GetCommon().Ref, d.revisions, page)
	}
	return nil
}

func (c *Controller) materializeRevisions(parent backing.Ref, revs []Record, page PageStore) {
	if parent == backing.NoRef {
		c.log.WithField("count", len(revs)).Warn("parent has no identifier, revisions dropped")
		return
	}
	for _, child := range revs {
		d, ok := child.state().(*detached)
		if !ok {
			continue
		}
		err := c.materialize(child, d, page, parent)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"parent": parent,
				"kind":   child.Kind(),
			}).WithError(err).Warn("cannot materialize revision")
		}
	}
}

// Scan returns tied records for the annotations on a page.
//
// If parent is [backing.NoRef], only annotations which are not replies
// are returned.  Otherwise only direct replies to parent are returned.
// If filter is not empty, only records of the listed kinds are returned.
// Popup annotations are never returned as records of their own; they are
// reachable through [Record.Popup].  Annotations of subtypes without a
// record kind are logged and skipped.
func (c *Controller) Scan(page PageStore, filter []Kind, parent backing.Ref) ([]Record, error) {
	if page == nil {
		return nil, errors.New("annot: nil page")
	}

	var res []Record
	for _, obj := range page.Annots() {
		st := obj.Subtype()
		if st == backing.SubtypePopup {
			continue
		}

		var irt backing.Ref
		if m, ok := obj.(backing.MarkupAnnotation); ok {
			irt = m.GetMarkup().InReplyTo
		}
		if irt != parent {
			continue
		}

		k, ok := kindOf(st)
		if !ok {
			c.log.WithFields(logrus.Fields{
				"subtype": st,
				"ref":     obj.GetCommon().Ref,
			}).Info("skipping unsupported annotation")
			continue
		}
		if len(filter) > 0 && !slices.Contains(filter, k) {
			continue
		}

		t := &tied{obj: obj, page: page, ctl: c, attached: true}
		p := c.load(t, k)
		if p == nil {
			continue
		}
		res = append(res, Record{p: &record{kind: k, payload: p, state: t}})
	}
	return res, nil
}

// load builds the payload of a scanned record and checks that the backing
// object has the expected type.  Fields of tied records are read through
// the backing object, so the payload only holds values which have no
// place there.  The result is nil if the backing object cannot be
// represented.
func (c *Controller) load(t *tied, k Kind) payload {
	skip := func(reason string) payload {
		c.log.WithFields(logrus.Fields{
			"subtype": t.obj.Subtype(),
			"ref":     t.common().Ref,
		}).Debug(reason)
		return nil
	}

	switch k {
	case KindText:
		p := &textPayload{font: Font{Size: backing.UndefinedFontSize}}
		switch a := t.obj.(type) {
		case *backing.Text:
			p.icon = a.Icon
		case *backing.FreeText:
			p.textType = InPlace
		default:
			return skip("unexpected text annotation type")
		}
		return p
	case KindLine:
		switch t.obj.(type) {
		case *backing.Line:
			return &linePayload{startStyle: TermNone, endStyle: TermNone}
		case *backing.Polygon:
			return &linePayload{lineType: Polyline, startStyle: TermNone, endStyle: TermNone}
		}
		return skip("unexpected line annotation type")
	case KindGeom:
		return &geomPayload{}
	case KindHighlight:
		return &highlightPayload{}
	case KindStamp:
		return &stampPayload{}
	case KindInk:
		return &inkPayload{}
	case KindCaret:
		return &caretPayload{}
	case KindLink:
		if _, ok := t.obj.(*backing.Link); !ok {
			return skip("unexpected link annotation type")
		}
		return &linkPayload{hlMode: LinkInvert}
	case KindFileAttachment:
		if _, ok := t.obj.(*backing.FileAttachment); !ok {
			return skip("unexpected file attachment type")
		}
		return &fileAttachPayload{}
	case KindSound:
		if _, ok := t.obj.(*backing.Sound); !ok {
			return skip("unexpected sound annotation type")
		}
		return &soundPayload{}
	case KindMovie:
		if _, ok := t.obj.(*backing.Movie); !ok {
			return skip("unexpected movie annotation type")
		}
		return &moviePayload{}
	case KindScreen:
		a, ok := t.obj.(*backing.Screen)
		if !ok {
			return skip("unexpected screen annotation type")
		}
		if _, ok := a.Action.(*action.Rendition); !ok {
			return skip("screen annotation without rendition")
		}
		return &screenPayload{}
	case KindWidget:
		a, ok := t.obj.(*backing.Widget)
		if !ok {
			return skip("unexpected widget type")
		}
		return &widgetPayload{
			fieldName: a.FieldName,
			hlMode:    linkHighlightFromBacking(a.Highlight),
			action:    a.Action,
		}
	case KindRichMedia:
		if _, ok := t.obj.(*backing.RichMedia); !ok {
			return skip("unexpected rich media type")
		}
		return &richMediaPayload{}
	}
	return nil
}

// Remove deletes the backing object of r, and its popup, from the page.
// Afterwards r is invalid, and lifecycle operations on it return
// [ErrInvalidated].
func (c *Controller) Remove(r Record, page PageStore) error {
	switch s := r.state().(type) {
	case nil:
		return ErrInvalidated
	case *detached:
		return ErrNotTied
	case *tied:
		if s.page != page {
			return ErrWrongPage
		}
		if err := page.RemoveAnnot(s.obj); err != nil {
			return fmt.Errorf("remove %s annotation: %w", s.obj.Subtype(), err)
		}
		c.log.WithFields(logrus.Fields{
			"subtype": s.obj.Subtype(),
			"ref":     s.common().Ref,
		}).Debug("annotation removed")
		r.p.state = nil
	}
	return nil
}
