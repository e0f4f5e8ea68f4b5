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

package annot_test

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/annot"
	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/page"
	"seehuhn.de/go/pdfannot/transform"
)

var _ annot.PageStore = (*page.Page)(nil)

var approx = cmpopts.EquateApprox(0, 1e-9)

type env struct {
	doc  *page.Document
	page *page.Page
	ctl  *annot.Controller
	hook *test.Hook
}

func newEnv(rotate int, w, h float64) *env {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	doc := page.NewDocument(&page.Options{Logger: logger})
	return &env{
		doc:  doc,
		page: doc.NewPage(rect.Rect{URx: w, URy: h}, rotate),
		ctl:  annot.NewController(&annot.Config{Logger: logger}),
		hook: hook,
	}
}

func (e *env) hasMessage(level logrus.Level, msg string) bool {
	for _, entry := range e.hook.AllEntries() {
		if entry.Level == level && entry.Message == msg {
			return true
		}
	}
	return false
}

func TestMaterializeIsOneWay(t *testing.T) {
	e := newEnv(0, 612, 792)

	g := annot.NewGeom(annot.InscribedCircle)
	g.SetBoundary(transform.Rect{Left: 0.1, Top: 0.1, Right: 0.5, Bottom: 0.2})
	g.SetContents("circle")
	if g.IsTied() {
		t.Fatal("new record is tied")
	}

	if err := e.ctl.Materialize(g.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if !g.IsTied() {
		t.Fatal("record not tied after Materialize")
	}
	if g.Page() != annot.PageStore(e.page) {
		t.Error("record is tied to the wrong page")
	}

	before := g.Boundary()
	err := e.ctl.Materialize(g.Record, e.page)
	if !errors.Is(err, annot.ErrAlreadyTied) {
		t.Errorf("second Materialize: got %v, want ErrAlreadyTied", err)
	}
	if diff := cmp.Diff(before, g.Boundary()); diff != "" {
		t.Errorf("boundary changed (-want +got):\n%s", diff)
	}
	if g.Contents() != "circle" {
		t.Errorf("contents: got %q", g.Contents())
	}
	if n := len(e.page.Annots()); n != 1 {
		t.Errorf("page has %d annotations, want 1", n)
	}
	if g.Backing().Subtype() != backing.SubtypeCircle {
		t.Errorf("subtype: got %s", g.Backing().Subtype())
	}
}

func TestMaterializeWidget(t *testing.T) {
	e := newEnv(0, 612, 792)
	w := annot.NewWidget()
	err := e.ctl.Materialize(w.Record, e.page)
	if !errors.Is(err, annot.ErrNotCreatable) {
		t.Errorf("got %v, want ErrNotCreatable", err)
	}
	if w.IsTied() || len(e.page.Annots()) != 0 {
		t.Error("failed Materialize changed state")
	}
}

// TestLineRotated90 checks that on a page rotated by 90 degrees, the
// native x-axis maps onto the normalized y-axis.
func TestLineRotated90(t *testing.T) {
	e := newEnv(90, 600, 800)

	line := annot.NewLine(annot.StraightLine)
	line.SetBoundary(transform.Rect{Left: 0, Top: 0, Right: 0.01, Bottom: 1})
	err := line.SetPoints([]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.ctl.Materialize(line.Record, e.page); err != nil {
		t.Fatal(err)
	}

	obj := line.Backing().(*backing.Line)
	wantNative := [2]vec.Vec2{{X: 0, Y: 0}, {X: 600, Y: 0}}
	if diff := cmp.Diff(wantNative, obj.Coords, approx); diff != "" {
		t.Errorf("native coordinates (-want +got):\n%s", diff)
	}

	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}}
	if diff := cmp.Diff(want, line.Points(), approx); diff != "" {
		t.Errorf("normalized points (-want +got):\n%s", diff)
	}

	// the same, starting from a line which is already on the page
	e.page.AddAnnot(&backing.Line{
		Common: backing.Common{Rect: rect.Rect{URx: 600, URy: 1}},
		Coords: wantNative,
	})
	recs, err := e.ctl.Scan(e.page, []annot.Kind{annot.KindLine}, backing.NoRef)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d lines, want 2", len(recs))
	}
	scanned, _ := recs[1].AsLine()
	if diff := cmp.Diff(want, scanned.Points(), approx); diff != "" {
		t.Errorf("scanned points (-want +got):\n%s", diff)
	}
}

func TestLineWithoutPoints(t *testing.T) {
	e := newEnv(0, 600, 800)

	line := annot.NewLine(annot.StraightLine)
	line.SetBoundary(transform.Rect{Left: 0.1, Top: 0.1, Right: 0.5, Bottom: 0.2})
	if err := e.ctl.Materialize(line.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if !line.IsTied() {
		t.Fatal("line was not tied")
	}
	if _, ok := line.Backing().(*backing.Line); !ok {
		t.Errorf("got %T, want *backing.Line", line.Backing())
	}
	if n := len(line.Points()); n != 2 {
		t.Errorf("got %d points, want 2", n)
	}
	if n := len(e.page.Annots()); n != 1 {
		t.Errorf("got %d annotations on the page, want 1", n)
	}
}

func TestLinePoints(t *testing.T) {
	line := annot.NewLine(annot.StraightLine)
	two := []vec.Vec2{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}}
	if err := line.SetPoints(two); err != nil {
		t.Fatal(err)
	}

	err := line.SetPoints([]vec.Vec2{{}, {}, {}})
	var geomErr *annot.InvalidGeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("got %v, want InvalidGeometryError", err)
	}
	if geomErr.Got != 3 {
		t.Errorf("error reports %d points", geomErr.Got)
	}
	if diff := cmp.Diff(two, line.Points()); diff != "" {
		t.Errorf("points changed (-want +got):\n%s", diff)
	}

	poly := annot.NewLine(annot.Polyline)
	if err := poly.SetPoints([]vec.Vec2{{}, {}, {}}); err != nil {
		t.Errorf("polyline: %v", err)
	}
}

func TestPolylineClosed(t *testing.T) {
	e := newEnv(0, 612, 792)

	poly := annot.NewLine(annot.Polyline)
	poly.SetPoints([]vec.Vec2{{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.1}, {X: 0.3, Y: 0.4}})
	poly.SetIntent(annot.LineDimension)
	poly.SetStartStyle(annot.TermClosedArrow)
	if err := e.ctl.Materialize(poly.Record, e.page); err != nil {
		t.Fatal(err)
	}

	obj := poly.Backing().(*backing.Polygon)
	if obj.Subtype() != backing.SubtypePolyLine || obj.Intent != backing.IntentPolyLineDimension {
		t.Errorf("got %s with intent %q", obj.Subtype(), obj.Intent)
	}
	if obj.LineEndings[0] != backing.LineEndingClosedArrow {
		t.Errorf("start ending: got %s", obj.LineEndings[0])
	}

	poly.SetClosed(true)
	if obj.Subtype() != backing.SubtypePolygon || obj.Intent != backing.IntentPolygonDimension {
		t.Errorf("after closing: got %s with intent %q", obj.Subtype(), obj.Intent)
	}
	if !poly.IsClosed() || poly.Intent() != annot.LineDimension {
		t.Error("closed dimension polygon reads back wrong")
	}
	if poly.LineType() != annot.Polyline {
		t.Error("line type changed")
	}
	if err := poly.SetLineType(annot.StraightLine); !errors.Is(err, annot.ErrTied) {
		t.Errorf("SetLineType on tied record: got %v, want ErrTied", err)
	}
	if n := len(poly.Points()); n != 3 {
		t.Errorf("got %d points, want 3", n)
	}
}

func TestScanFilter(t *testing.T) {
	e := newEnv(0, 612, 792)

	popup := &backing.Popup{}
	text := &backing.Text{Markup: backing.Markup{Popup: popup}}
	ink := &backing.Ink{}
	square := &backing.Geometry{}
	redact := &backing.Unsupported{Type: backing.SubtypeRedact}
	for _, a := range []backing.Annotation{text, ink, square, redact} {
		if err := e.page.AddAnnot(a); err != nil {
			t.Fatal(err)
		}
	}
	reply := &backing.Text{Markup: backing.Markup{InReplyTo: text.Ref}}
	if err := e.page.AddAnnot(reply); err != nil {
		t.Fatal(err)
	}

	recs, err := e.ctl.Scan(e.page, []annot.Kind{annot.KindText, annot.KindGeom}, backing.NoRef)
	if err != nil {
		t.Fatal(err)
	}
	var got []backing.Annotation
	for _, r := range recs {
		if !r.IsTied() {
			t.Error("scanned record is not tied")
		}
		got = append(got, r.Backing())
	}
	want := []backing.Annotation{text, square}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("filtered scan: got %v, want %v", got, want)
	}

	recs, _ = e.ctl.Scan(e.page, nil, backing.NoRef)
	if len(recs) != 3 {
		t.Errorf("unfiltered scan: got %d records, want 3", len(recs))
	}
	if !e.hasMessage(logrus.InfoLevel, "skipping unsupported annotation") {
		t.Error("unsupported annotation was not logged")
	}

	recs, _ = e.ctl.Scan(e.page, nil, text.Ref)
	if len(recs) != 1 || recs[0].Backing() != reply {
		t.Errorf("reply scan: got %v", recs)
	}
}

func TestRemove(t *testing.T) {
	e := newEnv(0, 612, 792)
	other := e.doc.NewPage(rect.Rect{URx: 100, URy: 100}, 0)

	ink := annot.NewInk()
	err := e.ctl.Remove(ink.Record, e.page)
	if !errors.Is(err, annot.ErrNotTied) {
		t.Errorf("removing detached record: got %v, want ErrNotTied", err)
	}

	ink.SetPopup(annot.Popup{Geometry: transform.Rect{Right: 0.2, Bottom: 0.2}})
	if err := e.ctl.Materialize(ink.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if n := len(e.page.Annots()); n != 2 {
		t.Fatalf("page has %d annotations, want ink and popup", n)
	}

	err = e.ctl.Remove(ink.Record, other)
	if !errors.Is(err, annot.ErrWrongPage) {
		t.Errorf("removing from other page: got %v, want ErrWrongPage", err)
	}

	alias := ink.Alias()
	if err := e.ctl.Remove(ink.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if n := len(e.page.Annots()); n != 0 {
		t.Errorf("page has %d annotations after removal", n)
	}
	if alias.IsValid() {
		t.Error("alias is still valid after removal")
	}
	err = e.ctl.Remove(alias, e.page)
	if !errors.Is(err, annot.ErrInvalidated) {
		t.Errorf("removing twice: got %v, want ErrInvalidated", err)
	}
	err = e.ctl.Materialize(alias, e.page)
	if !errors.Is(err, annot.ErrInvalidated) {
		t.Errorf("materializing removed record: got %v, want ErrInvalidated", err)
	}
}

func TestRevisionsBeforeTie(t *testing.T) {
	e := newEnv(0, 612, 792)

	parent := annot.NewText(annot.Linked)
	parent.SetContents("question")
	child := annot.NewText(annot.Linked)
	child.SetContents("answer")
	if err := parent.AddRevision(child.Record, annot.ScopeReply, annot.RevAccepted); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddRevision(parent.Record, annot.ScopeReply, annot.RevNone); !errors.Is(err, annot.ErrSelfRevision) {
		t.Errorf("self revision: got %v", err)
	}

	revs := parent.Revisions()
	if len(revs) != 1 {
		t.Fatalf("got %d revisions, want 1", len(revs))
	}
	if !revs[0].Same(child.Record) {
		t.Error("revision is not an alias of the child")
	}
	if revs[0].RevisionScope() != annot.ScopeReply || revs[0].RevisionType() != annot.RevAccepted {
		t.Errorf("scope/type: got %d/%d", revs[0].RevisionScope(), revs[0].RevisionType())
	}

	if err := e.ctl.Materialize(parent.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if !child.IsTied() {
		t.Fatal("revision was not materialized with its parent")
	}
	obj := child.Backing().(*backing.Text)
	if obj.InReplyTo != parent.Ref() || obj.State != backing.TextStateAccepted {
		t.Errorf("reply metadata: irt=%d state=%d", obj.InReplyTo, obj.State)
	}

	revs = parent.Revisions()
	if len(revs) != 1 {
		t.Fatalf("got %d tied revisions, want 1", len(revs))
	}
	if revs[0].Contents() != "answer" {
		t.Errorf("revision contents: got %q", revs[0].Contents())
	}
	if revs[0].RevisionScope() != annot.ScopeReply || revs[0].RevisionType() != annot.RevAccepted {
		t.Errorf("tied scope/type: got %d/%d", revs[0].RevisionScope(), revs[0].RevisionType())
	}

	roots, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	if len(roots) != 1 || !roots[0].IsTied() || roots[0].Backing() != parent.Backing() {
		t.Errorf("root scan: got %v", roots)
	}

	if err := parent.AddRevision(annot.NewInk().Record, annot.ScopeReply, annot.RevNone); !errors.Is(err, annot.ErrTied) {
		t.Errorf("AddRevision on tied parent: got %v, want ErrTied", err)
	}
	if err := child.SetRevision(annot.ScopeGroup, annot.RevNone); !errors.Is(err, annot.ErrTied) {
		t.Errorf("SetRevision on tied record: got %v, want ErrTied", err)
	}
}

func TestRevisionsWithoutIdentifier(t *testing.T) {
	e := newEnv(0, 612, 792)
	text := &backing.Text{}
	if err := e.page.AddInline(text); err != nil {
		t.Fatal(err)
	}
	e.page.AddAnnot(&backing.Text{Markup: backing.Markup{InReplyTo: 99}})

	recs, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if revs := recs[0].Revisions(); len(revs) != 0 {
		t.Errorf("record without identifier has %d revisions", len(revs))
	}
}

func TestMaterializeReply(t *testing.T) {
	e := newEnv(0, 612, 792)
	other := e.doc.NewPage(rect.Rect{URx: 100, URy: 100}, 0)

	parent := annot.NewGeom(annot.InscribedSquare)
	reply := annot.NewText(annot.Linked)
	reply.SetRevision(annot.ScopeGroup, annot.RevMarked)

	err := e.ctl.MaterializeReply(reply.Record, parent.Record, e.page)
	if !errors.Is(err, annot.ErrNotTied) {
		t.Errorf("detached parent: got %v, want ErrNotTied", err)
	}
	if err := e.ctl.Materialize(parent.Record, e.page); err != nil {
		t.Fatal(err)
	}
	err = e.ctl.MaterializeReply(reply.Record, parent.Record, other)
	if !errors.Is(err, annot.ErrWrongPage) {
		t.Errorf("wrong page: got %v, want ErrWrongPage", err)
	}

	if err := e.ctl.MaterializeReply(reply.Record, parent.Record, e.page); err != nil {
		t.Fatal(err)
	}
	obj := reply.Backing().(*backing.Text)
	if obj.InReplyTo != parent.Ref() || obj.ReplyType != backing.ReplyTypeGroup || obj.State != backing.TextStateMarked {
		t.Errorf("reply fields: %d %q %d", obj.InReplyTo, obj.ReplyType, obj.State)
	}
	if reply.RevisionScope() != annot.ScopeGroup || reply.RevisionType() != annot.RevMarked {
		t.Errorf("scope/type: got %d/%d", reply.RevisionScope(), reply.RevisionType())
	}
	if revs := parent.Revisions(); len(revs) != 1 || revs[0].Backing() != reply.Backing() {
		t.Errorf("parent revisions: got %v", revs)
	}
}

func TestCommonFieldsTied(t *testing.T) {
	e := newEnv(0, 612, 792)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	modified := created.Add(time.Hour)
	style := annot.Style{
		Color:           annot.RGBColor(1, 0, 0),
		Opacity:         0.5,
		Width:           2,
		LineStyle:       annot.Dashed,
		XCorners:        1,
		YCorners:        1.5,
		DashArray:       []float64{4, 2},
		LineEffect:      annot.Cloudy,
		EffectIntensity: 2,
	}
	boundary := transform.Rect{Left: 0.25, Top: 0.5, Right: 0.75, Bottom: 0.625}

	g := annot.NewGeom(annot.InscribedSquare)
	g.SetAuthor("Ann")
	g.SetContents("hello")
	g.SetUniqueName("cafe\u0301")
	g.SetCreationDate(created)
	g.SetModificationDate(modified)
	g.SetFlags(annot.Hidden | annot.DenyPrint)
	g.SetStyle(style)
	g.SetBoundary(boundary)
	g.SetInnerColor(annot.GrayColor(0.5))

	if err := e.ctl.Materialize(g.Record, e.page); err != nil {
		t.Fatal(err)
	}

	if g.Author() != "Ann" || g.Contents() != "hello" {
		t.Errorf("author/contents: %q/%q", g.Author(), g.Contents())
	}
	if g.UniqueName() != "caf\u00e9" {
		t.Errorf("unique name not in NFC: %q", g.UniqueName())
	}
	if !g.CreationDate().Equal(created) || !g.ModificationDate().Equal(modified) {
		t.Errorf("dates: %v %v", g.CreationDate(), g.ModificationDate())
	}
	if g.Flags() != annot.Hidden|annot.DenyPrint {
		t.Errorf("flags: got %d", g.Flags())
	}
	if diff := cmp.Diff(style, g.Style(), approx); diff != "" {
		t.Errorf("style (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(boundary, g.Boundary(), approx); diff != "" {
		t.Errorf("boundary (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(annot.GrayColor(0.5), g.InnerColor()); diff != "" {
		t.Errorf("inner color (-want +got):\n%s", diff)
	}

	obj := g.Backing().(*backing.Geometry)
	wantRect := rect.Rect{LLx: 153, LLy: 297, URx: 459, URy: 396}
	if diff := cmp.Diff(wantRect, obj.Rect, approx); diff != "" {
		t.Errorf("native rect (-want +got):\n%s", diff)
	}
	if obj.Flags&backing.FlagPrint != 0 || obj.Flags&backing.FlagHidden == 0 {
		t.Errorf("native flags: %b", obj.Flags)
	}

	g.SetContents("changed")
	if obj.Contents != "changed" {
		t.Error("tied setter did not write through")
	}
}

func TestFixedRotationBoundary(t *testing.T) {
	for _, rot := range []int{0, 90, 180, 270} {
		e := newEnv(rot, 600, 800)
		b := transform.Rect{Left: 0.2, Top: 0.3, Right: 0.4, Bottom: 0.35}

		s := annot.NewStamp()
		s.SetFlags(annot.FixedRotation)
		s.SetBoundary(b)
		if err := e.ctl.Materialize(s.Record, e.page); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(b, s.Boundary(), approx); diff != "" {
			t.Errorf("rotation %d (-want +got):\n%s", rot, diff)
		}
	}
}

func TestMaterializeInvalidPopup(t *testing.T) {
	e := newEnv(0, 612, 792)
	g := annot.NewGeom(annot.InscribedSquare)
	g.SetBoundary(transform.Rect{Left: 0.1, Top: 0.1, Right: 0.2, Bottom: 0.2})
	err := g.SetPopup(annot.Popup{
		Geometry: transform.Rect{Left: math.NaN(), Top: 0.1, Right: 0.5, Bottom: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}

	var malformed *backing.MalformedError
	if err := e.ctl.Materialize(g.Record, e.page); !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedError", err)
	}
	if g.IsTied() {
		t.Error("record tied after failed materialize")
	}
	if n := len(e.page.Annots()); n != 0 {
		t.Fatalf("page has %d annotations after failed materialize", n)
	}

	err = g.SetPopup(annot.Popup{
		Geometry: transform.Rect{Left: 0.3, Top: 0.1, Right: 0.5, Bottom: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.ctl.Materialize(g.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if n := len(e.page.Annots()); n != 2 {
		t.Errorf("page has %d annotations, want 2", n)
	}
}

func TestPopupTied(t *testing.T) {
	e := newEnv(0, 612, 792)
	g := annot.NewGeom(annot.InscribedSquare)
	if err := e.ctl.Materialize(g.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if got := g.Popup(); got.Flags != annot.NoPopupFlags {
		t.Errorf("new record has popup flags %d", got.Flags)
	}

	p := annot.Popup{
		Flags:    annot.Hidden | annot.FixedSize,
		Geometry: transform.Rect{Left: 0.5, Top: 0.125, Right: 0.75, Bottom: 0.25},
		Summary:  "summary",
	}
	if err := g.SetPopup(p); err != nil {
		t.Fatal(err)
	}
	if n := len(e.page.Annots()); n != 2 {
		t.Fatalf("page has %d annotations, want 2", n)
	}
	if diff := cmp.Diff(p, g.Popup(), approx); diff != "" {
		t.Errorf("popup (-want +got):\n%s", diff)
	}
	popup := g.Backing().(*backing.Geometry).Popup
	if popup.Parent != g.Ref() || popup.Open {
		t.Errorf("popup object: parent=%d open=%t", popup.Parent, popup.Open)
	}

	if err := g.SetPopup(annot.NoPopup()); err != nil {
		t.Fatal(err)
	}
	if n := len(e.page.Annots()); n != 1 {
		t.Errorf("page has %d annotations after removing the popup", n)
	}
	if diff := cmp.Diff(annot.NoPopup(), g.Popup()); diff != "" {
		t.Errorf("popup after removal (-want +got):\n%s", diff)
	}
}

func TestTextTied(t *testing.T) {
	e := newEnv(0, 612, 792)

	ft := annot.NewText(annot.InPlace)
	ft.SetFont(annot.Font{Family: "Helvetica", Size: 12})
	ft.SetFontColor(annot.RGBColor(0, 0, 1))
	ft.SetAlign(2)
	ft.SetIntent(annot.InplaceCallout)
	callout := []vec.Vec2{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}, {X: 0.3, Y: 0.2}}
	if err := ft.SetCalloutPoints(callout); err != nil {
		t.Fatal(err)
	}
	var geomErr *annot.InvalidGeometryError
	if err := ft.SetCalloutPoints([]vec.Vec2{{}}); !errors.As(err, &geomErr) {
		t.Errorf("one callout point: got %v", err)
	}

	if err := e.ctl.Materialize(ft.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if ft.Backing().Subtype() != backing.SubtypeFreeText {
		t.Errorf("subtype: got %s", ft.Backing().Subtype())
	}
	if ft.TextType() != annot.InPlace || ft.Align() != 2 || ft.Intent() != annot.InplaceCallout {
		t.Errorf("type/align/intent: %d %d %d", ft.TextType(), ft.Align(), ft.Intent())
	}
	if diff := cmp.Diff(annot.Font{Family: "Helvetica", Size: 12}, ft.Font()); diff != "" {
		t.Errorf("font (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(annot.RGBColor(0, 0, 1), ft.FontColor()); diff != "" {
		t.Errorf("font color (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(callout, ft.CalloutPoints(), approx); diff != "" {
		t.Errorf("callout (-want +got):\n%s", diff)
	}
	if ft.Icon() != "" {
		t.Errorf("in-place text has icon %q", ft.Icon())
	}

	ft.SetFont(annot.Font{Family: "Times", Size: -1})
	if got := ft.Font(); got.Size != backing.UndefinedFontSize {
		t.Errorf("negative size: got %g", got.Size)
	}
	if !e.hasMessage(logrus.WarnLevel, "negative font size replaced") {
		t.Error("negative font size was not logged")
	}
	if err := ft.SetTextType(annot.Linked); !errors.Is(err, annot.ErrTied) {
		t.Errorf("SetTextType on tied record: got %v", err)
	}

	note := annot.NewText(annot.Linked)
	if note.Icon() != "Note" {
		t.Errorf("default icon: got %q", note.Icon())
	}
	note.SetIcon("Comment")
	if err := e.ctl.Materialize(note.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if note.Icon() != "Comment" || len(note.CalloutPoints()) != 0 {
		t.Errorf("note: icon %q, callout %v", note.Icon(), note.CalloutPoints())
	}
}

func TestHighlightTied(t *testing.T) {
	e := newEnv(270, 600, 800)

	quads := []annot.Quad{{
		Points:   [4]vec.Vec2{{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.1}, {X: 0.5, Y: 0.15}, {X: 0.1, Y: 0.15}},
		CapStart: true,
		CapEnd:   true,
		Feather:  0.1,
	}}
	hl := annot.NewHighlight(annot.MarkSquiggly)
	hl.SetQuads(quads)
	if err := e.ctl.Materialize(hl.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if hl.Backing().Subtype() != backing.SubtypeSquiggly {
		t.Errorf("subtype: got %s", hl.Backing().Subtype())
	}
	if diff := cmp.Diff(quads, hl.Quads(), approx); diff != "" {
		t.Errorf("quads (-want +got):\n%s", diff)
	}

	hl.SetHighlightType(annot.MarkStrikeOut)
	if hl.HighlightType() != annot.MarkStrikeOut {
		t.Errorf("type: got %d", hl.HighlightType())
	}
}

func TestInkTied(t *testing.T) {
	e := newEnv(180, 600, 800)
	paths := [][]vec.Vec2{
		{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.3}},
		{{X: 0.5, Y: 0.5}, {X: 0.6, Y: 0.5}, {X: 0.7, Y: 0.9}},
	}
	ink := annot.NewInk()
	ink.SetPaths(paths)
	if err := e.ctl.Materialize(ink.Record, e.page); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(paths, ink.Paths(), approx); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	native := ink.Backing().(*backing.Ink).InkList
	// rotated by 180 degrees: x -> 600(1-x), y -> 800y
	if diff := cmp.Diff(vec.Vec2{X: 540, Y: 80}, native[0][0], approx); diff != "" {
		t.Errorf("native point (-want +got):\n%s", diff)
	}
}

func TestStampImage(t *testing.T) {
	e := newEnv(0, 612, 792)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 128})

	s := annot.NewStamp()
	if s.IconName() != "Draft" {
		t.Errorf("default icon: %q", s.IconName())
	}
	s.SetCustomImage(img)
	if err := e.ctl.Materialize(s.Record, e.page); err != nil {
		t.Fatal(err)
	}

	stored := s.Backing().(*backing.Stamp).Image
	want := &backing.StampImage{
		Width:  2,
		Height: 1,
		RGB:    []byte{255, 0, 0, 0, 0, 255},
		Alpha:  []byte{255, 128},
	}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored image (-want +got):\n%s", diff)
	}

	back, ok := s.CustomImage().(*image.NRGBA)
	if !ok {
		t.Fatalf("got %T", s.CustomImage())
	}
	if diff := cmp.Diff(img.Pix, back.Pix); diff != "" {
		t.Errorf("image pixels (-want +got):\n%s", diff)
	}

	opaque := image.NewGray(image.Rect(0, 0, 1, 1))
	s.SetCustomImage(opaque)
	if a := s.Backing().(*backing.Stamp).Image.Alpha; a != nil {
		t.Errorf("opaque image has soft mask %v", a)
	}
}

func TestScanLink(t *testing.T) {
	e := newEnv(0, 612, 792)
	uri := &action.URI{URI: "https://example.com/"}
	e.page.AddAnnot(&backing.Link{
		Common:    backing.Common{Rect: rect.Rect{LLx: 0, LLy: 692, URx: 100, URy: 792}},
		Action:    uri,
		Highlight: backing.LinkHighlightOutline,
		QuadPoints: []vec.Vec2{
			{X: 0, Y: 692}, {X: 100, Y: 692}, {X: 0, Y: 792}, {X: 100, Y: 792},
		},
	})

	recs, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	link, ok := recs[0].AsLink()
	if !ok {
		t.Fatalf("got kind %s", recs[0].Kind())
	}
	if link.Destination() != action.Action(uri) || link.HighlightMode() != annot.LinkOutline {
		t.Errorf("link: %v %d", link.Destination(), link.HighlightMode())
	}

	x, y := 100.0/612, 100.0/792
	want := []vec.Vec2{{X: 0, Y: y}, {X: x, Y: y}, {X: x, Y: 0}, {X: 0, Y: 0}}
	var got []vec.Vec2
	for i := range 4 {
		got = append(got, link.RegionPoint(i))
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("region (-want +got):\n%s", diff)
	}

	link.SetHighlightMode(annot.LinkPush)
	if obj := link.Backing().(*backing.Link); obj.Highlight != backing.LinkHighlightPush {
		t.Errorf("highlight not written through: %s", obj.Highlight)
	}
}

func TestLinkSharedBacking(t *testing.T) {
	e := newEnv(0, 612, 792)
	e.page.AddAnnot(&backing.Link{
		Common: backing.Common{Rect: rect.Rect{LLx: 0, LLy: 692, URx: 100, URy: 792}},
		Action: &action.URI{URI: "https://example.com/"},
	})
	e.page.AddAnnot(&backing.FileAttachment{Icon: "Paperclip"})

	first, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	second, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	if len(first) != 2 || len(second) != 2 || first[0].Same(second[0]) {
		t.Fatalf("got %d and %d records", len(first), len(second))
	}

	a, _ := first[0].AsLink()
	b, _ := second[0].AsLink()
	dest := &action.GoTo{Destination: "chapter1"}
	a.SetDestination(dest)
	a.SetHighlightMode(annot.LinkNone)
	a.SetRegionPoint(2, vec.Vec2{X: 0.5, Y: 0.25})
	if b.Destination() != action.Action(dest) {
		t.Errorf("destination: got %v", b.Destination())
	}
	if b.HighlightMode() != annot.LinkNone {
		t.Errorf("highlight mode: got %d", b.HighlightMode())
	}
	if diff := cmp.Diff(vec.Vec2{X: 0.5, Y: 0.25}, b.RegionPoint(2), approx); diff != "" {
		t.Errorf("region point (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.RegionPoint(0), b.RegionPoint(0), approx); diff != "" {
		t.Errorf("unchanged region point (-a +b):\n%s", diff)
	}

	fa, _ := first[1].AsFileAttachment()
	fb, _ := second[1].AsFileAttachment()
	fa.SetIconName("Tag")
	if fb.IconName() != "Tag" {
		t.Errorf("icon: got %q", fb.IconName())
	}
}

func TestScanMedia(t *testing.T) {
	e := newEnv(0, 612, 792)
	file := &backing.FileSpec{FileName: "data.csv"}
	rendition := &action.Rendition{Operation: action.RenditionPlay}
	e.page.AddAnnot(&backing.FileAttachment{File: file, Icon: "Paperclip"})
	e.page.AddAnnot(&backing.Screen{Title: "no rendition", Action: &action.URI{}})
	e.page.AddAnnot(&backing.Screen{Title: "video", Action: rendition})
	e.page.AddAnnot(&backing.Widget{FieldName: "name"})

	recs, _ := e.ctl.Scan(e.page, nil, backing.NoRef)
	var kinds []annot.Kind
	for _, r := range recs {
		kinds = append(kinds, r.Kind())
	}
	want := []annot.Kind{annot.KindFileAttachment, annot.KindScreen, annot.KindWidget}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}

	fa, _ := recs[0].AsFileAttachment()
	if fa.EmbeddedFile() != file || fa.IconName() != "Paperclip" {
		t.Errorf("file attachment: %v %q", fa.EmbeddedFile(), fa.IconName())
	}
	screen, _ := recs[1].AsScreen()
	if screen.Title() != "video" || screen.Action() != rendition {
		t.Errorf("screen: %q %v", screen.Title(), screen.Action())
	}
	widget, _ := recs[2].AsWidget()
	if widget.FieldName() != "name" {
		t.Errorf("widget field: %q", widget.FieldName())
	}
}

func TestAlias(t *testing.T) {
	c := annot.NewCaret()
	alias := c.Alias()
	c.SetSymbol(annot.CaretParagraph)
	ac, ok := alias.AsCaret()
	if !ok || ac.Symbol() != annot.CaretParagraph {
		t.Error("change not visible through alias")
	}
	if !alias.Same(c.Record) || alias.Kind() != annot.KindCaret {
		t.Error("alias does not refer to the same record")
	}
	if _, ok := alias.AsLine(); ok {
		t.Error("caret viewed as line")
	}
	var zero annot.Record
	if zero.IsValid() || zero.Same(zero) {
		t.Error("zero record is valid")
	}
}
