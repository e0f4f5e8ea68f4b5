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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.IsDefaultPen() || !s.IsDefaultEffect() {
		t.Error("default style is not default")
	}
	s.DashArray = []float64{3, 1}
	if s.IsDefaultPen() {
		t.Error("modified dash array is default")
	}
	s = DefaultStyle()
	s.EffectIntensity = 2
	if s.IsDefaultEffect() {
		t.Error("modified intensity is default")
	}
}

func TestStyleClone(t *testing.T) {
	s := DefaultStyle()
	c := s.clone()
	c.DashArray[0] = 7
	if s.DashArray[0] != 3 {
		t.Error("clone shares the dash array")
	}
}

func TestLineStyleBacking(t *testing.T) {
	for _, test := range []struct {
		style LineStyle
		b     backing.BorderStyle
	}{
		{Solid, backing.BorderSolid},
		{Dashed, backing.BorderDashed},
		{Beveled, backing.BorderBeveled},
		{Inset, backing.BorderInset},
		{Underline, backing.BorderUnderline},
	} {
		if got := lineStyleToBacking(test.style); got != test.b {
			t.Errorf("to backing %d: got %s, want %s", test.style, got, test.b)
		}
		if got := lineStyleFromBacking(test.b); got != test.style {
			t.Errorf("from backing %s: got %d, want %d", test.b, got, test.style)
		}
	}
	if got := lineStyleToBacking(3); got != backing.BorderSolid {
		t.Errorf("invalid style: got %s", got)
	}
}

func TestQuadSwap(t *testing.T) {
	crop := rect.Rect{URx: 600, URy: 800}
	for _, rot := range []transform.Rotation{transform.Rotate0, transform.Rotate90, transform.Rotate180, transform.Rotate270} {
		M := transform.Normalization(rot, crop)
		q := Quad{
			Points: [4]vec.Vec2{
				{X: 0.1, Y: 0.2},
				{X: 0.4, Y: 0.2},
				{X: 0.4, Y: 0.3},
				{X: 0.1, Y: 0.3},
			},
			CapStart: true,
			CapEnd:   true,
			Feather:  0.1,
		}

		native := quadsToNative(M, []Quad{q})
		if len(native) != 4 {
			t.Fatalf("%s: got %d native points", rot, len(native))
		}
		// the third and fourth point are stored swapped
		opt := cmpopts.EquateApprox(0, 1e-9)
		if diff := cmp.Diff(q.Points[3], transform.Apply(M, native[2]), opt); diff != "" {
			t.Errorf("%s: native[2] (-want +got):\n%s", rot, diff)
		}
		if diff := cmp.Diff(q.Points[2], transform.Apply(M, native[3]), opt); diff != "" {
			t.Errorf("%s: native[3] (-want +got):\n%s", rot, diff)
		}

		back := quadsFromNative(M, native)
		if diff := cmp.Diff([]Quad{q}, back, opt); diff != "" {
			t.Errorf("%s: round trip (-want +got):\n%s", rot, diff)
		}
	}
}

func TestQuadsFromNativeDefaults(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 5, Y: 5}}
	quads := quadsFromNative(matrix.Identity, pts)
	want := []Quad{{
		Points:   [4]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		CapStart: true,
		CapEnd:   true,
		Feather:  0.1,
	}}
	if diff := cmp.Diff(want, quads); diff != "" {
		t.Errorf("unexpected quads (-want +got):\n%s", diff)
	}
	if quadsFromNative(matrix.Identity, pts[:3]) != nil {
		t.Error("incomplete quad was returned")
	}
}

func TestPopupEmpty(t *testing.T) {
	if !NoPopup().IsEmpty() {
		t.Error("NoPopup is not empty")
	}
	p := NoPopup()
	p.Summary = "x"
	if p.IsEmpty() {
		t.Error("popup with summary is empty")
	}
}
