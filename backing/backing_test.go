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
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestBorderStyleIndex(t *testing.T) {
	for i, s := range borderStyles {
		if got := s.Index(); got != i {
			t.Errorf("%q: got index %d, want %d", s, got, i)
		}
		if got := BorderStyleFromIndex(i); got != s {
			t.Errorf("index %d: got %q, want %q", i, got, s)
		}
	}

	if got := BorderStyle("X").Index(); got != 0 {
		t.Errorf("unknown style: got index %d", got)
	}
	for _, i := range []int{-1, len(borderStyles)} {
		if got := BorderStyleFromIndex(i); got != BorderSolid {
			t.Errorf("index %d: got %q", i, got)
		}
	}
}

func TestOpacity(t *testing.T) {
	m := &Markup{}
	if m.Opacity() != 1 {
		t.Errorf("zero value: got opacity %g", m.Opacity())
	}
	m.SetOpacity(0.25)
	if m.Transparency != 0.75 || m.Opacity() != 0.25 {
		t.Errorf("got transparency %g, opacity %g", m.Transparency, m.Opacity())
	}
}

func TestValidate(t *testing.T) {
	good := rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}
	cases := []struct {
		name string
		a    Annotation
		err  error
	}{
		{"text", &Text{Common: Common{Rect: good}}, nil},
		{"nan", &Text{Common: Common{Rect: rect.Rect{LLx: math.NaN()}}}, errBadRect},
		{"inf", &Link{Common: Common{Rect: rect.Rect{URy: math.Inf(1)}}}, errBadRect},
		{"opacity", &Text{Markup: Markup{Transparency: 1.5}}, errBadOpacity},
		{"quads", &TextMarkup{QuadPoints: make([]vec.Vec2, 8)}, nil},
		{"bad quads", &TextMarkup{QuadPoints: make([]vec.Vec2, 6)}, errQuadCount},
		{"bad link quads", &Link{QuadPoints: make([]vec.Vec2, 3)}, errQuadCount},
	}
	for _, tc := range cases {
		err := Validate(tc.a)
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.err)
		}
		var malformed *MalformedError
		if tc.err != nil && (!errors.As(err, &malformed) || malformed.Subtype != tc.a.Subtype()) {
			t.Errorf("%s: subtype missing from %v", tc.name, err)
		}
	}
}
