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

package action

import "testing"

func TestActionType(t *testing.T) {
	cases := []struct {
		a    Action
		want Type
	}{
		{&GoTo{Destination: "x"}, TypeGoTo},
		{&GoTo{FileName: "a.pdf"}, TypeGoToR},
		{&Launch{}, TypeLaunch},
		{&URI{}, TypeURI},
		{&Named{Name: PageFirst}, TypeNamed},
		{&Movie{}, TypeMovie},
		{&Rendition{}, TypeRendition},
		{&Sound{}, TypeSound},
		{&JavaScript{}, TypeJavaScript},
		{&SetOCGState{}, TypeSetOCGState},
		{&Hide{}, TypeHide},
		{&ResetForm{}, TypeResetForm},
		{&SubmitForm{}, TypeSubmitForm},
	}
	for _, tc := range cases {
		if got := tc.a.ActionType(); got != tc.want {
			t.Errorf("%T: got %q, want %q", tc.a, got, tc.want)
		}
	}
}

func TestNamedIsKnown(t *testing.T) {
	for _, n := range []NamedAction{PageFirst, PageLast, Quit, SaveAs} {
		if !n.IsKnown() {
			t.Errorf("%q not known", n)
		}
	}
	for _, n := range []NamedAction{"", "pagefirst", "Explode"} {
		if n.IsKnown() {
			t.Errorf("%q known", n)
		}
	}
}
