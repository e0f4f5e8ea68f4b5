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

	"seehuhn.de/go/pdfannot/backing"
)

func TestFlagsToBacking(t *testing.T) {
	for _, test := range []struct {
		in   Flags
		want backing.Flags
	}{
		{0, backing.FlagPrint},
		{Hidden, backing.FlagHidden | backing.FlagPrint},
		{FixedSize | FixedRotation, backing.FlagNoZoom | backing.FlagNoRotate | backing.FlagPrint},
		{DenyPrint, 0},
		{DenyWrite, backing.FlagReadOnly | backing.FlagPrint},
		{DenyDelete, backing.FlagLocked | backing.FlagPrint},
		{ToggleHidingOnMouse | DenyPrint, backing.FlagToggleNoView},
		{External | DenyPrint, 0},
	} {
		if got := toBackingFlags(test.in); got != test.want {
			t.Errorf("toBackingFlags(%d) = %b, want %b", test.in, got, test.want)
		}
	}
}

func TestFlagsFromBacking(t *testing.T) {
	for _, test := range []struct {
		in   backing.Flags
		want Flags
	}{
		{backing.FlagPrint, 0},
		{0, DenyPrint},
		{backing.FlagPrint | backing.FlagReadOnly, DenyWrite | DenyDelete},
		{backing.FlagPrint | backing.FlagLocked, DenyDelete},
		{backing.FlagPrint | backing.FlagNoRotate | backing.FlagNoZoom, FixedRotation | FixedSize},
		{backing.FlagPrint | backing.FlagToggleNoView | backing.FlagHidden, ToggleHidingOnMouse | Hidden},
		{backing.FlagPrint | backing.FlagInvisible | backing.FlagNoView, 0},
	} {
		if got := fromBackingFlags(test.in); got != test.want {
			t.Errorf("fromBackingFlags(%b) = %d, want %d", test.in, got, test.want)
		}
	}
}

// TestFlagsRoundTrip checks that all flags which have a stored equivalent
// survive a round trip.
func TestFlagsRoundTrip(t *testing.T) {
	for f := Flags(0); f < 128; f++ {
		if f&DenyWrite != 0 && f&DenyDelete == 0 {
			// ReadOnly reads back as DenyWrite|DenyDelete
			continue
		}
		if got := fromBackingFlags(toBackingFlags(f)); got != f {
			t.Errorf("%d -> %d", f, got)
		}
	}
}

func TestKindOf(t *testing.T) {
	for _, test := range []struct {
		st   backing.Subtype
		want Kind
		ok   bool
	}{
		{backing.SubtypeText, KindText, true},
		{backing.SubtypeFreeText, KindText, true},
		{backing.SubtypePolyLine, KindLine, true},
		{backing.SubtypeCircle, KindGeom, true},
		{backing.SubtypeStrikeOut, KindHighlight, true},
		{backing.SubtypeWidget, KindWidget, true},
		{backing.SubtypePopup, 0, false},
		{backing.SubtypeRedact, 0, false},
		{backing.Subtype3D, 0, false},
	} {
		got, ok := kindOf(test.st)
		if got != test.want || ok != test.ok {
			t.Errorf("kindOf(%s) = %s, %t", test.st, got, ok)
		}
	}
}

func TestKindString(t *testing.T) {
	if s := KindRichMedia.String(); s != "RichMedia" {
		t.Errorf("got %q", s)
	}
	if s := Kind(99).String(); s != "Kind(99)" {
		t.Errorf("got %q", s)
	}
	if Kind(0).IsValid() {
		t.Error("Kind(0) must be invalid")
	}
}

func TestRevType(t *testing.T) {
	for _, typ := range []RevType{RevNone, RevMarked, RevUnmarked, RevAccepted,
		RevRejected, RevCancelled, RevCompleted} {
		if got := revTypeFromState(stateFromRevType(typ)); got != typ {
			t.Errorf("%d -> %d", typ, got)
		}
	}
}

func TestHighlightSubtype(t *testing.T) {
	for _, test := range []struct {
		typ  HighlightType
		want backing.Subtype
	}{
		{MarkHighlight, backing.SubtypeHighlight},
		{MarkSquiggly, backing.SubtypeSquiggly},
		{MarkUnderline, backing.SubtypeUnderline},
		{MarkStrikeOut, backing.SubtypeStrikeOut},
		{HighlightType(7), backing.SubtypeHighlight},
	} {
		if got := test.typ.subtype(); got != test.want {
			t.Errorf("%d: got %s, want %s", test.typ, got, test.want)
		}
	}

	// the border style of the same name is a different constant
	if lineStyleToBacking(Underline) != backing.BorderUnderline {
		t.Error("Underline is not the underline border style")
	}
}
