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

package transform

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var allRotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

func TestNewRotation(t *testing.T) {
	cases := []struct {
		in   int
		want Rotation
	}{
		{0, Rotate0},
		{90, Rotate90},
		{180, Rotate180},
		{270, Rotate270},
		{360, Rotate0},
		{450, Rotate90},
		{-90, Rotate270},
		{45, Rotate0},
		{91, Rotate0},
		{-1, Rotate0},
	}
	for _, c := range cases {
		if got := NewRotation(c.in); got != c.want {
			t.Errorf("NewRotation(%d) = %d, want %d", c.in, got, c.want)
		}
	}

	if got := Rotation(45).Snap(); got != Rotate0 {
		t.Errorf("Rotation(45).Snap() = %d, want 0", got)
	}
}

func TestNormalizationCorners(t *testing.T) {
	crop := rect.Rect{LLx: 0, LLy: 0, URx: 600, URy: 800}

	// the displayed top-left corner of the page must map to the origin
	topLeft := map[Rotation]vec.Vec2{
		Rotate0:   {X: 0, Y: 800},
		Rotate90:  {X: 0, Y: 0},
		Rotate180: {X: 600, Y: 0},
		Rotate270: {X: 600, Y: 800},
	}
	for rot, p := range topLeft {
		M := Normalization(rot, crop)
		got := Apply(M, p)
		if d := cmp.Diff(vec.Vec2{}, got, approx); d != "" {
			t.Errorf("rotation %d: top-left corner (-want +got):\n%s", rot, d)
		}
	}
}

func TestRotated90Line(t *testing.T) {
	crop := rect.Rect{URx: 600, URy: 800}
	M := Normalization(Rotate90, crop)

	in := []vec.Vec2{{X: 0, Y: 0}, {X: 600, Y: 0}}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}}
	got := ApplyAll(M, in)
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("line end points (-want +got):\n%s", d)
	}

	back := InverseApplyAll(M, got)
	if d := cmp.Diff(in, back, approx); d != "" {
		t.Errorf("inverse (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	crops := []rect.Rect{
		{URx: 600, URy: 800},
		{LLx: 10, LLy: 20, URx: 622, URy: 812},
		{LLx: -50, LLy: 0, URx: 50, URy: 30},
	}
	natives := []rect.Rect{
		{LLx: 100, LLy: 100, URx: 200, URy: 150},
		{LLx: 12, LLy: 25, URx: 13, URy: 300},
		{LLx: -20, LLy: 5, URx: 40, URy: 6},
	}
	for _, crop := range crops {
		for _, rot := range allRotations {
			for _, r := range natives {
				name := fmt.Sprintf("%v-%v-%v", crop, rot, r)
				t.Run(name, func(t *testing.T) {
					M := Normalization(rot, crop)
					n := ToNormalized(M, r)
					got := ToNative(rot, crop, n, false)
					if d := cmp.Diff(r, got, approx); d != "" {
						t.Errorf("round trip (-want +got):\n%s", d)
					}
				})
			}
		}
	}
}

func TestFixedRotationRoundTrip(t *testing.T) {
	crop := rect.Rect{LLx: 0, LLy: 0, URx: 612, URy: 792}
	boxes := []Rect{
		{Left: 0.1, Top: 0.2, Right: 0.3, Bottom: 0.25},
		{Left: 0.5, Top: 0.5, Right: 0.9, Bottom: 0.95},
	}
	for _, rot := range allRotations {
		for _, box := range boxes {
			native := ToNative(rot, crop, box, true)
			M := ForAnnotation(rot, crop, true, native)
			got := ToNormalized(M, native)
			if d := cmp.Diff(box, got, approx); d != "" {
				t.Errorf("rotation %d (-want +got):\n%s", rot, d)
			}
		}
	}
}

func TestFixedRotationIdentity(t *testing.T) {
	crop := rect.Rect{URx: 300, URy: 400}
	native := rect.Rect{LLx: 10, LLy: 10, URx: 50, URy: 30}

	want := Normalization(Rotate0, crop)
	got := ForAnnotation(Rotate0, crop, true, native)
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("matrix (-want +got):\n%s", d)
	}

	box := Rect{Left: 0.25, Top: 0.5, Right: 0.75, Bottom: 0.625}
	a := ToNative(Rotate0, crop, box, true)
	b := ToNative(Rotate0, crop, box, false)
	if d := cmp.Diff(b, a, approx); d != "" {
		t.Errorf("native rectangle (-want +got):\n%s", d)
	}
}

func TestNonFixedIgnoresOrigin(t *testing.T) {
	crop := rect.Rect{URx: 300, URy: 400}
	native := rect.Rect{LLx: 10, LLy: 10, URx: 50, URy: 30}
	for _, rot := range allRotations {
		want := Normalization(rot, crop)
		got := ForAnnotation(rot, crop, false, native)
		if want != got {
			t.Errorf("rotation %d: got %v, want %v", rot, got, want)
		}
	}
}

func TestNormalizedIsSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	crop := rect.Rect{URx: 500, URy: 700}
	for i := 0; i < 1000; i++ {
		rot := allRotations[rng.Intn(len(allRotations))]
		r := rect.Rect{
			LLx: rng.Float64()*1000 - 250,
			LLy: rng.Float64()*1000 - 250,
			URx: rng.Float64()*1000 - 250,
			URy: rng.Float64()*1000 - 250,
		}
		M := ForAnnotation(rot, crop, rng.Intn(2) == 0, r)
		n := ToNormalized(M, r)
		if n.Left > n.Right || n.Top > n.Bottom {
			t.Fatalf("unsorted result %v for %v, rotation %d", n, r, rot)
		}
	}
}

func TestDegenerateCrop(t *testing.T) {
	crop := rect.Rect{LLx: 10, LLy: 10, URx: 10, URy: 500}
	for _, rot := range allRotations {
		if M := Normalization(rot, crop); M != (matrix.Matrix{}) {
			t.Errorf("rotation %d: matrix %v, want zero", rot, M)
		}
		box := Rect{Left: 0.1, Top: 0.1, Right: 0.2, Bottom: 0.2}
		if r := ToNative(rot, crop, box, false); r != (rect.Rect{}) {
			t.Errorf("rotation %d: native %v, want zero", rot, r)
		}
		n := ToNormalized(Normalization(rot, crop), rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 4})
		if !n.IsEmpty() {
			t.Errorf("rotation %d: normalized %v, want empty", rot, n)
		}
	}
}

func TestInverseApply(t *testing.T) {
	M := matrix.Matrix{2, 1, -1, 3, 5, 7}
	points := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: -2}, {X: 13.5, Y: 0.25}}
	for _, p := range points {
		got := InverseApply(M, Apply(M, p))
		if d := cmp.Diff(p, got, approx); d != "" {
			t.Errorf("point %v (-want +got):\n%s", p, d)
		}
	}

	if got := InverseApply(matrix.Matrix{}, vec.Vec2{X: 1, Y: 1}); got != (vec.Vec2{}) {
		t.Errorf("singular matrix: got %v", got)
	}
}
