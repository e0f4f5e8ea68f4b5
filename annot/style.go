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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// LineStyle is the style of an annotation border.
type LineStyle int

// The numeric values are part of the legacy serialization format.
const (
	Solid     LineStyle = 1
	Dashed    LineStyle = 2
	Beveled   LineStyle = 4
	Inset     LineStyle = 8
	Underline LineStyle = 16
)

func lineStyleFromBacking(s backing.BorderStyle) LineStyle {
	return LineStyle(1 << s.Index())
}

func lineStyleToBacking(s LineStyle) backing.BorderStyle {
	for i := 0; i < 5; i++ {
		if s == 1<<i {
			return backing.BorderStyleFromIndex(i)
		}
	}
	return backing.BorderSolid
}

// LineEffect is an effect applied to an annotation border.
type LineEffect int

// Valid values for LineEffect.
const (
	NoEffect LineEffect = 0
	Cloudy   LineEffect = 1
)

// Style describes how the border of an annotation is drawn.
type Style struct {
	Color   Color
	Opacity float64

	Width     float64
	LineStyle LineStyle

	// XCorners and YCorners are the corner radii.
	XCorners, YCorners float64

	DashArray []float64

	LineEffect      LineEffect
	EffectIntensity float64
}

// DefaultStyle returns the style of a newly constructed record: opaque,
// no color, a solid line of width 1, dash pattern [3] and no effect.
func DefaultStyle() Style {
	return Style{
		Opacity:         1,
		Width:           1,
		LineStyle:       Solid,
		DashArray:       []float64{3},
		EffectIntensity: 1,
	}
}

// IsDefaultPen reports whether the pen fields of s (width, line style,
// corner radii and dash array) have their default values.
func (s Style) IsDefaultPen() bool {
	return s.Width == 1 && s.LineStyle == Solid &&
		s.XCorners == 0 && s.YCorners == 0 &&
		len(s.DashArray) == 1 && s.DashArray[0] == 3
}

// IsDefaultEffect reports whether the effect fields of s have their
// default values.
func (s Style) IsDefaultEffect() bool {
	return s.LineEffect == NoEffect && s.EffectIntensity == 1
}

func (s Style) clone() Style {
	s.DashArray = slices.Clone(s.DashArray)
	return s
}

// NoPopupFlags is the value of [Popup.Flags] for records without a popup
// window.
const NoPopupFlags Flags = -1

// Popup describes the popup window of an annotation.
type Popup struct {
	// Flags holds the Hidden, FixedSize and FixedRotation flags of the
	// window, or [NoPopupFlags] if there is no window.
	Flags Flags

	// Geometry is the window rectangle in normalized coordinates.
	Geometry transform.Rect

	Title   string
	Summary string
	Text    string
}

// NoPopup returns the popup value of a record without popup window.
func NoPopup() Popup {
	return Popup{Flags: NoPopupFlags}
}

// IsEmpty reports whether p describes no popup window and carries no text.
func (p Popup) IsEmpty() bool {
	return p.Flags == NoPopupFlags && p.Title == "" && p.Summary == "" && p.Text == ""
}

// Quad is a quadrilateral in normalized coordinates.
// The points are notionally in counter-clockwise order.
type Quad struct {
	Points   [4]vec.Vec2
	CapStart bool
	CapEnd   bool
	Feather  float64
}

// quadsFromNative converts native quad points, four per quad, into quads.
// The third and fourth points are swapped, since this is the order used by
// most producers in practice.
func quadsFromNative(M matrix.Matrix, pts []vec.Vec2) []Quad {
	n := len(pts) / 4
	if n == 0 {
		return nil
	}
	res := make([]Quad, n)
	for i := range res {
		p := pts[4*i : 4*i+4]
		res[i] = Quad{
			Points: [4]vec.Vec2{
				transform.Apply(M, p[0]),
				transform.Apply(M, p[1]),
				transform.Apply(M, p[3]),
				transform.Apply(M, p[2]),
			},
			CapStart: true,
			CapEnd:   true,
			Feather:  0.1,
		}
	}
	return res
}

// quadsToNative is the inverse of quadsFromNative.
func quadsToNative(M matrix.Matrix, quads []Quad) []vec.Vec2 {
	if len(quads) == 0 {
		return nil
	}
	res := make([]vec.Vec2, 0, 4*len(quads))
	for _, q := range quads {
		res = append(res,
			transform.InverseApply(M, q.Points[0]),
			transform.InverseApply(M, q.Points[1]),
			transform.InverseApply(M, q.Points[3]),
			transform.InverseApply(M, q.Points[2]),
		)
	}
	return res
}
