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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect is a rectangle in normalized space.
// The y-axis points down, so Top is normally smaller than Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// TopLeft returns the top-left corner of the rectangle.
func (r Rect) TopLeft() vec.Vec2 {
	return vec.Vec2{X: r.Left, Y: r.Top}
}

// BottomRight returns the bottom-right corner of the rectangle.
func (r Rect) BottomRight() vec.Vec2 {
	return vec.Vec2{X: r.Right, Y: r.Bottom}
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Normalize returns a copy of r with Left <= Right and Top <= Bottom.
func (r Rect) Normalize() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(a, b vec.Vec2) Rect {
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}.Normalize()
}

// ToNormalized converts a native rectangle to normalized space, using the
// matrix M.  The result always satisfies Left <= Right and Top <= Bottom.
func ToNormalized(M matrix.Matrix, native rect.Rect) Rect {
	p1 := Apply(M, vec.Vec2{X: native.LLx, Y: native.LLy})
	p2 := Apply(M, vec.Vec2{X: native.URx, Y: native.URy})
	return RectFromPoints(p1, p2)
}

// ToNative converts a normalized rectangle to a native rectangle, on a page
// with the given rotation and crop box.
//
// The page's normalization matrix is used, since the annotation's own
// native rectangle is not yet known at this point.  If fixedRotation is
// set, the resulting rectangle is additionally rotated by the page rotation
// around its top-left corner, so that it is the inverse of [ToNormalized]
// with the matrix returned by [ForAnnotation].
//
// If the crop box has zero width or height, the zero rectangle is returned.
func ToNative(rot Rotation, crop rect.Rect, r Rect, fixedRotation bool) rect.Rect {
	w, h := CropSize(crop)
	if w == 0 || h == 0 {
		return rect.Rect{}
	}

	rot = rot.Snap()
	M := Normalization(rot, crop)
	tl := InverseApply(M, r.TopLeft())
	br := InverseApply(M, r.BottomRight())
	if tl.X > br.X {
		tl.X, br.X = br.X, tl.X
	}
	if tl.Y > br.Y {
		tl.Y, br.Y = br.Y, tl.Y
	}

	fixUp := Rotate0
	if fixedRotation {
		fixUp = rot
	}
	width := br.X - tl.X
	height := br.Y - tl.Y

	switch fixUp {
	case Rotate90:
		return rect.Rect{LLx: tl.X, LLy: tl.Y - width, URx: tl.X + height, URy: tl.Y}
	case Rotate180:
		return rect.Rect{LLx: br.X, LLy: tl.Y - height, URx: br.X + width, URy: tl.Y}
	case Rotate270:
		return rect.Rect{LLx: br.X, LLy: br.Y - width, URx: br.X + height, URy: br.Y}
	default:
		return rect.Rect{LLx: tl.X, LLy: tl.Y, URx: br.X, URy: br.Y}
	}
}
