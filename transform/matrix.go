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

// CropSize returns the width and height of the crop box.
// Negative extents, caused by swapped corners, are returned as positive
// values.
func CropSize(crop rect.Rect) (w, h float64) {
	w = crop.URx - crop.LLx
	if w < 0 {
		w = -w
	}
	h = crop.URy - crop.LLy
	if h < 0 {
		h = -h
	}
	return w, h
}

// Normalization returns the matrix which maps native page coordinates to
// normalized coordinates for a page with the given rotation and crop box.
//
// In normalized space the displayed (rotated) crop box covers the unit
// square, with the origin in the top-left corner and the y-axis pointing
// down.  If the crop box has zero width or height, the zero matrix is
// returned.
func Normalization(rot Rotation, crop rect.Rect) matrix.Matrix {
	x1, x2 := min(crop.LLx, crop.URx), max(crop.LLx, crop.URx)
	y1, y2 := min(crop.LLy, crop.URy), max(crop.LLy, crop.URy)
	w, h := x2-x1, y2-y1

	// device space at 72 dpi, upside down
	var ctm matrix.Matrix
	switch rot.Snap() {
	case Rotate90:
		ctm = matrix.Matrix{0, 1, 1, 0, -y1, -x1}
		w, h = h, w
	case Rotate180:
		ctm = matrix.Matrix{-1, 0, 0, 1, x2, -y1}
	case Rotate270:
		ctm = matrix.Matrix{0, -1, -1, 0, y2, x2}
		w, h = h, w
	default:
		ctm = matrix.Matrix{1, 0, 0, -1, -x1, y2}
	}

	if w == 0 || h == 0 {
		return matrix.Matrix{}
	}

	var M matrix.Matrix
	for i := 0; i < 6; i += 2 {
		M[i] = ctm[i] / w
		M[i+1] = ctm[i+1] / h
	}
	return M
}

// ForAnnotation returns the matrix which maps the native coordinates of an
// annotation to normalized coordinates.
//
// For annotations which are not fixed-rotation, and for unrotated pages,
// this is the same as [Normalization].  Otherwise the annotation is first
// rotated by the page rotation around the top-left corner of its native
// rectangle, so that it stays upright when the page is displayed.  The
// argument native must be the annotation's current native rectangle.
func ForAnnotation(rot Rotation, crop rect.Rect, fixedRotation bool, native rect.Rect) matrix.Matrix {
	rot = rot.Snap()
	norm := Normalization(rot, crop)
	if rot == Rotate0 || !fixedRotation {
		return norm
	}

	xMin := min(native.LLx, native.URx)
	yMax := max(native.LLy, native.URy)
	M := matrix.Translate(-xMin, -yMax)
	M = M.Mul(turn(rot))
	M = M.Mul(matrix.Translate(xMin, yMax))
	return M.Mul(norm)
}

// turn returns the exact rotation matrix for one of the canonical angles.
func turn(rot Rotation) matrix.Matrix {
	switch rot {
	case Rotate90:
		return matrix.Matrix{0, 1, -1, 0, 0, 0}
	case Rotate180:
		return matrix.Matrix{-1, 0, 0, -1, 0, 0}
	case Rotate270:
		return matrix.Matrix{0, -1, 1, 0, 0, 0}
	default:
		return matrix.Identity
	}
}

// Apply maps the point p using the matrix M.
func Apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*p.X + M[2]*p.Y + M[4],
		Y: M[1]*p.X + M[3]*p.Y + M[5],
	}
}

// InverseApply maps the point p using the inverse of M.
// The 2x2 system is solved directly.  If M is singular, the zero vector is
// returned.
func InverseApply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	det := M[0]*M[3] - M[1]*M[2]
	if det == 0 {
		return vec.Vec2{}
	}
	xt := p.X - M[4]
	yt := p.Y - M[5]
	return vec.Vec2{
		X: (M[3]*xt - M[2]*yt) / det,
		Y: (M[0]*yt - M[1]*xt) / det,
	}
}

// ApplyAll maps a list of points using M.
func ApplyAll(M matrix.Matrix, points []vec.Vec2) []vec.Vec2 {
	if points == nil {
		return nil
	}
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		res[i] = Apply(M, p)
	}
	return res
}

// InverseApplyAll maps a list of points using the inverse of M.
func InverseApplyAll(M matrix.Matrix, points []vec.Vec2) []vec.Vec2 {
	if points == nil {
		return nil
	}
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		res[i] = InverseApply(M, p)
	}
	return res
}
