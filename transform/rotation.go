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

import "strconv"

// Rotation describes how a page is rotated when displayed.
// The only valid values are [Rotate0], [Rotate90], [Rotate180] and
// [Rotate270]; the angle is measured clockwise.
type Rotation int

// Valid values for Rotation.
const (
	Rotate0   Rotation = 0   // don't rotate
	Rotate90  Rotation = 90  // rotate 90 degrees clockwise
	Rotate180 Rotation = 180 // rotate 180 degrees clockwise
	Rotate270 Rotation = 270 // rotate 270 degrees clockwise
)

// NewRotation converts an angle in degrees to a Rotation.
// The angle is reduced modulo 360 first.  Angles which are not a multiple
// of 90 degrees are mapped to [Rotate0].
func NewRotation(deg int) Rotation {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 90:
		return Rotate90
	case 180:
		return Rotate180
	case 270:
		return Rotate270
	default:
		return Rotate0
	}
}

// Snap returns r if r is one of the four canonical values,
// and [Rotate0] otherwise.
func (r Rotation) Snap() Rotation {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return r
	default:
		return Rotate0
	}
}

// IsLandscape reports whether the rotation swaps width and height.
func (r Rotation) IsLandscape() bool {
	r = r.Snap()
	return r == Rotate90 || r == Rotate270
}

func (r Rotation) String() string {
	return strconv.Itoa(int(r.Snap())) + "°"
}
