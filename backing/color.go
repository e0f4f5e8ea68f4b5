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

// Color is a color given by its components.  The number of components
// selects the color space:
//
//   - 0 components: transparent
//   - 1 component: DeviceGray
//   - 3 components: DeviceRGB
//   - 4 components: DeviceCMYK
//
// A nil Color means that no color is set.
type Color []float64

// Transparent is the color with zero components.
var Transparent = Color{}

// IsValid reports whether c has a supported number of components.
func (c Color) IsValid() bool {
	switch len(c) {
	case 0, 1, 3, 4:
		return c != nil
	default:
		return false
	}
}

// Clone returns a copy of c.
func (c Color) Clone() Color {
	if c == nil {
		return nil
	}
	res := make(Color, len(c))
	copy(res, c)
	return res
}
