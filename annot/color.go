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
	"fmt"
	"image/color"
	"strconv"

	"seehuhn.de/go/pdfannot/backing"
)

// ColorSpace selects how the components of a [Color] are interpreted.
type ColorSpace int

// Valid values for ColorSpace.
const (
	// Transparent means "no color".  This is the zero value.
	Transparent ColorSpace = iota
	Gray
	RGB
	CMYK
)

// Color is an annotation color.  Components are in the range 0 to 1; only
// the first 1, 3 or 4 entries of C are used, depending on Space.
type Color struct {
	Space ColorSpace
	C     [4]float64
}

var _ color.Color = Color{}

// GrayColor returns a DeviceGray color.
func GrayColor(g float64) Color {
	return Color{Space: Gray, C: [4]float64{g}}
}

// RGBColor returns a DeviceRGB color.
func RGBColor(r, g, b float64) Color {
	return Color{Space: RGB, C: [4]float64{r, g, b}}
}

// CMYKColor returns a DeviceCMYK color.
func CMYKColor(c, m, y, k float64) Color {
	return Color{Space: CMYK, C: [4]float64{c, m, y, k}}
}

// IsValid reports whether the color is not transparent.
func (c Color) IsValid() bool {
	return c.Space != Transparent
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	switch c.Space {
	case Gray:
		y := scale16(c.C[0])
		return y, y, y, 0xffff
	case RGB:
		return scale16(c.C[0]), scale16(c.C[1]), scale16(c.C[2]), 0xffff
	case CMYK:
		w := 1 - clamp(c.C[3])
		r = scale16((1 - clamp(c.C[0])) * w)
		g = scale16((1 - clamp(c.C[1])) * w)
		b = scale16((1 - clamp(c.C[2])) * w)
		return r, g, b, 0xffff
	default:
		return 0, 0, 0, 0
	}
}

// ColorFrom converts a host color to an annotation color.
// Fully transparent colors, and nil, give the transparent color.
// Gray, CMYK and annotation colors keep their color space; all other
// colors are converted to RGB.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	switch c := c.(type) {
	case Color:
		return c
	case color.Gray:
		return GrayColor(float64(c.Y) / 0xff)
	case color.Gray16:
		return GrayColor(float64(c.Y) / 0xffff)
	case color.CMYK:
		return CMYKColor(float64(c.C)/0xff, float64(c.M)/0xff, float64(c.Y)/0xff, float64(c.K)/0xff)
	}
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	if nc.A == 0 {
		return Color{}
	}
	return RGBColor(float64(nc.R)/0xffff, float64(nc.G)/0xffff, float64(nc.B)/0xffff)
}

// Hex returns the color in the form "#rrggbb".
// The transparent color gives the empty string.
func (c Color) Hex() string {
	if !c.IsValid() {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// ParseHex parses a color in the form "#rrggbb" or "#rgb".
func ParseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0], digits[1], digits[1], digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBColor(
		float64(v>>16&0xff)/0xff,
		float64(v>>8&0xff)/0xff,
		float64(v&0xff)/0xff,
	), nil
}

func colorToBacking(c Color) backing.Color {
	switch c.Space {
	case Gray:
		return backing.Color{c.C[0]}
	case RGB:
		return backing.Color{c.C[0], c.C[1], c.C[2]}
	case CMYK:
		return backing.Color{c.C[0], c.C[1], c.C[2], c.C[3]}
	default:
		return nil
	}
}

func colorFromBacking(c backing.Color) Color {
	switch len(c) {
	case 1:
		return GrayColor(c[0])
	case 3:
		return RGBColor(c[0], c[1], c[2])
	case 4:
		return CMYKColor(c[0], c[1], c[2], c[3])
	default:
		return Color{}
	}
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

func scale16(x float64) uint32 {
	return uint32(clamp(x)*0xffff + 0.5)
}
