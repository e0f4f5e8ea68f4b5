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

// BorderStyle is the style of an annotation border.
type BorderStyle string

// Valid values for BorderStyle.
const (
	BorderSolid     BorderStyle = "S"
	BorderDashed    BorderStyle = "D"
	BorderBeveled   BorderStyle = "B"
	BorderInset     BorderStyle = "I"
	BorderUnderline BorderStyle = "U"
)

var borderStyles = []BorderStyle{
	BorderSolid, BorderDashed, BorderBeveled, BorderInset, BorderUnderline,
}

// Index returns the position of the style in the list solid, dashed,
// beveled, inset, underline.  Unknown styles are treated as solid.
func (s BorderStyle) Index() int {
	for i, t := range borderStyles {
		if s == t {
			return i
		}
	}
	return 0
}

// BorderStyleFromIndex is the inverse of [BorderStyle.Index].
// Out of range values give [BorderSolid].
func BorderStyleFromIndex(i int) BorderStyle {
	if i < 0 || i >= len(borderStyles) {
		return BorderSolid
	}
	return borderStyles[i]
}

// Border represents the characteristics of an annotation's border.
type Border struct {
	// Width is the border width in default user space units.
	// If 0, no border is drawn.
	Width float64

	// Style is the border style.  The empty value means [BorderSolid].
	Style BorderStyle

	// DashArray (optional) defines a pattern of dashes and gaps for drawing
	// the border.  If nil, the pattern [3] is used.
	DashArray []float64

	// HCornerRadius is the horizontal corner radius.
	HCornerRadius float64

	// VCornerRadius is the vertical corner radius.
	VCornerRadius float64
}

// DefaultBorder returns the border used when an annotation has no border
// information: a solid line of width 1.
func DefaultBorder() *Border {
	return &Border{Width: 1, Style: BorderSolid, DashArray: []float64{3}}
}

// BorderEffectStyle is the style of a border effect.
type BorderEffectStyle string

// Valid values for BorderEffectStyle.
const (
	EffectNone   BorderEffectStyle = "S"
	EffectCloudy BorderEffectStyle = "C"
)

// BorderEffect represents a border effect dictionary that specifies an
// effect applied to an annotation's border.
type BorderEffect struct {
	// Style is the border effect style.  The empty value means
	// [EffectNone].
	Style BorderEffectStyle

	// Intensity (meaningful only when Style is "C") specifies the intensity
	// of the cloudy border effect.  Valid range is 0.0 to 2.0.
	Intensity float64
}

// IsCloudy reports whether the effect is the cloudy border effect.
func (be *BorderEffect) IsCloudy() bool {
	return be != nil && be.Style == EffectCloudy
}
