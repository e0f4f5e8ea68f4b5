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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// TextType selects between a note icon and text drawn on the page.
type TextType int

// Valid values for TextType.
const (
	// Linked text is shown in a popup window, anchored by an icon.
	Linked TextType = 0

	// InPlace text is drawn directly on the page.
	InPlace TextType = 1
)

// InplaceIntent describes the purpose of in-place text.
type InplaceIntent int

// Valid values for InplaceIntent.
const (
	InplaceUnknown    InplaceIntent = 0
	InplaceCallout    InplaceIntent = 1
	InplaceTypeWriter InplaceIntent = 2
)

// Font describes the font used for in-place text.
type Font struct {
	Family string
	Size   float64
}

// TextMark is a view of a record of kind [KindText].
type TextMark struct {
	Record
}

type textPayload struct {
	textType  TextType
	icon      string
	font      Font
	fontColor Color
	align     int
	callout   []vec.Vec2
	intent    InplaceIntent
}

func (*textPayload) kind() Kind { return KindText }

// NewText returns a new, detached text record.
func NewText(t TextType) TextMark {
	return TextMark{newRecord(&textPayload{
		textType: t,
		icon:     backing.TextIconNote,
		font:     Font{Size: backing.UndefinedFontSize},
	})}
}

// AsText returns the text view of r.
// The second return value is false if r is not a text record.
func (r Record) AsText() (TextMark, bool) {
	if r.Kind() != KindText {
		return TextMark{}, false
	}
	return TextMark{r}, true
}

func (m TextMark) data() *textPayload {
	return m.p.payload.(*textPayload)
}

// TextType returns whether the text is shown in a popup or on the page.
func (m TextMark) TextType() TextType {
	if t, ok := m.state().(*tied); ok {
		if t.obj.Subtype() == backing.SubtypeFreeText {
			return InPlace
		}
		return Linked
	}
	return m.data().textType
}

// SetTextType changes the text type of a detached record.
// The type of a tied record cannot be changed, and [ErrTied] is returned.
func (m TextMark) SetTextType(typ TextType) error {
	if _, ok := m.state().(*tied); ok {
		return ErrTied
	}
	m.data().textType = typ
	return nil
}

// Icon returns the icon name of a linked text record.
// Tied in-place records have no icon.
func (m TextMark) Icon() string {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.Text); ok {
			return a.Icon
		}
		return ""
	}
	return m.data().icon
}

// SetIcon sets the icon name.
func (m TextMark) SetIcon(icon string) {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.Text); ok {
			a.Icon = icon
		}
		return
	}
	m.data().icon = icon
}

// Font returns the font of in-place text.
func (m TextMark) Font() Font {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			f := Font{Family: a.DefaultAppearance.Font, Size: a.DefaultAppearance.Size}
			if f.Size <= 0 {
				f.Size = backing.UndefinedFontSize
			}
			return f
		}
	}
	return m.data().font
}

// SetFont sets the font of in-place text.  A negative size is replaced by
// [backing.UndefinedFontSize].
func (m TextMark) SetFont(f Font) {
	if f.Size < 0 {
		if t, ok := m.state().(*tied); ok {
			t.ctl.log.WithField("size", f.Size).Warn("negative font size replaced")
		}
		f.Size = backing.UndefinedFontSize
	}
	m.data().font = f
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			a.DefaultAppearance.Font = f.Family
			a.DefaultAppearance.Size = f.Size
		}
	}
}

// FontColor returns the color of in-place text.
func (m TextMark) FontColor() Color {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			return colorFromBacking(a.DefaultAppearance.Color)
		}
		return Color{}
	}
	return m.data().fontColor
}

// SetFontColor sets the color of in-place text.
func (m TextMark) SetFontColor(c Color) {
	m.data().fontColor = c
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			a.DefaultAppearance.Color = colorToBacking(c)
		}
	}
}

// Align returns the alignment of in-place text: 0 for left aligned,
// 1 for centered and 2 for right aligned.
func (m TextMark) Align() int {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			return int(a.Quadding)
		}
		return 0
	}
	return m.data().align
}

// SetAlign sets the alignment of in-place text.
func (m TextMark) SetAlign(align int) {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			a.Quadding = backing.Quadding(align)
		}
		return
	}
	m.data().align = align
}

// CalloutPoints returns the callout line of in-place text, in normalized
// coordinates.  The result has zero, two or three points.
func (m TextMark) CalloutPoints() []vec.Vec2 {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			return transform.ApplyAll(t.matrix(), a.CalloutLine)
		}
		return nil
	}
	return slices.Clone(m.data().callout)
}

// SetCalloutPoints sets the callout line of in-place text.  If the number
// of points is not zero, two or three, an [*InvalidGeometryError] is
// returned and the record is unchanged.
func (m TextMark) SetCalloutPoints(points []vec.Vec2) error {
	switch len(points) {
	case 0, 2, 3:
	default:
		return &InvalidGeometryError{Op: "SetCalloutPoints", Want: "zero, two or three", Got: len(points)}
	}
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			a.CalloutLine = transform.InverseApplyAll(t.matrix(), points)
		}
		return nil
	}
	m.data().callout = slices.Clone(points)
	return nil
}

// Intent returns the purpose of in-place text.
func (m TextMark) Intent() InplaceIntent {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			switch a.Intent {
			case backing.IntentFreeTextCallout:
				return InplaceCallout
			case backing.IntentFreeTextTypeWriter:
				return InplaceTypeWriter
			}
		}
		return InplaceUnknown
	}
	return m.data().intent
}

// SetIntent sets the purpose of in-place text.
func (m TextMark) SetIntent(intent InplaceIntent) {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.FreeText); ok {
			switch intent {
			case InplaceCallout:
				a.Intent = backing.IntentFreeTextCallout
			case InplaceTypeWriter:
				a.Intent = backing.IntentFreeTextTypeWriter
			default:
				a.Intent = ""
			}
		}
		return
	}
	m.data().intent = intent
}

func (p *textPayload) subtype() backing.Subtype {
	if p.textType == InPlace {
		return backing.SubtypeFreeText
	}
	return backing.SubtypeText
}

func (p *textPayload) flush(m Record) error {
	tm := TextMark{m}
	tm.SetIcon(p.icon)
	tm.SetFont(p.font)
	tm.SetFontColor(p.fontColor)
	tm.SetAlign(p.align)
	if err := tm.SetCalloutPoints(p.callout); err != nil {
		return err
	}
	tm.SetIntent(p.intent)
	return nil
}
