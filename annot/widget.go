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
	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/backing"
)

// WidgetMark is a view of a record of kind [KindWidget].
// Widgets belong to interactive forms.  They are reported by page scans,
// but cannot be created through this package.
type WidgetMark struct {
	Record
}

type widgetPayload struct {
	fieldName string
	hlMode    LinkHighlightMode
	action    action.Action
}

func (*widgetPayload) kind() Kind { return KindWidget }

// NewWidget returns a new, detached widget record.  Materializing the
// record fails with [ErrNotCreatable].
func NewWidget() WidgetMark {
	return WidgetMark{newRecord(&widgetPayload{hlMode: LinkInvert})}
}

// AsWidget returns the widget view of r.
func (r Record) AsWidget() (WidgetMark, bool) {
	if r.Kind() != KindWidget {
		return WidgetMark{}, false
	}
	return WidgetMark{r}, true
}

func (m WidgetMark) data() *widgetPayload {
	return m.p.payload.(*widgetPayload)
}

// FieldName returns the name of the form field the widget belongs to.
func (m WidgetMark) FieldName() string { return m.data().fieldName }

// HighlightMode returns the visual feedback of the widget.
func (m WidgetMark) HighlightMode() LinkHighlightMode { return m.data().hlMode }

// Action returns the action triggered by the widget, or nil.
func (m WidgetMark) Action() action.Action { return m.data().action }

func (*widgetPayload) subtype() backing.Subtype {
	return backing.SubtypeWidget
}

func (*widgetPayload) flush(Record) error {
	return ErrNotCreatable
}
