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

import "seehuhn.de/go/pdfannot/backing"

// RichMediaMark is a view of a record of kind [KindRichMedia].
//
// For tied records the settings and content trees are those of the
// backing object.
type RichMediaMark struct {
	Record
}

type richMediaPayload struct {
	settings *backing.RichMediaSettings
	content  *backing.RichMediaContent
}

func (*richMediaPayload) kind() Kind { return KindRichMedia }

// NewRichMedia returns a new, detached rich media record.
func NewRichMedia() RichMediaMark {
	return RichMediaMark{newRecord(&richMediaPayload{})}
}

// AsRichMedia returns the rich media view of r.
func (r Record) AsRichMedia() (RichMediaMark, bool) {
	if r.Kind() != KindRichMedia {
		return RichMediaMark{}, false
	}
	return RichMediaMark{r}, true
}

func (m RichMediaMark) data() *richMediaPayload {
	return m.p.payload.(*richMediaPayload)
}

func (m RichMediaMark) obj() *backing.RichMedia {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.RichMedia)
		return a
	}
	return nil
}

// Settings returns the activation and deactivation conditions, or nil.
func (m RichMediaMark) Settings() *backing.RichMediaSettings {
	if a := m.obj(); a != nil {
		return a.Settings
	}
	return m.data().settings
}

// SetSettings sets the activation and deactivation conditions.
func (m RichMediaMark) SetSettings(s *backing.RichMediaSettings) {
	if a := m.obj(); a != nil {
		a.Settings = s
		return
	}
	m.data().settings = s
}

// Content returns the configurations and assets, or nil.
func (m RichMediaMark) Content() *backing.RichMediaContent {
	if a := m.obj(); a != nil {
		return a.Content
	}
	return m.data().content
}

// SetContent sets the configurations and assets.
func (m RichMediaMark) SetContent(c *backing.RichMediaContent) {
	if a := m.obj(); a != nil {
		a.Content = c
		return
	}
	m.data().content = c
}

// ActivationCondition returns when the media is activated.  If no
// settings are present, the media is activated on click.
func (m RichMediaMark) ActivationCondition() backing.RichMediaCondition {
	if s := m.Settings(); s != nil && s.Activation != "" {
		return s.Activation
	}
	return backing.ActivateOnClick
}

// DeactivationCondition returns when the media is deactivated.  If no
// settings are present, the media is deactivated on click.
func (m RichMediaMark) DeactivationCondition() backing.RichMediaCondition {
	if s := m.Settings(); s != nil && s.Deactivation != "" {
		return s.Deactivation
	}
	return backing.DeactivateOnClick
}

// AssetNames returns the names of the embedded assets, in order.
func (m RichMediaMark) AssetNames() []string {
	c := m.Content()
	if c == nil {
		return nil
	}
	var res []string
	for _, a := range c.Assets {
		if a != nil {
			res = append(res, a.Name)
		}
	}
	return res
}

func (*richMediaPayload) subtype() backing.Subtype {
	return backing.SubtypeRichMedia
}

func (p *richMediaPayload) flush(r Record) error {
	if a := (RichMediaMark{r}).obj(); a != nil {
		a.Settings = p.settings
		a.Content = p.content
	}
	return nil
}
