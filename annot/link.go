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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/backing"
	"seehuhn.de/go/pdfannot/transform"
)

// LinkHighlightMode describes the visual feedback when a link is clicked.
type LinkHighlightMode int

// Valid values for LinkHighlightMode.
const (
	LinkNone    LinkHighlightMode = 0
	LinkInvert  LinkHighlightMode = 1
	LinkOutline LinkHighlightMode = 2
	LinkPush    LinkHighlightMode = 3
)

var linkHighlights = []backing.LinkHighlight{
	backing.LinkHighlightNone,
	backing.LinkHighlightInvert,
	backing.LinkHighlightOutline,
	backing.LinkHighlightPush,
}

func linkHighlightFromBacking(h backing.LinkHighlight) LinkHighlightMode {
	for i, x := range linkHighlights {
		if x == h {
			return LinkHighlightMode(i)
		}
	}
	return LinkInvert
}

func linkHighlightToBacking(m LinkHighlightMode) backing.LinkHighlight {
	if m < 0 || int(m) >= len(linkHighlights) {
		return backing.LinkHighlightInvert
	}
	return linkHighlights[m]
}

// LinkMark is a view of a record of kind [KindLink].
type LinkMark struct {
	Record
}

type linkPayload struct {
	dest   action.Action
	hlMode LinkHighlightMode
	region [4]vec.Vec2
}

func (*linkPayload) kind() Kind { return KindLink }

// NewLink returns a new, detached link record.
func NewLink() LinkMark {
	return LinkMark{newRecord(&linkPayload{hlMode: LinkInvert})}
}

// AsLink returns the link view of r.
func (r Record) AsLink() (LinkMark, bool) {
	if r.Kind() != KindLink {
		return LinkMark{}, false
	}
	return LinkMark{r}, true
}

func (m LinkMark) data() *linkPayload {
	return m.p.payload.(*linkPayload)
}

func (m LinkMark) obj() (*tied, *backing.Link) {
	if t, ok := m.state().(*tied); ok {
		if a, ok := t.obj.(*backing.Link); ok {
			return t, a
		}
	}
	return nil, nil
}

// Destination returns the action triggered by the link, or nil.
func (m LinkMark) Destination() action.Action {
	if _, l := m.obj(); l != nil {
		return l.Action
	}
	return m.data().dest
}

// SetDestination sets the action triggered by the link.
func (m LinkMark) SetDestination(a action.Action) {
	if _, l := m.obj(); l != nil {
		l.Action = a
		return
	}
	m.data().dest = a
}

// HighlightMode returns the visual feedback of the link.
func (m LinkMark) HighlightMode() LinkHighlightMode {
	if _, l := m.obj(); l != nil {
		return linkHighlightFromBacking(l.Highlight)
	}
	return m.data().hlMode
}

// SetHighlightMode sets the visual feedback of the link.
func (m LinkMark) SetHighlightMode(mode LinkHighlightMode) {
	if _, l := m.obj(); l != nil {
		l.Highlight = linkHighlightToBacking(mode)
		return
	}
	m.data().hlMode = mode
}

// RegionPoint returns corner i of the active region, in normalized
// coordinates.  Out of range indices give the zero point.
func (m LinkMark) RegionPoint(i int) vec.Vec2 {
	if i < 0 || i >= 4 {
		return vec.Vec2{}
	}
	if t, l := m.obj(); l != nil {
		return linkRegion(t.matrix(), l)[i]
	}
	return m.data().region[i]
}

// SetRegionPoint sets corner i of the active region.
// Out of range indices are ignored.
func (m LinkMark) SetRegionPoint(i int, p vec.Vec2) {
	if i < 0 || i >= 4 {
		return
	}
	if t, l := m.obj(); l != nil {
		M := t.matrix()
		region := linkRegion(M, l)
		region[i] = p
		l.QuadPoints = quadsToNative(M, []Quad{{Points: region}})
		return
	}
	m.data().region[i] = p
}

// linkRegion returns the active region of a link on a page.  Links
// without quad points are active on their whole rectangle.
func linkRegion(M matrix.Matrix, l *backing.Link) [4]vec.Vec2 {
	if quads := quadsFromNative(M, l.QuadPoints); len(quads) > 0 {
		return quads[0].Points
	}
	b := transform.ToNormalized(M, l.Rect)
	return [4]vec.Vec2{
		b.TopLeft(),
		{X: b.Right, Y: b.Top},
		b.BottomRight(),
		{X: b.Left, Y: b.Bottom},
	}
}

func (*linkPayload) subtype() backing.Subtype {
	return backing.SubtypeLink
}

func (p *linkPayload) flush(r Record) error {
	t, l := LinkMark{r}.obj()
	if l == nil {
		return nil
	}
	l.Action = p.dest
	l.Highlight = linkHighlightToBacking(p.hlMode)
	if p.region != [4]vec.Vec2{} {
		l.QuadPoints = quadsToNative(t.matrix(), []Quad{{Points: p.region}})
	}
	return nil
}
