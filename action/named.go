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

package action

// NamedAction is a predefined viewer operation.
type NamedAction string

// These are the named actions recognized by this package.
const (
	PageFirst       NamedAction = "PageFirst"
	PagePrev        NamedAction = "PagePrev"
	PageNext        NamedAction = "PageNext"
	PageLast        NamedAction = "PageLast"
	HistoryBack     NamedAction = "HistoryBack"
	HistoryForward  NamedAction = "HistoryForward"
	Quit            NamedAction = "Quit"
	Presentation    NamedAction = "Presentation"
	EndPresentation NamedAction = "EndPresentation"
	Find            NamedAction = "Find"
	GoToPage        NamedAction = "GoToPage"
	Close           NamedAction = "Close"
	Print           NamedAction = "Print"
	SaveAs          NamedAction = "SaveAs"
)

var namedActions = map[NamedAction]bool{
	PageFirst: true, PagePrev: true, PageNext: true, PageLast: true,
	HistoryBack: true, HistoryForward: true, Quit: true,
	Presentation: true, EndPresentation: true, Find: true,
	GoToPage: true, Close: true, Print: true, SaveAs: true,
}

// IsKnown reports whether n is one of the predefined named actions.
func (n NamedAction) IsKnown() bool {
	return namedActions[n]
}

// Named performs a predefined viewer operation.
type Named struct {
	Name NamedAction
}

// ActionType returns "Named".
// This implements the [Action] interface.
func (a *Named) ActionType() Type { return TypeNamed }
