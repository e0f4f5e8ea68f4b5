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

// Package action describes what happens when a link annotation is
// activated.
//
// Actions are plain data.  They are stored on link, screen and widget
// annotations and are carried through the legacy serialization format, but
// this package never executes them.
package action

// Type identifies the kind of an action.
type Type string

// These are the action types supported by this package.
const (
	TypeGoTo        Type = "GoTo"
	TypeGoToR       Type = "GoToR"
	TypeLaunch      Type = "Launch"
	TypeURI         Type = "URI"
	TypeNamed       Type = "Named"
	TypeMovie       Type = "Movie"
	TypeRendition   Type = "Rendition"
	TypeSound       Type = "Sound"
	TypeJavaScript  Type = "JavaScript"
	TypeSetOCGState Type = "SetOCGState"
	TypeHide        Type = "Hide"
	TypeResetForm   Type = "ResetForm"
	TypeSubmitForm  Type = "SubmitForm"
)

// Action is implemented by all action types in this package.
type Action interface {
	ActionType() Type
}

// GoTo changes the view to a destination, either in the current document
// or, if FileName is set, in another document.
type GoTo struct {
	// FileName is the target document.  An empty FileName refers to the
	// current document.
	FileName string

	// Destination is either a named destination or a serialized explicit
	// destination.
	Destination string
}

// ActionType returns "GoTo" for local destinations and "GoToR" for
// destinations in other documents.
// This implements the [Action] interface.
func (a *GoTo) ActionType() Type {
	if a.FileName != "" {
		return TypeGoToR
	}
	return TypeGoTo
}

// Launch starts an application or opens a file.
type Launch struct {
	FileName   string
	Parameters string
}

// ActionType returns "Launch".
// This implements the [Action] interface.
func (a *Launch) ActionType() Type { return TypeLaunch }

// URI resolves a uniform resource identifier.
type URI struct {
	URI string
}

// ActionType returns "URI".
// This implements the [Action] interface.
func (a *URI) ActionType() Type { return TypeURI }

// JavaScript carries a script.
type JavaScript struct {
	Script string
}

// ActionType returns "JavaScript".
// This implements the [Action] interface.
func (a *JavaScript) ActionType() Type { return TypeJavaScript }
