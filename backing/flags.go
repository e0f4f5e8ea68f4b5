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

// Flags is the set of annotation flags stored in the /F entry.
type Flags uint16

const (
	// FlagInvisible applies only to annotations of unknown type: do not
	// display such an annotation.
	FlagInvisible Flags = 1 << 0

	// FlagHidden means: do not render the annotation or allow it to interact
	// with the user.
	FlagHidden Flags = 1 << 1

	// FlagPrint means: print the annotation when the page is printed.
	FlagPrint Flags = 1 << 2

	// FlagNoZoom means: do not scale the annotation's appearance to match
	// the magnification of the page.
	FlagNoZoom Flags = 1 << 3

	// FlagNoRotate means: do not rotate the annotation's appearance to match
	// the rotation of the page.
	FlagNoRotate Flags = 1 << 4

	// FlagNoView means: do not render the annotation on the screen.
	FlagNoView Flags = 1 << 5

	// FlagReadOnly means: do not allow the annotation to interact with the
	// user.
	FlagReadOnly Flags = 1 << 6

	// FlagLocked means: do not allow the annotation to be deleted or its
	// properties to be modified.
	FlagLocked Flags = 1 << 7

	// FlagToggleNoView inverts the interpretation of FlagNoView for mouse
	// hovering and selection.
	FlagToggleNoView Flags = 1 << 8

	// FlagLockedContents means: do not allow the contents of the annotation
	// to be modified.
	FlagLockedContents Flags = 1 << 9
)
