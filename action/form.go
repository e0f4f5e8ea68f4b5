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

// Hide shows or hides annotations, identified by name.
type Hide struct {
	Targets []string

	// Show is set to show the targets instead of hiding them.
	Show bool
}

// ActionType returns "Hide".
// This implements the [Action] interface.
func (a *Hide) ActionType() Type { return TypeHide }

// ResetForm resets form fields to their default values.
type ResetForm struct {
	// Fields lists the fully qualified field names.  If Fields is empty,
	// all fields are reset.
	Fields []string

	// Exclude inverts the meaning of Fields.
	Exclude bool
}

// ActionType returns "ResetForm".
// This implements the [Action] interface.
func (a *ResetForm) ActionType() Type { return TypeResetForm }

// SubmitForm sends form data to a uniform resource locator.
type SubmitForm struct {
	URL    string
	Fields []string
	Flags  uint32
}

// ActionType returns "SubmitForm".
// This implements the [Action] interface.
func (a *SubmitForm) ActionType() Type { return TypeSubmitForm }

// OCGState is the state change for one optional content group.
type OCGState string

// Valid values for OCGState.
const (
	OCGOn     OCGState = "ON"
	OCGOff    OCGState = "OFF"
	OCGToggle OCGState = "Toggle"
)

// OCGChange sets the state of a list of optional content groups.
type OCGChange struct {
	State  OCGState
	Groups []string
}

// SetOCGState changes the visibility of optional content groups.
type SetOCGState struct {
	Changes []OCGChange

	// PreserveRB is set if radio-button relationships between groups are
	// preserved.
	PreserveRB bool
}

// ActionType returns "SetOCGState".
// This implements the [Action] interface.
func (a *SetOCGState) ActionType() Type { return TypeSetOCGState }
