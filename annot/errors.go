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
	"errors"
	"fmt"
)

// Errors returned by lifecycle operations.
var (
	// ErrAlreadyTied is returned when a record which is already bound to a
	// page is materialized again.
	ErrAlreadyTied = errors.New("annotation is already tied")

	// ErrNotTied is returned when an operation needs a tied record.
	ErrNotTied = errors.New("annotation is not tied")

	// ErrWrongPage is returned when a record is removed from a page it is
	// not tied to.
	ErrWrongPage = errors.New("annotation is tied to a different page")

	// ErrInvalidated is returned when a record is used after it has been
	// removed from its page.
	ErrInvalidated = errors.New("annotation has been removed")

	// ErrTied is returned when an operation needs a detached record.
	ErrTied = errors.New("annotation is tied")

	// ErrNoIdentifier is returned when a reply is attached to a parent
	// without a stable identifier.
	ErrNoIdentifier = errors.New("annotation has no identifier")

	// ErrNotCreatable is returned when a record of a kind which cannot be
	// created on a page is materialized.
	ErrNotCreatable = errors.New("annotation kind cannot be created")
)

// InvalidGeometryError is returned by geometry setters when the number of
// points does not fit the annotation.  The setter leaves the previous value
// in place.
type InvalidGeometryError struct {
	// Op names the setter, e.g. "SetLinePoints".
	Op string

	// Want describes the accepted point counts, e.g. "two".
	Want string

	// Got is the number of points which were supplied.
	Got int
}

func (err *InvalidGeometryError) Error() string {
	return fmt.Sprintf("%s: expected %s points, got %d", err.Op, err.Want, err.Got)
}

// ErrSelfRevision is returned when a record is added as a revision of
// itself.
var ErrSelfRevision = errors.New("annotation cannot be a revision of itself")
