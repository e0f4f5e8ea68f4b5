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

// Package annot implements annotation records for PDF pages.
//
// A [Record] is a handle to an annotation.  Records are created detached,
// using constructors like [NewText] or [NewLine], and are filled in using
// setters.  A [Controller] then materializes the record onto a page, after
// which the record is tied to a backing object owned by the page store.
// Tying happens exactly once; the only way back is to remove the record,
// which invalidates it.  Records for annotations which already exist on a
// page are obtained using [Controller.Scan].
//
// All geometry is given in normalized coordinates: the displayed page,
// including its rotation, covers the unit square with the origin in the
// top-left corner.  Conversion to and from the native coordinates of the
// page is done by package [seehuhn.de/go/pdfannot/transform].
//
// Records and page stores are not safe for concurrent use.
package annot
