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

// Package legacyxml reads and writes annotation records in a tree-shaped
// XML interchange format.
//
// A record is stored as an element with a numeric "type" attribute, giving
// the record kind.  The element holds a "base" block with the fields
// shared by all kinds, a block with the kind-specific fields, and one
// "revision" element for every reply.  Only values which differ from their
// defaults are written, and missing values are read as the defaults.
//
// The format is shared with older software, so that attribute names and
// some oddities of the layout are fixed.  For example, the "top" attribute
// of a popup window holds its x-coordinate.
package legacyxml
