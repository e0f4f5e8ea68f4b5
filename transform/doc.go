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

// Package transform converts annotation geometry between native page
// coordinates and normalized, rotation-aware client coordinates.
//
// Native coordinates are the unrotated default user space of a page.
// Normalized coordinates map the displayed crop box to the unit square, with
// the origin at the top-left corner and the y-axis pointing down.  All
// functions in this package are pure and can be called concurrently.
package transform
