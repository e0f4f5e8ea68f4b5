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

// Package backing holds the persisted representation of annotations.
//
// A backing object is what a page store keeps in its list of annotations.
// The types in this package are plain data: coordinates are in native page
// space, and fields correspond to the entries of a PDF annotation
// dictionary.  Backing objects are created and owned by a page store;
// annotation records in package annot delegate to them once tied.
//
// All annotation types implement the [Annotation] interface.  Markup
// annotations additionally implement [MarkupAnnotation].
package backing
