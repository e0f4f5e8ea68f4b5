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

// MovieOperation is the operation performed by a [Movie] action.
type MovieOperation string

// Valid values for MovieOperation.
const (
	MoviePlay   MovieOperation = "Play"
	MovieStop   MovieOperation = "Stop"
	MoviePause  MovieOperation = "Pause"
	MovieResume MovieOperation = "Resume"
)

// Movie plays the movie of a movie annotation.
type Movie struct {
	// Title identifies the movie annotation by its title.
	Title string

	// Operation is the operation to perform.  An empty value means
	// [MoviePlay].
	Operation MovieOperation
}

// ActionType returns "Movie".
// This implements the [Action] interface.
func (a *Movie) ActionType() Type { return TypeMovie }

// RenditionOperation is the operation performed by a [Rendition] action.
type RenditionOperation int

// Valid values for RenditionOperation.
const (
	RenditionPlay   RenditionOperation = 0
	RenditionStop   RenditionOperation = 1
	RenditionPause  RenditionOperation = 2
	RenditionResume RenditionOperation = 3
	RenditionPlayIf RenditionOperation = 4
)

// Rendition controls the playing of multimedia content.
type Rendition struct {
	Operation RenditionOperation

	// Script (optional) is run instead of Operation.
	Script string
}

// ActionType returns "Rendition".
// This implements the [Action] interface.
func (a *Rendition) ActionType() Type { return TypeRendition }

// Sound plays a sound.
type Sound struct {
	// Volume is in the range -1 to 1.
	Volume float64

	Synchronous bool
	Repeat      bool
	Mix         bool
}

// ActionType returns "Sound".
// This implements the [Action] interface.
func (a *Sound) ActionType() Type { return TypeSound }
