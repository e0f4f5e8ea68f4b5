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

// Default icons for media annotations.
const (
	FileIconPushPin  = "PushPin"
	SoundIconSpeaker = "Speaker"
)

// FileSpec refers to a file which is embedded in the document or stored
// externally.  The file data is owned by the document.
type FileSpec struct {
	FileName    string
	Description string
	MimeType    string

	// Size is the uncompressed size of the file in bytes, or -1 if unknown.
	Size int64
}

// FileAttachment is an icon on the page which refers to a file.
type FileAttachment struct {
	Common
	Markup

	// File is the file associated with the annotation.
	//
	// This corresponds to the /FS entry in the PDF annotation dictionary.
	File *FileSpec

	// Icon is the name of the icon.  When reading, an empty Icon means
	// [FileIconPushPin].
	Icon string
}

// Subtype returns "FileAttachment".
// This implements the [Annotation] interface.
func (f *FileAttachment) Subtype() Subtype {
	return SubtypeFileAttachment
}

// SoundData describes a sound object.  The samples are owned by the
// document.
type SoundData struct {
	SamplingRate  float64
	Channels      int
	BitsPerSample int

	// Encoding is one of "Raw", "Signed", "muLaw" or "ALaw".
	Encoding string
}

// Sound is an icon on the page which plays a sound.
type Sound struct {
	Common
	Markup

	// Sound is the sound to be played.
	Sound *SoundData

	// Icon is the name of the icon.  When reading, an empty Icon means
	// [SoundIconSpeaker].
	Icon string
}

// Subtype returns "Sound".
// This implements the [Annotation] interface.
func (s *Sound) Subtype() Subtype {
	return SubtypeSound
}

// MovieData describes a movie.  The movie file is owned by the document.
type MovieData struct {
	FileName string

	// Width and Height give the size of the movie in pixels.
	Width, Height int

	// Rotation is the clockwise rotation in degrees.
	Rotation int

	// ShowPoster specifies whether a poster image is shown when the movie
	// is not playing.
	ShowPoster bool
}

// Movie is a region of the page where a movie is played.
type Movie struct {
	Common

	// Title (optional) is the title of the movie.
	//
	// This corresponds to the /T entry in the PDF annotation dictionary.
	Title string

	// Movie is the movie to be played.
	Movie *MovieData
}

// Subtype returns "Movie".
// This implements the [Annotation] interface.
func (m *Movie) Subtype() Subtype {
	return SubtypeMovie
}
