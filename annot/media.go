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
	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/backing"
)

// The media records below carry references to objects owned by the
// document.  Tied records read and write these through the backing
// object, so that all records for one annotation agree.

// FileAttachMark is a view of a record of kind [KindFileAttachment].
type FileAttachMark struct {
	Record
}

type fileAttachPayload struct {
	icon string
	file *backing.FileSpec
}

func (*fileAttachPayload) kind() Kind { return KindFileAttachment }

// NewFileAttachment returns a new, detached file attachment record.
func NewFileAttachment() FileAttachMark {
	return FileAttachMark{newRecord(&fileAttachPayload{icon: backing.FileIconPushPin})}
}

// AsFileAttachment returns the file attachment view of r.
func (r Record) AsFileAttachment() (FileAttachMark, bool) {
	if r.Kind() != KindFileAttachment {
		return FileAttachMark{}, false
	}
	return FileAttachMark{r}, true
}

func (m FileAttachMark) data() *fileAttachPayload {
	return m.p.payload.(*fileAttachPayload)
}

func (m FileAttachMark) obj() *backing.FileAttachment {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.FileAttachment)
		return a
	}
	return nil
}

// IconName returns the name of the icon.
func (m FileAttachMark) IconName() string {
	if a := m.obj(); a != nil {
		if a.Icon == "" {
			return backing.FileIconPushPin
		}
		return a.Icon
	}
	return m.data().icon
}

// SetIconName sets the name of the icon.
func (m FileAttachMark) SetIconName(icon string) {
	if a := m.obj(); a != nil {
		a.Icon = icon
		return
	}
	m.data().icon = icon
}

// EmbeddedFile returns the attached file, or nil.
func (m FileAttachMark) EmbeddedFile() *backing.FileSpec {
	if a := m.obj(); a != nil {
		return a.File
	}
	return m.data().file
}

// SetEmbeddedFile sets the attached file.
func (m FileAttachMark) SetEmbeddedFile(f *backing.FileSpec) {
	if a := m.obj(); a != nil {
		a.File = f
		return
	}
	m.data().file = f
}

func (*fileAttachPayload) subtype() backing.Subtype {
	return backing.SubtypeFileAttachment
}

func (p *fileAttachPayload) flush(r Record) error {
	if a := (FileAttachMark{r}).obj(); a != nil {
		a.Icon = p.icon
		a.File = p.file
	}
	return nil
}

// SoundMark is a view of a record of kind [KindSound].
type SoundMark struct {
	Record
}

type soundPayload struct {
	icon  string
	sound *backing.SoundData
}

func (*soundPayload) kind() Kind { return KindSound }

// NewSound returns a new, detached sound record.
func NewSound() SoundMark {
	return SoundMark{newRecord(&soundPayload{icon: backing.SoundIconSpeaker})}
}

// AsSound returns the sound view of r.
func (r Record) AsSound() (SoundMark, bool) {
	if r.Kind() != KindSound {
		return SoundMark{}, false
	}
	return SoundMark{r}, true
}

func (m SoundMark) data() *soundPayload {
	return m.p.payload.(*soundPayload)
}

func (m SoundMark) obj() *backing.Sound {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.Sound)
		return a
	}
	return nil
}

// IconName returns the name of the icon.
func (m SoundMark) IconName() string {
	if a := m.obj(); a != nil {
		if a.Icon == "" {
			return backing.SoundIconSpeaker
		}
		return a.Icon
	}
	return m.data().icon
}

// SetIconName sets the name of the icon.
func (m SoundMark) SetIconName(icon string) {
	if a := m.obj(); a != nil {
		a.Icon = icon
		return
	}
	m.data().icon = icon
}

// Sound returns the sound data, or nil.
func (m SoundMark) Sound() *backing.SoundData {
	if a := m.obj(); a != nil {
		return a.Sound
	}
	return m.data().sound
}

// SetSound sets the sound data.
func (m SoundMark) SetSound(s *backing.SoundData) {
	if a := m.obj(); a != nil {
		a.Sound = s
		return
	}
	m.data().sound = s
}

func (*soundPayload) subtype() backing.Subtype {
	return backing.SubtypeSound
}

func (p *soundPayload) flush(r Record) error {
	if a := (SoundMark{r}).obj(); a != nil {
		a.Icon = p.icon
		a.Sound = p.sound
	}
	return nil
}

// MovieMark is a view of a record of kind [KindMovie].
type MovieMark struct {
	Record
}

type moviePayload struct {
	title string
	movie *backing.MovieData
}

func (*moviePayload) kind() Kind { return KindMovie }

// NewMovie returns a new, detached movie record.
func NewMovie() MovieMark {
	return MovieMark{newRecord(&moviePayload{})}
}

// AsMovie returns the movie view of r.
func (r Record) AsMovie() (MovieMark, bool) {
	if r.Kind() != KindMovie {
		return MovieMark{}, false
	}
	return MovieMark{r}, true
}

func (m MovieMark) data() *moviePayload {
	return m.p.payload.(*moviePayload)
}

func (m MovieMark) obj() *backing.Movie {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.Movie)
		return a
	}
	return nil
}

// Title returns the title of the movie.
func (m MovieMark) Title() string {
	if a := m.obj(); a != nil {
		return a.Title
	}
	return m.data().title
}

// SetTitle sets the title of the movie.
func (m MovieMark) SetTitle(title string) {
	if a := m.obj(); a != nil {
		a.Title = title
		return
	}
	m.data().title = title
}

// Movie returns the movie data, or nil.
func (m MovieMark) Movie() *backing.MovieData {
	if a := m.obj(); a != nil {
		return a.Movie
	}
	return m.data().movie
}

// SetMovie sets the movie data.
func (m MovieMark) SetMovie(mv *backing.MovieData) {
	if a := m.obj(); a != nil {
		a.Movie = mv
		return
	}
	m.data().movie = mv
}

func (*moviePayload) subtype() backing.Subtype {
	return backing.SubtypeMovie
}

func (p *moviePayload) flush(r Record) error {
	if a := (MovieMark{r}).obj(); a != nil {
		a.Title = p.title
		a.Movie = p.movie
	}
	return nil
}

// ScreenMark is a view of a record of kind [KindScreen].
// Only screen annotations which play a rendition are modeled.
type ScreenMark struct {
	Record
}

type screenPayload struct {
	title  string
	action *action.Rendition
}

func (*screenPayload) kind() Kind { return KindScreen }

// NewScreen returns a new, detached screen record.
func NewScreen() ScreenMark {
	return ScreenMark{newRecord(&screenPayload{})}
}

// AsScreen returns the screen view of r.
func (r Record) AsScreen() (ScreenMark, bool) {
	if r.Kind() != KindScreen {
		return ScreenMark{}, false
	}
	return ScreenMark{r}, true
}

func (m ScreenMark) data() *screenPayload {
	return m.p.payload.(*screenPayload)
}

func (m ScreenMark) obj() *backing.Screen {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.Screen)
		return a
	}
	return nil
}

// Title returns the title of the screen.
func (m ScreenMark) Title() string {
	if a := m.obj(); a != nil {
		return a.Title
	}
	return m.data().title
}

// SetTitle sets the title of the screen.
func (m ScreenMark) SetTitle(title string) {
	if a := m.obj(); a != nil {
		a.Title = title
		return
	}
	m.data().title = title
}

// Action returns the rendition played by the screen, or nil.
func (m ScreenMark) Action() *action.Rendition {
	if a := m.obj(); a != nil {
		r, _ := a.Action.(*action.Rendition)
		return r
	}
	return m.data().action
}

// SetAction sets the rendition played by the screen.
func (m ScreenMark) SetAction(a *action.Rendition) {
	if s := m.obj(); s != nil {
		s.Action = renditionAction(a)
		return
	}
	m.data().action = a
}

// renditionAction avoids storing a typed nil in the action interface.
func renditionAction(a *action.Rendition) action.Action {
	if a == nil {
		return nil
	}
	return a
}

func (*screenPayload) subtype() backing.Subtype {
	return backing.SubtypeScreen
}

func (p *screenPayload) flush(r Record) error {
	if a := (ScreenMark{r}).obj(); a != nil {
		a.Title = p.title
		a.Action = renditionAction(p.action)
	}
	return nil
}
