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

// RichMediaCondition describes when rich media content is activated or
// deactivated.
type RichMediaCondition string

// Activation conditions.
const (
	ActivateOnClick       RichMediaCondition = "XA"
	ActivateOnPageOpen    RichMediaCondition = "PO"
	ActivateOnPageVisible RichMediaCondition = "PV"
)

// Deactivation conditions.
const (
	DeactivateOnClick         RichMediaCondition = "XD"
	DeactivateOnPageClose     RichMediaCondition = "PC"
	DeactivateOnPageInvisible RichMediaCondition = "PI"
)

// RichMediaSettings determines when the annotation is activated and
// deactivated.
type RichMediaSettings struct {
	Activation   RichMediaCondition
	Deactivation RichMediaCondition
}

// RichMediaParams holds the parameters of a content instance.
type RichMediaParams struct {
	// FlashVars is passed to Flash content.
	FlashVars string
}

// RichMediaInstance is one piece of media within a configuration.
type RichMediaInstance struct {
	// Type is one of "3D", "Flash", "Sound" or "Video".
	Type   string
	Params *RichMediaParams
}

// RichMediaConfiguration is a set of instances which are displayed
// together.
type RichMediaConfiguration struct {
	Name      string
	Type      string
	Instances []*RichMediaInstance
}

// RichMediaAsset is a named file used by the rich media content.
type RichMediaAsset struct {
	Name string
	File *FileSpec
}

// RichMediaContent stores the rich media artwork.
type RichMediaContent struct {
	Configurations []*RichMediaConfiguration
	Assets         []*RichMediaAsset
}

// RichMedia is an annotation with rich media content like 3D models,
// sound or video.
type RichMedia struct {
	Common

	// Content (required) stores the rich media artwork and how it is
	// configured.
	Content *RichMediaContent

	// Settings (optional) specifies when the annotation is activated and
	// deactivated.
	Settings *RichMediaSettings
}

// Subtype returns "RichMedia".
// This implements the [Annotation] interface.
func (r *RichMedia) Subtype() Subtype {
	return SubtypeRichMedia
}
