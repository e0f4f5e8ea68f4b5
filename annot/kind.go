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
	"fmt"

	"seehuhn.de/go/pdfannot/backing"
)

// Kind identifies the variant of an annotation record.
type Kind int

// The numeric values are part of the legacy serialization format.
const (
	KindText           Kind = 1
	KindLine           Kind = 2
	KindGeom           Kind = 3
	KindHighlight      Kind = 4
	KindStamp          Kind = 5
	KindInk            Kind = 6
	KindLink           Kind = 7
	KindCaret          Kind = 8
	KindFileAttachment Kind = 9
	KindSound          Kind = 10
	KindMovie          Kind = 11
	KindScreen         Kind = 12
	KindWidget         Kind = 13
	KindRichMedia      Kind = 14
)

var kindNames = map[Kind]string{
	KindText:           "Text",
	KindLine:           "Line",
	KindGeom:           "Geom",
	KindHighlight:      "Highlight",
	KindStamp:          "Stamp",
	KindInk:            "Ink",
	KindLink:           "Link",
	KindCaret:          "Caret",
	KindFileAttachment: "FileAttachment",
	KindSound:          "Sound",
	KindMovie:          "Movie",
	KindScreen:         "Screen",
	KindWidget:         "Widget",
	KindRichMedia:      "RichMedia",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// kindOf maps a backing subtype to the record kind which models it.
// The second return value is false for subtypes without a record kind.
func kindOf(st backing.Subtype) (Kind, bool) {
	switch st {
	case backing.SubtypeText, backing.SubtypeFreeText:
		return KindText, true
	case backing.SubtypeLine, backing.SubtypePolygon, backing.SubtypePolyLine:
		return KindLine, true
	case backing.SubtypeSquare, backing.SubtypeCircle:
		return KindGeom, true
	case backing.SubtypeHighlight, backing.SubtypeUnderline,
		backing.SubtypeSquiggly, backing.SubtypeStrikeOut:
		return KindHighlight, true
	case backing.SubtypeStamp:
		return KindStamp, true
	case backing.SubtypeInk:
		return KindInk, true
	case backing.SubtypeLink:
		return KindLink, true
	case backing.SubtypeCaret:
		return KindCaret, true
	case backing.SubtypeFileAttachment:
		return KindFileAttachment, true
	case backing.SubtypeSound:
		return KindSound, true
	case backing.SubtypeMovie:
		return KindMovie, true
	case backing.SubtypeScreen:
		return KindScreen, true
	case backing.SubtypeWidget:
		return KindWidget, true
	case backing.SubtypeRichMedia:
		return KindRichMedia, true
	default:
		return 0, false
	}
}

// Flags is a set of annotation flags, as seen by clients.
type Flags int

// The numeric values are part of the legacy serialization format.
const (
	Hidden              Flags = 1
	FixedSize           Flags = 2
	FixedRotation       Flags = 4
	DenyPrint           Flags = 8
	DenyWrite           Flags = 16
	DenyDelete          Flags = 32
	ToggleHidingOnMouse Flags = 64
	External            Flags = 128
)

// fromBackingFlags converts stored annotation flags to client flags.
func fromBackingFlags(f backing.Flags) Flags {
	var res Flags
	if f&backing.FlagHidden != 0 {
		res |= Hidden
	}
	if f&backing.FlagNoZoom != 0 {
		res |= FixedSize
	}
	if f&backing.FlagNoRotate != 0 {
		res |= FixedRotation
	}
	if f&backing.FlagPrint == 0 {
		res |= DenyPrint
	}
	if f&backing.FlagReadOnly != 0 {
		res |= DenyWrite | DenyDelete
	}
	if f&backing.FlagLocked != 0 {
		res |= DenyDelete
	}
	if f&backing.FlagToggleNoView != 0 {
		res |= ToggleHidingOnMouse
	}
	return res
}

// toBackingFlags converts client flags to stored annotation flags.
// The External flag has no stored equivalent.
func toBackingFlags(f Flags) backing.Flags {
	var res backing.Flags
	if f&Hidden != 0 {
		res |= backing.FlagHidden
	}
	if f&FixedSize != 0 {
		res |= backing.FlagNoZoom
	}
	if f&FixedRotation != 0 {
		res |= backing.FlagNoRotate
	}
	if f&DenyPrint == 0 {
		res |= backing.FlagPrint
	}
	if f&DenyWrite != 0 {
		res |= backing.FlagReadOnly
	}
	if f&DenyDelete != 0 {
		res |= backing.FlagLocked
	}
	if f&ToggleHidingOnMouse != 0 {
		res |= backing.FlagToggleNoView
	}
	return res
}

// RevScope describes how a revision relates to its parent record.
type RevScope int

// Valid values for RevScope.
const (
	ScopeRoot   RevScope = 0
	ScopeReply  RevScope = 1
	ScopeGroup  RevScope = 2
	ScopeDelete RevScope = 4
)

// RevType is the review state of a revision.
type RevType int

// Valid values for RevType.
const (
	RevNone      RevType = 0
	RevMarked    RevType = 1
	RevUnmarked  RevType = 2
	RevAccepted  RevType = 4
	RevRejected  RevType = 8
	RevCancelled RevType = 16
	RevCompleted RevType = 32
)

func revTypeFromState(s backing.TextState) RevType {
	switch s {
	case backing.TextStateMarked:
		return RevMarked
	case backing.TextStateUnmarked:
		return RevUnmarked
	case backing.TextStateAccepted:
		return RevAccepted
	case backing.TextStateRejected:
		return RevRejected
	case backing.TextStateCancelled:
		return RevCancelled
	case backing.TextStateCompleted:
		return RevCompleted
	default:
		return RevNone
	}
}

func stateFromRevType(t RevType) backing.TextState {
	switch t {
	case RevMarked:
		return backing.TextStateMarked
	case RevUnmarked:
		return backing.TextStateUnmarked
	case RevAccepted:
		return backing.TextStateAccepted
	case RevRejected:
		return backing.TextStateRejected
	case RevCancelled:
		return backing.TextStateCancelled
	case RevCompleted:
		return backing.TextStateCompleted
	default:
		return backing.TextStateUnknown
	}
}
