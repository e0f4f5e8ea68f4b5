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
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdfannot/backing"
)

// MaxStampImageSize is the largest width or height of a stored stamp
// image.  Larger images are scaled down, keeping the aspect ratio.
const MaxStampImageSize = 2048

// StampMark is a view of a record of kind [KindStamp].
type StampMark struct {
	Record
}

type stampPayload struct {
	icon  string
	image image.Image
}

func (*stampPayload) kind() Kind { return KindStamp }

// NewStamp returns a new, detached rubber stamp record.
func NewStamp() StampMark {
	return StampMark{newRecord(&stampPayload{icon: backing.StampIconDraft})}
}

// AsStamp returns the stamp view of r.
func (r Record) AsStamp() (StampMark, bool) {
	if r.Kind() != KindStamp {
		return StampMark{}, false
	}
	return StampMark{r}, true
}

func (m StampMark) data() *stampPayload {
	return m.p.payload.(*stampPayload)
}

func (m StampMark) obj() (*backing.Stamp, bool) {
	if t, ok := m.state().(*tied); ok {
		a, _ := t.obj.(*backing.Stamp)
		return a, true
	}
	return nil, false
}

// IconName returns the name of the stamp icon.
func (m StampMark) IconName() string {
	if a, ok := m.obj(); ok {
		if a != nil {
			return a.Icon
		}
		return ""
	}
	return m.data().icon
}

// SetIconName sets the name of the stamp icon.
func (m StampMark) SetIconName(name string) {
	if a, ok := m.obj(); ok {
		if a != nil {
			a.Icon = name
		}
		return
	}
	m.data().icon = name
}

// CustomImage returns the custom stamp image, or nil.
// For tied records the stored samples are returned as an [*image.NRGBA].
func (m StampMark) CustomImage() image.Image {
	if a, ok := m.obj(); ok {
		if a == nil || a.Image == nil {
			return nil
		}
		return stampImageToNRGBA(a.Image)
	}
	return m.data().image
}

// SetCustomImage sets an image which replaces the stamp icon.
// A nil image is ignored.
func (m StampMark) SetCustomImage(img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	if a, ok := m.obj(); ok {
		if a != nil {
			a.Image = convertStampImage(img)
		}
		return
	}
	m.data().image = img
}

// convertStampImage converts img to 8-bit RGB samples plus, if any pixel
// is not opaque, an 8-bit soft mask.
func convertStampImage(img image.Image) *backing.StampImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > MaxStampImageSize || h > MaxStampImageSize {
		if w >= h {
			w, h = MaxStampImageSize, max(1, h*MaxStampImageSize/w)
		} else {
			w, h = max(1, w*MaxStampImageSize/h), MaxStampImageSize
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	res := &backing.StampImage{
		Width:  w,
		Height: h,
		RGB:    make([]byte, 0, 3*w*h),
	}
	alpha := make([]byte, 0, w*h)
	opaque := true
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for x := 0; x < 4*w; x += 4 {
			res.RGB = append(res.RGB, row[x], row[x+1], row[x+2])
			alpha = append(alpha, row[x+3])
			if row[x+3] != 0xFF {
				opaque = false
			}
		}
	}
	if !opaque {
		res.Alpha = alpha
	}
	return res
}

func stampImageToNRGBA(si *backing.StampImage) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, si.Width, si.Height))
	n := si.Width * si.Height
	for i := 0; i < n && 3*i+2 < len(si.RGB); i++ {
		img.Pix[4*i] = si.RGB[3*i]
		img.Pix[4*i+1] = si.RGB[3*i+1]
		img.Pix[4*i+2] = si.RGB[3*i+2]
		img.Pix[4*i+3] = 0xFF
		if i < len(si.Alpha) {
			img.Pix[4*i+3] = si.Alpha[i]
		}
	}
	return img
}

func (*stampPayload) subtype() backing.Subtype {
	return backing.SubtypeStamp
}

func (p *stampPayload) flush(r Record) error {
	m := StampMark{r}
	m.SetIconName(p.icon)
	m.SetCustomImage(p.image)
	return nil
}
