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

package legacyxml

import (
	"strconv"

	"seehuhn.de/go/pdfannot/annot"
	"seehuhn.de/go/pdfannot/transform"
)

var baseSchema = []attribute[annot.Record]{
	stringField("author", "", annot.Record.Author, annot.Record.SetAuthor),
	stringField("contents", "", annot.Record.Contents, annot.Record.SetContents),
	stringField("uniqueName", "", annot.Record.UniqueName, annot.Record.SetUniqueName),
	&dateField[annot.Record]{"modifyDate", annot.Record.ModificationDate, annot.Record.SetModificationDate},
	&dateField[annot.Record]{"creationDate", annot.Record.CreationDate, annot.Record.SetCreationDate},
	intField("flags", 0, annot.Record.Flags, annot.Record.SetFlags),
	colorField("color",
		func(r annot.Record) annot.Color { return r.Style().Color },
		func(r annot.Record, c annot.Color) {
			s := r.Style()
			s.Color = c
			r.SetStyle(s)
		}),
	floatField("opacity", 1,
		func(r annot.Record) float64 { return r.Style().Opacity },
		func(r annot.Record, x float64) {
			s := r.Style()
			s.Opacity = x
			r.SetStyle(s)
		}),
}

var boundarySchema = always(
	floatField("l", 0, func(r *transform.Rect) float64 { return r.Left }, func(r *transform.Rect, x float64) { r.Left = x }),
	floatField("t", 0, func(r *transform.Rect) float64 { return r.Top }, func(r *transform.Rect, x float64) { r.Top = x }),
	floatField("r", 0, func(r *transform.Rect) float64 { return r.Right }, func(r *transform.Rect, x float64) { r.Right = x }),
	floatField("b", 0, func(r *transform.Rect) float64 { return r.Bottom }, func(r *transform.Rect, x float64) { r.Bottom = x }),
)

var penSchema = always(
	floatField("width", 1, func(s *annot.Style) float64 { return s.Width }, func(s *annot.Style, x float64) { s.Width = x }),
	intField("style", annot.Solid, func(s *annot.Style) annot.LineStyle { return s.LineStyle }, func(s *annot.Style, v annot.LineStyle) { s.LineStyle = v }),
	floatField("xcr", 0, func(s *annot.Style) float64 { return s.XCorners }, func(s *annot.Style, x float64) { s.XCorners = x }),
	floatField("ycr", 0, func(s *annot.Style) float64 { return s.YCorners }, func(s *annot.Style, x float64) { s.YCorners = x }),
)

var effectSchema = always(
	intField("effect", annot.NoEffect, func(s *annot.Style) annot.LineEffect { return s.LineEffect }, func(s *annot.Style, v annot.LineEffect) { s.LineEffect = v }),
	floatField("intensity", 1, func(s *annot.Style) float64 { return s.EffectIntensity }, func(s *annot.Style, x float64) { s.EffectIntensity = x }),
)

// The attribute "top" holds the x-coordinate of the window, and "left"
// holds the y-coordinate.  Existing data depends on this.
var windowSchema = always(
	intField("flags", 0, func(p *annot.Popup) annot.Flags { return p.Flags }, func(p *annot.Popup, f annot.Flags) { p.Flags = f }),
	floatField("top", 0, func(p *annot.Popup) float64 { return p.Geometry.Left }, func(p *annot.Popup, x float64) { p.Geometry.Left = x }),
	floatField("left", 0, func(p *annot.Popup) float64 { return p.Geometry.Top }, func(p *annot.Popup, y float64) { p.Geometry.Top = y }),
	stringField("title", "", func(p *annot.Popup) string { return p.Title }, func(p *annot.Popup, s string) { p.Title = s }),
	stringField("summary", "", func(p *annot.Popup) string { return p.Summary }, func(p *annot.Popup, s string) { p.Summary = s }),
)

// encodeBase writes the "base" block of r.
func (c *coder) encodeBase(n *node, r annot.Record) {
	base := n.add(newNode("base"))
	encodeAttrs(c, base, r, baseSchema)

	bound := r.Boundary()
	encodeAttrs(c, base.add(newNode("boundary")), &bound, boundarySchema)

	style := r.Style()
	if !style.IsDefaultPen() {
		pen := base.add(newNode("penStyle"))
		encodeAttrs(c, pen, &style, penSchema)

		// older readers only understand a single mark/space pair
		marks, spaces := 3, 0
		if len(style.DashArray) > 0 {
			marks = int(style.DashArray[0])
		}
		if len(style.DashArray) > 1 {
			spaces = int(style.DashArray[1])
		}
		pen.setAttr("marks", strconv.Itoa(marks))
		pen.setAttr("spaces", strconv.Itoa(spaces))
		for _, seg := range style.DashArray {
			pen.add(newNode("dashsegm")).setAttr("len", formatFloat(seg))
		}
	}
	if !style.IsDefaultEffect() {
		encodeAttrs(c, base.add(newNode("penEffect")), &style, effectSchema)
	}

	if w := r.Popup(); !w.IsEmpty() {
		win := base.add(newNode("window"))
		encodeAttrs(c, win, &w, windowSchema)
		width, height := w.Geometry.Width(), w.Geometry.Height()
		win.setAttr("width", strconv.Itoa(int(width)))
		win.setAttr("height", strconv.Itoa(int(height)))
		win.setAttr("widthDouble", formatFloat(width))
		win.setAttr("heightDouble", formatFloat(height))
		if w.Text != "" {
			win.add(&node{name: "text", text: w.Text})
		}
	}
}

// decodeBase reads the "base" block of n into r.  If there is no such
// block, r is left unchanged.
func (c *coder) decodeBase(n *node, r annot.Record) {
	base := n.child("base")
	if base == nil {
		return
	}
	decodeAttrs(c, base, r, baseSchema)

	style := r.Style()
	for _, e := range base.children {
		switch e.name {
		case "boundary":
			var bound transform.Rect
			decodeAttrs(c, e, &bound, boundarySchema)
			r.SetBoundary(bound)
		case "penStyle":
			decodeAttrs(c, e, &style, penSchema)
			style.DashArray = c.dashArray(e)
		case "penEffect":
			decodeAttrs(c, e, &style, effectSchema)
		case "window":
			if err := r.SetPopup(c.decodeWindow(e)); err != nil {
				c.log.WithError(err).Warn("popup window skipped")
			}
		}
	}
	r.SetStyle(style)
}

// dashArray reads the dash pattern of a "penStyle" block.  The
// "dashsegm" children take precedence over the older mark/space pair.
func (c *coder) dashArray(pen *node) []float64 {
	var dash []float64
	for _, seg := range pen.all("dashsegm") {
		s, _ := seg.attr("len")
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.log.WithField("value", s).Warn("invalid dash segment, skipped")
			continue
		}
		dash = append(dash, x)
	}
	if len(dash) > 0 {
		return dash
	}

	marks, hasMarks := pen.attr("marks")
	spaces, hasSpaces := pen.attr("spaces")
	if !hasMarks && !hasSpaces {
		return annot.DefaultStyle().DashArray
	}
	m, err := strconv.ParseFloat(marks, 64)
	if err != nil {
		m = 3
	}
	s, err := strconv.ParseFloat(spaces, 64)
	if err != nil {
		s = 0
	}
	return []float64{m, s}
}

func (c *coder) decodeWindow(e *node) annot.Popup {
	var w annot.Popup
	decodeAttrs(c, e, &w, windowSchema)

	size := func(double, integer string) float64 {
		s, ok := e.attr(double)
		if !ok {
			s, ok = e.attr(integer)
		}
		if !ok {
			return 0
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.log.WithField("value", s).Warn("invalid window size")
			return 0
		}
		return x
	}
	w.Geometry.Right = w.Geometry.Left + size("widthDouble", "width")
	w.Geometry.Bottom = w.Geometry.Top + size("heightDouble", "height")

	if t := e.child("text"); t != nil {
		w.Text = t.text
	}
	return w
}
