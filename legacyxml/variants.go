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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/action"
	"seehuhn.de/go/pdfannot/annot"
	"seehuhn.de/go/pdfannot/backing"
)

// variant describes the block which holds the kind-specific fields of a
// record.  Fields which map to attributes are listed in attrs; encode and
// decode, if set, handle child elements.
type variant struct {
	element string
	create  func() annot.Record
	attrs   []attribute[annot.Record]
	encode  func(c *coder, e *node, r annot.Record)
	decode  func(c *coder, e *node, r annot.Record)
}

var variants = map[annot.Kind]*variant{
	annot.KindText: {
		element: "text",
		create:  func() annot.Record { return annot.NewText(annot.Linked).Record },
		attrs: through(asText,
			intField("type", annot.Linked, annot.TextMark.TextType,
				func(m annot.TextMark, t annot.TextType) { _ = m.SetTextType(t) }),
			stringField("icon", backing.TextIconNote, annot.TextMark.Icon, annot.TextMark.SetIcon),
			intField("align", 0, annot.TextMark.Align, annot.TextMark.SetAlign),
			intField("intent", annot.InplaceUnknown, annot.TextMark.Intent, annot.TextMark.SetIntent),
			&field[annot.TextMark, annot.Font]{
				name:   "font",
				def:    annot.Font{Size: backing.UndefinedFontSize},
				format: formatFont,
				parse:  parseFont,
				get:    annot.TextMark.Font,
				set:    annot.TextMark.SetFont,
			},
			colorField("fontColor", annot.TextMark.FontColor, annot.TextMark.SetFontColor),
		),
		encode: encodeText,
		decode: decodeText,
	},
	annot.KindLine: {
		element: "line",
		create:  func() annot.Record { return annot.NewLine(annot.Polyline).Record },
		attrs: through(asLine,
			intField("startStyle", annot.TermNone, annot.LineMark.StartStyle, annot.LineMark.SetStartStyle),
			intField("endStyle", annot.TermNone, annot.LineMark.EndStyle, annot.LineMark.SetEndStyle),
			boolField("closed", annot.LineMark.IsClosed, annot.LineMark.SetClosed),
			colorField("innerColor", annot.LineMark.InnerColor, annot.LineMark.SetInnerColor),
			floatField("leadFwd", 0, annot.LineMark.LeadingForward, annot.LineMark.SetLeadingForward),
			floatField("leadBack", 0, annot.LineMark.LeadingBack, annot.LineMark.SetLeadingBack),
			boolField("showCaption", annot.LineMark.ShowCaption, annot.LineMark.SetShowCaption),
			intField("intent", annot.LineUnknown, annot.LineMark.Intent, annot.LineMark.SetIntent),
		),
		encode: encodeLine,
		decode: decodeLine,
	},
	annot.KindGeom: {
		element: "geom",
		create:  func() annot.Record { return annot.NewGeom(annot.InscribedSquare).Record },
		attrs: through(asGeom,
			intField("type", annot.InscribedSquare, annot.GeomMark.GeomType, annot.GeomMark.SetGeomType),
			colorField("color", annot.GeomMark.InnerColor, annot.GeomMark.SetInnerColor),
		),
	},
	annot.KindHighlight: {
		element: "hl",
		create:  func() annot.Record { return annot.NewHighlight(annot.MarkHighlight).Record },
		attrs: through(asHighlight,
			intField("type", annot.MarkHighlight, annot.HighlightMark.HighlightType, annot.HighlightMark.SetHighlightType),
		),
		encode: encodeHighlight,
		decode: decodeHighlight,
	},
	annot.KindStamp: {
		element: "stamp",
		create:  func() annot.Record { return annot.NewStamp().Record },
		attrs: through(asStamp,
			stringField("icon", backing.StampIconDraft, annot.StampMark.IconName, annot.StampMark.SetIconName),
		),
	},
	annot.KindInk: {
		element: "ink",
		create:  func() annot.Record { return annot.NewInk().Record },
		encode:  encodeInk,
		decode:  decodeInk,
	},
	annot.KindLink: {
		element: "link",
		create:  func() annot.Record { return annot.NewLink().Record },
		attrs: through(asLink,
			intField("hlmode", annot.LinkInvert, annot.LinkMark.HighlightMode, annot.LinkMark.SetHighlightMode),
		),
		encode: encodeLink,
		decode: decodeLink,
	},
	annot.KindCaret: {
		element: "caret",
		create:  func() annot.Record { return annot.NewCaret().Record },
		attrs: through(asCaret,
			stringField("symbol", annot.CaretNone.String(),
				func(m annot.CaretMark) string { return m.Symbol().String() },
				func(m annot.CaretMark, s string) { m.SetSymbol(annot.ParseCaretSymbol(s)) }),
		),
	},
	annot.KindFileAttachment: {
		element: "fileattachment",
		create:  func() annot.Record { return annot.NewFileAttachment().Record },
		attrs: through(asFileAttachment,
			stringField("icon", backing.FileIconPushPin, annot.FileAttachMark.IconName, annot.FileAttachMark.SetIconName),
		),
	},
	annot.KindSound: {
		element: "sound",
		create:  func() annot.Record { return annot.NewSound().Record },
		attrs: through(asSound,
			stringField("icon", backing.SoundIconSpeaker, annot.SoundMark.IconName, annot.SoundMark.SetIconName),
		),
	},
	annot.KindMovie: {
		element: "movie",
		create:  func() annot.Record { return annot.NewMovie().Record },
		attrs: through(asMovie,
			stringField("title", "", annot.MovieMark.Title, annot.MovieMark.SetTitle),
		),
	},
	annot.KindScreen: {
		element: "screen",
		create:  func() annot.Record { return annot.NewScreen().Record },
		attrs: through(asScreen,
			stringField("title", "", annot.ScreenMark.Title, annot.ScreenMark.SetTitle),
		),
	},
	annot.KindWidget: {
		element: "widget",
		create:  func() annot.Record { return annot.NewWidget().Record },
	},
	annot.KindRichMedia: {
		element: "richMedia",
		create:  func() annot.Record { return annot.NewRichMedia().Record },
	},
}

func asText(r annot.Record) annot.TextMark {
	m, _ := r.AsText()
	return m
}

func asLine(r annot.Record) annot.LineMark {
	m, _ := r.AsLine()
	return m
}

func asGeom(r annot.Record) annot.GeomMark {
	m, _ := r.AsGeom()
	return m
}

func asHighlight(r annot.Record) annot.HighlightMark {
	m, _ := r.AsHighlight()
	return m
}

func asStamp(r annot.Record) annot.StampMark {
	m, _ := r.AsStamp()
	return m
}

func asInk(r annot.Record) annot.InkMark {
	m, _ := r.AsInk()
	return m
}

func asLink(r annot.Record) annot.LinkMark {
	m, _ := r.AsLink()
	return m
}

func asCaret(r annot.Record) annot.CaretMark {
	m, _ := r.AsCaret()
	return m
}

func asFileAttachment(r annot.Record) annot.FileAttachMark {
	m, _ := r.AsFileAttachment()
	return m
}

func asSound(r annot.Record) annot.SoundMark {
	m, _ := r.AsSound()
	return m
}

func asMovie(r annot.Record) annot.MovieMark {
	m, _ := r.AsMovie()
	return m
}

func asScreen(r annot.Record) annot.ScreenMark {
	m, _ := r.AsScreen()
	return m
}

// formatFont writes a font description in the comma-separated form used
// by Qt, with default values for the fields this package does not model.
func formatFont(f annot.Font) string {
	return f.Family + "," + formatFloat(f.Size) + ",-1,5,50,0,0,0,0,0"
}

func parseFont(s string) (annot.Font, error) {
	family, rest, ok := strings.Cut(s, ",")
	if !ok {
		return annot.Font{}, fmt.Errorf("invalid font %q", s)
	}
	size, _, _ := strings.Cut(rest, ",")
	x, err := strconv.ParseFloat(strings.TrimSpace(size), 64)
	if err != nil {
		return annot.Font{}, fmt.Errorf("invalid font size in %q: %w", s, err)
	}
	return annot.Font{Family: family, Size: x}, nil
}

// pointSchema describes the coordinates of a single point.  Both are
// always written.
var pointSchema = always(
	floatField("x", 0, func(p *vec.Vec2) float64 { return p.X }, func(p *vec.Vec2, x float64) { p.X = x }),
	floatField("y", 0, func(p *vec.Vec2) float64 { return p.Y }, func(p *vec.Vec2, y float64) { p.Y = y }),
)

func encodePoints(c *coder, parent *node, points []vec.Vec2) {
	for i := range points {
		encodeAttrs(c, parent.add(newNode("point")), &points[i], pointSchema)
	}
}

func decodePoints(c *coder, parent *node) []vec.Vec2 {
	var points []vec.Vec2
	for _, e := range parent.all("point") {
		var p vec.Vec2
		decodeAttrs(c, e, &p, pointSchema)
		points = append(points, p)
	}
	return points
}

// cornerSchema describes the corners a, b, c and d of a quadrilateral.
var cornerSchema = func() []attribute[*[4]vec.Vec2] {
	var res []attribute[*[4]vec.Vec2]
	for i, name := range []string{"a", "b", "c", "d"} {
		res = append(res,
			floatField(name+"x", 0,
				func(q *[4]vec.Vec2) float64 { return q[i].X },
				func(q *[4]vec.Vec2, x float64) { q[i].X = x }),
			floatField(name+"y", 0,
				func(q *[4]vec.Vec2) float64 { return q[i].Y },
				func(q *[4]vec.Vec2, y float64) { q[i].Y = y }),
		)
	}
	return always(res...)
}()

var quadSchema = []attribute[*annot.Quad]{
	&presence[*annot.Quad]{"start", func(q *annot.Quad) bool { return q.CapStart }, func(q *annot.Quad, b bool) { q.CapStart = b }},
	&presence[*annot.Quad]{"end", func(q *annot.Quad) bool { return q.CapEnd }, func(q *annot.Quad, b bool) { q.CapEnd = b }},
	mandatory[*annot.Quad]{floatField("feather", 0.1, func(q *annot.Quad) float64 { return q.Feather }, func(q *annot.Quad, x float64) { q.Feather = x })},
}

func encodeText(c *coder, e *node, r annot.Record) {
	m := asText(r)
	if contents := m.Contents(); contents != "" {
		e.add(&node{name: "escapedText", text: contents})
	}

	// The callout is stored as a, b and c.  The third point is omitted
	// for two-point callouts.
	pts := m.CalloutPoints()
	if len(pts) < 2 {
		return
	}
	callout := e.add(newNode("callout"))
	for i, name := range []string{"a", "b", "c"}[:min(len(pts), 3)] {
		callout.setAttr(name+"x", formatFloat(pts[i].X))
		callout.setAttr(name+"y", formatFloat(pts[i].Y))
	}
}

func decodeText(c *coder, e *node, r annot.Record) {
	m := asText(r)
	if t := e.child("escapedText"); t != nil {
		m.SetContents(t.text)
	}
	if callout := e.child("callout"); callout != nil {
		var corners [4]vec.Vec2
		decodeAttrs(c, callout, &corners, cornerSchema)
		n := 2
		if _, ok := callout.attr("cx"); ok {
			n = 3
		} else if _, ok := callout.attr("cy"); ok {
			n = 3
		}
		if err := m.SetCalloutPoints(corners[:n]); err != nil {
			c.log.WithError(err).Warn("invalid callout")
		}
	}
}

func encodeLine(c *coder, e *node, r annot.Record) {
	if pts := asLine(r).Points(); len(pts) > 1 {
		encodePoints(c, e, pts)
	}
}

// decodeLine reads the line points.  Two points give a straight line,
// any other number a polyline.
func decodeLine(c *coder, e *node, r annot.Record) {
	m := asLine(r)
	pts := decodePoints(c, e)
	if len(pts) == 2 {
		_ = m.SetLineType(annot.StraightLine)
	}
	if err := m.SetPoints(pts); err != nil {
		c.log.WithError(err).Warn("invalid line points")
	}
}

func encodeHighlight(c *coder, e *node, r annot.Record) {
	for _, q := range asHighlight(r).Quads() {
		qe := e.add(newNode("quad"))
		encodeAttrs(c, qe, &q.Points, cornerSchema)
		encodeAttrs(c, qe, &q, quadSchema)
	}
}

func decodeHighlight(c *coder, e *node, r annot.Record) {
	var quads []annot.Quad
	for _, qe := range e.all("quad") {
		var q annot.Quad
		decodeAttrs(c, qe, &q.Points, cornerSchema)
		decodeAttrs(c, qe, &q, quadSchema)
		quads = append(quads, q)
	}
	asHighlight(r).SetQuads(quads)
}

func encodeInk(c *coder, e *node, r annot.Record) {
	for _, path := range asInk(r).Paths() {
		encodePoints(c, e.add(newNode("path")), path)
	}
}

// decodeInk reads the ink paths.  Paths with fewer than two points are
// dropped.
func decodeInk(c *coder, e *node, r annot.Record) {
	var paths [][]vec.Vec2
	for _, pe := range e.all("path") {
		if path := decodePoints(c, pe); len(path) >= 2 {
			paths = append(paths, path)
		}
	}
	asInk(r).SetPaths(paths)
}

func encodeLink(c *coder, e *node, r annot.Record) {
	m := asLink(r)
	var region [4]vec.Vec2
	for i := range region {
		region[i] = m.RegionPoint(i)
	}
	encodeAttrs(c, e.add(newNode("quad")), &region, cornerSchema)
	encodeAction(e.add(newNode("link")), m.Destination())
}

func decodeLink(c *coder, e *node, r annot.Record) {
	m := asLink(r)
	for _, ce := range e.children {
		switch ce.name {
		case "quad":
			var region [4]vec.Vec2
			decodeAttrs(c, ce, &region, cornerSchema)
			for i, p := range region {
				m.SetRegionPoint(i, p)
			}
		case "link":
			if a := c.decodeAction(ce); a != nil {
				m.SetDestination(a)
			}
		}
	}
}

// encodeAction describes the link target a.  Only the first four types
// carry parameters.
func encodeAction(e *node, a action.Action) {
	switch a := a.(type) {
	case nil:
	case *action.GoTo:
		e.setAttr("type", "GoTo")
		e.setAttr("filename", a.FileName)
		e.setAttr("destination", a.Destination)
		// older readers only know the misspelled name
		e.setAttr("destionation", a.Destination)
	case *action.Launch:
		e.setAttr("type", "Exec")
		e.setAttr("filename", a.FileName)
		e.setAttr("parameters", a.Parameters)
	case *action.URI:
		e.setAttr("type", "Browse")
		e.setAttr("url", a.URI)
	case *action.Named:
		e.setAttr("type", "Action")
		e.setAttr("action", string(a.Name))
	case *action.SetOCGState:
		e.setAttr("type", "OCGState")
	default:
		e.setAttr("type", string(a.ActionType()))
	}
}

func (c *coder) decodeAction(e *node) action.Action {
	typ, _ := e.attr("type")
	attr := func(name string) string {
		v, _ := e.attr(name)
		return v
	}
	switch typ {
	case "":
		return nil
	case "GoTo":
		dest, ok := e.attr("destination")
		if !ok {
			// misspelled by some older writers
			dest = attr("destionation")
		}
		return &action.GoTo{FileName: attr("filename"), Destination: dest}
	case "Exec":
		return &action.Launch{FileName: attr("filename"), Parameters: attr("parameters")}
	case "Browse":
		return &action.URI{URI: attr("url")}
	case "Action":
		name := action.NamedAction(attr("action"))
		if !name.IsKnown() {
			c.log.WithField("action", name).Warn("unknown named action, link target dropped")
			return nil
		}
		return &action.Named{Name: name}
	case "Movie":
		return &action.Movie{}
	case "Rendition":
		return &action.Rendition{}
	case "Sound":
		return &action.Sound{}
	case "JavaScript":
		return &action.JavaScript{}
	case "OCGState":
		return &action.SetOCGState{}
	case "Hide":
		return &action.Hide{}
	case "ResetForm":
		return &action.ResetForm{}
	case "SubmitForm":
		return &action.SubmitForm{}
	}
	c.log.WithField("type", typ).Warn("unsupported link type, link target dropped")
	return nil
}
