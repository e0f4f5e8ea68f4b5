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
	"time"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdfannot/annot"
)

// coder holds the settings used while reading or writing one tree.
type coder struct {
	log logrus.FieldLogger
	loc *time.Location
}

// attribute describes one XML attribute of a block, and the field of S it
// is stored in.  The same description drives reading and writing.
type attribute[S any] interface {
	attrName() string

	// encode returns the attribute value for s.  The second return value
	// is false if the value equals the default and can be omitted.
	encode(c *coder, s S) (string, bool)

	// decode stores the attribute value in s.  If present is false, the
	// default value is stored.
	decode(c *coder, s S, value string, present bool) error
}

// encodeAttrs adds the attributes of s to n.  Attributes which have their
// default value are omitted.
func encodeAttrs[S any](c *coder, n *node, s S, schema []attribute[S]) {
	for _, a := range schema {
		if value, ok := a.encode(c, s); ok {
			n.setAttr(a.attrName(), value)
		}
	}
}

// decodeAttrs reads the attributes of n into s.  Missing attributes are
// set to their default values.  Values which cannot be parsed are logged,
// and the default is used instead.
func decodeAttrs[S any](c *coder, n *node, s S, schema []attribute[S]) {
	for _, a := range schema {
		value, present := n.attr(a.attrName())
		err := a.decode(c, s, value, present)
		if err == nil {
			continue
		}
		c.log.WithFields(logrus.Fields{
			"element":   n.name,
			"attribute": a.attrName(),
			"value":     value,
		}).WithError(err).Warn("invalid attribute, using default")
		_ = a.decode(c, s, "", false)
	}
}

// field is an attribute with a comparable Go value.
type field[S any, T comparable] struct {
	name   string
	def    T
	format func(T) string
	parse  func(string) (T, error)
	get    func(S) T
	set    func(S, T)
}

func (f *field[S, T]) attrName() string { return f.name }

func (f *field[S, T]) encode(_ *coder, s S) (string, bool) {
	v := f.get(s)
	return f.format(v), v != f.def
}

func (f *field[S, T]) decode(_ *coder, s S, value string, present bool) error {
	v := f.def
	if present {
		var err error
		v, err = f.parse(strings.TrimSpace(value))
		if err != nil {
			return err
		}
	}
	f.set(s, v)
	return nil
}

func stringField[S any](name, def string, get func(S) string, set func(S, string)) attribute[S] {
	return &field[S, string]{
		name:   name,
		def:    def,
		format: func(s string) string { return s },
		parse:  func(s string) (string, error) { return s, nil },
		get:    get,
		set:    set,
	}
}

func intField[S any, T ~int](name string, def T, get func(S) T, set func(S, T)) attribute[S] {
	return &field[S, T]{
		name:   name,
		def:    def,
		format: func(v T) string { return strconv.Itoa(int(v)) },
		parse: func(s string) (T, error) {
			v, err := strconv.Atoi(s)
			return T(v), err
		},
		get: get,
		set: set,
	}
}

func floatField[S any](name string, def float64, get func(S) float64, set func(S, float64)) attribute[S] {
	return &field[S, float64]{
		name:   name,
		def:    def,
		format: formatFloat,
		parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		get:    get,
		set:    set,
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// boolField stores booleans as "1" and "0".
func boolField[S any](name string, get func(S) bool, set func(S, bool)) attribute[S] {
	return &field[S, bool]{
		name: name,
		format: func(b bool) string {
			if b {
				return "1"
			}
			return "0"
		},
		parse: func(s string) (bool, error) {
			if b, err := strconv.ParseBool(s); err == nil {
				return b, nil
			}
			v, err := strconv.Atoi(s)
			return v != 0, err
		},
		get: get,
		set: set,
	}
}

// colorField stores colors as "#rrggbb".  Transparent colors are
// omitted.
func colorField[S any](name string, get func(S) annot.Color, set func(S, annot.Color)) attribute[S] {
	return &field[S, annot.Color]{
		name:   name,
		format: annot.Color.Hex,
		parse:  annot.ParseHex,
		get: func(s S) annot.Color {
			c := get(s)
			if !c.IsValid() {
				return annot.Color{}
			}
			return c
		},
		set: set,
	}
}

// presence is a boolean which is true if the attribute is present,
// whatever its value.
type presence[S any] struct {
	name string
	get  func(S) bool
	set  func(S, bool)
}

func (p *presence[S]) attrName() string { return p.name }

func (p *presence[S]) encode(_ *coder, s S) (string, bool) {
	return "1", p.get(s)
}

func (p *presence[S]) decode(_ *coder, s S, _ string, present bool) error {
	p.set(s, present)
	return nil
}

// dateField stores a time stamp.  The zero time is omitted.
type dateField[S any] struct {
	name string
	get  func(S) time.Time
	set  func(S, time.Time)
}

func (f *dateField[S]) attrName() string { return f.name }

func (f *dateField[S]) encode(c *coder, s S) (string, bool) {
	t := f.get(s)
	if t.IsZero() {
		return "", false
	}
	return c.formatDate(t), true
}

func (f *dateField[S]) decode(c *coder, s S, value string, present bool) error {
	var t time.Time
	if present {
		var err error
		t, err = c.parseDate(value)
		if err != nil {
			return err
		}
	}
	f.set(s, t)
	return nil
}

// qtTextDate is the layout of dates written by the original producers of
// the format.
const qtTextDate = "Mon Jan 2 15:04:05 2006"

var dateLayouts = []string{
	qtTextDate,
	"Mon Jan _2 15:04:05 2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (c *coder) formatDate(t time.Time) string {
	return t.In(c.loc).Format(qtTextDate)
}

// parseDate accepts the text date form and ISO 8601.  Dates without zone
// information are interpreted in the configured location.
func (c *coder) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// mandatory wraps an attribute so that it is written even if it has its
// default value.
type mandatory[S any] struct {
	attribute[S]
}

func (m mandatory[S]) encode(c *coder, s S) (string, bool) {
	value, _ := m.attribute.encode(c, s)
	return value, true
}

func always[S any](attrs ...attribute[S]) []attribute[S] {
	res := make([]attribute[S], len(attrs))
	for i, a := range attrs {
		res[i] = mandatory[S]{a}
	}
	return res
}

// viewed adapts an attribute of a record view, like [annot.TextMark], to
// the record itself.
type viewed[V any] struct {
	view func(annot.Record) V
	attr attribute[V]
}

func (v viewed[V]) attrName() string { return v.attr.attrName() }

func (v viewed[V]) encode(c *coder, r annot.Record) (string, bool) {
	return v.attr.encode(c, v.view(r))
}

func (v viewed[V]) decode(c *coder, r annot.Record, value string, present bool) error {
	return v.attr.decode(c, v.view(r), value, present)
}

func through[V any](view func(annot.Record) V, attrs ...attribute[V]) []attribute[annot.Record] {
	res := make([]attribute[annot.Record], len(attrs))
	for i, a := range attrs {
		res[i] = viewed[V]{view: view, attr: a}
	}
	return res
}
