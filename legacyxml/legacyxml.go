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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/ianaindex"

	"seehuhn.de/go/pdfannot/annot"
)

// Options configures a [Codec].  The zero value is ready to use.
type Options struct {
	// Logger receives warnings about attributes and elements which are
	// skipped while reading.  If this is nil, a new logrus logger is
	// used.
	Logger logrus.FieldLogger

	// Location is the time zone in which dates are written, and in which
	// dates without zone information are read.  The default is UTC.
	Location *time.Location

	// Indent, if not empty, is used to indent nested elements.
	Indent string
}

// Codec reads and writes records in the legacy tree format.
type Codec struct {
	c      coder
	indent string
}

// New returns a codec with the given options.
// If opt is nil, default options are used.
func New(opt *Options) *Codec {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = logrus.New()
	}
	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Codec{
		c:      coder{log: log, loc: loc},
		indent: opt.Indent,
	}
}

// ErrNoType is returned when an annotation element has no "type"
// attribute.
var ErrNoType = errors.New("legacyxml: annotation element has no type")

// UnknownTypeError is returned when the "type" attribute of an annotation
// element does not name a record kind.
type UnknownTypeError struct {
	Type string
}

func (err *UnknownTypeError) Error() string {
	return fmt.Sprintf("legacyxml: unknown annotation type %q", err.Type)
}

// Encode writes r, including its revisions, as an XML document with root
// element "annotation".  Tied and detached records are both supported.
func (cd *Codec) Encode(w io.Writer, r annot.Record) error {
	n, err := cd.tree(r)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", cd.indent)
	if err := writeNode(enc, n); err != nil {
		return err
	}
	return enc.Flush()
}

// EncodeElement writes r as an "annotation" element to enc.  This can be
// used to embed records into a larger document.
func (cd *Codec) EncodeElement(enc *xml.Encoder, r annot.Record) error {
	n, err := cd.tree(r)
	if err != nil {
		return err
	}
	return writeNode(enc, n)
}

func (cd *Codec) tree(r annot.Record) (*node, error) {
	n := newNode("annotation")
	if err := cd.c.encodeRecord(n, r); err != nil {
		return nil, err
	}
	return n, nil
}

// Decode reads a record, including its revisions, from an XML document.
// The first element of the document is used as the annotation element;
// its name is not checked.  Documents in encodings other than UTF-8 are
// converted, based on the encoding given in the XML declaration.
//
// The returned record is detached.  Missing attributes are replaced by
// their default values.
func (cd *Codec) Decode(rd io.Reader) (annot.Record, error) {
	d := xml.NewDecoder(rd)
	d.CharsetReader = charsetReader
	n, err := readRoot(d)
	if err != nil {
		return annot.Record{}, err
	}
	return cd.c.decodeRecord(n)
}

// DecodeElement reads a record from the element started by start.
func (cd *Codec) DecodeElement(d *xml.Decoder, start xml.StartElement) (annot.Record, error) {
	n, err := readNode(d, start)
	if err != nil {
		return annot.Record{}, err
	}
	return cd.c.decodeRecord(n)
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("legacyxml: unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// encodeRecord fills the annotation element n.  Revisions are written as
// "revision" elements, each holding a complete record.
func (c *coder) encodeRecord(n *node, r annot.Record) error {
	if !r.IsValid() {
		return annot.ErrInvalidated
	}
	v := variants[r.Kind()]
	if v == nil {
		return fmt.Errorf("legacyxml: cannot encode records of kind %s", r.Kind())
	}

	n.setAttr("type", strconv.Itoa(int(r.Kind())))
	c.encodeBase(n, r)

	for _, rev := range r.Revisions() {
		e := n.add(newNode("revision"))
		e.setAttr("revScope", strconv.Itoa(int(rev.RevisionScope())))
		e.setAttr("revType", strconv.Itoa(int(rev.RevisionType())))
		if err := c.encodeRecord(e, rev); err != nil {
			return err
		}
	}

	e := n.add(newNode(v.element))
	encodeAttrs(c, e, r, v.attrs)
	if v.encode != nil {
		v.encode(c, e, r)
	}
	return nil
}

func (c *coder) decodeRecord(n *node) (annot.Record, error) {
	s, ok := n.attr("type")
	if !ok {
		return annot.Record{}, ErrNoType
	}
	k, err := strconv.Atoi(strings.TrimSpace(s))
	v := variants[annot.Kind(k)]
	if err != nil || v == nil {
		return annot.Record{}, &UnknownTypeError{Type: s}
	}

	r := v.create()
	c.decodeBase(n, r)
	if e := n.child(v.element); e != nil {
		decodeAttrs(c, e, r, v.attrs)
		if v.decode != nil {
			v.decode(c, e, r)
		}
	}

	for _, e := range n.all("revision") {
		child, err := c.decodeRecord(e)
		if err != nil {
			c.log.WithError(err).Warn("revision skipped")
			continue
		}
		var scope annot.RevScope
		var typ annot.RevType
		decodeAttrs(c, e, &scope, revScopeSchema)
		decodeAttrs(c, e, &typ, revTypeSchema)
		if err := r.AddRevision(child, scope, typ); err != nil {
			c.log.WithError(err).Warn("revision skipped")
		}
	}
	return r, nil
}

var revScopeSchema = []attribute[*annot.RevScope]{
	intField("revScope", annot.ScopeRoot,
		func(s *annot.RevScope) annot.RevScope { return *s },
		func(s *annot.RevScope, v annot.RevScope) { *s = v }),
}

var revTypeSchema = []attribute[*annot.RevType]{
	intField("revType", annot.RevNone,
		func(t *annot.RevType) annot.RevType { return *t },
		func(t *annot.RevType, v annot.RevType) { *t = v }),
}
