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
	"io"
	"strings"
)

// node is an element of the legacy tree.  Character data, including CDATA
// sections, is collected in text.
type node struct {
	name     string
	attrs    []xml.Attr
	children []*node
	text     string
}

func newNode(name string) *node {
	return &node{name: name}
}

// attr returns the value of the named attribute.
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) setAttr(name, value string) {
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// child returns the first child element with the given name, or nil.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// all returns all child elements with the given name.
func (n *node) all(name string) []*node {
	var res []*node
	for _, c := range n.children {
		if c.name == name {
			res = append(res, c)
		}
	}
	return res
}

func (n *node) add(c *node) *node {
	n.children = append(n.children, c)
	return c
}

// readNode reads the element started by start, including all of its
// descendants.
func readNode(d *xml.Decoder, start xml.StartElement) (*node, error) {
	n := &node{name: start.Name.Local, attrs: start.Attr}
	var text strings.Builder
	for {
		t, err := d.Token()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
		switch t := t.(type) {
		case xml.StartElement:
			c, err := readNode(d, t)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, c)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.text = text.String()
			return n, nil
		}
	}
}

// readRoot skips to the first element of the stream and reads it.
func readRoot(d *xml.Decoder) (*node, error) {
	for {
		t, err := d.Token()
		if err == io.EOF {
			return nil, errNoElement
		} else if err != nil {
			return nil, err
		}
		if start, ok := t.(xml.StartElement); ok {
			return readNode(d, start)
		}
	}
}

var errNoElement = errors.New("no annotation element found")

type cdata struct {
	Text string `xml:",cdata"`
}

// writeNode writes n and its descendants.  Nodes with text are written
// as a single CDATA section, so that the text survives unchanged.
func writeNode(enc *xml.Encoder, n *node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.name}, Attr: n.attrs}
	if n.text != "" {
		return enc.EncodeElement(cdata{n.text}, start)
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := writeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
