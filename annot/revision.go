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

import "seehuhn.de/go/pdfannot/backing"

// Revisions returns the replies to r.
//
// For detached records these are the records added with
// [Record.AddRevision].  For tied records the page is scanned for
// annotations which refer to r; records without an identifier have no
// replies.
func (r Record) Revisions() []Record {
	switch s := r.state().(type) {
	case *detached:
		if len(s.revisions) == 0 {
			return nil
		}
		res := make([]Record, len(s.revisions))
		for i, child := range s.revisions {
			res[i] = child.Alias()
		}
		return res
	case *tied:
		ref := s.common().Ref
		if ref == backing.NoRef {
			return nil
		}
		res, err := s.ctl.Scan(s.page, nil, ref)
		if err != nil {
			s.ctl.log.WithError(err).Warn("cannot list revisions")
			return nil
		}
		return res
	}
	return nil
}

// AddRevision appends child to the revisions of the detached record r and
// sets the revision scope and type of child.  The child stays detached
// until r is materialized.
//
// If r is tied, [ErrTied] is returned; replies to tied records are created
// with [Controller.MaterializeReply].
func (r Record) AddRevision(child Record, scope RevScope, typ RevType) error {
	if child.Same(r) {
		return ErrSelfRevision
	}
	switch s := r.state().(type) {
	case nil:
		return ErrInvalidated
	case *tied:
		return ErrTied
	case *detached:
		if err := child.SetRevision(scope, typ); err != nil {
			return err
		}
		s.revisions = append(s.revisions, child.Alias())
	}
	return nil
}
