// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bitbuf

import "github.com/google/uuid"

// Cursor is an independent read position over a frozen Buffer. Any
// number of cursors may traverse the same buffer concurrently: reads
// never mutate the buffer, so no synchronization between cursors (or
// between a cursor and the buffer) is required once the buffer is
// frozen.
type Cursor struct {
	buf         *Buffer
	seg         int
	bits        uint
	readPastEnd bool

	id uuid.UUID
}

// ID identifies this cursor for log correlation; it has no bearing on
// decoding.
func (c *Cursor) ID() uuid.UUID { return c.id }

// ReadPastEnd reports whether any read on this cursor has gone past the
// end of the buffer. The flag is sticky.
func (c *Cursor) ReadPastEnd() bool { return c.readPastEnd }

// remainingBitsRead is the number of bits left for this cursor to read.
func (c *Cursor) remainingBitsRead() int {
	return (len(c.buf.segs)-c.seg)*64 - int(c.bits)
}
