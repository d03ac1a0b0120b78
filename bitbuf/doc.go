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

// Package bitbuf implements a non-resizable, bit-granular serializer and
// deserializer. Values are packed contiguously into a fixed-capacity
// buffer with no padding between fields; once a buffer has produced a
// read cursor it is frozen, and any number of independent read cursors
// may then traverse it concurrently.
//
// A Buffer is a single-writer, many-reader structure: it is built up
// with the Write* methods, then handed to CursorInit (or NewCursor) to
// obtain a Cursor, after which further writes are a programming error.
// Storage is a sequence of 64-bit segments in host byte order; there is
// no endianness conversion on the wire (see package ints for the
// alignment helpers used to size the segment array).
package bitbuf
