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

package b89

import (
	"errors"

	"github.com/arrowmark/lutcodec/internal/digest"
)

// ErrTruncatedCode is returned by ValidateTail when the input ends with
// an ST byte followed by fewer than 3 more bytes. The streaming
// Iterator never returns this error: it silently ends iteration on a
// truncated trailing code. ValidateTail exists for callers who want to
// detect and report that condition instead of losing the tail silently.
var ErrTruncatedCode = errors.New("b89: truncated trailing code")

// EventKind distinguishes the two kinds of Event an Iterator produces.
type EventKind int

const (
	// Text is a maximal run of bytes not containing ST.
	Text EventKind = iota
	// Code is a decoded 4-byte escape sequence (index may be ErrorIndex).
	Code
)

// Event is either a Text span (borrowed from the Iterator's input) or a
// decoded Code index.
type Event struct {
	Kind  EventKind
	Text  []byte
	Index int
}

// Iterator tokenizes a byte string into alternating Text and Code
// events. It borrows its input; the input must outlive the Iterator.
type Iterator struct {
	data     []byte
	pos      int
	maxIndex int

	fpEnabled bool
	fp        digest.Fingerprint
}

// NewIterator returns an Iterator over data, decoding codes against
// maxIndex.
func NewIterator(data []byte, maxIndex int) *Iterator {
	return &Iterator{data: data, maxIndex: maxIndex}
}

// EnableTextFingerprint turns on running-digest accumulation of every
// emitted Text span. It must be called before the first Next call.
func (it *Iterator) EnableTextFingerprint() { it.fpEnabled = true }

// TextFingerprint returns the digest folded over every Text span emitted
// so far. Only meaningful if EnableTextFingerprint was called.
func (it *Iterator) TextFingerprint() digest.Fingerprint { return it.fp }

// Next advances the iterator and returns the next Event. The second
// return value is false once the input is exhausted, including when
// the input ends in a truncated trailing code: that case ends
// iteration silently rather than surfacing an error.
func (it *Iterator) Next() (Event, bool) {
	if it.pos >= len(it.data) {
		return Event{}, false
	}
	start := it.pos
	rel := scanForEscape(it.data[it.pos:])
	it.pos += rel
	if it.pos > start {
		span := it.data[start:it.pos]
		if it.fpEnabled {
			it.fp = it.fp.Fold(span)
		}
		return Event{Kind: Text, Text: span}, true
	}
	// it.data[it.pos] == ST
	if len(it.data)-it.pos < 4 {
		it.pos = len(it.data)
		return Event{}, false
	}
	var code [4]byte
	copy(code[:], it.data[it.pos:it.pos+4])
	idx := decode(code, it.maxIndex)
	it.pos += 4
	return Event{Kind: Code, Index: idx}, true
}

// ValidateTail reports ErrTruncatedCode if data ends with an ST byte
// followed by fewer than 3 trailing bytes, without altering how a
// streaming Iterator would otherwise consume it.
func ValidateTail(data []byte) error {
	pos := 0
	for pos < len(data) {
		rel := scanForEscape(data[pos:])
		pos += rel
		if pos >= len(data) {
			return nil
		}
		if len(data)-pos < 4 {
			return ErrTruncatedCode
		}
		pos += 4
	}
	return nil
}
