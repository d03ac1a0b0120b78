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

import (
	"unsafe"

	"github.com/google/uuid"

	"github.com/arrowmark/lutcodec/ints"
)

// writeCursor is the buffer's single embedded write position:
// (seg, bits) with bits always in [0, 64). A segment that fills exactly
// is normalized by advancing seg and resetting bits to 0, so bits is
// never observed at 64.
type writeCursor struct {
	seg  int
	bits uint
}

// Buffer is a fixed-capacity, bit-granular write target. It is built up
// with the Write* methods and then frozen by CursorInit, after which it
// is read-only and may be shared across goroutines via independent
// Cursor values.
type Buffer struct {
	segs      []uint64
	wc        writeCursor
	truncated bool
	frozen    bool
	owned     bool // true if segs came from cfg.Alloc and must go through cfg.Free
	cfg       Config

	ID uuid.UUID
}

// segView reinterprets a byte slice, whose length must be a multiple of
// 8, as a []uint64 in host byte order without copying. This is the one
// place the package crosses into unsafe: everywhere else operates on
// segs directly.
func segView(b []byte) []uint64 {
	if len(b) == 0 {
		return nil
	}
	if len(b)%8 != 0 {
		panic("bitbuf: byte slice length not a multiple of 8")
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8)
}

// byteView is the inverse of segView: it reinterprets segs as the bytes
// backing it, without copying.
func byteView(segs []uint64) []byte {
	if len(segs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&segs[0])), len(segs)*8)
}

// Alloc allocates a new owning Buffer with capacity rounded up to the
// nearest multiple of 8 bytes, zero-filled, with the write cursor at the
// start. cfg may be nil for DefaultConfig.
func Alloc(requestedBytes int, cfg *Config) *Buffer {
	c := cfg.fill()
	n := int(ints.AlignUp(uint(requestedBytes), 8))
	raw := c.Alloc(n)
	if len(raw) != n {
		c.Assert(false, "Config.Alloc returned the wrong length")
	}
	return &Buffer{
		segs:  segView(raw),
		owned: true,
		cfg:   c,
		ID:    uuid.New(),
	}
}

// AllocWithCopy allocates a new owning Buffer exactly as Alloc, copies
// initial into it, and positions the write cursor just past the copied
// bytes so writing can continue from there.
func AllocWithCopy(initial []byte, cfg *Config) *Buffer {
	b := Alloc(len(initial), cfg)
	copy(byteView(b.segs), initial)
	n := len(initial)
	b.wc = writeCursor{seg: n / 8, bits: uint(n%8) * 8}
	if b.wc.bits == 64 {
		b.wc.bits = 0
		b.wc.seg++
	}
	return b
}

// Wrap builds a borrowing Buffer over existing storage without copying.
// len(data) must be a multiple of 8. A wrapped Buffer must never be
// passed to Free through the owning path; Free on a wrapped Buffer only
// clears its bookkeeping, it never releases data.
func Wrap(data []byte, cfg *Config) *Buffer {
	c := cfg.fill()
	if len(data)%8 != 0 {
		c.Assert(false, "Wrap: data length is not a multiple of 8")
	}
	return &Buffer{
		segs:  segView(data),
		owned: false,
		cfg:   c,
		ID:    uuid.New(),
	}
}

// Free releases the backing storage of an owning Buffer. It asserts that
// HasTruncated is false; callers that expect truncation on a given
// buffer should call ClearTruncated first to suppress the assert. Free
// on a borrowing (Wrap'd) Buffer does not release the caller's storage.
func (b *Buffer) Free() {
	b.cfg.Assert(!b.truncated, "Free called on a buffer with a pending truncation")
	if b.owned && b.segs != nil {
		b.cfg.Free(byteView(b.segs))
	}
	b.segs = nil
}

// HasTruncated reports whether any write so far has overflowed capacity.
// The flag is sticky: once set, it remains set until ClearTruncated is
// called.
func (b *Buffer) HasTruncated() bool { return b.truncated }

// ClearTruncated clears the sticky truncation flag, e.g. to allow Free
// to proceed after a caller has inspected and accepted a truncation.
func (b *Buffer) ClearTruncated() { b.truncated = false }

// capacityBits is the total bit capacity of the buffer.
func (b *Buffer) capacityBits() int { return len(b.segs) * 64 }

// usedBitsWrite is the number of bits committed by the write cursor.
func (b *Buffer) usedBitsWrite() int { return b.wc.seg*64 + int(b.wc.bits) }

// remainingBitsWrite is the capacity left for the write cursor.
func (b *Buffer) remainingBitsWrite() int {
	return b.capacityBits() - b.usedBitsWrite()
}

// Bytes returns the backing storage and the number of bytes used by the
// write cursor so far (rounded up to the next whole byte). The returned
// slice is valid until Free is called.
func (b *Buffer) Bytes() ([]byte, int) {
	used := b.wc.seg*8 + int((b.wc.bits+7)/8)
	return byteView(b.segs), used
}

// CursorInit freezes the buffer (further writes become a programming
// error) and returns a read cursor positioned at the start of the
// buffer. It may be called more than once; each call returns an
// independent cursor, and all of them may be used concurrently from
// separate goroutines once the buffer is frozen.
func (b *Buffer) CursorInit() *Cursor {
	b.frozen = true
	return &Cursor{buf: b, id: uuid.New()}
}

// NewCursor is an alias for CursorInit kept for readers used to the
// "create another reader" naming once a buffer is already frozen; it
// freezes the buffer too if it has not been frozen yet.
func (b *Buffer) NewCursor() *Cursor { return b.CursorInit() }
