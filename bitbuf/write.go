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
	"math"

	"github.com/arrowmark/lutcodec/ints"
)

// writeBits is the bit-packing primitive every typed writer funnels
// through. datum's bits above position n-1 are ignored (masked off);
// n must be in [0, 64]. A write that would overflow the remaining
// capacity sets the sticky truncated flag and commits nothing.
func (b *Buffer) writeBits(datum uint64, n uint) error {
	if n > 64 {
		return nil
	}
	if b.frozen {
		// Writing after a read cursor exists is a caller bug, but it's
		// reported as an ordinary error by default rather than a hard
		// assert (see DESIGN.md); callers that want a panic can fire
		// Config.Assert themselves on a non-nil return.
		return ErrFrozen
	}
	if b.remainingBitsWrite() < int(n) {
		b.truncated = true
		return nil
	}
	datum &= mask(n)
	for n > 0 {
		room := 64 - b.wc.bits
		if n <= room {
			b.segs[b.wc.seg] |= datum << b.wc.bits
			b.wc.bits += n
			if b.wc.bits == 64 {
				b.wc.bits = 0
				b.wc.seg++
			}
			return nil
		}
		// straddles a segment boundary: write the low `room` bits into
		// the high `room` bits of the current segment, then continue
		// with the rest in the next segment.
		b.segs[b.wc.seg] |= (datum & mask(room)) << (64 - room)
		b.wc.seg++
		b.wc.bits = 0
		datum >>= room
		n -= room
	}
	return nil
}

// WriteNBits writes the low n bits of value, n in [0, 64]. value must
// not carry set bits above the field width; a violation is a caller
// bug and is asserted, not silently masked away. The write path
// additionally masks defensively so that a non-fatal Assert hook can't
// let stray high bits corrupt the next field (see DESIGN.md).
func (b *Buffer) WriteNBits(n uint, value uint64) error {
	b.cfg.Assert(n <= 64, "WriteNBits: n must be <= 64")
	b.cfg.Assert(value&^mask(n) == 0, "WriteNBits: value has bits set above the field width")
	return b.writeBits(value, n)
}

// WriteBool writes a single bit.
func (b *Buffer) WriteBool(v bool) error {
	if v {
		return b.writeBits(1, 1)
	}
	return b.writeBits(0, 1)
}

// WriteUint8 writes 8 bits.
func (b *Buffer) WriteUint8(v uint8) error { return b.writeBits(uint64(v), 8) }

// WriteUint16 writes 16 bits.
func (b *Buffer) WriteUint16(v uint16) error { return b.writeBits(uint64(v), 16) }

// WriteUint32 writes 32 bits.
func (b *Buffer) WriteUint32(v uint32) error { return b.writeBits(uint64(v), 32) }

// WriteUint64 writes 64 bits.
func (b *Buffer) WriteUint64(v uint64) error { return b.writeBits(v, 64) }

// WriteInt8 writes the two's-complement bit pattern of v, 8 bits wide.
func (b *Buffer) WriteInt8(v int8) error { return b.writeBits(uint64(uint8(v)), 8) }

// WriteInt16 writes the two's-complement bit pattern of v, 16 bits wide.
func (b *Buffer) WriteInt16(v int16) error { return b.writeBits(uint64(uint16(v)), 16) }

// WriteInt32 writes the two's-complement bit pattern of v, 32 bits wide.
func (b *Buffer) WriteInt32(v int32) error { return b.writeBits(uint64(uint32(v)), 32) }

// WriteInt64 writes the two's-complement bit pattern of v, 64 bits wide.
func (b *Buffer) WriteInt64(v int64) error { return b.writeBits(uint64(v), 64) }

// WriteFloat32 writes the raw IEEE-754 bit pattern of v, 32 bits wide.
// No normalization and no endianness swap is performed.
func (b *Buffer) WriteFloat32(v float32) error {
	return b.writeBits(uint64(math.Float32bits(v)), 32)
}

// WriteFloat64 writes the raw IEEE-754 bit pattern of v, 64 bits wide.
func (b *Buffer) WriteFloat64(v float64) error {
	return b.writeBits(math.Float64bits(v), 64)
}

// WriteCString writes s byte-by-byte followed by a single 0x00
// terminator. Strings are not length-prefixed.
func (b *Buffer) WriteCString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := b.writeBits(uint64(s[i]), 8); err != nil {
			return err
		}
	}
	return b.writeBits(0, 8)
}

// PadToByte writes the minimum number of zero bits (0-7) needed to bring
// the write cursor to a byte boundary.
func (b *Buffer) PadToByte() error {
	k := (8 - b.wc.bits%8) % 8
	return b.writeBits(0, k)
}

// WriteQuantizedFloat quantizes value, which must lie in [min, max], to
// an n-bit (1 <= n <= 31) fixed-point code and writes it. Round-tripping
// min and max is exact; interior values are lossy within one quantum of
// (max-min)/mask(n).
func (b *Buffer) WriteQuantizedFloat(n uint, min, max, value float32) error {
	b.cfg.Assert(n >= 1 && n <= 31, "WriteQuantizedFloat: n must be in [1, 31]")
	b.cfg.Assert(min < max, "WriteQuantizedFloat: min must be < max")
	b.cfg.Assert(value >= min && value <= max, "WriteQuantizedFloat: value out of [min, max]")

	bitMax := float32(mask(n))
	qf := ints.Clamp((value-min)*bitMax/(max-min), float32(0), bitMax)
	qi := uint64(qf)
	if qi != 0 && qi&uint64(mask(n)) == 0 {
		qi = uint64(mask(n))
	}
	return b.writeBits(qi, n)
}
