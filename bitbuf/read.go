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

import "math"

// readBits is the bit-extraction primitive every typed reader funnels
// through. n must be in [0, 64]. A read that would cross the end of the
// buffer sets the sticky readPastEnd flag on the cursor and returns 0.
func (c *Cursor) readBits(n uint) uint64 {
	if n > 64 {
		return 0
	}
	if c.remainingBitsRead() < int(n) {
		c.readPastEnd = true
		return 0
	}
	var result uint64
	var shift uint
	for n > 0 {
		room := 64 - c.bits
		if n <= room {
			v := (c.buf.segs[c.seg] & (mask(n) << c.bits)) >> c.bits
			result |= v << shift
			c.bits += n
			if c.bits == 64 {
				c.bits = 0
				c.seg++
			}
			return result
		}
		v := (c.buf.segs[c.seg] & (mask(room) << c.bits)) >> c.bits
		result |= v << shift
		c.seg++
		c.bits = 0
		shift += room
		n -= room
	}
	return result
}

// ReadNBits reads n bits (n in [0, 64]) and returns the value. If
// maskOut is non-nil, *maskOut is set to the n-bit field mask
// regardless of whether the read succeeded; check ReadPastEnd to tell a
// genuine read from an over-read that returned 0 with the mask still
// populated.
func (c *Cursor) ReadNBits(n uint, maskOut *uint64) uint64 {
	c.buf.cfg.Assert(n <= 64, "ReadNBits: n must be <= 64")
	v := c.readBits(n)
	if maskOut != nil {
		*maskOut = mask(n)
	}
	return v
}

// ReadBool reads a single bit.
func (c *Cursor) ReadBool() bool { return c.readBits(1) != 0 }

// ReadUint8 reads 8 bits.
func (c *Cursor) ReadUint8() uint8 { return uint8(c.readBits(8)) }

// ReadUint16 reads 16 bits.
func (c *Cursor) ReadUint16() uint16 { return uint16(c.readBits(16)) }

// ReadUint32 reads 32 bits.
func (c *Cursor) ReadUint32() uint32 { return uint32(c.readBits(32)) }

// ReadUint64 reads 64 bits.
func (c *Cursor) ReadUint64() uint64 { return c.readBits(64) }

// ReadInt8 reads 8 bits and reinterprets them as a two's-complement int8.
func (c *Cursor) ReadInt8() int8 { return int8(uint8(c.readBits(8))) }

// ReadInt16 reads 16 bits and reinterprets them as a two's-complement int16.
func (c *Cursor) ReadInt16() int16 { return int16(uint16(c.readBits(16))) }

// ReadInt32 reads 32 bits and reinterprets them as a two's-complement int32.
func (c *Cursor) ReadInt32() int32 { return int32(uint32(c.readBits(32))) }

// ReadInt64 reads 64 bits and reinterprets them as a two's-complement int64.
func (c *Cursor) ReadInt64() int64 { return int64(c.readBits(64)) }

// ReadFloat32 reads 32 bits and reinterprets them as an IEEE-754 float32.
func (c *Cursor) ReadFloat32() float32 { return math.Float32frombits(uint32(c.readBits(32))) }

// ReadFloat64 reads 64 bits and reinterprets them as an IEEE-754 float64.
func (c *Cursor) ReadFloat64() float64 { return math.Float64frombits(c.readBits(64)) }

// ReadCString reads up to maxBytes bytes, stopping as soon as a 0x00
// byte is consumed (the cursor rests just past it) and returning the
// bytes read before the terminator. If maxBytes is reached without a
// terminator, it returns an empty string and leaves the cursor resting
// at the last byte read (not rewound).
func (c *Cursor) ReadCString(maxBytes int) string {
	buf := make([]byte, 0, maxBytes)
	for i := 0; i < maxBytes; i++ {
		b := uint8(c.readBits(8))
		if c.readPastEnd {
			return string(buf)
		}
		if b == 0 {
			return string(buf)
		}
		buf = append(buf, b)
	}
	return ""
}

// SkipBytePadding advances the cursor to the next byte boundary (a
// no-op if it is already aligned).
func (c *Cursor) SkipBytePadding() {
	k := (8 - c.bits%8) % 8
	c.readBits(k)
}

// ReadQuantizedFloat reads an n-bit (1 <= n <= 31) fixed-point code and
// dequantizes it into [min, max]. Reading back a value written with
// WriteQuantizedFloat at min or max is exact.
func (c *Cursor) ReadQuantizedFloat(n uint, min, max float32) float32 {
	c.buf.cfg.Assert(n >= 1 && n <= 31, "ReadQuantizedFloat: n must be in [1, 31]")
	qi := c.readBits(n)
	bitMax := float32(mask(n))
	return min + (float32(qi)/bitMax)*(max-min)
}
