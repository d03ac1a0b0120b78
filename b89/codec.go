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

import "fmt"

// Pack writes the 4-byte escape code for index into out, which must have
// length 4. index must be in [0, MaxIndex]; violating that precondition
// is a caller bug and panics, mirroring this module's other
// caller-contract checks.
func Pack(index int, out []byte) {
	if index < 0 || index > MaxIndex {
		panic(fmt.Sprintf("b89: index %d out of range [0, %d]", index, MaxIndex))
	}
	out[0] = ST
	out[1] = byte(ordMin + index%base)
	out[2] = byte(ordMin + (index/base)%base)
	out[3] = byte(ordMin + index/base/base)
}

// PackIndex is Pack with the result returned by value instead of
// written through a slice, for callers that don't already have a
// destination buffer.
func PackIndex(index int) [4]byte {
	var out [4]byte
	Pack(index, out[:])
	return out
}

// decode implements the fixed base-89 decode of a 4-byte code: code[0]
// must be ST and code[1..3] must each lie in [ordMin, ordMax], else the
// result is ErrorIndex. Digit order on the wire is (d0, d1, d2) with d0
// least significant; decode runs Horner's rule with (d2, d1, d0) so d0
// ends up least significant in the result.
func decode(code [4]byte, maxIndex int) int {
	if code[0] != ST {
		return ErrorIndex
	}
	d0, d1, d2 := code[1], code[2], code[3]
	if d0 < ordMin || d0 > ordMax || d1 < ordMin || d1 > ordMax || d2 < ordMin || d2 > ordMax {
		return ErrorIndex
	}
	idx := int(d2 - ordMin)
	idx = idx*base + int(d1-ordMin)
	idx = idx*base + int(d0-ordMin)
	if idx > maxIndex {
		return ErrorIndex
	}
	return idx
}

// Unpack decodes a 4-byte code into an index, applying the per-call
// maxIndex ceiling. Any malformed input (bad leader byte, an
// out-of-alphabet digit, or an index above maxIndex) silently yields
// ErrorIndex; there is no fatal failure mode.
func Unpack(code [4]byte, maxIndex int) int {
	return decode(code, maxIndex)
}
