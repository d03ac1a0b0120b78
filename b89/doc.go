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

// Package b89 encodes and decodes "Printable Base-89 LUT" codes embedded
// inside otherwise-plain text. A code is a fixed 4-byte escape sequence
// (a leading 0x03 followed by three printable base-89 digits) carrying
// an integer index in [0, 704968]. Iterator splits a byte string into
// alternating spans of plain text and decoded codes using a word-wide
// scan for the escape byte.
package b89

const (
	// ST is the escape byte leading every code.
	ST = 0x03
	// ordMin and ordMax bound the printable base-89 digit alphabet.
	ordMin = 0x26
	ordMax = 0x7E
	// base is the number of symbols in the digit alphabet.
	base = ordMax - ordMin + 1 // 89

	// MaxIndex is the largest index representable by three base-89
	// digits: base^3 - 1.
	MaxIndex = base*base*base - 1 // 704968

	// ErrorIndex is the reserved value returned for any decode failure.
	ErrorIndex = 0
)
