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

// Package cpufeature probes the running CPU once at start-up so callers
// can pick between a portable fallback and a hardware-accelerated code
// path without re-testing feature bits on every call.
package cpufeature

import (
	"golang.org/x/sys/cpu"
)

// HasAVX2 reports whether the current CPU supports AVX2, which would let
// a byte-search routine widen its probe past the 8-byte SWAR window. The
// result is computed once at init time, not per call.
var HasAVX2 = cpu.X86.HasAVX2
