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

import "github.com/arrowmark/lutcodec/internal/cpufeature"

// ScanStrategy reports which escape-scan implementation is active:
// "avx2-ready" when the host CPU supports AVX2 (a future vectorized scan
// could replace scanForEscape's 8-byte window with a 32-byte one without
// changing the contract), or "swar" otherwise. This module ships only
// the SWAR byte-parallel scan; the strategy name exists so a vectorized
// scan can be dropped in later behind the same function, and so tests
// can confirm the fallback path is always reachable.
func ScanStrategy() string {
	if cpufeature.HasAVX2 {
		return "avx2-ready"
	}
	return "swar"
}
