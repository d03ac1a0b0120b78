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

import "testing"

func TestMaskTable(t *testing.T) {
	if mask(0) != 0 {
		t.Fatalf("mask(0) = %#x, want 0", mask(0))
	}
	if mask(64) != ^uint64(0) {
		t.Fatalf("mask(64) = %#x, want all-ones", mask(64))
	}
	for n := uint(1); n < 64; n++ {
		want := (uint64(1) << n) - 1
		if got := mask(n); got != want {
			t.Fatalf("mask(%d) = %#x, want %#x", n, got, want)
		}
	}
}
