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

func TestAllocRoundsCapacityUp(t *testing.T) {
	b := Alloc(1, nil) // rounds to 8 bytes = 64 bits
	if got := b.capacityBits(); got != 64 {
		t.Fatalf("capacityBits = %d, want 64", got)
	}
	b2 := Alloc(9, nil) // rounds to 16 bytes = 128 bits
	if got := b2.capacityBits(); got != 128 {
		t.Fatalf("capacityBits = %d, want 128", got)
	}
}

func TestAllocIsZeroFilled(t *testing.T) {
	b := Alloc(16, nil)
	raw, _ := b.Bytes()
	for i, v := range raw {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
}

func TestAllocWithCopyPositionsCursor(t *testing.T) {
	initial := []byte{1, 2, 3, 4, 5}
	b := AllocWithCopy(initial, nil)
	if err := b.WriteUint8(42); err != nil {
		t.Fatal(err)
	}
	raw, used := b.Bytes()
	if used != 6 {
		t.Fatalf("used = %d, want 6", used)
	}
	for i, v := range initial {
		if raw[i] != v {
			t.Fatalf("byte %d = %d, want %d", i, raw[i], v)
		}
	}
	if raw[5] != 42 {
		t.Fatalf("byte 5 = %d, want 42", raw[5])
	}
}

func TestWrapBorrowsWithoutCopy(t *testing.T) {
	data := make([]byte, 8)
	b := Wrap(data, nil)
	b.WriteUint8(0xAB)
	if data[0] != 0xAB {
		t.Fatal("Wrap should write through to the caller's storage")
	}
	b.Free() // must not release data
	data[0] = 0xCD
	if data[0] != 0xCD {
		t.Fatal("Free on a wrapped buffer must not disturb caller storage")
	}
}

func TestBytesUsedCount(t *testing.T) {
	b := Alloc(16, nil)
	b.WriteBool(true)
	_, used := b.Bytes()
	if used != 1 {
		t.Fatalf("used = %d, want 1 (a single bit rounds up to one byte)", used)
	}
	b.WriteNBits(7, 0)
	_, used = b.Bytes()
	if used != 1 {
		t.Fatalf("used = %d, want 1 after filling the first byte", used)
	}
	b.WriteBool(true)
	_, used = b.Bytes()
	if used != 2 {
		t.Fatalf("used = %d, want 2 after spilling into the second byte", used)
	}
}

// S4: a write that exceeds remaining capacity sets truncated and has no effect.
func TestOverflowSetsTruncated(t *testing.T) {
	b := Alloc(1, nil) // 64 bits
	if err := b.WriteBool(true); err != nil {
		t.Fatal(err)
	}
	if b.HasTruncated() {
		t.Fatal("truncated set too early")
	}
	if err := b.WriteUint64(0xFFFFFFFFFFFFFFFF); err != nil {
		t.Fatal(err)
	}
	if !b.HasTruncated() {
		t.Fatal("expected truncated after a 64-bit write with only 63 bits free")
	}
	// the offending write must not have partially committed: only the
	// single earlier bool bit should be set in segment 0.
	if b.segs[0] != 1 {
		t.Fatalf("segs[0] = %#x, want 1 (only the bool bit)", b.segs[0])
	}
}

// Invariant 8: truncation stickiness — a later successful-looking write
// does not clear it.
func TestTruncationIsSticky(t *testing.T) {
	b := Alloc(1, nil)
	b.WriteBool(true)
	b.WriteUint64(1)  // overflow: only 63 bits are free after the bool
	b.WriteBool(true) // fits in the 63 free bits
	if !b.HasTruncated() {
		t.Fatal("expected truncated to stay set after a later write that fits")
	}
	b.ClearTruncated()
	if b.HasTruncated() {
		t.Fatal("ClearTruncated should clear the flag")
	}
}

func TestFreeAssertsOnTruncated(t *testing.T) {
	b := Alloc(1, nil)
	b.WriteUint64(1)
	b.WriteBool(true) // overflow
	defer func() {
		if recover() == nil {
			t.Fatal("expected Free to assert on a truncated buffer")
		}
	}()
	b.Free()
}

func TestFreeSucceedsAfterClear(t *testing.T) {
	b := Alloc(1, nil)
	b.WriteUint64(1)
	b.WriteBool(true)
	b.ClearTruncated()
	b.Free() // must not panic
}

func TestWriteAfterFreezeIsRejected(t *testing.T) {
	b := Alloc(16, nil)
	b.CursorInit()
	if err := b.WriteBool(true); err != ErrFrozen {
		t.Fatalf("WriteBool after freeze = %v, want ErrFrozen", err)
	}
}
