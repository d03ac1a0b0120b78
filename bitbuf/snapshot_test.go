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
	"bytes"
	"testing"
)

func buildSample(t *testing.T, cfg *Config) *Buffer {
	t.Helper()
	b := Alloc(64, cfg)
	b.WriteUint32(0xCAFEBABE)
	b.WriteCString("a sample buffer for snapshotting")
	b.WriteNBits(9, 301)
	return b
}

func TestCompressedSnapshotRoundTrip(t *testing.T) {
	b := buildSample(t, nil)
	raw, used := b.Bytes()
	original := append([]byte(nil), raw[:used]...)

	b.CursorInit()
	compressed, usedOut := b.CompressedSnapshot()
	if usedOut != used {
		t.Fatalf("CompressedSnapshot used = %d, want %d", usedOut, used)
	}

	restored, err := Decompress(compressed, usedOut, nil)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	restoredRaw, restoredUsed := restored.Bytes()
	if restoredUsed != used {
		t.Fatalf("restored used = %d, want %d", restoredUsed, used)
	}
	if !bytes.Equal(restoredRaw[:restoredUsed], original) {
		t.Fatal("restored bytes do not match the original snapshot")
	}
}

func TestDecompressRejectsLengthMismatch(t *testing.T) {
	b := buildSample(t, nil)
	b.CursorInit()
	compressed, used := b.CompressedSnapshot()
	if _, err := Decompress(compressed, used+1, nil); err == nil {
		t.Fatal("expected an error when the declared length does not match the decompressed length")
	}
}

func TestFingerprintRequiresDigestConfig(t *testing.T) {
	b := buildSample(t, nil)
	b.CursorInit()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Fingerprint to assert when Config.Digest is not set")
		}
	}()
	b.Fingerprint()
}

func TestFingerprintDeterministicAndSensitiveToContent(t *testing.T) {
	cfg := &Config{Digest: true}
	b1 := buildSample(t, cfg)
	b1.CursorInit()
	fp1 := b1.Fingerprint()

	b2 := buildSample(t, cfg)
	b2.CursorInit()
	fp2 := b2.Fingerprint()
	if fp1 != fp2 {
		t.Fatal("Fingerprint of identical content should be equal")
	}

	b3 := Alloc(64, cfg)
	b3.WriteUint32(0xCAFEBABF) // one bit different
	b3.WriteCString("a sample buffer for snapshotting")
	b3.WriteNBits(9, 301)
	b3.CursorInit()
	fp3 := b3.Fingerprint()
	if fp1 == fp3 {
		t.Fatal("Fingerprint should differ when content differs")
	}
}

func TestContentHashDeterministicAndSensitiveToContent(t *testing.T) {
	cfg := &Config{Digest: true}
	b1 := buildSample(t, cfg)
	b1.CursorInit()
	h1 := b1.ContentHash()

	b2 := buildSample(t, cfg)
	b2.CursorInit()
	h2 := b2.ContentHash()
	if h1 != h2 {
		t.Fatal("ContentHash of identical content should be equal")
	}

	b3 := Alloc(64, cfg)
	b3.WriteNBits(9, 302)
	b3.CursorInit()
	h3 := b3.ContentHash()
	if h1 == h3 {
		t.Fatal("ContentHash should differ when content differs")
	}
}
