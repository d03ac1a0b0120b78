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
	"fmt"
	"runtime"

	"github.com/klauspost/compress/zstd"

	"github.com/arrowmark/lutcodec/internal/digest"
)

var (
	zstdDecoder *zstd.Decoder
)

func init() {
	d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	zstdDecoder = d
}

// CompressedSnapshot zstd-compresses a frozen buffer's used bytes. This
// is storage/transport sugar layered over the core bit-packing engine,
// which never compresses anything internally; it is the wire format
// equivalent of calling Bytes() and handing the result to any archiver.
// The second return value is the used byte count to pass to Decompress.
func (b *Buffer) CompressedSnapshot() ([]byte, int) {
	b.cfg.Assert(b.frozen, "CompressedSnapshot requires a frozen buffer")
	raw, used := b.Bytes()
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		b.cfg.Assert(false, fmt.Sprintf("zstd writer: %v", err))
		return nil, 0
	}
	defer enc.Close()
	return enc.EncodeAll(raw[:used], nil), used
}

// Decompress reverses CompressedSnapshot into a fresh owning Buffer
// whose write cursor sits just past the recovered bytes, ready for
// CursorInit or further writes.
func Decompress(compressed []byte, usedBytes int, cfg *Config) (*Buffer, error) {
	dst := make([]byte, 0, usedBytes)
	raw, err := zstdDecoder.DecodeAll(compressed, dst)
	if err != nil {
		return nil, fmt.Errorf("bitbuf: decompress snapshot: %w", err)
	}
	if len(raw) != usedBytes {
		return nil, fmt.Errorf("bitbuf: decompress snapshot: expected %d bytes, got %d", usedBytes, len(raw))
	}
	return AllocWithCopy(raw, cfg), nil
}

// Fingerprint returns a process-local siphash-128 digest of a frozen
// buffer's used bytes. Requires Config.Digest to have been set when the
// buffer was allocated.
func (b *Buffer) Fingerprint() digest.Fingerprint {
	b.cfg.Assert(b.frozen, "Fingerprint requires a frozen buffer")
	b.cfg.Assert(b.cfg.Digest, "Fingerprint requires Config.Digest")
	raw, used := b.Bytes()
	return digest.Sum(raw[:used])
}

// ContentHash returns a blake2b-256 digest of a frozen buffer's used
// bytes, stable across processes, suitable for content-addressed
// caching of snapshots. Requires Config.Digest to have been set when
// the buffer was allocated.
func (b *Buffer) ContentHash() digest.ContentHash {
	b.cfg.Assert(b.frozen, "ContentHash requires a frozen buffer")
	b.cfg.Assert(b.cfg.Digest, "ContentHash requires Config.Digest")
	raw, used := b.Bytes()
	return digest.SumContentHash(raw[:used])
}
