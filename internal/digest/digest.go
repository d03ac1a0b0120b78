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

// Package digest wraps the two hash functions shared by the b89 and
// bitbuf packages: a fast, process-local siphash fingerprint for
// in-memory equality checks, and a portable blake2b content hash for
// values that need to be compared or cached across processes.
package digest

import (
	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a 128-bit siphash digest of a byte span. It is cheap to
// compute and fold incrementally, but is only meaningful within a single
// process: it is not a cryptographic hash and carries no stability
// guarantee across Go versions or architectures.
type Fingerprint [2]uint64

// Sum computes the Fingerprint of data in one call.
func Sum(data []byte) Fingerprint {
	lo, hi := siphash.Hash128(0, 0, data)
	return Fingerprint{lo, hi}
}

// Fold extends a running Fingerprint with another span of bytes. Unlike a
// true incremental hash, this folds a fresh digest of the new span into
// the accumulator; it is sufficient for change detection, not for
// resuming a siphash computation mid-stream.
func (f Fingerprint) Fold(data []byte) Fingerprint {
	next := Sum(data)
	return Fingerprint{f[0] ^ next[0], f[1] ^ next[1]}
}

// ContentHash is a blake2b-256 digest, stable across processes and hosts,
// suitable for content-addressed caching.
type ContentHash [32]byte

// SumContentHash computes the ContentHash of data.
func SumContentHash(data []byte) ContentHash {
	return blake2b.Sum256(data)
}
