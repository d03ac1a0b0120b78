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

// Config bundles the collaborators kept external to the core engine:
// the allocator pair backing owning buffers, the assertion hook fired
// at programming-error contract boundaries (write_n_bits value wider
// than its field, quantized-float value out of range,
// free-while-truncated), and whether Buffer.Fingerprint/ContentHash may
// be called. A write after freeze does not fire the hook: it returns
// ErrFrozen.
//
// A nil Config passed to Alloc/AllocWithCopy/Wrap is equivalent to
// DefaultConfig.
type Config struct {
	// Alloc returns a zero-filled byte slice of exactly n bytes, n
	// always a multiple of 8. Defaults to make([]byte, n).
	Alloc func(n int) []byte
	// Free releases a slice previously returned by Alloc. Defaults to
	// a no-op (the Go garbage collector owns the memory).
	Free func([]byte)
	// Assert is invoked at a programming-error contract boundary with
	// ok=false and a human-readable message. The default panics; a
	// caller may install a softer hook (e.g. log-and-continue) to match
	// their own assertion conventions.
	Assert func(ok bool, msg string)
	// Digest enables Buffer.Fingerprint/ContentHash bookkeeping on
	// frozen buffers. Disabled by default: computing either digest
	// walks the whole snapshot once, which non-debugging callers
	// should not pay for.
	Digest bool
}

// DefaultConfig is used by Alloc/AllocWithCopy/Wrap when no Config is
// supplied.
var DefaultConfig = Config{
	Alloc:  func(n int) []byte { return make([]byte, n) },
	Free:   func([]byte) {},
	Assert: defaultAssert,
}

func defaultAssert(ok bool, msg string) {
	if !ok {
		panic("bitbuf: " + msg)
	}
}

func (c *Config) fill() Config {
	if c == nil {
		return DefaultConfig
	}
	out := *c
	if out.Alloc == nil {
		out.Alloc = DefaultConfig.Alloc
	}
	if out.Free == nil {
		out.Free = DefaultConfig.Free
	}
	if out.Assert == nil {
		out.Assert = DefaultConfig.Assert
	}
	return out
}
