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

// Command lutcodec is a small front-end exercising the b89 and bitbuf
// packages: scan stdin for B89 codes, pack/unpack a single index, or run
// a bitbuf write/read demo.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arrowmark/lutcodec/b89"
	"github.com/arrowmark/lutcodec/bitbuf"
)

var (
	dashMax         int
	dashFingerprint bool
)

func init() {
	flag.IntVar(&dashMax, "max", b89.MaxIndex, "maximum decodable B89 index")
	flag.BoolVar(&dashFingerprint, "fingerprint", false, "print the TEXT-span fingerprint at EOF (scan only)")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	switch args[0] {
	case "scan":
		scan()
	case "pack":
		if len(args) != 2 {
			exitf("usage: lutcodec pack <index>")
		}
		pack(args[1])
	case "unpack":
		unpack()
	case "bits":
		bitsDemo()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s [-max N] [-fingerprint] scan   tokenize stdin as B89\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "    %s pack <index>                   print the 4-byte code for index\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "    %s [-max N] unpack                decode 4 bytes read from stdin\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "    %s bits                            bitbuf write/read demo\n", os.Args[0])
}

func scan() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitf("reading stdin: %v", err)
	}
	it := b89.NewIterator(data, dashMax)
	if dashFingerprint {
		it.EnableTextFingerprint()
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for {
		ev, ok := it.Next()
		if !ok {
			break
		}
		switch ev.Kind {
		case b89.Text:
			fmt.Fprintf(w, "TEXT %q\n", ev.Text)
		case b89.Code:
			fmt.Fprintf(w, "CODE %d\n", ev.Index)
		}
	}
	if dashFingerprint {
		fp := it.TextFingerprint()
		fmt.Fprintf(w, "fingerprint %016x%016x\n", fp[0], fp[1])
	}
}

func pack(arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		exitf("invalid index %q: %v", arg, err)
	}
	var out [4]byte
	b89.Pack(idx, out[:])
	os.Stdout.Write(out[:])
}

func unpack() {
	var code [4]byte
	if _, err := io.ReadFull(os.Stdin, code[:]); err != nil {
		exitf("reading 4-byte code from stdin: %v", err)
	}
	fmt.Println(b89.Unpack(code, dashMax))
}

// bitsDemo writes a small fixed record, freezes the buffer, reads it
// back, and prints what it decoded plus the buffer's content hash. It
// exists to document the typed write/read surface by example.
func bitsDemo() {
	cfg := bitbuf.DefaultConfig
	cfg.Digest = true
	buf := bitbuf.Alloc(64, &cfg)
	buf.WriteBool(true)
	buf.PadToByte()
	buf.WriteInt64(-32)
	buf.WriteCString("hello, world")
	buf.WriteFloat32(-325.32)
	buf.WriteNBits(4, 13)
	buf.PadToByte()
	buf.WriteNBits(7, 121)

	cur := buf.CursorInit()
	fmt.Printf("bool: %v\n", cur.ReadBool())
	cur.SkipBytePadding()
	fmt.Printf("int64: %d\n", cur.ReadInt64())
	fmt.Printf("cstr: %q\n", cur.ReadCString(64))
	fmt.Printf("float32: %v\n", cur.ReadFloat32())
	var m uint64
	fmt.Printf("4 bits: %d (mask %x)\n", cur.ReadNBits(4, &m), m)
	cur.SkipBytePadding()
	fmt.Printf("7 bits: %d\n", cur.ReadNBits(7, nil))
	fmt.Printf("content hash: %x\n", buf.ContentHash())
}
