//
// mmio.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// The framebuffer is device memory: every access must reach memory in
// program order. The accessors are kept out of line so the compiler
// can not merge, reorder or drop them across call sites. Each cell is
// moved with one 16-bit access so the character and its attribute
// are never observed half written.

// Framebuffer words are little-endian: the character code is the
// first byte of the cell.
var bigEndian = binary.NativeEndian.Uint16([]byte{0, 1}) == 1

func toMemory(w uint16) uint16 {
	if bigEndian {
		return bits.ReverseBytes16(w)
	}
	return w
}

//go:noinline
func storeCell(base unsafe.Pointer, idx int, ch ScreenChar) {
	*(*uint16)(unsafe.Add(base, idx*CellSize)) = toMemory(ch.Word())
}

//go:noinline
func loadCell(base unsafe.Pointer, idx int) ScreenChar {
	return ScreenCharOf(toMemory(*(*uint16)(unsafe.Add(base, idx*CellSize))))
}
