//
// region_baremetal.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build baremetal

package vga

import (
	"unsafe"
)

// PhysAddr is the physical address of the text mode framebuffer.
const PhysAddr uintptr = 0xb8000

// PhysRegion returns the framebuffer region at PhysAddr. The kernel
// runs with identity mapped low memory so the physical address is
// directly accessible.
func PhysRegion() *Region {
	fb := unsafe.Slice((*ScreenChar)(unsafe.Pointer(PhysAddr)), Width*Height)
	return &Region{
		base: unsafe.Pointer(&fb[0]),
		size: RegionSize,
	}
}

func init() {
	OpenRegion = func() (*Region, error) {
		return PhysRegion(), nil
	}
}
