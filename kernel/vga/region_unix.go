//
// region_unix.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build unix

package vga

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MapFile maps the framebuffer file into memory. The file is created
// and sized to RegionSize if needed. The mapping is shared so other
// processes reading the file observe the framebuffer contents.
func MapFile(path string) (*Region, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < RegionSize {
		if err := f.Truncate(RegionSize); err != nil {
			return nil, fmt.Errorf("failed to size framebuffer '%s': %w",
				path, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, RegionSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map framebuffer '%s': %w",
			path, err)
	}

	return &Region{
		base: unsafe.Pointer(&data[0]),
		size: len(data),
		keep: data,
		release: func() error {
			return unix.Munmap(data)
		},
	}, nil
}
