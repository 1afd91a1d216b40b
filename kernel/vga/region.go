//
// region.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// Display dimensions of the text mode framebuffer.
const (
	Width  = 80
	Height = 25

	// RegionSize is the size of the framebuffer in bytes.
	RegionSize = Width * Height * CellSize
)

var (
	// ErrRegionClaimed is returned when a framebuffer region is
	// claimed while another TextBuffer owns it.
	ErrRegionClaimed = errors.New("framebuffer region already claimed")

	// ErrRegionSize is returned when a region is smaller than the
	// framebuffer.
	ErrRegionSize = errors.New("framebuffer region too small")
)

// Region is a fixed block of memory holding the framebuffer
// cells. Writes to the region may have side effects outside the
// program, so all accesses go through the mmio accessors.
type Region struct {
	base    unsafe.Pointer
	size    int
	keep    interface{}
	release func() error
}

// Addr returns the base address of the region.
func (r *Region) Addr() uintptr {
	return uintptr(r.base)
}

// Size returns the region size in bytes.
func (r *Region) Size() int {
	return r.size
}

func (r *Region) String() string {
	return fmt.Sprintf("Region 0x%x (%d bytes)", r.Addr(), r.size)
}

// Close releases the memory backing the region.
func (r *Region) Close() error {
	if r.release == nil {
		return nil
	}
	err := r.release()
	r.release = nil
	return err
}

// NewMemRegion allocates a framebuffer region from the heap. It is
// used when no display hardware or shared mapping is available.
func NewMemRegion() *Region {
	cells := make([]ScreenChar, Width*Height)
	return &Region{
		base: unsafe.Pointer(&cells[0]),
		size: len(cells) * CellSize,
		keep: cells,
	}
}

var (
	claimMutex sync.Mutex
	claimed    = make(map[uintptr]bool)
)

func claim(r *Region) error {
	if r.size < RegionSize {
		return fmt.Errorf("%s: %w", r, ErrRegionSize)
	}

	claimMutex.Lock()
	defer claimMutex.Unlock()

	if claimed[r.Addr()] {
		return fmt.Errorf("%s: %w", r, ErrRegionClaimed)
	}
	claimed[r.Addr()] = true
	return nil
}

func unclaim(r *Region) {
	claimMutex.Lock()
	delete(claimed, r.Addr())
	claimMutex.Unlock()
}
