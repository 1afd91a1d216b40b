//
// buffer.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"fmt"

	"github.com/markkurossi/vt100"
)

var (
	_ Grid[ScreenChar] = &TextBuffer{}
)

// TextBuffer is the Width x Height cell grid stored in a framebuffer
// region. Only one TextBuffer may own a region at a time.
type TextBuffer struct {
	region *Region
}

// NewTextBuffer claims the region and creates a text buffer over
// it. The function fails if the region is too small or if it is
// already owned by another text buffer.
func NewTextBuffer(region *Region) (*TextBuffer, error) {
	if err := claim(region); err != nil {
		return nil, err
	}
	return &TextBuffer{
		region: region,
	}, nil
}

func (b *TextBuffer) String() string {
	return fmt.Sprintf("TextBuffer (%dx%d) at 0x%x",
		Width, Height, b.region.Addr())
}

// Region returns the framebuffer region of the buffer.
func (b *TextBuffer) Region() *Region {
	return b.region
}

// Size implements Grid.Size.
func (b *TextBuffer) Size() vt100.Point {
	return vt100.Point{
		X: Width,
		Y: Height,
	}
}

// Get implements Grid.Get.
func (b *TextBuffer) Get(row, col int) ScreenChar {
	return loadCell(b.region.base, index(row, col))
}

// Set implements Grid.Set.
func (b *TextBuffer) Set(row, col int, ch ScreenChar) {
	storeCell(b.region.base, index(row, col), ch)
}

// Release gives up the ownership of the region. The buffer must not
// be used after it is released.
func (b *TextBuffer) Release() {
	unclaim(b.region)
}

func index(row, col int) int {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d buffer",
			row, col, Width, Height))
	}
	return row*Width + col
}
