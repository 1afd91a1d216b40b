//
// frame.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"fmt"
	"strings"
)

// Frame is a copy of the framebuffer contents. Frames are decoded
// from the framebuffer wire format: Height rows of Width cells, two
// bytes per cell (character, attribute), row-major, no padding.
type Frame struct {
	Cells [Height][Width]ScreenChar
}

// DecodeFrame decodes a frame from the framebuffer bytes.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < RegionSize {
		return nil, fmt.Errorf("frame: %d bytes, expected %d: %w",
			len(data), RegionSize, ErrRegionSize)
	}
	f := new(Frame)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			ofs := (row*Width + col) * CellSize
			f.Cells[row][col] = ScreenChar{
				Code: data[ofs],
				Attr: ColorCode(data[ofs+1]),
			}
		}
	}
	return f, nil
}

// Snapshot copies the current contents of the text buffer.
func Snapshot(b *TextBuffer) *Frame {
	f := new(Frame)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			f.Cells[row][col] = b.Get(row, col)
		}
	}
	return f
}

// Bytes encodes the frame in the framebuffer wire format.
func (f *Frame) Bytes() []byte {
	data := make([]byte, RegionSize)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			ofs := (row*Width + col) * CellSize
			data[ofs] = f.Cells[row][col].Code
			data[ofs+1] = byte(f.Cells[row][col].Attr)
		}
	}
	return data
}

// At returns the cell at the position.
func (f *Frame) At(row, col int) ScreenChar {
	return f.Cells[row][col]
}

// Lines returns the frame rows as text, one rune per cell.
func (f *Frame) Lines() []string {
	lines := make([]string, Height)
	for row := 0; row < Height; row++ {
		var sb strings.Builder
		for col := 0; col < Width; col++ {
			sb.WriteRune(f.Cells[row][col].Rune())
		}
		lines[row] = sb.String()
	}
	return lines
}

// Text returns the frame contents as text, each row terminated with
// a newline.
func (f *Frame) Text() string {
	var sb strings.Builder
	for _, line := range f.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
