//
// display.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

package emulator

import (
	"fmt"

	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/vt100"
)

var (
	_ vga.Grid[Char] = &Display{}

	blank = Char{
		Code:       ' ',
		Foreground: uint8(vga.White),
		Background: uint8(vga.Black),
	}
)

// Char is one display cell. The colors are palette indices as given
// by the writer; they are stored as is.
type Char struct {
	Code       rune
	Foreground uint8
	Background uint8
}

func (ch Char) String() string {
	return fmt.Sprintf("%c:%d:%d", ch.Code, ch.Foreground, ch.Background)
}

// Display is an in-memory cell grid. Its size is fixed when it is
// created.
type Display struct {
	size  vt100.Point
	lines [][]Char
}

// NewDisplay creates a blank display. Negative dimensions are treated
// as zero.
func NewDisplay(width, height int) *Display {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	d := &Display{
		size: vt100.Point{
			X: width,
			Y: height,
		},
		lines: make([][]Char, height),
	}
	for i := 0; i < height; i++ {
		d.lines[i] = make([]Char, width)
	}
	d.Clear()

	return d
}

// Size implements vga.Grid.Size.
func (d *Display) Size() vt100.Point {
	return d.size
}

// Get implements vga.Grid.Get.
func (d *Display) Get(row, col int) Char {
	return d.lines[row][col]
}

// Set implements vga.Grid.Set.
func (d *Display) Set(row, col int, ch Char) {
	d.lines[row][col] = ch
}

// Line returns a copy of the cells of the row. Rows outside the
// display return nil.
func (d *Display) Line(row int) []Char {
	if row < 0 || row >= d.size.Y {
		return nil
	}
	line := make([]Char, len(d.lines[row]))
	copy(line, d.lines[row])
	return line
}

// ClearLine blanks the line. Lines outside the display are ignored.
func (d *Display) ClearLine(line int) {
	if line < 0 || line >= d.size.Y {
		return
	}
	vga.ClearRow[Char](d, line, blank)
}

// Clear blanks the whole display.
func (d *Display) Clear() {
	for i := 0; i < d.size.Y; i++ {
		d.ClearLine(i)
	}
}

// ScrollUp scrolls the display contents up by one line.
func (d *Display) ScrollUp() {
	if d.size.Y == 0 {
		return
	}
	vga.ScrollUp[Char](d, blank)
}
