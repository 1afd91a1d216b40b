//
// emulator.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

// Package emulator implements the text mode display for hosted
// environments such as the browser. Unlike the hardware writer, the
// emulator tracks both the cursor column and row, takes the colors
// with each write, and silently drops characters outside the
// printable ASCII range instead of rendering a fallback glyph.
package emulator

import (
	"fmt"
	"strings"

	"github.com/markkurossi/espress-os/lib/log"
	"github.com/markkurossi/vt100"
)

// Emulator writes text to an in-memory display.
type Emulator struct {
	col     int
	row     int
	display *Display
}

// NewEmulator creates a new emulator with a blank display of the
// argument size.
func NewEmulator(width, height int) *Emulator {
	log.Printf("Initializing VGA Emulator %dx%d", width, height)
	return &Emulator{
		display: NewDisplay(width, height),
	}
}

func (e *Emulator) String() string {
	return fmt.Sprintf("Emulator (%dx%d)", e.display.size.X, e.display.size.Y)
}

// Display returns the emulator display.
func (e *Emulator) Display() *Display {
	return e.display
}

// Size returns the display size.
func (e *Emulator) Size() vt100.Point {
	return e.display.size
}

// Cursor returns the cursor position.
func (e *Emulator) Cursor() vt100.Point {
	return vt100.Point{
		X: e.col,
		Y: e.row,
	}
}

// WriteString writes the string with the colors. Newlines move the
// cursor to the beginning of the next line and other characters
// outside the printable ASCII range are skipped.
func (e *Emulator) WriteString(s string, fg, bg uint8) {
	for _, ch := range s {
		if ch == '\n' {
			e.NewLine()
		} else if ch >= 32 && ch < 127 {
			e.WriteChar(ch, fg, bg)
		}
	}
}

// WriteChar writes the character at the cursor position and advances
// the cursor. If the cursor is past the end of the line, the character
// is written to the beginning of the next line.
func (e *Emulator) WriteChar(ch rune, fg, bg uint8) {
	if e.display.size.X == 0 {
		return
	}
	if e.col >= e.display.size.X {
		e.NewLine()
	}
	if e.row < e.display.size.Y {
		e.display.Set(e.row, e.col, Char{
			Code:       ch,
			Foreground: fg,
			Background: bg,
		})
		e.col++
	}
}

// NewLine moves the cursor to the beginning of the next line,
// scrolling the display if the cursor is on the last line.
func (e *Emulator) NewLine() {
	e.col = 0
	e.row++
	if e.row >= e.display.size.Y {
		e.display.ScrollUp()
		e.row = e.display.size.Y - 1
		if e.row < 0 {
			e.row = 0
		}
	}
}

// Clear blanks the display and moves the cursor to the top-left
// corner.
func (e *Emulator) Clear() {
	e.display.Clear()
	e.col = 0
	e.row = 0
}

// BufferString returns the display contents. Each line is terminated
// with a newline.
func (e *Emulator) BufferString() string {
	var sb strings.Builder
	for row := 0; row < e.display.size.Y; row++ {
		for _, ch := range e.display.Line(row) {
			sb.WriteRune(ch.Code)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Cell returns the cell at column x, row y. The boolean result is
// false if the position is outside the display.
func (e *Emulator) Cell(x, y int) (Char, bool) {
	if x < 0 || x >= e.display.size.X || y < 0 || y >= e.display.size.Y {
		return blank, false
	}
	return e.display.Get(y, x), true
}

// CharAt returns the cell at column x, row y encoded as
// "<char>:<fg>:<bg>". Positions outside the display return the blank
// cell " :15:0".
func (e *Emulator) CharAt(x, y int) string {
	ch, _ := e.Cell(x, y)
	return ch.String()
}

// CursorPosition returns the cursor position encoded as "<col>:<row>".
func (e *Emulator) CursorPosition() string {
	return fmt.Sprintf("%d:%d", e.col, e.row)
}
