//
// writer.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"io"
)

// FallbackGlyph is written in place of bytes outside the printable
// ASCII range. It is the filled square of code page 437.
const FallbackGlyph = 0xfe

var (
	_ io.Writer       = &Writer{}
	_ io.ByteWriter   = &Writer{}
	_ io.StringWriter = &Writer{}
)

// Writer writes text to the bottom row of a text buffer. Each newline
// and each line wrap scrolls the buffer contents up by one row. The
// writer never fails: all write methods return a nil error.
//
// Strings are rendered byte by byte. Bytes outside the printable
// ASCII range 0x20-0x7e, other than newline, are replaced with
// FallbackGlyph. A multi-byte UTF-8 sequence therefore renders as one
// fallback glyph per byte.
type Writer struct {
	column int
	color  ColorCode
	buffer *TextBuffer
}

// NewWriter creates a new writer for the text buffer.
func NewWriter(buffer *TextBuffer, color ColorCode) *Writer {
	return &Writer{
		color:  color,
		buffer: buffer,
	}
}

// Buffer returns the text buffer of the writer.
func (w *Writer) Buffer() *TextBuffer {
	return w.buffer
}

// Column returns the column where the next byte is written. The
// value equals Width after a full line until the next byte wraps.
func (w *Writer) Column() int {
	return w.column
}

// Color returns the current color of the writer.
func (w *Writer) Color() ColorCode {
	return w.color
}

// SetColor sets the color for subsequent writes.
func (w *Writer) SetColor(color ColorCode) {
	w.color = color
}

// WriteByte writes the byte to the bottom row. The byte is stored as
// is; use WriteString or Write for filtered output.
func (w *Writer) WriteByte(b byte) error {
	switch b {
	case '\n':
		w.newLine()

	default:
		if w.column >= Width {
			w.newLine()
		}
		w.buffer.Set(Height-1, w.column, ScreenChar{
			Code: b,
			Attr: w.color,
		})
		w.column++
	}
	return nil
}

func (w *Writer) newLine() {
	ScrollUp[ScreenChar](w.buffer, Blank(w.color))
	w.column = 0
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(printable(s[i]))
	}
	return len(s), nil
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.WriteByte(printable(b))
	}
	return len(p), nil
}

func printable(b byte) byte {
	if b == '\n' || (0x20 <= b && b <= 0x7e) {
		return b
	}
	return FallbackGlyph
}
