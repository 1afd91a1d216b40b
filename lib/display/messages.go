//
// messages.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

// Package display defines the messages the display harness sends to
// its viewers.
package display

import (
	"encoding/hex"
	"fmt"

	"github.com/markkurossi/espress-os/kernel/vga"
)

// Frame is one framebuffer frame. Lines holds the displayed text of
// each row and Attrs the hex encoded attribute bytes of each row.
type Frame struct {
	Seq    uint64   `json:"seq"`
	Digest string   `json:"digest"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Lines  []string `json:"lines"`
	Attrs  []string `json:"attrs"`
}

// Status reports an error to the viewer.
type Status struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewFrame creates a frame message from the framebuffer frame.
func NewFrame(seq uint64, digest []byte, f *vga.Frame) *Frame {
	msg := &Frame{
		Seq:    seq,
		Digest: hex.EncodeToString(digest),
		Width:  vga.Width,
		Height: vga.Height,
		Lines:  f.Lines(),
		Attrs:  make([]string, vga.Height),
	}
	var attrs [vga.Width]byte
	for row := 0; row < vga.Height; row++ {
		for col := 0; col < vga.Width; col++ {
			attrs[col] = byte(f.At(row, col).Attr)
		}
		msg.Attrs[row] = hex.EncodeToString(attrs[:])
	}
	return msg
}

// Attr returns the attribute of the cell.
func (f *Frame) Attr(row, col int) (vga.ColorCode, error) {
	if row < 0 || row >= len(f.Attrs) || col < 0 || 2*col+2 > len(f.Attrs[row]) {
		return 0, fmt.Errorf("cell (%d,%d) outside frame", row, col)
	}
	b, err := hex.DecodeString(f.Attrs[row][2*col : 2*col+2])
	if err != nil {
		return 0, err
	}
	return vga.ColorCode(b[0]), nil
}
