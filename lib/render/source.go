//
// source.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package render draws text mode display contents as plain text, ANSI
// terminal output, PNG images and tcell screens.
package render

import (
	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/espress-os/lib/emulator"
	"github.com/markkurossi/vt100"
)

// Cell is a display cell resolved to a rune and palette colors.
type Cell struct {
	Rune       rune
	Foreground vga.Color
	Background vga.Color
}

// Source provides the cells to render.
type Source interface {
	Size() vt100.Point
	Cell(row, col int) Cell
}

// FrameSource renders a framebuffer frame.
func FrameSource(f *vga.Frame) Source {
	return frameSource{f}
}

type frameSource struct {
	f *vga.Frame
}

func (s frameSource) Size() vt100.Point {
	return vt100.Point{
		X: vga.Width,
		Y: vga.Height,
	}
}

func (s frameSource) Cell(row, col int) Cell {
	ch := s.f.At(row, col)
	return Cell{
		Rune:       ch.Rune(),
		Foreground: ch.Attr.Foreground(),
		Background: ch.Attr.Background(),
	}
}

// EmulatorSource renders the display of an emulator. Colors outside
// the palette wrap to their low nibble.
func EmulatorSource(e *emulator.Emulator) Source {
	return emulatorSource{e.Display()}
}

type emulatorSource struct {
	d *emulator.Display
}

func (s emulatorSource) Size() vt100.Point {
	return s.d.Size()
}

func (s emulatorSource) Cell(row, col int) Cell {
	ch := s.d.Get(row, col)
	return Cell{
		Rune:       ch.Code,
		Foreground: vga.Color(ch.Foreground & 0xf),
		Background: vga.Color(ch.Background & 0xf),
	}
}
