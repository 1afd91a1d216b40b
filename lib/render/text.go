//
// text.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/vt100"
)

// VGA palette order differs from the ANSI color order.
var ansiColors = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// ansiColor returns the SGR color parameter for the palette color.
func ansiColor(c vga.Color, background bool) int {
	base := 30
	if c >= vga.DarkGray {
		base = 90
	}
	if background {
		base += 10
	}
	return base + ansiColors[c&0x7]
}

// Text renders the source as plain text. Each line is terminated
// with a newline.
func Text(out io.Writer, src Source) error {
	size := src.Size()
	var sb strings.Builder
	for row := 0; row < size.Y; row++ {
		sb.Reset()
		for col := 0; col < size.X; col++ {
			sb.WriteRune(src.Cell(row, col).Rune)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(out, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// ANSI renders the source as ANSI terminal output. The screen is
// erased and each line is positioned explicitly so the output can be
// redrawn in place.
func ANSI(out io.Writer, src Source) error {
	if err := vt100.EraseScreen(out); err != nil {
		return err
	}
	size := src.Size()
	var sb strings.Builder

	for row := 0; row < size.Y; row++ {
		if err := vt100.MoveTo(out, row+1, 1); err != nil {
			return err
		}
		sb.Reset()
		var fg, bg vga.Color = 0xff, 0xff
		for col := 0; col < size.X; col++ {
			cell := src.Cell(row, col)
			if cell.Foreground != fg || cell.Background != bg {
				fg, bg = cell.Foreground, cell.Background
				fmt.Fprintf(&sb, "\x1b[%d;%dm",
					ansiColor(fg, false), ansiColor(bg, true))
			}
			sb.WriteRune(cell.Rune)
		}
		sb.WriteString("\x1b[0m")
		if _, err := io.WriteString(out, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
