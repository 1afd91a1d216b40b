//
// screen.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/markkurossi/espress-os/kernel/vga"
)

func tcellColor(c vga.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Draw draws the source to the top-left corner of the screen. Cells
// outside the screen are clipped. The caller shows the screen.
func Draw(screen tcell.Screen, src Source) {
	width, height := screen.Size()
	size := src.Size()

	for row := 0; row < size.Y && row < height; row++ {
		for col := 0; col < size.X && col < width; col++ {
			cell := src.Cell(row, col)
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.Foreground)).
				Background(tcellColor(cell.Background))
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
}
