//
// grid.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"github.com/markkurossi/vt100"
)

// Grid is a fixed size two dimensional array of display cells. The
// size never changes after the grid is created. Row and column indices
// must be within the grid; callers clamp their cursors before
// accessing cells.
type Grid[C any] interface {
	// Size returns the grid width (X) and height (Y) in cells.
	Size() vt100.Point
	Get(row, col int) C
	Set(row, col int, ch C)
}

// ScrollUp shifts the grid contents up by one row and fills the
// exposed bottom row with blank. The topmost row is discarded. Rows
// are copied in increasing order so every cell is read before it is
// overwritten.
func ScrollUp[C any](g Grid[C], blank C) {
	size := g.Size()

	for row := 1; row < size.Y; row++ {
		for col := 0; col < size.X; col++ {
			g.Set(row-1, col, g.Get(row, col))
		}
	}
	ClearRow(g, size.Y-1, blank)
}

// ClearRow fills the row with blank.
func ClearRow[C any](g Grid[C], row int, blank C) {
	size := g.Size()
	for col := 0; col < size.X; col++ {
		g.Set(row, col, blank)
	}
}
