//
// grid_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"testing"

	"github.com/markkurossi/vt100"
)

type sliceGrid struct {
	width, height int
	cells         []ScreenChar
}

func newSliceGrid(width, height int) *sliceGrid {
	return &sliceGrid{
		width:  width,
		height: height,
		cells:  make([]ScreenChar, width*height),
	}
}

func (g *sliceGrid) Size() vt100.Point {
	return vt100.Point{X: g.width, Y: g.height}
}

func (g *sliceGrid) Get(row, col int) ScreenChar {
	return g.cells[row*g.width+col]
}

func (g *sliceGrid) Set(row, col int, ch ScreenChar) {
	g.cells[row*g.width+col] = ch
}

func fill[C any](g Grid[C], f func(row, col int) C) {
	size := g.Size()
	for row := 0; row < size.Y; row++ {
		for col := 0; col < size.X; col++ {
			g.Set(row, col, f(row, col))
		}
	}
}

func testGrids(t *testing.T) map[string]Grid[ScreenChar] {
	buffer, err := NewTextBuffer(NewMemRegion())
	if err != nil {
		t.Fatalf("NewTextBuffer failed: %s", err)
	}
	t.Cleanup(buffer.Release)

	return map[string]Grid[ScreenChar]{
		"TextBuffer": buffer,
		"slice":      newSliceGrid(Width, Height),
	}
}

func TestScrollUp(t *testing.T) {
	blank := Blank(testColor)

	for name, g := range testGrids(t) {
		fill(g, func(row, col int) ScreenChar {
			return ScreenChar{
				Code: byte('A' + row),
				Attr: ColorCode(col),
			}
		})
		ScrollUp(g, blank)

		size := g.Size()
		for row := 0; row < size.Y-1; row++ {
			for col := 0; col < size.X; col++ {
				ch := g.Get(row, col)
				if ch.Code != byte('A'+row+1) || ch.Attr != ColorCode(col) {
					t.Fatalf("%s: cell (%d,%d)=%s after scroll",
						name, row, col, ch)
				}
			}
		}
		for col := 0; col < size.X; col++ {
			if ch := g.Get(size.Y-1, col); ch != blank {
				t.Fatalf("%s: bottom cell %d=%s, expected blank",
					name, col, ch)
			}
		}
	}
}

func TestScrollBlank(t *testing.T) {
	blank := Blank(testColor)

	for name, g := range testGrids(t) {
		fill(g, func(row, col int) ScreenChar {
			return blank
		})
		ScrollUp(g, blank)

		size := g.Size()
		for row := 0; row < size.Y; row++ {
			for col := 0; col < size.X; col++ {
				if ch := g.Get(row, col); ch != blank {
					t.Fatalf("%s: cell (%d,%d)=%s, expected blank",
						name, row, col, ch)
				}
			}
		}
	}
}

func TestScrollSingleRow(t *testing.T) {
	g := newSliceGrid(4, 1)
	fill[ScreenChar](g, func(row, col int) ScreenChar {
		return ScreenChar{Code: 'x'}
	})
	ScrollUp[ScreenChar](g, Blank(testColor))

	for col := 0; col < 4; col++ {
		if ch := g.Get(0, col); ch != Blank(testColor) {
			t.Errorf("cell %d=%s, expected blank", col, ch)
		}
	}
}
