//
// image.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell dimensions of the screenshot font.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Screenshot renders the source into an image using the 7x13 fixed
// font.
func Screenshot(src Source) *image.RGBA {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	size := src.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.X*CellWidth, size.Y*CellHeight))

	for row := 0; row < size.Y; row++ {
		for col := 0; col < size.X; col++ {
			cell := src.Cell(row, col)
			x := col * CellWidth
			y := row * CellHeight
			rect := image.Rect(x, y, x+CellWidth, y+CellHeight)

			bg := image.NewUniform(cell.Background.RGBA())
			draw.Draw(img, rect, bg, image.Point{}, draw.Src)

			fg := image.NewUniform(cell.Foreground.RGBA())
			switch cell.Rune {
			case ' ', 0:

			case '■':
				box := image.Rect(x+1, y+3, x+CellWidth-1, y+CellHeight-3)
				draw.Draw(img, box, fg, image.Point{}, draw.Src)

			default:
				d := &font.Drawer{
					Dst:  img,
					Src:  fg,
					Face: face,
					Dot:  fixed.P(x, y+ascent),
				}
				d.DrawString(string(cell.Rune))
			}
		}
	}
	return img
}

// PNG writes the screenshot of the source as a PNG image.
func PNG(out io.Writer, src Source) error {
	return png.Encode(out, Screenshot(src))
}
