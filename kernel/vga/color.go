//
// color.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is one of the 16 entries of the VGA text mode palette.
type Color uint8

// Palette colors. Values 0-7 are the normal intensity colors and 8-15
// their high intensity variants.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = map[Color]string{
	Black:      "Black",
	Blue:       "Blue",
	Green:      "Green",
	Cyan:       "Cyan",
	Red:        "Red",
	Magenta:    "Magenta",
	Brown:      "Brown",
	LightGray:  "LightGray",
	DarkGray:   "DarkGray",
	LightBlue:  "LightBlue",
	LightGreen: "LightGreen",
	LightCyan:  "LightCyan",
	LightRed:   "LightRed",
	Pink:       "Pink",
	Yellow:     "Yellow",
	White:      "White",
}

func (c Color) String() string {
	name, ok := colorNames[c]
	if ok {
		return name
	}
	return fmt.Sprintf("{Color %d}", c)
}

// ParseColor returns the palette color with the argument name. The name
// is matched case-insensitively.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color '%s'", name)
}

// Palette holds the RGB values of the text mode colors, indexed by
// Color.
var Palette = color.Palette{
	color.RGBA{R: 0, G: 0, B: 0, A: 255},       /* black */
	color.RGBA{R: 0, G: 0, B: 170, A: 255},     /* blue */
	color.RGBA{R: 0, G: 170, B: 0, A: 255},     /* green */
	color.RGBA{R: 0, G: 170, B: 170, A: 255},   /* cyan */
	color.RGBA{R: 170, G: 0, B: 0, A: 255},     /* red */
	color.RGBA{R: 170, G: 0, B: 170, A: 255},   /* magenta */
	color.RGBA{R: 170, G: 85, B: 0, A: 255},    /* brown */
	color.RGBA{R: 170, G: 170, B: 170, A: 255}, /* light gray */
	color.RGBA{R: 85, G: 85, B: 85, A: 255},    /* dark gray */
	color.RGBA{R: 85, G: 85, B: 255, A: 255},   /* light blue */
	color.RGBA{R: 85, G: 255, B: 85, A: 255},   /* light green */
	color.RGBA{R: 85, G: 255, B: 255, A: 255},  /* light cyan */
	color.RGBA{R: 255, G: 85, B: 85, A: 255},   /* light red */
	color.RGBA{R: 255, G: 85, B: 255, A: 255},  /* pink */
	color.RGBA{R: 255, G: 255, B: 85, A: 255},  /* yellow */
	color.RGBA{R: 255, G: 255, B: 255, A: 255}, /* white */
}

// RGBA returns the palette value of the color. Indices above 15 wrap
// to their low nibble.
func (c Color) RGBA() color.RGBA {
	return Palette[c&0xf].(color.RGBA)
}

// ColorCode packs a foreground and background color into a single
// attribute byte: background in the high nibble, foreground in the
// low nibble.
type ColorCode uint8

// NewColorCode creates a new color code for the foreground and
// background colors.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode((bg&0xf)<<4 | (fg & 0xf))
}

// Foreground returns the foreground color.
func (cc ColorCode) Foreground() Color {
	return Color(cc & 0xf)
}

// Background returns the background color.
func (cc ColorCode) Background() Color {
	return Color(cc >> 4)
}

func (cc ColorCode) String() string {
	return fmt.Sprintf("%s/%s", cc.Foreground(), cc.Background())
}
