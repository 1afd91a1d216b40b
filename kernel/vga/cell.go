//
// cell.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"fmt"
	"unsafe"
)

// ScreenChar is one cell of the text mode display: the character code
// followed by its color attribute. The field order matches the
// framebuffer layout byte for byte.
type ScreenChar struct {
	Code byte
	Attr ColorCode
}

// CellSize is the number of framebuffer bytes per ScreenChar.
const CellSize = 2

// The framebuffer layout depends on ScreenChar being exactly two bytes.
var _ [CellSize]struct{} = [unsafe.Sizeof(ScreenChar{})]struct{}{}

// Word returns the cell as a 16-bit framebuffer word: the attribute in
// the high byte and the character code in the low byte.
func (ch ScreenChar) Word() uint16 {
	return uint16(ch.Attr)<<8 | uint16(ch.Code)
}

// ScreenCharOf decodes a 16-bit framebuffer word.
func ScreenCharOf(w uint16) ScreenChar {
	return ScreenChar{
		Code: byte(w),
		Attr: ColorCode(w >> 8),
	}
}

// Blank returns an empty cell with the argument colors.
func Blank(attr ColorCode) ScreenChar {
	return ScreenChar{
		Code: ' ',
		Attr: attr,
	}
}

// Rune returns the displayed rune of the cell. NUL cells of a fresh
// framebuffer show as spaces and FallbackGlyph as a filled square.
func (ch ScreenChar) Rune() rune {
	switch ch.Code {
	case 0:
		return ' '
	case FallbackGlyph:
		return '\u25a0'
	default:
		return rune(ch.Code)
	}
}

func (ch ScreenChar) String() string {
	return fmt.Sprintf("%q:%s", rune(ch.Code), ch.Attr)
}
