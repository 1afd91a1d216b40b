//
// draw.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/markkurossi/espress-os/lib/emulator"
)

var (
	displayClear   = js.Global().Get("displayClear")
	displayAddLine = js.Global().Get("displayAddLine")
)

// draw pushes the emulator display to the page. Each line is passed
// to displayAddLine as a Uint8Array of (code, fg, bg) triplets.
func draw(e *emulator.Emulator) {
	if displayClear.Type() != js.TypeFunction ||
		displayAddLine.Type() != js.TypeFunction {
		return
	}
	displayClear.Invoke()

	size := e.Size()
	line := make([]byte, size.X*3)
	ta := js.Global().Get("Uint8Array").New(len(line))

	for row := 0; row < size.Y; row++ {
		for j, ch := range e.Display().Line(row) {
			line[j*3] = byte(ch.Code)
			line[j*3+1] = ch.Foreground
			line[j*3+2] = ch.Background
		}
		js.CopyBytesToJS(ta, line)
		displayAddLine.Invoke(ta)
	}
}
