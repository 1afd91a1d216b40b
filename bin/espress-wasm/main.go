//
// main.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build js && wasm

package main

import (
	stdlog "log"
	"syscall/js"

	"github.com/markkurossi/espress-os/kernel/control"
	"github.com/markkurossi/espress-os/lib/emulator"
	"github.com/markkurossi/espress-os/lib/log"
)

func main() {
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Writer)

	js.Global().Set("VgaEmulator", js.FuncOf(newEmulator))
	js.Global().Set("simulate_os_boot", js.FuncOf(
		func(this js.Value, args []js.Value) interface{} {
			return emulator.SimulateOSBoot()
		}))

	log.Print("EspressOS WASM module loaded!")

	select {}
}

// newEmulator creates a new emulator object. The width and height are
// the first two arguments. Without arguments the emulator.width and
// emulator.height control values are used.
func newEmulator(this js.Value, args []js.Value) interface{} {
	width, height := control.EmulatorWidth, control.EmulatorHeight
	if len(args) >= 2 {
		width, height = args[0].Int(), args[1].Int()
	}
	e := emulator.NewEmulator(width, height)

	return js.ValueOf(map[string]interface{}{
		"write_string": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				if len(args) < 3 {
					stdlog.Printf("write_string: %d arguments, expected 3",
						len(args))
					return nil
				}
				e.WriteString(args[0].String(), color(args[1]),
					color(args[2]))
				return nil
			}),
		"write_char": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				if len(args) < 3 {
					stdlog.Printf("write_char: %d arguments, expected 3",
						len(args))
					return nil
				}
				for _, ch := range args[0].String() {
					e.WriteChar(ch, color(args[1]), color(args[2]))
					break
				}
				return nil
			}),
		"new_line": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				e.NewLine()
				return nil
			}),
		"clear": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				e.Clear()
				return nil
			}),
		"get_buffer_as_string": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				return e.BufferString()
			}),
		"get_char_at": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				if len(args) < 2 {
					return e.CharAt(-1, -1)
				}
				return e.CharAt(args[0].Int(), args[1].Int())
			}),
		"get_cursor_position": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				return e.CursorPosition()
			}),
		"draw": js.FuncOf(
			func(this js.Value, args []js.Value) interface{} {
				draw(e)
				return nil
			}),
	})
}

func color(v js.Value) uint8 {
	return uint8(v.Int())
}
