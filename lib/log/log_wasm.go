//
// log_wasm.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build js && wasm

package log

import (
	"syscall/js"
)

var (
	console = js.Global().Get("console")
)

func consoleLog(msg string) {
	console.Call("log", msg)
}
