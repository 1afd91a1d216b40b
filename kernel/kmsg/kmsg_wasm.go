//
// kmsg_wasm.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build js && wasm

package kmsg

import (
	"syscall/js"
)

var (
	jsKmsgPrint = js.Global().Get("kmsgPrint")
)

func kmsgPrint(msg string) {
	jsKmsgPrint.Invoke(msg)
}
