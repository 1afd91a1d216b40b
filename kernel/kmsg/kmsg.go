//
// kmsg.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

// Package kmsg implements the kernel message log. Messages go to the
// host side message channel, not to the display.
package kmsg

import (
	"fmt"
	"io"
)

var (
	// Writer writes kernel messages.
	Writer io.Writer = &writer{}
)

type writer struct {
}

func (w *writer) Write(p []byte) (int, error) {
	kmsgPrint(string(p))
	return len(p), nil
}

func Print(msg string) {
	kmsgPrint(msg)
}

func Printf(format string, a ...interface{}) {
	kmsgPrint(fmt.Sprintf(format, a...))
}
