//
// log.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

// Package log writes diagnostics to the host console: the browser
// console when running as WebAssembly, standard error otherwise.
package log

import (
	"fmt"
	"io"
)

var (
	// Writer writes to the host console.
	Writer io.Writer = &writer{}
)

type writer struct {
}

func (w *writer) Write(p []byte) (n int, err error) {
	consoleLog(string(p))
	return len(p), nil
}

// Print writes the message to the host console.
func Print(msg string) {
	consoleLog(msg)
}

// Printf formats the message and writes it to the host console.
func Printf(format string, a ...interface{}) {
	consoleLog(fmt.Sprintf(format, a...))
}
