//
// log_host.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !(js && wasm)

package log

import (
	"log"
	"os"
	"strings"
)

var (
	logger = log.New(os.Stderr, "console: ", log.LstdFlags)
)

// SetOutput redirects the console messages. It is used by hosted
// programs and tests; the browser console can not be redirected.
func SetOutput(l *log.Logger) {
	logger = l
}

func consoleLog(msg string) {
	logger.Print(strings.TrimSuffix(msg, "\n"))
}
