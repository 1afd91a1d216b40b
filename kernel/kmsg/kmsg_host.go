//
// kmsg_host.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !(js && wasm)

package kmsg

import (
	"log"
	"os"
	"strings"
)

var (
	logger = log.New(os.Stderr, "kmsg: ", log.LstdFlags|log.Lmicroseconds)
)

// SetOutput sets the destination of the kernel messages.
func SetOutput(l *log.Logger) {
	logger = l
}

func kmsgPrint(msg string) {
	logger.Print(strings.TrimSuffix(msg, "\n"))
}
