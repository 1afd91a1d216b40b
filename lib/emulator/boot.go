//
// boot.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package emulator

import (
	"strings"

	"github.com/markkurossi/espress-os/lib/log"
)

var bootMessages = []string{
	"Hello World!",
	"Welcome to EspressOS!",
	"",
	"EspressOS WebAssembly Demo",
	"==========================",
	"This is a web version of the EspressOS kernel output.",
	"The actual kernel runs on bare metal x86_64 hardware.",
}

// SimulateOSBoot returns the console output of the kernel boot
// sequence.
func SimulateOSBoot() string {
	log.Print("Simulating OS boot sequence...")

	var sb strings.Builder
	for _, msg := range bootMessages {
		sb.WriteString(msg)
		sb.WriteByte('\n')
	}
	return sb.String()
}
