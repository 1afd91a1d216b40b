//
// log_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !(js && wasm)

package log

import (
	"bytes"
	"fmt"
	"log"
	"testing"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	saved := logger
	SetOutput(log.New(&buf, "", 0))
	defer SetOutput(saved)

	Print("one")
	Printf("two %d", 2)
	fmt.Fprintf(Writer, "three\n")

	expected := "one\ntwo 2\nthree\n"
	if buf.String() != expected {
		t.Errorf("console output %q, expected %q", buf.String(), expected)
	}
}
