//
// commands_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkurossi/espress-os/kernel/vga"
)

func writeFramebuffer(t *testing.T, text string) string {
	buffer, err := vga.NewTextBuffer(vga.NewMemRegion())
	if err != nil {
		t.Fatalf("NewTextBuffer failed: %s", err)
	}
	defer buffer.Release()

	vga.NewWriter(buffer, vga.NewColorCode(vga.Green, vga.Black)).
		WriteString(text)

	path := filepath.Join(t.TempDir(), "fb")
	if err := os.WriteFile(path, vga.Snapshot(buffer).Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestText(t *testing.T) {
	path := writeFramebuffer(t, "vgacat\n")

	out, err := run(t, "text", path)
	if err != nil {
		t.Fatalf("text failed: %s", err)
	}
	lines := strings.Split(out, "\n")
	if got := strings.TrimRight(lines[vga.Height-2], " "); got != "vgacat" {
		t.Errorf("line %d: %q", vga.Height-2, got)
	}
}

func TestCells(t *testing.T) {
	path := writeFramebuffer(t, "AB")

	out, err := run(t, "cells", "--row", "24", path)
	if err != nil {
		t.Fatalf("cells failed: %s", err)
	}
	if !strings.HasPrefix(out, " 0: 0x41 0x02 Green/Black\n 1: 0x42 0x02") {
		t.Errorf("cells output %q", out[:40])
	}

	if _, err := run(t, "cells", "--row", "25", path); err == nil {
		t.Errorf("row outside framebuffer accepted")
	}
}

func TestMissingFramebuffer(t *testing.T) {
	_, err := run(t, "ansi", filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Errorf("missing framebuffer accepted")
	}
}

func TestWatchInterval(t *testing.T) {
	path := writeFramebuffer(t, "watch")

	for _, iv := range []string{"0", "0s", "-5ms"} {
		if _, err := run(t, "watch", "--interval="+iv, path); err == nil {
			t.Errorf("interval %s accepted", iv)
		}
	}
}
