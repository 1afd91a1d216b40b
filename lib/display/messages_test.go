//
// messages_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package display

import (
	"strings"
	"testing"

	"github.com/markkurossi/espress-os/kernel/vga"
)

func TestNewFrame(t *testing.T) {
	buffer, err := vga.NewTextBuffer(vga.NewMemRegion())
	if err != nil {
		t.Fatalf("NewTextBuffer failed: %s", err)
	}
	defer buffer.Release()

	attr := vga.NewColorCode(vga.LightRed, vga.Cyan)
	vga.NewWriter(buffer, attr).WriteString("frame")

	msg := NewFrame(7, []byte{0xca, 0xfe}, vga.Snapshot(buffer))
	if msg.Seq != 7 || msg.Digest != "cafe" {
		t.Errorf("seq=%d, digest=%s", msg.Seq, msg.Digest)
	}
	if len(msg.Lines) != vga.Height || len(msg.Attrs) != vga.Height {
		t.Fatalf("%d lines, %d attrs", len(msg.Lines), len(msg.Attrs))
	}
	if !strings.HasPrefix(msg.Lines[vga.Height-1], "frame") {
		t.Errorf("last line %q", msg.Lines[vga.Height-1])
	}
	got, err := msg.Attr(vga.Height-1, 4)
	if err != nil || got != attr {
		t.Errorf("Attr=%s, %v, expected %s", got, err, attr)
	}
	if _, err := msg.Attr(0, vga.Width); err == nil {
		t.Errorf("Attr outside frame succeeded")
	}
}
