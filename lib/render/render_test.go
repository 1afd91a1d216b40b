//
// render_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/espress-os/lib/emulator"
)

var attr = vga.NewColorCode(vga.Yellow, vga.Blue)

func testFrame(t *testing.T) *vga.Frame {
	buffer, err := vga.NewTextBuffer(vga.NewMemRegion())
	if err != nil {
		t.Fatalf("NewTextBuffer failed: %s", err)
	}
	defer buffer.Release()

	w := vga.NewWriter(buffer, attr)
	w.WriteString("Hello\nÅ")
	return vga.Snapshot(buffer)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, FrameSource(testFrame(t))); err != nil {
		t.Fatalf("Text failed: %s", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != vga.Height+1 {
		t.Fatalf("%d lines, expected %d", len(lines)-1, vga.Height)
	}
	if got := strings.TrimRight(lines[vga.Height-2], " "); got != "Hello" {
		t.Errorf("line %d: %q", vga.Height-2, got)
	}
	if got := strings.TrimRight(lines[vga.Height-1], " "); got != "■■" {
		t.Errorf("line %d: %q", vga.Height-1, got)
	}
}

func TestEmulatorText(t *testing.T) {
	e := emulator.NewEmulator(5, 2)
	e.WriteString("ab\ncd", 1, 0)

	var buf bytes.Buffer
	if err := Text(&buf, EmulatorSource(e)); err != nil {
		t.Fatalf("Text failed: %s", err)
	}
	if buf.String() != e.BufferString() {
		t.Errorf("Text=%q, BufferString=%q", buf.String(), e.BufferString())
	}
}

func TestANSI(t *testing.T) {
	var buf bytes.Buffer
	if err := ANSI(&buf, FrameSource(testFrame(t))); err != nil {
		t.Fatalf("ANSI failed: %s", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[2J") {
		t.Errorf("output does not erase screen: %q", out[:10])
	}
	if !strings.Contains(out, "\x1b[25;1H") {
		t.Errorf("output does not position last line")
	}
	// Yellow is bright yellow (93) on blue (44).
	if !strings.Contains(out, "\x1b[93;44mHello") {
		t.Errorf("output does not contain colored text")
	}
}

func TestANSIColor(t *testing.T) {
	tests := []struct {
		c          vga.Color
		background bool
		expected   int
	}{
		{vga.Black, false, 30},
		{vga.Red, false, 31},
		{vga.Blue, true, 44},
		{vga.Brown, false, 33},
		{vga.LightGray, false, 37},
		{vga.DarkGray, false, 90},
		{vga.LightCyan, true, 106},
		{vga.White, false, 97},
	}
	for _, test := range tests {
		if got := ansiColor(test.c, test.background); got != test.expected {
			t.Errorf("ansiColor(%s, %v)=%d, expected %d",
				test.c, test.background, got, test.expected)
		}
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, FrameSource(testFrame(t))); err != nil {
		t.Fatalf("PNG failed: %s", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %s", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != vga.Width*CellWidth || bounds.Dy() != vga.Height*CellHeight {
		t.Errorf("image size %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Top-left pixel of the last line is background.
	r, g, b, _ := img.At(0, (vga.Height-1)*CellHeight).RGBA()
	blue := vga.Blue.RGBA()
	if r>>8 != uint32(blue.R) || g>>8 != uint32(blue.G) || b>>8 != uint32(blue.B) {
		t.Errorf("background pixel %d,%d,%d", r>>8, g>>8, b>>8)
	}

	// The fallback glyph is a filled box.
	r, g, b, _ = img.At(CellWidth/2, (vga.Height-1)*CellHeight+CellHeight/2).RGBA()
	yellow := vga.Yellow.RGBA()
	if r>>8 != uint32(yellow.R) || g>>8 != uint32(yellow.G) || b>>8 != uint32(yellow.B) {
		t.Errorf("glyph pixel %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init failed: %s", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 25)

	Draw(screen, FrameSource(testFrame(t)))

	mainc, _, style, _ := screen.GetContent(0, vga.Height-2)
	if mainc != 'H' {
		t.Errorf("screen content %q, expected 'H'", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcellColor(vga.Yellow) || bg != tcellColor(vga.Blue) {
		t.Errorf("style colors %v/%v", fg, bg)
	}
}
