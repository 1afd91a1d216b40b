//
// region_unix_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build unix

package vga

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb")

	region, err := MapFile(path)
	if err != nil {
		t.Fatalf("MapFile failed: %s", err)
	}
	defer region.Close()

	buffer, err := NewTextBuffer(region)
	if err != nil {
		t.Fatalf("NewTextBuffer failed: %s", err)
	}
	defer buffer.Release()

	w := NewWriter(buffer, testColor)
	w.WriteString("mapped")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %s", err)
	}
	frame, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame failed: %s", err)
	}
	if got := frame.Lines()[Height-1][:6]; got != "mapped" {
		t.Errorf("file contents %q, expected \"mapped\"", got)
	}

	_, err = NewTextBuffer(region)
	if !errors.Is(err, ErrRegionClaimed) {
		t.Errorf("second claim: %v, expected %v", err, ErrRegionClaimed)
	}
}
