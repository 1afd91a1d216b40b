//
// watch_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestWatch(t *testing.T) {
	path := writeFramebuffer(t, "live")

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init failed: %s", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	result := make(chan error)
	go func() {
		result <- watch(screen, path, 5*time.Millisecond)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		mainc, _, _, _ := screen.GetContent(0, 24)
		if mainc == 'l' {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("framebuffer not drawn")
		}
		time.Sleep(5 * time.Millisecond)
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("watch failed: %s", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not quit")
	}
}
