//
// watch.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/markkurossi/espress-os/lib/render"
)

// watch redraws the framebuffer until the user presses Escape, q or
// Ctrl-C. Frames that can not be read leave the previous contents on
// the screen.
func watch(screen tcell.Screen, path string, interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		frame, err := readFrame(path)
		if err == nil {
			render.Draw(screen, render.FrameSource(frame))
			screen.Show()
		}

		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
		}
	}
}
