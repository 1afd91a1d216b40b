//
// global.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vga

import (
	"fmt"
	"sync"
)

var (
	// OpenRegion returns the framebuffer region of the global
	// writer. It is called once, on the first use of the global
	// writer. Programs set it before printing anything.
	OpenRegion = func() (*Region, error) {
		return NewMemRegion(), nil
	}

	// DefaultColor is the initial color of the global writer.
	DefaultColor = NewColorCode(Yellow, Black)

	globalOnce sync.Once
	global     *Locked
)

// Locked serializes access to a Writer. The lock is held for the
// duration of each write call.
type Locked struct {
	m sync.Mutex
	w *Writer
}

// NewLocked wraps the writer with a mutex.
func NewLocked(w *Writer) *Locked {
	return &Locked{
		w: w,
	}
}

// Write implements the io.Writer interface.
func (l *Locked) Write(p []byte) (int, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.w.Write(p)
}

// WriteString implements the io.StringWriter interface.
func (l *Locked) WriteString(s string) (int, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.w.WriteString(s)
}

// Do calls f with the lock held.
func (l *Locked) Do(f func(w *Writer)) {
	l.m.Lock()
	defer l.m.Unlock()
	f(l.w)
}

// Global returns the process wide writer. The writer is created on
// first use and lives until the process exits. Global panics if the
// framebuffer can not be claimed since there is no other place to
// report output.
func Global() *Locked {
	globalOnce.Do(func() {
		region, err := OpenRegion()
		if err != nil {
			panic(fmt.Sprintf("vga: failed to open framebuffer: %s", err))
		}
		buffer, err := NewTextBuffer(region)
		if err != nil {
			panic(fmt.Sprintf("vga: %s", err))
		}
		global = NewLocked(NewWriter(buffer, DefaultColor))
	})
	return global
}

// Print formats its arguments as fmt.Print does and writes the result
// to the global writer.
func Print(a ...interface{}) {
	_, err := fmt.Fprint(Global(), a...)
	if err != nil {
		panic(err)
	}
}

// Printf formats its arguments as fmt.Printf does and writes the
// result to the global writer.
func Printf(format string, a ...interface{}) {
	_, err := fmt.Fprintf(Global(), format, a...)
	if err != nil {
		panic(err)
	}
}

// Println formats its arguments as fmt.Println does and writes the
// result to the global writer.
func Println(a ...interface{}) {
	_, err := fmt.Fprintln(Global(), a...)
	if err != nil {
		panic(err)
	}
}
