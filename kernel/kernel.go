//
// kernel.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build unix

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/espress-os/kernel/control"
	"github.com/markkurossi/espress-os/kernel/kmsg"
	"github.com/markkurossi/espress-os/kernel/vga"
)

func main() {
	initLog()

	err := parseParams(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}

	err = runInit()
	if err != nil {
		log.Fatalf("Init failed: %s", err)
	}

	kmsg.Print("System halted.")
}

// initLog sends the standard logger output to the kernel messages.
func initLog() {
	log.SetFlags(0)
	log.SetOutput(kmsg.Writer)
}

func runInit() error {
	fg, err := vga.ParseColor(control.Foreground)
	if err != nil {
		return fmt.Errorf("vga.foreground: %w", err)
	}
	bg, err := vga.ParseColor(control.Background)
	if err != nil {
		return fmt.Errorf("vga.background: %w", err)
	}
	vga.DefaultColor = vga.NewColorCode(fg, bg)
	vga.OpenRegion = openFramebuffer

	vga.Printf("Hello World%s\n", "!")
	vga.Println("Welcome to EspressOS!")

	return nil
}

func openFramebuffer() (*vga.Region, error) {
	region, err := vga.MapFile(control.Framebuffer)
	if err != nil {
		return nil, err
	}
	kmsg.Printf("mapped framebuffer '%s' to 0x%x",
		control.Framebuffer, region.Addr())
	return region, nil
}
