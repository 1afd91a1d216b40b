//
// httpd.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//
// Display harness: serves the framebuffer of the hosted kernel to
// browsers.

package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/markkurossi/espress-os/kernel/control"
)

func main() {
	config := flag.String("config", "", "Control values file")
	addr := flag.String("addr", "", "HTTP service address")
	directory := flag.String("d", "", "Directory containing static content")
	fb := flag.String("fb", "", "Framebuffer file")
	flag.Parse()

	if len(*config) > 0 {
		if err := control.Load(*config); err != nil {
			log.Fatalf("Failed to load control file '%s': %s", *config, err)
		}
	}
	if len(*addr) > 0 {
		control.HTTPDAddr = *addr
	}
	if len(*directory) > 0 {
		control.HTTPDStaticRoot = *directory
	}
	if len(*fb) > 0 {
		control.Framebuffer = *fb
	}

	srv := &server{
		path:     control.Framebuffer,
		interval: control.HTTPDInterval,
	}

	log.Printf("Serving %s on HTTP: %s\n", control.HTTPDStaticRoot,
		control.HTTPDAddr)
	log.Fatal(http.ListenAndServe(control.HTTPDAddr,
		srv.router(control.HTTPDStaticRoot)))
}
