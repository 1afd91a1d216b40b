//
// server.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/blake2b"

	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/espress-os/lib/display"
	"github.com/markkurossi/espress-os/lib/render"
)

type server struct {
	path     string
	interval time.Duration
}

func (s *server) router(static string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/frame", s.handleFrame).Methods(http.MethodGet)
	r.HandleFunc("/api/text", s.handleText).Methods(http.MethodGet)
	r.HandleFunc("/api/screenshot.png", s.handleScreenshot).
		Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(static)))
	return r
}

// readFrame reads the current frame and its digest from the
// framebuffer file.
func (s *server) readFrame() (*vga.Frame, []byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, err
	}
	frame, err := vga.DecodeFrame(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.path, err)
	}
	digest := blake2b.Sum256(data[:vga.RegionSize])
	return frame, digest[:], nil
}

func (s *server) frameError(w http.ResponseWriter, err error) {
	log.Printf("frame: %s\n", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(&display.Status{
		Error: err.Error(),
	})
}

func (s *server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, digest, err := s.readFrame()
	if err != nil {
		s.frameError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(display.NewFrame(0, digest, frame))
	if err != nil {
		log.Printf("frame: write: %s\n", err)
	}
}

func (s *server) handleText(w http.ResponseWriter, r *http.Request) {
	frame, _, err := s.readFrame()
	if err != nil {
		s.frameError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.Text(w, render.FrameSource(frame)); err != nil {
		log.Printf("text: write: %s\n", err)
	}
}

func (s *server) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	frame, _, err := s.readFrame()
	if err != nil {
		s.frameError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, render.FrameSource(frame)); err != nil {
		log.Printf("screenshot: write: %s\n", err)
	}
}
