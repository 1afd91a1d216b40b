//
// ws.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/markkurossi/espress-os/lib/display"
)

const (
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWS streams framebuffer frames to the viewer. A frame is sent
// when the viewer connects and whenever the framebuffer contents
// change.
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer ws.Close()

	id := uuid.NewString()
	log.Printf("New viewer %s from %s\n", id, r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var seq uint64
	var lastDigest []byte
	var lastError string

	for {
		frame, digest, err := s.readFrame()
		if err != nil {
			if err.Error() != lastError {
				lastError = err.Error()
				log.Printf("%s: %s\n", id, err)
				if !s.send(ws, &display.Status{Error: lastError}) {
					return
				}
			}
		} else if !bytes.Equal(digest, lastDigest) {
			lastDigest = digest
			lastError = ""
			seq++
			if !s.send(ws, display.NewFrame(seq, digest, frame)) {
				return
			}
		}

		select {
		case <-done:
			log.Printf("Viewer %s disconnected\n", id)
			return
		case <-ticker.C:
		}
	}
}

func (s *server) send(ws *websocket.Conn, msg interface{}) bool {
	ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteJSON(msg); err != nil {
		log.Printf("ws.Write: %s\n", err)
		return false
	}
	return true
}
