package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/DanaramPradeep/crypto-tracker/metrics"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is a local single-user service; any origin may connect
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket streams the dashboard payload to a connected rendering
// collaborator: one full payload on connect, then one on every store or
// refresh event.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("API: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	metrics.WSClientsGauge.Inc()
	defer metrics.WSClientsGauge.Dec()

	sub := s.events.Subscribe()
	defer sub.Cancel()

	// Reader goroutine: the client sends nothing meaningful, but reading is
	// required to notice the close handshake
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(s.dashboardPayload()); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case _, ok := <-sub.Chan():
			if !ok {
				return
			}
			if err := conn.WriteJSON(s.dashboardPayload()); err != nil {
				return
			}
		}
	}
}
