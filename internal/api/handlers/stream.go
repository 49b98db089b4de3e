package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/pkg/logger"
)

const (
	// Ping/Pong settings
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

// StreamHandler broadcasts insight batches to websocket subscribers.
// It implements contracts.InsightSink so the insights job can publish
// directly to connected clients.
// ⭐ SSOT: 인사이트 스트림은 이 핸들러에서만
type StreamHandler struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var _ contracts.InsightSink = (*StreamHandler)(nil)

// NewStreamHandler creates a new stream handler
func NewStreamHandler(log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger:  log,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Serve upgrades the connection and keeps it registered until it drops
// GET /ws/insights
func (h *StreamHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("subscribers", count).Info("Insight stream subscriber connected")

	go h.readLoop(conn)
	go h.pingLoop(conn)
}

// Publish sends the batch to every connected subscriber
func (h *StreamHandler) Publish(batch *contracts.InsightBatch) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(batch); err != nil {
			h.logger.WithError(err).Warn("Insight stream write failed, dropping subscriber")
			h.dropLocked(conn)
		}
	}
}

// SubscriberCount returns the number of connected clients
func (h *StreamHandler) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// readLoop consumes control frames; clients never send data
func (h *StreamHandler) readLoop(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			h.dropLocked(conn)
			h.mu.Unlock()
			return
		}
	}
}

// pingLoop sends periodic pings until the connection is dropped
func (h *StreamHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.Lock()
		_, active := h.clients[conn]
		h.mu.Unlock()
		if !active {
			return
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			h.mu.Lock()
			h.dropLocked(conn)
			h.mu.Unlock()
			return
		}
	}
}

// dropLocked closes and forgets a connection; caller holds mu
func (h *StreamHandler) dropLocked(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}
