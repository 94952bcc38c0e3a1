package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10

	clientSendBuffer = 32
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// wsInbound is a client control message.
type wsInbound struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
}

type progressEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id"`
	Progress  int    `json:"progress"`
	Message   string `json:"message"`
	Status    string `json:"status"`
}

type resultEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
	Data      any    `json:"data"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte

	mu    sync.Mutex
	rooms map[string]struct{}
}

// Hub fans session events out to websocket clients. A client joins one
// or more session rooms and receives only those sessions' events. Hub
// implements search.ProgressSink.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*wsClient]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*wsClient]struct{})}
}

// PublishProgress broadcasts a progress event to the session's room.
func (h *Hub) PublishProgress(sessionID string, percent int, message, status string) {
	h.broadcast(sessionID, progressEvent{
		Event:     "progress",
		SessionID: sessionID,
		Progress:  percent,
		Message:   message,
		Status:    status,
	})
}

// PublishResult broadcasts a result event to the session's room.
func (h *Hub) PublishResult(sessionID string, resultType string, payload any) {
	h.broadcast(sessionID, resultEvent{
		Event:     "result",
		SessionID: sessionID,
		Type:      resultType,
		Data:      payload,
	})
}

func (h *Hub) broadcast(sessionID string, event any) {
	raw, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("hub: marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[sessionID] {
		select {
		case c.send <- raw:
		default:
			// slow consumer, drop the event
		}
	}
}

func (h *Hub) join(c *wsClient, sessionID string) {
	h.mu.Lock()
	room, ok := h.rooms[sessionID]
	if !ok {
		room = make(map[*wsClient]struct{})
		h.rooms[sessionID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	c.mu.Lock()
	c.rooms[sessionID] = struct{}{}
	c.mu.Unlock()
}

func (h *Hub) leave(c *wsClient, sessionID string) {
	h.mu.Lock()
	if room, ok := h.rooms[sessionID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, sessionID)
		}
	}
	h.mu.Unlock()

	c.mu.Lock()
	delete(c.rooms, sessionID)
	c.mu.Unlock()
}

func (h *Hub) drop(c *wsClient) {
	c.mu.Lock()
	ids := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		h.leave(c, id)
	}
	close(c.send)
}

// HandleWS upgrades the connection and serves join/leave control
// messages until the client disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	c := &wsClient{
		conn:  conn,
		send:  make(chan []byte, clientSendBuffer),
		rooms: make(map[string]struct{}),
	}
	defer h.drop(c)

	go c.writeLoop()

	if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		switch in.Type {
		case "join":
			if in.SessionID != "" {
				h.join(c, in.SessionID)
				ack, _ := json.Marshal(map[string]string{"event": "joined", "session_id": in.SessionID})
				select {
				case c.send <- ack:
				default:
				}
			}
		case "leave":
			if in.SessionID != "" {
				h.leave(c, in.SessionID)
			}
		}
	}
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(wsPingEvery)
	defer ticker.Stop()

	for {
		select {
		case raw, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
