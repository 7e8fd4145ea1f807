package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// StatusPayload is pushed to dashboards whenever a certification or an
// evaluation bundle is saved for an operator.
type StatusPayload struct {
	NIK        string    `json:"nik"`
	Status     string    `json:"status"`
	FormStatus string    `json:"form_status"`
	SavedAt    time.Time `json:"saved_at"`
}

// StatusHub fans certification status changes out to connected clients.
// Every client sees every operator; there is no room scoping here.
type StatusHub struct {
	register   chan *statusClient
	unregister chan *statusClient
	broadcast  chan []byte
	clients    map[*statusClient]struct{}
}

func NewStatusHub() *StatusHub {
	return &StatusHub{
		register:   make(chan *statusClient),
		unregister: make(chan *statusClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*statusClient]struct{}),
	}
}

func (h *StatusHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// Broadcast pushes a status change to every connected client.
func (h *StatusHub) Broadcast(payload StatusPayload) {
	if h == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("ws: failed to marshal status payload")
		return
	}
	h.broadcast <- data
}

type statusClient struct {
	hub  *StatusHub
	conn *websocket.Conn
	send chan []byte
}

func newStatusClient(hub *StatusHub, conn *websocket.Conn) *statusClient {
	return &statusClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *statusClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *statusClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
