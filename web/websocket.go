package web

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"propsTracker/models"
)

type WSMessage struct {
	Type   string      `json:"type"`
	UserID string      `json:"user_id,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	userIDs map[string]bool
}

// Hub fans refreshed bet updates out to connected dashboard clients.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *WSMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *WSMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Client registered. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("Client unregistered. Total clients: %d", len(h.clients))

		case message := <-h.broadcast:
			data := marshalMessage(message)

			var stalled []*Client
			h.mu.RLock()
			for client := range h.clients {
				if !client.shouldReceive(message) {
					continue
				}

				select {
				case client.send <- data:
				default:
					// Send buffer full, drop the client after the sweep.
					stalled = append(stalled, client)
				}
			}
			h.mu.RUnlock()

			if len(stalled) > 0 {
				h.mu.Lock()
				for _, client := range stalled {
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
					}
				}
				h.mu.Unlock()
				log.Printf("Dropped %d stalled clients. Total clients: %d", len(stalled), len(h.clients))
			}
		}
	}
}

// BroadcastRefresh pushes a batch of freshly refreshed bets. All bets in a
// batch belong to the same user.
func (h *Hub) BroadcastRefresh(bets []models.Bet) {
	if len(bets) == 0 {
		return
	}
	h.broadcast <- &WSMessage{
		Type:   "bets_refreshed",
		UserID: bets[0].UserID,
		Data:   bets,
	}
}

func marshalMessage(message *WSMessage) []byte {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal message: %v", err)
		return []byte("{}")
	}
	return data
}

// shouldReceive applies the client's user filter. A client with no filter
// receives every update.
func (c *Client) shouldReceive(message *WSMessage) bool {
	if len(c.userIDs) == 0 {
		return true
	}
	if message.UserID == "" {
		return false
	}
	return c.userIDs[message.UserID]
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		c.handleMessage(message)
	}
}

func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var msg struct {
		Type    string   `json:"type"`
		UserIDs []string `json:"user_ids"`
	}
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Failed to unmarshal client message: %v", err)
		return
	}

	switch msg.Type {
	case "subscribe":
		c.userIDs = make(map[string]bool)
		for _, userID := range msg.UserIDs {
			c.userIDs[userID] = true
		}
		log.Printf("Client subscribed to users: %v", msg.UserIDs)

	case "unsubscribe":
		c.userIDs = make(map[string]bool)
		log.Println("Client unsubscribed")
	}
}
