package ws

import (
	"encoding/json"
	"sync"
)

// Client represents a single WebSocket connection with admin context.
type Client struct {
	AdminID uint
	Send    chan []byte
	Hub     *Hub // set so Close() can unregister
	mu      sync.Mutex
	closed  bool
}

func NewClient(adminID uint, buffer int) *Client {
	return &Client{AdminID: adminID, Send: make(chan []byte, buffer)}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.Hub != nil {
		c.Hub.unregister(c)
	}
	close(c.Send)
}

// Hub maintains the set of active clients and broadcasts to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.Hub = h
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// BroadcastAll delivers payload to every client; slow clients drop the message.
func (h *Hub) BroadcastAll(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Disconnect closes every client of adminID; their streams end.
func (h *Hub) Disconnect(adminID uint) int {
	h.mu.RLock()
	var drop []*Client
	for c := range h.clients {
		if c.AdminID == adminID {
			drop = append(drop, c)
		}
	}
	h.mu.RUnlock()
	// Close takes the write lock, so it runs after the read lock is released.
	for _, c := range drop {
		c.Close()
	}
	return len(drop)
}
