package websocket

import (
	"encoding/json"
	"sync"

	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/pkg/logger"
)

const (
	broadcastBuffer = 1024
	clientBuffer    = 256
)

type broadcastMessage struct {
	Type service.EventType
	Data []byte
}

// Hub fans shop events out to websocket subscribers. It implements
// service.EventPublisher; Publish never blocks.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage
	done       chan struct{}
	stopOnce   sync.Once

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, clientBuffer),
		unregister: make(chan *Client, clientBuffer),
		broadcast:  make(chan *broadcastMessage, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Event subscriber registered", map[string]interface{}{
				"client_id":   client.ID,
				"subscribers": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Event subscriber unregistered", map[string]interface{}{
				"client_id":   client.ID,
				"subscribers": total,
			})

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.Wants(message.Type) {
					continue
				}
				select {
				case client.Send <- message.Data:
				default:
					// slow consumer
					h.removeLocked(client)
					logger.Warn("Subscriber send buffer full, disconnecting", map[string]interface{}{
						"client_id": client.ID,
					})
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				h.removeLocked(client)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

// Stop closes every subscriber and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		logger.Info("Event hub stopped", nil)
	})
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish implements service.EventPublisher.
func (h *Hub) Publish(event service.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", err, map[string]interface{}{
			"type": event.Type,
		})
		return
	}

	select {
	case h.broadcast <- &broadcastMessage{Type: event.Type, Data: data}:
	default:
		logger.Warn("Broadcast channel full, event dropped", map[string]interface{}{
			"type": event.Type,
		})
	}
}

// ClientCount returns the number of registered subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
