// Package ws pushes notification events to connected clients so the
// notification bell updates without polling.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	done       chan struct{}
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

// Stop terminates the broadcast loop. Run closes every remaining client
// connection on the way out; Publish becomes a no-op.
func (h *Hub) Stop() {
	close(h.done)
}

// Publish marshals an event envelope and hands it to the broadcast loop.
// Marshal failures are logged and dropped; event delivery is best-effort.
func (h *Hub) Publish(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type": event,
		"data": payload,
	})
	if err != nil {
		log.Printf("ws: failed to marshal %s event: %v", event, err)
		return
	}
	select {
	case h.Broadcast <- msg:
	case <-h.done:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}
