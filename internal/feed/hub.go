// internal/feed/hub.go
package feed

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"elemental-arena/internal/event"
)

const sendBuffer = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Clock — источник id сессии и игрового времени для сообщений.
type Clock interface {
	SessionID() string
	Now() float64
}

// Message is one broadcast game event.
type Message struct {
	Session string          `json:"session"`
	Type    event.EventType `json:"type"`
	Time    float64         `json:"time"`
	Data    interface{}     `json:"data,omitempty"`
}

// Encode wraps a game event into its JSON feed message.
func Encode(clock Clock, e event.Event) ([]byte, error) {
	out, err := json.Marshal(Message{
		Session: clock.SessionID(),
		Type:    e.Type,
		Time:    clock.Now(),
		Data:    e.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}
	return out, nil
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// Hub рассылает игровые события всем подключённым зрителям.
// OnEvent никогда не блокирует игровой тик: медленный клиент отключается.
type Hub struct {
	clock Clock

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub(clock Clock) *Hub {
	return &Hub{
		clock:   clock,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the spectator until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Hub: upgrade:", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	go c.writer()

	// Зрители ничего не присылают; чтение нужно только чтобы заметить закрытие.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
}

// OnEvent broadcasts e to every spectator.
func (h *Hub) OnEvent(e event.Event) {
	msg, err := Encode(h.clock, e)
	if err != nil {
		log.Printf("Hub: warning: %v", err)
		return
	}
	h.broadcast(msg)
}

// Subscribe registers the hub for every game event.
func (h *Hub) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(h, event.All...)
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("Hub: dropping slow client")
			h.drop(c)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Hub: spectator connected, %d online", n)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	h.drop(c)
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Hub: spectator left, %d online", n)
}

// drop must be called with mu held.
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
