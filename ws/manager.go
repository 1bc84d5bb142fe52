package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait = 5 * time.Second

	// events queued per client before it is considered stalled
	sendBuffer = 32
)

// Event is the envelope written to every feed client.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// client owns one connection. Only its writer goroutine writes to conn;
// send is closed by the manager when the client is removed.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Manager keeps track of connected feed clients and fans service events
// out to them without blocking the publisher.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*client // clientID -> client
	log     logrus.FieldLogger
}

func NewManager(log logrus.FieldLogger) *Manager {
	return &Manager{
		clients: make(map[string]*client),
		log:     log,
	}
}

// Register adds a client connection, replacing any existing one, and starts
// its writer.
func (m *Manager) Register(clientID string, conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	m.mu.Lock()
	if old, ok := m.clients[clientID]; ok {
		m.closeLocked(clientID, old)
	}
	m.clients[clientID] = c
	m.mu.Unlock()

	go m.writePump(clientID, c)
}

// Unregister removes a client connection if conn is still the registered
// one for clientID.
func (m *Manager) Unregister(clientID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[clientID]; ok && c.conn == conn {
		m.closeLocked(clientID, c)
	}
}

func (m *Manager) remove(clientID string, c *client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.clients[clientID]; ok && cur == c {
		m.closeLocked(clientID, c)
	}
}

// closeLocked drops c from the registry. Callers hold mu for writing.
func (m *Manager) closeLocked(clientID string, c *client) {
	delete(m.clients, clientID)
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (m *Manager) writePump(clientID string, c *client) {
	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			m.log.WithError(err).WithField("client", clientID).Warn("dropping feed client")
			m.remove(clientID, c)
			return
		}
	}
}

// IsConnected returns whether a client is currently connected.
func (m *Manager) IsConnected(clientID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clients[clientID]
	return ok
}

// List returns a copy of current connected client IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	return ids
}

// Publish queues the event for every connected client and returns
// immediately. A client whose queue is full is dropped.
func (m *Manager) Publish(event string, payload interface{}) {
	b, err := json.Marshal(Event{Type: event, Data: payload, Timestamp: time.Now().UTC()})
	if err != nil {
		m.log.WithError(err).WithField("event", event).Error("failed to encode feed event")
		return
	}

	var stalled map[string]*client

	m.mu.RLock()
	for id, c := range m.clients {
		select {
		case c.send <- b:
		default:
			if stalled == nil {
				stalled = make(map[string]*client)
			}
			stalled[id] = c
		}
	}
	m.mu.RUnlock()

	for id, c := range stalled {
		m.log.WithField("client", id).Warn("feed client too slow, dropping")
		m.remove(id, c)
	}
}
