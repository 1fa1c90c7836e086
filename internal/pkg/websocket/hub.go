package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Message types exchanged with advisor chat clients
const (
	TypeQuestion        = "question"
	TypeAnswer          = "answer"
	TypeStandingChanged = "standing_changed"
	TypeError           = "error"
)

// Message represents a frame sent over the advisor chat socket
type Message struct {
	Type       string    `json:"type"`
	StudentID  int64     `json:"studentId"`
	Content    string    `json:"content"`
	Intent     string    `json:"intent,omitempty"`
	CourseCode string    `json:"courseCode,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub tracks open advisor chat sessions per student and pushes notices to them
type Hub struct {
	// Registered clients organized by student ID
	clients map[int64]map[*Client]bool

	// Notices addressed to every session of one student
	notify chan *Message

	register   chan *Client
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Guards clients for readers outside the Run goroutine
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		notify:     make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "advisor_hub").Logger(),
	}
}

// Run owns the session registry until ctx is cancelled, then closes every session
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.notify:
			h.deliver(message)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// join hands a new session to the hub; false when the hub has stopped
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave removes a session; a stopped hub has already closed it
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.studentID]; !ok {
		h.clients[client.studentID] = make(map[*Client]bool)
	}
	h.clients[client.studentID][client] = true

	h.logger.Info().
		Int64("studentID", client.studentID).
		Int64("accountID", client.accountID).
		Str("addr", client.remoteAddr).
		Msg("Advisor session opened")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// removeLocked drops a client and closes its send channel; callers hold mu.
func (h *Hub) removeLocked(client *Client) {
	sessions, ok := h.clients[client.studentID]
	if !ok {
		return
	}
	if _, ok := sessions[client]; !ok {
		return
	}

	delete(sessions, client)
	close(client.send)
	if len(sessions) == 0 {
		delete(h.clients, client.studentID)
	}

	h.logger.Info().
		Int64("studentID", client.studentID).
		Int64("accountID", client.accountID).
		Str("addr", client.remoteAddr).
		Msg("Advisor session closed")
}

// deliver pushes a notice to every session of the addressed student. Sessions with a full buffer are dropped.
func (h *Hub) deliver(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().Err(err).Int64("studentID", message.StudentID).Msg("Failed to marshal notice")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.clients[message.StudentID]
	if !ok {
		h.logger.Debug().Int64("studentID", message.StudentID).Msg("No open sessions for notice")
		return
	}

	var slow []*Client
	for client := range sessions {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	for _, client := range slow {
		h.removeLocked(client)
	}

	h.logger.Debug().
		Int64("studentID", message.StudentID).
		Str("type", message.Type).
		Int("sessions", len(sessions)).
		Msg("Notice delivered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sessions := range h.clients {
		for client := range sessions {
			h.removeLocked(client)
		}
	}
}

// NotifyStudent queues a notice for all open sessions of a student. It never blocks; a full queue drops the notice.
func (h *Hub) NotifyStudent(studentID int64, msgType, content string) bool {
	msg := &Message{
		Type:      msgType,
		StudentID: studentID,
		Content:   content,
		Timestamp: time.Now(),
	}

	select {
	case h.notify <- msg:
		return true
	default:
		h.logger.Warn().Int64("studentID", studentID).Str("type", msgType).Msg("Notice queue full, dropping notice")
		return false
	}
}

// ClientsCount returns the number of open sessions for a student
func (h *Hub) ClientsCount(studentID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[studentID])
}
