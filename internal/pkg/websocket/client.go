package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Time allowed to compute one answer
	answerTimeout = 10 * time.Second

	// Frames may exceed the question budget so that oversized questions get an error frame
	frameLimitFactor = 4
	minFrameLimit    = 4096
)

var (
	newline = []byte{'\n'}
	space   = []byte{' '}
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Answerer produces the advisor reply for one question of one student
type Answerer interface {
	Answer(ctx context.Context, studentID int64, question string) (advisor.Reply, error)
}

// Client is one open advisor chat session
type Client struct {
	hub *Hub

	conn *websocket.Conn

	// Buffered channel of hub notices; closed by the hub
	send chan []byte

	// Buffered channel of answers; closed by readPump
	replies chan []byte

	studentID  int64
	accountID  int64
	remoteAddr string

	answerer Answerer
	maxBytes int64

	logger zerolog.Logger
}

// frameLimit is the read limit for one inbound frame given the question budget
func frameLimit(maxQuestionBytes int64) int64 {
	limit := maxQuestionBytes * frameLimitFactor
	if limit < minFrameLimit {
		limit = minFrameLimit
	}
	return limit
}

// parseQuestion accepts either a JSON Message of type question or a plain text frame
func parseQuestion(frame []byte) string {
	frame = bytes.TrimSpace(bytes.Replace(frame, newline, space, -1))
	if len(frame) > 0 && frame[0] == '{' {
		var msg Message
		if err := json.Unmarshal(frame, &msg); err == nil && (msg.Type == "" || msg.Type == TypeQuestion) {
			return msg.Content
		}
	}
	return string(frame)
}

// answer runs the advisor for one question and encodes the reply frame
func (c *Client) answer(question string) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), answerTimeout)
	defer cancel()

	out := Message{StudentID: c.studentID, Timestamp: time.Now()}

	reply, err := c.answerer.Answer(ctx, c.studentID, question)
	if err != nil {
		out.Type = TypeError
		if errors.Is(err, apperrors.ErrBadRequest) {
			c.logger.Debug().Err(err).Int64("studentID", c.studentID).Msg("Question rejected")
			out.Content = err.Error()
		} else {
			c.logger.Error().Err(err).Int64("studentID", c.studentID).Msg("Advisor failed to answer")
			out.Content = "The advisor could not answer right now. Please try again."
		}
	} else {
		out.Type = TypeAnswer
		out.Content = reply.Text
		out.Intent = string(reply.Intent)
		out.CourseCode = reply.CourseCode
	}

	data, _ := json.Marshal(out)
	return data
}

// readPump turns each inbound frame into a question and queues the answer for this session only
func (c *Client) readPump() {
	defer func() {
		close(c.replies)
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(frameLimit(c.maxBytes))
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Int64("studentID", c.studentID).Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Int64("studentID", c.studentID).Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().Err(err).Int64("studentID", c.studentID).Msg("WebSocket read error")
			}
			break
		}

		data := c.answer(parseQuestion(frame))

		select {
		case c.replies <- data:
		default:
			c.logger.Warn().Int64("studentID", c.studentID).Msg("Send buffer full, closing session")
			return
		}
	}
}

// writePump pumps answers and notices to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	replies := c.replies
	for {
		select {
		case reply, ok := <-replies:
			if !ok {
				replies = nil
				continue
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return
			}

		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
