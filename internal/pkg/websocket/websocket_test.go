package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

type fakeAnswerer struct {
	fail   bool
	maxLen int
}

func (f *fakeAnswerer) Answer(_ context.Context, studentID int64, question string) (advisor.Reply, error) {
	if f.fail {
		return advisor.Reply{}, errors.New("store down")
	}
	if f.maxLen > 0 && len(question) > f.maxLen {
		return advisor.Reply{}, apperrors.NewBadRequestError("question is too long")
	}
	return advisor.Reply{Intent: advisor.IntentFallback, Text: "echo: " + question}, nil
}

func startServer(t *testing.T, answerer Answerer) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/students/:id/advisor/ws", NewHandler(hub, answerer, 1024, zerolog.Nop()).HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestAdvisorSession_AnswersPlainAndJSONFrames(t *testing.T) {
	_, url := startServer(t, &fakeAnswerer{})
	conn := dial(t, url+"/students/7/advisor/ws")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("what is the weather?")))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeAnswer, msg.Type)
	assert.Equal(t, int64(7), msg.StudentID)
	assert.Equal(t, "echo: what is the weather?", msg.Content)
	assert.Equal(t, "fallback", msg.Intent)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeQuestion, Content: "how do I improve my gpa"}))
	msg = readMessage(t, conn)
	assert.Equal(t, "echo: how do I improve my gpa", msg.Content)
}

func TestAdvisorSession_ErrorFrame(t *testing.T) {
	_, url := startServer(t, &fakeAnswerer{fail: true})
	conn := dial(t, url+"/students/7/advisor/ws")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
}

func TestAdvisorSession_OversizedQuestionKeepsSession(t *testing.T) {
	_, url := startServer(t, &fakeAnswerer{maxLen: 1024})
	conn := dial(t, url+"/students/7/advisor/ws")

	long := "why can't I take CSC201? " + strings.Repeat("x", 1500)
	require.NoError(t, conn.WriteJSON(Message{Type: TypeQuestion, Content: long}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Equal(t, "question is too long", msg.Content)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	msg = readMessage(t, conn)
	assert.Equal(t, TypeAnswer, msg.Type)
	assert.Equal(t, "echo: hello", msg.Content)
}

func TestFrameLimit(t *testing.T) {
	assert.Equal(t, int64(4096), frameLimit(16))
	assert.Equal(t, int64(4096), frameLimit(1024))
	assert.Equal(t, int64(8192), frameLimit(2048))
}

func TestNotifyStudent_ReachesOnlyThatStudent(t *testing.T) {
	hub, url := startServer(t, &fakeAnswerer{})
	mine := dial(t, url+"/students/7/advisor/ws")
	other := dial(t, url+"/students/8/advisor/ws")

	require.Eventually(t, func() bool {
		return hub.ClientsCount(7) == 1 && hub.ClientsCount(8) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.True(t, hub.NotifyStudent(7, TypeStandingChanged, "A result was recorded for CSC101"))

	msg := readMessage(t, mine)
	assert.Equal(t, TypeStandingChanged, msg.Type)
	assert.Equal(t, "A result was recorded for CSC101", msg.Content)

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestHandleConnection_BadID(t *testing.T) {
	_, url := startServer(t, &fakeAnswerer{})
	_, resp, err := websocket.DefaultDialer.Dial(url+"/students/abc/advisor/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHub_SessionsClosedOnShutdown(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := &Client{hub: hub, send: make(chan []byte, 1), studentID: 3}
	require.True(t, hub.join(client))
	assert.Equal(t, 1, hub.ClientsCount(3))

	cancel()
	<-stopped

	_, open := <-client.send
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientsCount(3))
	assert.False(t, hub.join(&Client{hub: hub, send: make(chan []byte), studentID: 4}))
}

func TestParseQuestion(t *testing.T) {
	assert.Equal(t, "why can't I take CSC201", parseQuestion([]byte("  why can't I\ntake CSC201 ")))
	assert.Equal(t, "improve gpa", parseQuestion([]byte(`{"type":"question","content":"improve gpa"}`)))
	assert.Equal(t, `{"type":"other"}`, parseQuestion([]byte(`{"type":"other"}`)))
}
