package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/helpers"
)

// AccountIDKey is the gin context key the auth middleware stores the account id under
const AccountIDKey = "accountID"

// Handler for advisor chat WebSocket connections
type Handler struct {
	hub      *Hub
	answerer Answerer
	maxBytes int64
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Inbound frames are capped at a multiple of maxQuestionBytes.
func NewHandler(hub *Hub, answerer Answerer, maxQuestionBytes int, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		answerer: answerer,
		maxBytes: int64(maxQuestionBytes),
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Open an advisor chat session
// @Description Upgrades to a WebSocket. Each text frame is a question, each reply is a JSON frame. A standing_changed frame is pushed when a result is recorded for the student.
// @Tags advisor, websocket
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /students/{id}/advisor/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	studentID, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid student ID")))
		return
	}

	accountID := c.GetInt64(AccountIDKey)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("studentID", studentID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:        h.hub,
		conn:       conn,
		send:       make(chan []byte, 16),
		replies:    make(chan []byte, 16),
		studentID:  studentID,
		accountID:  accountID,
		remoteAddr: conn.RemoteAddr().String(),
		answerer:   h.answerer,
		maxBytes:   h.maxBytes,
		logger:     h.logger,
	}
	if !client.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
