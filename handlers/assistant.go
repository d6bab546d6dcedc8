package handlers

import (
	"errors"
	"net/http"

	"mutawwif/services/assistant"
	"mutawwif/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the chat assistant endpoints.
type AssistantHandler struct {
	Svc assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

// RespondHandler handles POST /api/assistant/respond. It classifies the text
// and returns the canned reply without touching any session.
func (h *AssistantHandler) RespondHandler(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Svc.Respond(req.Text))
}

// StartSessionHandler handles POST /api/assistant/session.
func (h *AssistantHandler) StartSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	session, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to start chat session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// SendMessageHandler handles POST /api/assistant/session/:sessionID/message.
func (h *AssistantHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	reply, intent, err := h.Svc.SendMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		var notFound assistant.SessionNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to handle chat message", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent": intent,
		"reply":  reply,
	})
}

// GetTranscriptHandler handles GET /api/assistant/session/:sessionID.
func (h *AssistantHandler) GetTranscriptHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	session, err := h.Svc.GetTranscript(c.Request.Context(), sessionID)
	if err != nil {
		var notFound assistant.SessionNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch transcript", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// QuickQuestionsHandler handles GET /api/assistant/quick-questions.
func (h *AssistantHandler) QuickQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.QuickQuestions())
}
