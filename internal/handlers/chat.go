package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type ChatHandler struct {
	chatService services.ChatSessionService
}

func NewChatHandler(chatService services.ChatSessionService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (r chatMessageRequest) toMessage() services.ChatMessage {
	return services.ChatMessage{Role: r.Role, Content: r.Content, Timestamp: time.Now().UTC()}
}

// POST /chat/sessions
// body: { "role": "user", "content": "..." }
func (ch *ChatHandler) StartSession(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	session, err := ch.chatService.StartSession(c.Request.Context(), req.toMessage())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "start_session_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// POST /chat/sessions/:id/messages
// body: { "messages": [ { "role": "...", "content": "..." } ] }
func (ch *ChatHandler) AppendMessages(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": "invalid session id"})
		return
	}
	var req struct {
		Messages []chatMessageRequest `json:"messages" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	messages := make([]services.ChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = m.toMessage()
	}
	session, err := ch.chatService.AppendMessages(c.Request.Context(), sessionID, messages)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "append_messages_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GET /chat/sessions
func (ch *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := ch.chatService.ListSessions(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "list_sessions_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}
