package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fortune/internal/assistant"
)

// Assistant answers chat requests.
type Assistant interface {
	Chat(ctx context.Context, req assistant.ChatRequest) assistant.ChatResponse
}

// ChatHandler handles the assistant.
type ChatHandler struct {
	assistant Assistant
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(a Assistant) *ChatHandler {
	return &ChatHandler{assistant: a}
}

// Chat handles a question about a portfolio or a chart.
// @Summary     Ask the assistant
// @Description Answers questions grounded in the client's portfolio analytics and the visualization on screen
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Param       request body assistant.ChatRequest true "Question"
// @Success     200 {object} assistant.ChatResponse "Answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req assistant.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	c.JSON(http.StatusOK, h.assistant.Chat(c.Request.Context(), req))
}
