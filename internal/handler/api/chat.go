package api

import (
	"net/http"

	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUseCase usecase.ChatUseCase
}

func NewChatHandler(chatUseCase usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// @Summary Order-lookup chat
// @Description Booking questions answer with the caller's orders; everything else passes through
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Chat message"
// @Success 200 {object} resdto.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Handle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reply, err := h.chatUseCase.Handle(c.Request.Context(), userID, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chat request failed"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromChatReply(reply))
}
