package response

import "curtaincall/internal/usecase"

type ChatResponse struct {
	Message string           `json:"message"`
	Orders  []*OrderResponse `json:"orders,omitempty"`
}

func FromChatReply(reply *usecase.ChatReply) *ChatResponse {
	resp := &ChatResponse{Message: reply.Message}
	if reply.Orders != nil {
		resp.Orders = FromOrders(reply.Orders)
	}
	return resp
}
