package dto

import "time"

// SendChatMessageRequest entrada do envio de mensagem de suporte.
type SendChatMessageRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ChatMessageResponse saída de mensagem do chat de suporte.
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	SenderRole string    `json:"sender_role"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	Read       bool      `json:"read"`
}
