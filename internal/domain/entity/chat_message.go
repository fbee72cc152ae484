package entity

import "time"

// Remetentes possíveis de uma mensagem de suporte.
const (
	SenderMaster = "MASTER"
	SenderClient = "CLIENT"
)

// ChatMessage mensagem do chat de suporte entre o tenant e o operador da plataforma.
type ChatMessage struct {
	ID         string
	CompanyID  string
	SenderRole string // MASTER ou CLIENT
	SenderName string
	Text       string
	CreatedAt  time.Time
	Read       bool
}
