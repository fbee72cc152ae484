package postgres

import (
	"context"
	"fmt"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

var _ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)

// ChatMessageRepo implementação do porto ChatMessageRepository sobre PostgreSQL.
type ChatMessageRepo struct {
	q Querier
}

// NewChatMessageRepository constrói o adaptador do chat de suporte.
func NewChatMessageRepository(q Querier) *ChatMessageRepo {
	return &ChatMessageRepo{q: q}
}

// Append persiste uma mensagem de chat.
func (r *ChatMessageRepo) Append(ctx context.Context, m *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, company_id, sender_role, sender_name, text, created_at, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, m.ID, m.CompanyID, m.SenderRole, m.SenderName, m.Text, m.CreatedAt, m.Read)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// ListByCompany devolve as mensagens do tenant, sem garantia de ordem.
func (r *ChatMessageRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, company_id, sender_role, sender_name, text, created_at, read
		FROM chat_messages WHERE company_id = $1`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var list []*entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.SenderRole, &m.SenderName, &m.Text, &m.CreatedAt, &m.Read); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
