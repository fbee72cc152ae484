package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// ChatMessageRepository porto de persistência para o chat de suporte.
// ListByCompany não garante ordem; a camada de aplicação ordena por CreatedAt
// crescente (o store original não tinha índice composto para orderBy).
type ChatMessageRepository interface {
	Append(ctx context.Context, m *entity.ChatMessage) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.ChatMessage, error)
}
