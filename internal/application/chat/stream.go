// Package chat implementa o canal de suporte entre cada oficina e o operador
// da plataforma como um fluxo de mensagens: histórico persistido + assinatura
// em tempo real. Polling e push consomem a mesma abstração.
package chat

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// Stream caso de uso do chat de suporte.
type Stream struct {
	repo   repository.ChatMessageRepository
	broker *Broker
	now    func() time.Time
}

// NewStream constrói o fluxo de mensagens.
func NewStream(repo repository.ChatMessageRepository, broker *Broker) *Stream {
	return &Stream{repo: repo, broker: broker, now: time.Now}
}

// Send persiste e publica uma mensagem no canal do tenant.
func (s *Stream) Send(ctx context.Context, companyID, senderRole, senderName, text string) (*dto.ChatMessageResponse, error) {
	if companyID == "" || text == "" {
		return nil, domain.ErrInvalidInput
	}
	if senderRole != entity.SenderMaster && senderRole != entity.SenderClient {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.ChatMessage{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		SenderRole: senderRole,
		SenderName: senderName,
		Text:       text,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, err
	}
	s.broker.Publish(*msg)
	return toChatMessageResponse(msg), nil
}

// History devolve as mensagens do tenant em ordem crescente de CreatedAt.
// A ordenação é feita aqui, não na query.
func (s *Stream) History(ctx context.Context, companyID string) ([]dto.ChatMessageResponse, error) {
	msgs, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *toChatMessageResponse(m))
	}
	return out, nil
}

// Subscribe assina as mensagens novas do tenant.
func (s *Stream) Subscribe(companyID string) (<-chan entity.ChatMessage, func()) {
	return s.broker.Subscribe(companyID)
}

func toChatMessageResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		ID:         m.ID,
		CompanyID:  m.CompanyID,
		SenderRole: m.SenderRole,
		SenderName: m.SenderName,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
		Read:       m.Read,
	}
}
