package chat

import (
	"sync"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// subscriberBuffer capacidade do canal de cada assinante. Assinante lento
// perde mensagens em vez de travar o publicador; ele recupera o histórico
// completo pelo endpoint de listagem.
const subscriberBuffer = 16

// Broker fan-out em processo das mensagens de suporte, por tenant.
// Transporte-agnóstico: tanto o endpoint websocket quanto qualquer outro
// consumidor assinam o mesmo canal.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan entity.ChatMessage]struct{} // companyID -> assinantes
}

// NewBroker constrói o broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[chan entity.ChatMessage]struct{})}
}

// Subscribe registra um assinante para as mensagens do tenant. O cancel
// devolvido remove a assinatura e fecha o canal; deve ser chamado sempre.
func (b *Broker) Subscribe(companyID string) (<-chan entity.ChatMessage, func()) {
	ch := make(chan entity.ChatMessage, subscriberBuffer)

	b.mu.Lock()
	if b.subs[companyID] == nil {
		b.subs[companyID] = make(map[chan entity.ChatMessage]struct{})
	}
	b.subs[companyID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[companyID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(b.subs, companyID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish entrega a mensagem a todos os assinantes do tenant, sem bloquear.
func (b *Broker) Publish(msg entity.ChatMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[msg.CompanyID] {
		select {
		case ch <- msg:
		default: // assinante lento: descarta, o histórico cobre
		}
	}
}
