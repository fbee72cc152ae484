package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// fakeChatRepo devolve as mensagens fora de ordem de propósito: o store não
// garante ordenação e o Stream deve ordenar na aplicação.
type fakeChatRepo struct {
	msgs []*entity.ChatMessage
}

func (r *fakeChatRepo) Append(_ context.Context, m *entity.ChatMessage) error {
	mm := *m
	r.msgs = append(r.msgs, &mm)
	return nil
}

func (r *fakeChatRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	// Invertido: o mais novo primeiro, para forçar a ordenação do Stream.
	for i := len(r.msgs) - 1; i >= 0; i-- {
		if r.msgs[i].CompanyID == companyID {
			out = append(out, r.msgs[i])
		}
	}
	return out, nil
}

var base = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func buildStream(repo *fakeChatRepo) *Stream {
	s := NewStream(repo, NewBroker())
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestSend_PersisteEPublica(t *testing.T) {
	repo := &fakeChatRepo{}
	s := buildStream(repo)

	msgs, cancel := s.Subscribe("c1")
	defer cancel()

	out, err := s.Send(context.Background(), "c1", entity.SenderClient, "João", "meu boleto venceu")
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.SenderClient, out.SenderRole)

	require.Len(t, repo.msgs, 1, "a mensagem deve estar persistida")

	select {
	case recebida := <-msgs:
		assert.Equal(t, "meu boleto venceu", recebida.Text)
	case <-time.After(time.Second):
		t.Fatal("assinante não recebeu a mensagem publicada")
	}
}

func TestSend_Validacao(t *testing.T) {
	s := buildStream(&fakeChatRepo{})

	_, err := s.Send(context.Background(), "", entity.SenderClient, "João", "oi")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "companyID vazio")

	_, err = s.Send(context.Background(), "c1", entity.SenderClient, "João", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "texto vazio")

	_, err = s.Send(context.Background(), "c1", "SUPORTE_N2", "João", "oi")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "remetente fora de MASTER/CLIENT")
}

func TestHistory_OrdenaCrescentePorCreatedAt(t *testing.T) {
	repo := &fakeChatRepo{}
	s := buildStream(repo)

	_, err := s.Send(context.Background(), "c1", entity.SenderClient, "João", "primeira")
	require.NoError(t, err)
	_, err = s.Send(context.Background(), "c1", entity.SenderMaster, "Suporte", "segunda")
	require.NoError(t, err)
	_, err = s.Send(context.Background(), "c1", entity.SenderClient, "João", "terceira")
	require.NoError(t, err)
	// Mensagem de outro tenant não vaza.
	_, err = s.Send(context.Background(), "c2", entity.SenderClient, "Maria", "outro canal")
	require.NoError(t, err)

	hist, err := s.History(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, hist, 3)

	assert.Equal(t, "primeira", hist[0].Text, "mesmo com o store devolvendo invertido, o histórico sai cronológico")
	assert.Equal(t, "segunda", hist[1].Text)
	assert.Equal(t, "terceira", hist[2].Text)
}

func TestBroker_FanOutPorTenant(t *testing.T) {
	b := NewBroker()

	a1, cancelA1 := b.Subscribe("c1")
	a2, cancelA2 := b.Subscribe("c1")
	outro, cancelOutro := b.Subscribe("c2")
	defer cancelA1()
	defer cancelA2()
	defer cancelOutro()

	b.Publish(entity.ChatMessage{ID: "m1", CompanyID: "c1", Text: "oi"})

	for _, ch := range []<-chan entity.ChatMessage{a1, a2} {
		select {
		case m := <-ch:
			assert.Equal(t, "m1", m.ID)
		case <-time.After(time.Second):
			t.Fatal("assinante do tenant não recebeu")
		}
	}

	select {
	case <-outro:
		t.Fatal("mensagem vazou para o canal de outro tenant")
	default:
	}
}

func TestBroker_CancelFechaOCanal(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe("c1")

	cancel()
	_, aberto := <-ch
	assert.False(t, aberto, "cancel deve fechar o canal do assinante")

	// Publicar depois do cancel não pode travar nem entrar em pânico.
	b.Publish(entity.ChatMessage{ID: "m1", CompanyID: "c1"})
	cancel() // segundo cancel é inofensivo
}

func TestBroker_AssinanteLentoNaoTravaOPublicador(t *testing.T) {
	b := NewBroker()
	_, cancel := b.Subscribe("c1")
	defer cancel()

	pronto := make(chan struct{})
	go func() {
		// Estoura o buffer do assinante: os excedentes são descartados.
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(entity.ChatMessage{ID: "m", CompanyID: "c1"})
		}
		close(pronto)
	}()

	select {
	case <-pronto:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish bloqueou com assinante lento")
	}
}
