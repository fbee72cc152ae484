package http

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/chat"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// userSource contrato mínimo para resolver o nome do remetente.
type userSource interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// ChatHandler chat de suporte entre tenant e operador. Polling (GET/POST) e
// websocket consomem o mesmo fluxo de mensagens.
type ChatHandler struct {
	stream *chat.Stream
	users  userSource
	log    zerolog.Logger
}

// NewChatHandler constrói o handler do chat.
func NewChatHandler(stream *chat.Stream, users userSource, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{stream: stream, users: users, log: log}
}

// chatCompanyID resolve o canal: o tenant usa a própria oficina; o MASTER
// indica a oficina via query param company_id.
func (h *ChatHandler) chatCompanyID(role, own, param string) string {
	if role == entity.RoleMaster {
		return param
	}
	return own
}

func senderRoleFor(role string) string {
	if role == entity.RoleMaster {
		return entity.SenderMaster
	}
	return entity.SenderClient
}

// History godoc
// @Summary      Histórico do chat em ordem cronológica
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string  false  "oficina (só MASTER)"
// @Success      200  {array}  dto.ChatMessageResponse
// @Router       /api/chat/messages [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	companyID := h.chatCompanyID(GetRole(c), GetCompanyID(c), c.Query("company_id"))
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id é obrigatório"})
	}
	out, err := h.stream.History(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar mensagem no chat
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string                     false  "oficina (só MASTER)"
// @Param        body        body   dto.SendChatMessageRequest true   "texto"
// @Success      201  {object}  dto.ChatMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chat/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.SendChatMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	companyID := h.chatCompanyID(GetRole(c), GetCompanyID(c), c.Query("company_id"))
	out, err := h.stream.Send(c.Context(), companyID, senderRoleFor(GetRole(c)), h.senderName(c.Context(), GetUserID(c)), in.Text)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text e company_id são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Websocket devolve o handler da conexão em tempo real. As mensagens novas do
// canal chegam como JSON; frames recebidos com {"text": ...} são publicados.
func (h *ChatHandler) Websocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		role, _ := conn.Locals(LocalRole).(string)
		own, _ := conn.Locals(LocalCompanyID).(string)
		userID, _ := conn.Locals(LocalUserID).(string)
		companyID := h.chatCompanyID(role, own, conn.Query("company_id"))
		if companyID == "" {
			_ = conn.Close()
			return
		}

		msgs, cancel := h.stream.Subscribe(companyID)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for m := range msgs {
				if err := conn.WriteJSON(m); err != nil {
					return
				}
			}
		}()

		ctx := context.Background()
		senderName := h.senderName(ctx, userID)
		senderRole := senderRoleFor(role)
		for {
			var in dto.SendChatMessageRequest
			if err := conn.ReadJSON(&in); err != nil {
				break
			}
			if _, err := h.stream.Send(ctx, companyID, senderRole, senderName, in.Text); err != nil {
				h.log.Warn().Err(err).Str("company_id", companyID).Msg("falha ao publicar mensagem do websocket")
			}
		}
		_ = conn.Close()
		<-done
	})
}

func (h *ChatHandler) senderName(ctx context.Context, userID string) string {
	u, err := h.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return ""
	}
	return u.Name
}
