package usecase

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

// TransactionUseCase livro-caixa manual da oficina.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase constrói o caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create grava um lançamento. Data zerada assume agora.
func (uc *TransactionUseCase) Create(ctx context.Context, companyID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Description == "" || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.TxIncome && in.Type != entity.TxExpense {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        date,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// Delete remove um lançamento do tenant.
func (uc *TransactionUseCase) Delete(ctx context.Context, companyID, id string) error {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	for _, t := range list {
		if t.ID == id {
			return uc.repo.Delete(ctx, id)
		}
	}
	return domain.ErrNotFound
}

// List devolve os lançamentos do tenant, mais recentes primeiro.
// A ordenação é feita aqui, não na query.
func (uc *TransactionUseCase) List(ctx context.Context, companyID string) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTransactionResponse(t))
	}
	return out, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Date:        t.Date,
	}
}
