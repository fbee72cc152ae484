package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// ProductUseCase CRUD do estoque de peças da oficina.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto no estoque.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		Quantity:  in.Quantity,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update edita um produto do tenant.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.CostPrice = in.CostPrice
	p.SellPrice = in.SellPrice
	p.Quantity = in.Quantity
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete remove um produto do tenant.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve o estoque do tenant.
func (uc *ProductUseCase) List(ctx context.Context, companyID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		Quantity:  p.Quantity,
	}
}
