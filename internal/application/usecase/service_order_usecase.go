package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// ServiceOrderUseCase ordens de serviço da oficina.
// TotalValue vem do chamador (mão de obra + itens); o servidor não o recalcula.
type ServiceOrderUseCase struct {
	repo repository.ServiceOrderRepository
}

// NewServiceOrderUseCase constrói o caso de uso.
func NewServiceOrderUseCase(repo repository.ServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

// Create abre uma OS. Status ausente assume PENDING.
func (uc *ServiceOrderUseCase) Create(ctx context.Context, companyID string, in dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OSPending
	}
	now := time.Now()
	os := &entity.ServiceOrder{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Vehicle:      in.Vehicle,
		Description:  in.Description,
		Status:       status,
		MechanicID:   in.MechanicID,
		MechanicName: in.MechanicName,
		LaborValue:   in.LaborValue,
		Items:        in.Items,
		TotalValue:   in.TotalValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, os); err != nil {
		return nil, err
	}
	return toServiceOrderResponse(os), nil
}

// Update aplica as alterações e avança UpdatedAt. É o UpdatedAt que posiciona
// a OS concluída nos períodos dos relatórios.
func (uc *ServiceOrderUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	os, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if os == nil || os.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		os.Description = *in.Description
	}
	if in.Status != nil {
		os.Status = *in.Status
	}
	if in.MechanicID != nil {
		os.MechanicID = *in.MechanicID
	}
	if in.MechanicName != nil {
		os.MechanicName = *in.MechanicName
	}
	if in.LaborValue != nil {
		os.LaborValue = *in.LaborValue
	}
	if in.Items != nil {
		os.Items = in.Items
	}
	if in.TotalValue != nil {
		os.TotalValue = *in.TotalValue
	}
	os.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, os); err != nil {
		return nil, err
	}
	return toServiceOrderResponse(os), nil
}

// GetByID devolve uma OS do tenant.
func (uc *ServiceOrderUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ServiceOrderResponse, error) {
	os, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if os == nil || os.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toServiceOrderResponse(os), nil
}

// List devolve as OS do tenant.
func (uc *ServiceOrderUseCase) List(ctx context.Context, companyID string) ([]dto.ServiceOrderResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceOrderResponse, 0, len(list))
	for _, os := range list {
		out = append(out, *toServiceOrderResponse(os))
	}
	return out, nil
}

func toServiceOrderResponse(os *entity.ServiceOrder) *dto.ServiceOrderResponse {
	return &dto.ServiceOrderResponse{
		ID:           os.ID,
		CompanyID:    os.CompanyID,
		CustomerID:   os.CustomerID,
		CustomerName: os.CustomerName,
		Vehicle:      os.Vehicle,
		Description:  os.Description,
		Status:       os.Status,
		MechanicID:   os.MechanicID,
		MechanicName: os.MechanicName,
		LaborValue:   os.LaborValue,
		Items:        os.Items,
		TotalValue:   os.TotalValue,
		CreatedAt:    os.CreatedAt,
		UpdatedAt:    os.UpdatedAt,
	}
}
