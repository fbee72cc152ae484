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

// CustomerUseCase CRUD de clientes de uma oficina.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cadastra um cliente no tenant.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Phone:        in.Phone,
		VehicleModel: in.VehicleModel,
		VehiclePlate: in.VehiclePlate,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update edita um cliente existente do tenant.
func (uc *CustomerUseCase) Update(ctx context.Context, companyID, id string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Phone = in.Phone
	c.VehicleModel = in.VehicleModel
	c.VehiclePlate = in.VehiclePlate
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List devolve os clientes do tenant.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Phone:        c.Phone,
		VehicleModel: c.VehicleModel,
		VehiclePlate: c.VehiclePlate,
		CreatedAt:    c.CreatedAt,
	}
}
