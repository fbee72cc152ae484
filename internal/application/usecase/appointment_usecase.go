package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// AppointmentUseCase agenda da oficina.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase constrói o caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create grava um agendamento. Status ausente assume SCHEDULED.
func (uc *AppointmentUseCase) Create(ctx context.Context, companyID string, in dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.AppointmentScheduled
	}
	a := &entity.Appointment{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Vehicle:      in.Vehicle,
		Date:         in.Date,
		Description:  in.Description,
		Status:       status,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// Update edita um agendamento do tenant.
func (uc *AppointmentUseCase) Update(ctx context.Context, companyID, id string, in dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	a.CustomerID = in.CustomerID
	a.CustomerName = in.CustomerName
	a.Vehicle = in.Vehicle
	a.Date = in.Date
	a.Description = in.Description
	if in.Status != "" {
		a.Status = in.Status
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// Delete remove um agendamento do tenant.
func (uc *AppointmentUseCase) Delete(ctx context.Context, companyID, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil || a.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve os agendamentos do tenant.
func (uc *AppointmentUseCase) List(ctx context.Context, companyID string) ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAppointmentResponse(a))
	}
	return out, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:           a.ID,
		CompanyID:    a.CompanyID,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Vehicle:      a.Vehicle,
		Date:         a.Date,
		Description:  a.Description,
		Status:       a.Status,
	}
}
