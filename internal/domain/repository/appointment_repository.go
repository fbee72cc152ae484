package repository

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// AppointmentRepository porto de persistência para agendamentos.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}
