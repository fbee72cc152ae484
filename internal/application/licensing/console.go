package licensing

import (
	"context"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
)

// ListCompanies devolve todas as oficinas (mais recentes primeiro) com os dias
// restantes derivados, para a tabela de gestão de licenças do console master.
// "Vencida" aqui é sempre o valor calculado, nunca o status armazenado.
func (uc *UseCase) ListCompanies(ctx context.Context) ([]dto.CompanyOverviewItem, error) {
	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.CompanyOverviewItem, 0, len(companies))
	for _, c := range companies {
		ent := license.Evaluate(c, now)
		items = append(items, dto.CompanyOverviewItem{
			CompanyResponse: *toCompanyResponse(c),
			DaysRemaining:   ent.DaysRemaining,
			Expired:         ent.Expired,
		})
	}
	return items, nil
}
