// Package reporting agrega os números do negócio: resumo financeiro por
// período, comissões, ranking de produção, painel do tenant e visão de
// portfólio do operador. Tudo é redução sobre coleções já carregadas; o
// engine não grava nada.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
)

// UseCase motor de agregação e relatórios.
type UseCase struct {
	orderRepo    repository.ServiceOrderRepository
	txRepo       repository.TransactionRepository
	teamRepo     repository.TeamMemberRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	now          func() time.Time
}

// NewUseCase constrói o motor de relatórios.
func NewUseCase(
	orderRepo repository.ServiceOrderRepository,
	txRepo repository.TransactionRepository,
	teamRepo repository.TeamMemberRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		txRepo:       txRepo,
		teamRepo:     teamRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		now:          time.Now,
	}
}

// FinancialSummary resumo financeiro do período: receita (OS concluídas +
// receitas manuais), despesas, saldo e o mix mão de obra/peças.
func (uc *UseCase) FinancialSummary(ctx context.Context, companyID string, rng Range) (*dto.FinancialSummaryDTO, error) {
	var (
		orders []*entity.ServiceOrder
		txs    []*entity.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = uc.orderRepo.ListByCompany(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		txs, err = uc.txRepo.ListByCompany(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resumo financeiro: %w", err)
	}

	orderRevenue, labor, completed := orderTotals(orders, rng)
	income, expense := transactionTotals(txs, rng)
	parts := orderRevenue.Sub(labor)
	revenue := orderRevenue.Add(income)

	return &dto.FinancialSummaryDTO{
		Revenue:        revenue,
		OrderRevenue:   orderRevenue,
		ManualIncome:   income,
		Expenses:       expense,
		NetBalance:     revenue.Sub(expense),
		LaborTotal:     labor,
		PartsTotal:     parts,
		LaborPercent:   safePercent(labor, orderRevenue),
		PartsPercent:   safePercent(parts, orderRevenue),
		CompletedCount: completed,
		AverageTicket:  safeDiv(orderRevenue, completed),
	}, nil
}

// CommissionReport comissões do período, pagas somente sobre mão de obra.
func (uc *UseCase) CommissionReport(ctx context.Context, companyID string, rng Range) ([]dto.CommissionEntryDTO, error) {
	orders, members, err := uc.ordersAndTeam(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("relatório de comissões: %w", err)
	}
	return commissionEntries(orders, members, rng), nil
}

// TeamRanking ranking de produção do período, por valor total de OS atribuída
// (mão de obra + peças). É uma medida distinta da base de comissão.
func (uc *UseCase) TeamRanking(ctx context.Context, companyID string, rng Range) ([]dto.RankingEntryDTO, error) {
	orders, members, err := uc.ordersAndTeam(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("ranking da equipe: %w", err)
	}
	return rankingEntries(orders, members, rng), nil
}

func (uc *UseCase) ordersAndTeam(ctx context.Context, companyID string) ([]*entity.ServiceOrder, []*entity.TeamMember, error) {
	var (
		orders  []*entity.ServiceOrder
		members []*entity.TeamMember
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = uc.orderRepo.ListByCompany(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		members, err = uc.teamRepo.ListByCompany(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, members, nil
}

// WorkshopStats painel de indicadores do tenant: contagens de OS, receita
// histórica das concluídas, ticket médio, mix e ranking, mais o progresso da
// meta mensal. As quatro leituras saem em paralelo.
func (uc *UseCase) WorkshopStats(ctx context.Context, companyID string) (*dto.WorkshopStatsDTO, error) {
	var (
		orders    []*entity.ServiceOrder
		members   []*entity.TeamMember
		customers []*entity.Customer
		company   *entity.Company
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = uc.orderRepo.ListByCompany(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		members, err = uc.teamRepo.ListByCompany(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		customers, err = uc.customerRepo.ListByCompany(gctx, companyID)
		return err
	})
	g.Go(func() (err error) {
		company, err = uc.companyRepo.GetByID(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("painel de indicadores: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	all := Range{} // painel usa o histórico completo
	revenue, labor, completed := orderTotals(orders, all)
	pending := 0
	for _, os := range orders {
		if os.Status != entity.OSCompleted {
			pending++
		}
	}

	progress := decimal.Zero
	if company.MonthlyGoal.IsPositive() {
		progress = safePercent(revenue, company.MonthlyGoal)
		if progress.GreaterThan(decimal.NewFromInt(100)) {
			progress = decimal.NewFromInt(100)
		}
	}

	return &dto.WorkshopStatsDTO{
		TotalCustomers: len(customers),
		PendingOS:      pending,
		CompletedOS:    completed,
		Revenue:        revenue,
		AverageTicket:  safeDiv(revenue, completed),
		LaborTotal:     labor,
		PartsTotal:     revenue.Sub(labor),
		GoalProgress:   progress,
		Ranking:        rankingEntries(orders, members, all),
	}, nil
}

// MasterOverview visão de portfólio do operador: MRR dos planos ativos, taxa
// de bloqueio e contagem de licenças ativas vencendo em até 7 dias.
func (uc *UseCase) MasterOverview(ctx context.Context) (*dto.MasterOverviewDTO, error) {
	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("visão de portfólio: %w", err)
	}
	now := uc.now()

	overview := &dto.MasterOverviewDTO{TotalCompanies: len(companies)}
	mrr := decimal.Zero
	for _, c := range companies {
		if c.Status == entity.CompanyActive {
			overview.ActiveCompanies++
			mrr = mrr.Add(license.MRR(c.Plan))
			if license.AtRisk(c, now) {
				overview.ExpiringSoon++
			}
		} else {
			overview.BlockedCompanies++
		}
	}
	overview.MRR = mrr
	overview.BlockedRate = safePercent(
		decimal.NewFromInt(int64(overview.BlockedCompanies)),
		decimal.NewFromInt(int64(len(companies))),
	)
	return overview, nil
}
