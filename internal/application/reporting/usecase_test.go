package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

var agora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de leitura
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct{ orders []*entity.ServiceOrder }

func (r *fakeOrderRepo) Create(context.Context, *entity.ServiceOrder) error { return nil }
func (r *fakeOrderRepo) GetByID(context.Context, string) (*entity.ServiceOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) Update(context.Context, *entity.ServiceOrder) error { return nil }
func (r *fakeOrderRepo) ListByCompany(context.Context, string) ([]*entity.ServiceOrder, error) {
	return r.orders, nil
}

type fakeTxRepo struct{ txs []*entity.Transaction }

func (r *fakeTxRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTxRepo) ListByCompany(context.Context, string) ([]*entity.Transaction, error) {
	return r.txs, nil
}
func (r *fakeTxRepo) Delete(context.Context, string) error { return nil }

type fakeTeamRepo struct{ members []*entity.TeamMember }

func (r *fakeTeamRepo) Create(context.Context, *entity.TeamMember) error { return nil }
func (r *fakeTeamRepo) GetByID(context.Context, string) (*entity.TeamMember, error) {
	return nil, nil
}
func (r *fakeTeamRepo) ListByCompany(context.Context, string) ([]*entity.TeamMember, error) {
	return r.members, nil
}
func (r *fakeTeamRepo) Delete(context.Context, string) error { return nil }

type fakeCustomerRepo struct{ customers []*entity.Customer }

func (r *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(context.Context, string) (*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(context.Context, *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) ListByCompany(context.Context, string) ([]*entity.Customer, error) {
	return r.customers, nil
}

type fakeCompanyRepo struct{ companies []*entity.Company }

func (r *fakeCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyRepo) GetByDocument(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) List(context.Context) ([]*entity.Company, error) {
	return r.companies, nil
}
func (r *fakeCompanyRepo) UpdateFields(context.Context, string, map[string]any) error { return nil }
func (r *fakeCompanyRepo) UpdateStatus(context.Context, string, string) error         { return nil }
func (r *fakeCompanyRepo) CompareAndSetLicense(context.Context, string, time.Time, string, string, time.Time) (bool, error) {
	return false, nil
}

func buildUseCase(orders []*entity.ServiceOrder, txs []*entity.Transaction, members []*entity.TeamMember, customers []*entity.Customer, companies []*entity.Company) *UseCase {
	uc := NewUseCase(
		&fakeOrderRepo{orders: orders},
		&fakeTxRepo{txs: txs},
		&fakeTeamRepo{members: members},
		&fakeCustomerRepo{customers: customers},
		&fakeCompanyRepo{companies: companies},
	)
	uc.now = func() time.Time { return agora }
	return uc
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func osConcluida(mechanicID string, labor, total float64, concludedAt time.Time) *entity.ServiceOrder {
	return &entity.ServiceOrder{
		ID: "os-" + mechanicID, CompanyID: "c1", Status: entity.OSCompleted,
		MechanicID: mechanicID, LaborValue: dec(labor), TotalValue: dec(total),
		UpdatedAt: concludedAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Range
// ──────────────────────────────────────────────────────────────────────────────

func TestRange_SemiabertoELimitesZerados(t *testing.T) {
	rng := Range{Start: agora, End: agora.Add(24 * time.Hour)}

	assert.True(t, rng.Contains(agora), "o início é inclusivo")
	assert.False(t, rng.Contains(agora.Add(24*time.Hour)), "o fim é exclusivo")
	assert.False(t, rng.Contains(agora.Add(-time.Second)))

	assert.True(t, Range{}.Contains(agora.Add(-1000*time.Hour)), "Range zero cobre todo o histórico")
}

// ──────────────────────────────────────────────────────────────────────────────
// FinancialSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestFinancialSummary_CombinaOSEConcluidasELancamentos(t *testing.T) {
	orders := []*entity.ServiceOrder{
		osConcluida("m1", 300, 1000, agora.Add(-time.Hour)),
		// Pendente não entra na receita.
		{ID: "os-p", CompanyID: "c1", Status: entity.OSInProgress, TotalValue: dec(9999), UpdatedAt: agora},
	}
	txs := []*entity.Transaction{
		{ID: "t1", Type: entity.TxIncome, Amount: dec(200), Date: agora.Add(-time.Hour)},
		{ID: "t2", Type: entity.TxExpense, Amount: dec(150), Date: agora.Add(-time.Hour)},
	}
	uc := buildUseCase(orders, txs, nil, nil, nil)

	out, err := uc.FinancialSummary(context.Background(), "c1", Range{})
	require.NoError(t, err)

	assert.True(t, out.OrderRevenue.Equal(dec(1000)))
	assert.True(t, out.Revenue.Equal(dec(1200)), "receita = OS concluídas + receitas manuais")
	assert.True(t, out.Expenses.Equal(dec(150)))
	assert.True(t, out.NetBalance.Equal(dec(1050)))
	assert.True(t, out.LaborTotal.Equal(dec(300)))
	assert.True(t, out.PartsTotal.Equal(dec(700)), "peças = total das OS - mão de obra")
	assert.True(t, out.LaborPercent.Equal(dec(30)))
	assert.True(t, out.PartsPercent.Equal(dec(70)))
	assert.Equal(t, 1, out.CompletedCount)
	assert.True(t, out.AverageTicket.Equal(dec(1000)))
}

func TestFinancialSummary_SemMovimento_TudoZeroSemDivisaoPorZero(t *testing.T) {
	uc := buildUseCase(nil, nil, nil, nil, nil)

	out, err := uc.FinancialSummary(context.Background(), "c1", Range{})
	require.NoError(t, err)

	assert.True(t, out.Revenue.IsZero())
	assert.True(t, out.LaborPercent.IsZero(), "percentual sem receita é zero, nunca NaN")
	assert.True(t, out.PartsPercent.IsZero())
	assert.True(t, out.AverageTicket.IsZero(), "ticket médio sem OS concluída é zero")
}

func TestFinancialSummary_FiltraPeriodoPorConclusao(t *testing.T) {
	dentro := osConcluida("m1", 100, 500, agora.Add(-time.Hour))
	fora := osConcluida("m2", 100, 800, agora.Add(-48*time.Hour))
	uc := buildUseCase([]*entity.ServiceOrder{dentro, fora}, nil, nil, nil, nil)

	out, err := uc.FinancialSummary(context.Background(), "c1", Range{Start: agora.Add(-24 * time.Hour), End: agora})
	require.NoError(t, err)

	assert.True(t, out.OrderRevenue.Equal(dec(500)), "OS concluída entra pelo instante da conclusão (UpdatedAt)")
	assert.Equal(t, 1, out.CompletedCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comissões x Ranking — bases distintas
// ──────────────────────────────────────────────────────────────────────────────

func TestCommissionReport_PagaSobreMaoDeObraApenas(t *testing.T) {
	members := []*entity.TeamMember{
		{ID: "m1", Name: "Ana", CommissionRate: dec(10)},
		{ID: "m2", Name: "Beto", CommissionRate: dec(50)},
	}
	orders := []*entity.ServiceOrder{
		osConcluida("m1", 200, 1000, agora.Add(-time.Hour)), // peças 800 não entram na base
	}
	uc := buildUseCase(orders, nil, members, nil, nil)

	out, err := uc.CommissionReport(context.Background(), "c1", Range{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	porID := map[string]decimal.Decimal{}
	for _, e := range out {
		porID[e.MemberID] = e.Commission
	}
	assert.True(t, porID["m1"].Equal(dec(20)), "10% de 200 de mão de obra; as peças ficam de fora")
	assert.True(t, porID["m2"].IsZero(), "sem OS atribuída a comissão é zero")
}

func TestTeamRanking_OrdenaPorProducaoTotal(t *testing.T) {
	members := []*entity.TeamMember{
		{ID: "m1", Name: "Ana", CommissionRate: dec(50)},
		{ID: "m2", Name: "Beto", CommissionRate: dec(5)},
	}
	orders := []*entity.ServiceOrder{
		// Ana faz mais mão de obra; Beto fatura mais no total (peças).
		osConcluida("m1", 500, 600, agora.Add(-time.Hour)),
		osConcluida("m2", 100, 2000, agora.Add(-time.Hour)),
	}
	uc := buildUseCase(orders, nil, members, nil, nil)

	ranking, err := uc.TeamRanking(context.Background(), "c1", Range{})
	require.NoError(t, err)
	require.Len(t, ranking, 2)

	assert.Equal(t, "m2", ranking[0].MemberID, "o ranking mede produção total, não a base de comissão")
	assert.True(t, ranking[0].Total.Equal(dec(2000)))
	assert.Equal(t, "m1", ranking[1].MemberID)

	comissoes, err := uc.CommissionReport(context.Background(), "c1", Range{})
	require.NoError(t, err)
	porID := map[string]decimal.Decimal{}
	for _, e := range comissoes {
		porID[e.MemberID] = e.Commission
	}
	assert.True(t, porID["m1"].GreaterThan(porID["m2"]),
		"quem lidera o ranking pode não liderar as comissões: as duas medidas são independentes")
}

// ──────────────────────────────────────────────────────────────────────────────
// WorkshopStats
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkshopStats_ContagensEMeta(t *testing.T) {
	company := &entity.Company{ID: "c1", Status: entity.CompanyActive, MonthlyGoal: dec(2000), ExpiresAt: agora.Add(24 * time.Hour)}
	orders := []*entity.ServiceOrder{
		osConcluida("m1", 100, 500, agora.Add(-time.Hour)),
		{ID: "o2", CompanyID: "c1", Status: entity.OSPending, UpdatedAt: agora},
		{ID: "o3", CompanyID: "c1", Status: entity.OSWaitingParts, UpdatedAt: agora},
		{ID: "o4", CompanyID: "c1", Status: entity.OSCanceled, UpdatedAt: agora},
	}
	customers := []*entity.Customer{{ID: "cl1"}, {ID: "cl2"}}
	uc := buildUseCase(orders, nil, nil, customers, []*entity.Company{company})

	out, err := uc.WorkshopStats(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalCustomers)
	assert.Equal(t, 1, out.CompletedOS)
	assert.Equal(t, 3, out.PendingOS, "toda OS não concluída conta como pendente")
	assert.True(t, out.Revenue.Equal(dec(500)))
	assert.True(t, out.GoalProgress.Equal(dec(25)), "500 de 2000 = 25% da meta")
}

func TestWorkshopStats_MetaEstourada_TetoEmCem(t *testing.T) {
	company := &entity.Company{ID: "c1", Status: entity.CompanyActive, MonthlyGoal: dec(100), ExpiresAt: agora.Add(24 * time.Hour)}
	orders := []*entity.ServiceOrder{osConcluida("m1", 0, 900, agora.Add(-time.Hour))}
	uc := buildUseCase(orders, nil, nil, nil, []*entity.Company{company})

	out, err := uc.WorkshopStats(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, out.GoalProgress.Equal(dec(100)), "progresso da meta satura em 100%")
}

func TestWorkshopStats_MetaZerada_ProgressoZero(t *testing.T) {
	company := &entity.Company{ID: "c1", Status: entity.CompanyActive, ExpiresAt: agora.Add(24 * time.Hour)}
	uc := buildUseCase(nil, nil, nil, nil, []*entity.Company{company})

	out, err := uc.WorkshopStats(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, out.GoalProgress.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// MasterOverview
// ──────────────────────────────────────────────────────────────────────────────

func TestMasterOverview_MRRRiscosEBloqueios(t *testing.T) {
	companies := []*entity.Company{
		{ID: "c1", Status: entity.CompanyActive, Plan: entity.PlanMonthly, ExpiresAt: agora.Add(30 * 24 * time.Hour)},
		{ID: "c2", Status: entity.CompanyActive, Plan: entity.PlanAnnual, ExpiresAt: agora.Add(3 * 24 * time.Hour)}, // em risco
		{ID: "c3", Status: entity.CompanyActive, Plan: entity.PlanDemo, ExpiresAt: agora.Add(30 * 24 * time.Hour)},
		{ID: "c4", Status: entity.CompanyBlocked, Plan: entity.PlanMonthly, ExpiresAt: agora.Add(30 * 24 * time.Hour)},
	}
	uc := buildUseCase(nil, nil, nil, nil, companies)

	out, err := uc.MasterOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, out.TotalCompanies)
	assert.Equal(t, 3, out.ActiveCompanies)
	assert.Equal(t, 1, out.BlockedCompanies)
	assert.True(t, out.MRR.Equal(dec(99.90).Add(dec(79.90))), "MRR soma só planos de oficinas ativas; DEMO vale zero e bloqueada não conta")
	assert.Equal(t, 1, out.ExpiringSoon)
	assert.True(t, out.BlockedRate.Equal(dec(25)))
}

func TestMasterOverview_CarteiraVazia(t *testing.T) {
	uc := buildUseCase(nil, nil, nil, nil, nil)

	out, err := uc.MasterOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalCompanies)
	assert.True(t, out.MRR.IsZero())
	assert.True(t, out.BlockedRate.IsZero(), "taxa sem oficinas é zero, não divisão por zero")
}
