package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
)

// Range período semiaberto [Start, End). Limite zerado significa sem limite, então
// o Range zero cobre todo o histórico.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains informa se o instante cai dentro do período.
func (r Range) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !t.Before(r.End) {
		return false
	}
	return true
}

// orderTotals reduz as OS concluídas do período: receita total, mão de obra e
// contagem. OS concluída entra pelo UpdatedAt (instante da conclusão).
func orderTotals(orders []*entity.ServiceOrder, rng Range) (revenue, labor decimal.Decimal, completed int) {
	revenue, labor = decimal.Zero, decimal.Zero
	for _, os := range orders {
		if os.Status != entity.OSCompleted || !rng.Contains(os.UpdatedAt) {
			continue
		}
		revenue = revenue.Add(os.TotalValue)
		labor = labor.Add(os.LaborValue)
		completed++
	}
	return revenue, labor, completed
}

// transactionTotals soma os lançamentos manuais do período por tipo.
func transactionTotals(txs []*entity.Transaction, rng Range) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		if !rng.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case entity.TxIncome:
			income = income.Add(t.Amount)
		case entity.TxExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// memberLabor mão de obra das OS concluídas do período atribuídas ao membro.
func memberLabor(orders []*entity.ServiceOrder, memberID string, rng Range) decimal.Decimal {
	total := decimal.Zero
	for _, os := range orders {
		if os.Status == entity.OSCompleted && os.MechanicID == memberID && rng.Contains(os.UpdatedAt) {
			total = total.Add(os.LaborValue)
		}
	}
	return total
}

// memberProduction valor total (mão de obra + peças) das OS concluídas do
// período atribuídas ao membro. Base do ranking, não da comissão.
func memberProduction(orders []*entity.ServiceOrder, memberID string, rng Range) decimal.Decimal {
	total := decimal.Zero
	for _, os := range orders {
		if os.Status == entity.OSCompleted && os.MechanicID == memberID && rng.Contains(os.UpdatedAt) {
			total = total.Add(os.TotalValue)
		}
	}
	return total
}

// commissionEntries calcula a comissão de cada membro no período:
// mão de obra atribuída * taxa / 100. Sem OS atribuída a comissão é zero.
func commissionEntries(orders []*entity.ServiceOrder, members []*entity.TeamMember, rng Range) []dto.CommissionEntryDTO {
	hundred := decimal.NewFromInt(100)
	entries := make([]dto.CommissionEntryDTO, 0, len(members))
	for _, m := range members {
		labor := memberLabor(orders, m.ID, rng)
		entries = append(entries, dto.CommissionEntryDTO{
			MemberID:   m.ID,
			Name:       m.Name,
			Rate:       m.CommissionRate,
			LaborBase:  labor,
			Commission: labor.Mul(m.CommissionRate).Div(hundred),
		})
	}
	return entries
}

// rankingEntries ordena os membros por produção total decrescente.
func rankingEntries(orders []*entity.ServiceOrder, members []*entity.TeamMember, rng Range) []dto.RankingEntryDTO {
	entries := make([]dto.RankingEntryDTO, 0, len(members))
	for _, m := range members {
		entries = append(entries, dto.RankingEntryDTO{
			MemberID: m.ID,
			Name:     m.Name,
			Total:    memberProduction(orders, m.ID, rng),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})
	return entries
}

// safePercent devolve part/total*100, ou zero quando total é zero (nunca NaN).
func safePercent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100))
}

// safeDiv devolve num/den, ou zero quando den é zero.
func safeDiv(num decimal.Decimal, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return num.Div(decimal.NewFromInt(int64(den)))
}
