package dto

import "github.com/shopspring/decimal"

// FinancialSummaryDTO resumo financeiro de um período [start, end).
// Revenue soma OS concluídas e receitas manuais; o mix mão de obra/peças é
// derivado (parts = total das OS - mão de obra), não autoritativo.
type FinancialSummaryDTO struct {
	Revenue        decimal.Decimal `json:"revenue"`         // OS concluídas + lançamentos INCOME
	OrderRevenue   decimal.Decimal `json:"order_revenue"`   // só OS concluídas
	ManualIncome   decimal.Decimal `json:"manual_income"`   // lançamentos INCOME
	Expenses       decimal.Decimal `json:"expenses"`        // lançamentos EXPENSE
	NetBalance     decimal.Decimal `json:"net_balance"`     // Revenue - Expenses
	LaborTotal     decimal.Decimal `json:"labor_total"`
	PartsTotal     decimal.Decimal `json:"parts_total"`
	LaborPercent   decimal.Decimal `json:"labor_percent"`   // 0 quando não há receita de OS
	PartsPercent   decimal.Decimal `json:"parts_percent"`
	CompletedCount int             `json:"completed_count"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`  // 0 quando não há OS concluída
}

// CommissionEntryDTO comissão de um membro no período: base é só a mão de obra
// das OS COMPLETED atribuídas a ele.
type CommissionEntryDTO struct {
	MemberID   string          `json:"member_id"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"`       // percentual 0–100
	LaborBase  decimal.Decimal `json:"labor_base"` // mão de obra atribuída
	Commission decimal.Decimal `json:"commission"`
}

// RankingEntryDTO posição no ranking de produção: valor total das OS
// concluídas atribuídas ao membro (mão de obra + peças).
type RankingEntryDTO struct {
	MemberID string          `json:"member_id"`
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
}

// WorkshopStatsDTO painel de indicadores do tenant.
type WorkshopStatsDTO struct {
	TotalCustomers int               `json:"total_customers"`
	PendingOS      int               `json:"pending_os"` // toda OS não concluída
	CompletedOS    int               `json:"completed_os"`
	Revenue        decimal.Decimal   `json:"revenue"` // receita das OS concluídas
	AverageTicket  decimal.Decimal   `json:"average_ticket"`
	LaborTotal     decimal.Decimal   `json:"labor_total"`
	PartsTotal     decimal.Decimal   `json:"parts_total"`
	GoalProgress   decimal.Decimal   `json:"goal_progress"` // % da meta mensal, teto 100
	Ranking        []RankingEntryDTO `json:"ranking"`
}

// MasterOverviewDTO visão de portfólio do console master.
type MasterOverviewDTO struct {
	TotalCompanies   int             `json:"total_companies"`
	ActiveCompanies  int             `json:"active_companies"`
	BlockedCompanies int             `json:"blocked_companies"`
	BlockedRate      decimal.Decimal `json:"blocked_rate"` // % sobre o total, 0 se vazio
	MRR              decimal.Decimal `json:"mrr"`          // soma do MRR dos planos ativos
	ExpiringSoon     int             `json:"expiring_soon"` // ativas vencendo em até 7 dias
}
