package domain

import (
	"github.com/shopspring/decimal"
)

// ReportKPIs são os indicadores exibidos no topo do dashboard.
// MarginPercent é definido como 0 quando TotalSales é 0.
type ReportKPIs struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// MonthlyPoint é um ponto da série mensal (gráfico de barras verticais).
type MonthlyPoint struct {
	Month       string          `json:"month"`
	SaleAmount  decimal.Decimal `json:"sale_amount"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// RepresentativePoint é um ponto da série por representante (gráfico de
// barras horizontais, ordenado do menor para o maior lucro).
type RepresentativePoint struct {
	Representative string          `json:"representative"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
}

// DashboardReport é a resposta completa consumida pelo front end: opções de
// filtro, seleção aplicada, KPIs, as duas séries e a tabela detalhada.
type DashboardReport struct {
	Columns              []string              `json:"columns"`
	Options              FilterOptions         `json:"options"`
	Selection            FilterSelection       `json:"selection"`
	KPIs                 ReportKPIs            `json:"kpis"`
	MonthlySeries        []MonthlyPoint        `json:"monthly_series"`
	RepresentativeSeries []RepresentativePoint `json:"representative_series"`
	Records              []SalesRecord         `json:"records"`
}
