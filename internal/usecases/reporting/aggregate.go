package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Aggregate calcula os KPIs e as duas séries a partir da visão filtrada.
// É aritmética pura sobre colunas já validadas no carregamento: nenhuma
// condição de erro.
func Aggregate(view []domain.SalesRecord) (domain.ReportKPIs, []domain.MonthlyPoint, []domain.RepresentativePoint) {
	totalSales := decimal.Zero
	totalProfit := decimal.Zero

	// Série mensal na ordem natural de agrupamento da visão (primeira aparição)
	monthIndex := make(map[string]int)
	monthly := make([]domain.MonthlyPoint, 0)

	repTotals := make(map[string]decimal.Decimal)

	for _, record := range view {
		totalSales = totalSales.Add(record.SaleAmount)
		totalProfit = totalProfit.Add(record.GrossProfit)

		idx, ok := monthIndex[record.Month]
		if !ok {
			idx = len(monthly)
			monthIndex[record.Month] = idx
			monthly = append(monthly, domain.MonthlyPoint{Month: record.Month})
		}
		monthly[idx].SaleAmount = monthly[idx].SaleAmount.Add(record.SaleAmount)
		monthly[idx].GrossProfit = monthly[idx].GrossProfit.Add(record.GrossProfit)

		repTotals[record.Representative] = repTotals[record.Representative].Add(record.GrossProfit)
	}

	// Margem definida como 0 quando não há vendas, nunca NaN/Inf
	margin := decimal.Zero
	if !totalSales.IsZero() {
		margin = totalProfit.Div(totalSales).Mul(oneHundred).Round(2)
	}

	kpis := domain.ReportKPIs{
		TotalSales:    totalSales,
		TotalProfit:   totalProfit,
		MarginPercent: margin,
	}

	// Série por representante em ordem crescente de lucro, para o gráfico de
	// barras horizontais sair visualmente ranqueado
	reps := make([]domain.RepresentativePoint, 0, len(repTotals))
	for rep, profit := range repTotals {
		reps = append(reps, domain.RepresentativePoint{
			Representative: rep,
			GrossProfit:    profit,
		})
	}
	sort.Slice(reps, func(i, j int) bool {
		cmp := reps[i].GrossProfit.Cmp(reps[j].GrossProfit)
		if cmp == 0 {
			return reps[i].Representative < reps[j].Representative
		}
		return cmp < 0
	})

	return kpis, monthly, reps
}
