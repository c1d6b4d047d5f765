package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesViewFetcher abstrai a consulta à view de vendas no warehouse
type SalesViewFetcher interface {
	// FetchSalesView executa a consulta fixa contra a view e materializa o
	// resultado completo
	FetchSalesView(ctx context.Context) (*domain.ResultTable, error)
}

// Reporter é a interface consumida pelos handlers do dashboard
type Reporter interface {
	// Dashboard monta o relatório completo para a seleção informada.
	// Uma seleção nil aplica a seleção padrão (3 meses mais recentes,
	// todos os representantes).
	Dashboard(ctx context.Context, selection *domain.FilterSelection) (*domain.DashboardReport, error)

	// Options retorna os valores selecionáveis derivados da tabela carregada
	Options(ctx context.Context) (*domain.FilterOptions, error)

	// Refresh invalida o cache e força uma nova consulta ao warehouse
	Refresh(ctx context.Context) error
}
