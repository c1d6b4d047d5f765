package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa uma linha da view de desempenho de vendas do warehouse.
// Colunas adicionais da view são preservadas em Extras sem interpretação.
type SalesRecord struct {
	Month          string          `json:"month"`
	Representative string          `json:"representative"`
	SaleAmount     decimal.Decimal `json:"sale_amount"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	Extras         map[string]any  `json:"extras,omitempty"`
}

// ResultTable é o resultado materializado de uma consulta à view de vendas.
// A ordem das linhas é a ordem retornada pelo warehouse.
type ResultTable struct {
	Columns   []string      `json:"columns"`
	Records   []SalesRecord `json:"records"`
	FetchedAt time.Time     `json:"fetched_at"`
}
