package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func testRepository() *salesReportRepository {
	return &salesReportRepository{
		view: "analytics.sales_performance",
		cols: config.Warehouse{
			ColumnMonth:          "sales_month",
			ColumnRepresentative: "sales_rep",
			ColumnSaleAmount:     "sale_amount",
			ColumnGrossProfit:    "gross_profit",
		},
	}
}

func TestValidateSchema(t *testing.T) {
	repo := testRepository()

	tests := []struct {
		name      string
		columns   []string
		wantedErr error
	}{
		{
			name:    "Contrato completo passa na validação",
			columns: []string{"sales_month", "sales_rep", "sale_amount", "gross_profit"},
		},
		{
			name:    "Colunas extras não violam o contrato",
			columns: []string{"sales_month", "sales_rep", "sale_amount", "gross_profit", "region", "channel"},
		},
		{
			name:      "Coluna de lucro ausente é erro de esquema",
			columns:   []string{"sales_month", "sales_rep", "sale_amount"},
			wantedErr: domain.ErrSchema,
		},
		{
			name:      "Coluna renomeada na view é erro de esquema",
			columns:   []string{"month", "sales_rep", "sale_amount", "gross_profit"},
			wantedErr: domain.ErrSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.validateSchema(tt.columns)

			if tt.wantedErr != nil {
				assert.ErrorIs(t, err, tt.wantedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func scanned(values ...any) []any {
	out := make([]any, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

func TestBuildRecord(t *testing.T) {
	repo := testRepository()
	columns := []string{"sales_month", "sales_rep", "sale_amount", "gross_profit", "region"}

	t.Run("Linha com tipos do driver vira um registro tipado", func(t *testing.T) {
		record, err := repo.buildRecord(columns, scanned(
			[]byte("2024-01"),
			"Ana",
			[]byte("1234.56"),
			float64(234.5),
			[]byte("Sul"),
		))

		assert.NoError(t, err)
		assert.Equal(t, "2024-01", record.Month)
		assert.Equal(t, "Ana", record.Representative)
		assert.Equal(t, "1234.56", record.SaleAmount.String())
		assert.Equal(t, "234.5", record.GrossProfit.String())
		assert.Equal(t, "Sul", record.Extras["region"])
	})

	t.Run("Valores nulos viram zero e string vazia", func(t *testing.T) {
		record, err := repo.buildRecord(columns, scanned(nil, nil, nil, nil, nil))

		assert.NoError(t, err)
		assert.Empty(t, record.Month)
		assert.Empty(t, record.Representative)
		assert.True(t, record.SaleAmount.IsZero())
		assert.True(t, record.GrossProfit.IsZero())
	})

	t.Run("Valor não numérico na coluna de venda é erro de esquema", func(t *testing.T) {
		_, err := repo.buildRecord(columns, scanned(
			[]byte("2024-01"),
			"Ana",
			[]byte("não é número"),
			float64(10),
			nil,
		))

		assert.ErrorIs(t, err, domain.ErrSchema)
	})

	t.Run("Valor inteiro do driver é aceito nas colunas numéricas", func(t *testing.T) {
		record, err := repo.buildRecord(columns, scanned(
			"2024-01",
			"Ana",
			int64(1000),
			int64(200),
			nil,
		))

		assert.NoError(t, err)
		assert.Equal(t, "1000", record.SaleAmount.String())
		assert.Equal(t, "200", record.GrossProfit.String())
	})
}

func TestClassifyFetchError(t *testing.T) {
	t.Run("Erro do driver é rejeição da consulta", func(t *testing.T) {
		err := classifyFetchError(&pq.Error{Code: "42501", Message: "permission denied for relation sales_performance"})

		assert.ErrorIs(t, err, domain.ErrQuery)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("Queda de conexão do driver (classe 08) é falha de conectividade", func(t *testing.T) {
		err := classifyFetchError(&pq.Error{Code: "08006", Message: "connection failure"})

		assert.ErrorIs(t, err, domain.ErrConnectivity)
		assert.True(t, domain.IsRetryable(err))
	})

	t.Run("Erro genérico de transporte é falha de conectividade", func(t *testing.T) {
		err := classifyFetchError(errors.New("connection reset by peer"))

		assert.ErrorIs(t, err, domain.ErrConnectivity)
		assert.True(t, domain.IsRetryable(err))
	})
}
