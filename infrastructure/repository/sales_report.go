package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesReportRepository executa a consulta fixa contra a view de vendas
type SalesReportRepository interface {
	FetchSalesView(ctx context.Context) (*domain.ResultTable, error)
}

type salesReportRepository struct {
	conn warehouse.Queryer
	view string
	cols config.Warehouse
}

func NewSalesReportRepository(conn warehouse.Queryer, cfg *config.Config) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
		view: cfg.Warehouse.View,
		cols: cfg.Warehouse,
	}
}

// FetchSalesView materializa o resultado completo da view. A consulta é fixa
// e sem parâmetros: SELECT * FROM <view>. Colunas além do contrato passam
// intactas para os extras de cada linha.
func (r *salesReportRepository) FetchSalesView(ctx context.Context) (*domain.ResultTable, error) {
	query, _, err := squirrel.Select("*").From(r.view).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, classifyFetchError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, classifyFetchError(err)
	}

	if err := r.validateSchema(columns); err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		for i := range values {
			values[i] = new(any)
		}

		if err := rows.Scan(values...); err != nil {
			return nil, classifyFetchError(err)
		}

		record, err := r.buildRecord(columns, values)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyFetchError(err)
	}

	return &domain.ResultTable{
		Columns:   columns,
		Records:   records,
		FetchedAt: time.Now(),
	}, nil
}

// validateSchema confere a presença das colunas do contrato antes de qualquer
// agregação, para que um desvio da view falhe cedo e com erro distinto
func (r *salesReportRepository) validateSchema(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	required := []string{
		r.cols.ColumnMonth,
		r.cols.ColumnRepresentative,
		r.cols.ColumnSaleAmount,
		r.cols.ColumnGrossProfit,
	}
	for _, c := range required {
		if !present[c] {
			return domain.NewReportError(domain.ErrSchema, fmt.Sprintf("coluna obrigatória %q ausente na view %s", c, r.view))
		}
	}

	return nil
}

func (r *salesReportRepository) buildRecord(columns []string, values []any) (domain.SalesRecord, error) {
	record := domain.SalesRecord{}

	for i, column := range columns {
		value := *(values[i].(*any))

		switch column {
		case r.cols.ColumnMonth:
			record.Month = toString(value)
		case r.cols.ColumnRepresentative:
			record.Representative = toString(value)
		case r.cols.ColumnSaleAmount:
			amount, err := toDecimal(value)
			if err != nil {
				return record, domain.NewReportError(domain.ErrSchema, fmt.Sprintf("valor não numérico na coluna %q: %v", column, err))
			}
			record.SaleAmount = amount
		case r.cols.ColumnGrossProfit:
			amount, err := toDecimal(value)
			if err != nil {
				return record, domain.NewReportError(domain.ErrSchema, fmt.Sprintf("valor não numérico na coluna %q: %v", column, err))
			}
			record.GrossProfit = amount
		default:
			if record.Extras == nil {
				record.Extras = make(map[string]any)
			}
			record.Extras[column] = normalize(value)
		}
	}

	return record, nil
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case []byte:
		return decimal.NewFromString(string(v))
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, fmt.Errorf("tipo inesperado %T", value)
	}
}

func normalize(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}

// classifyFetchError separa rejeição da consulta pelo warehouse (sintaxe,
// permissão) de falha de rede/transporte. A classe 08 do Postgres cobre
// quedas de conexão no meio da consulta, que são transitórias.
func classifyFetchError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code.Class() == "08" {
			return domain.NewReportError(domain.ErrConnectivity, pqErr.Message)
		}
		return domain.NewReportError(domain.ErrQuery, pqErr.Message)
	}

	return domain.NewReportError(domain.ErrConnectivity, err.Error())
}
