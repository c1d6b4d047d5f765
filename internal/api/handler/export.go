package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ExportDashboard baixa as linhas filtradas como CSV, na ordem e com os nomes
// de colunas originais da view. Aceita os mesmos filtros do dashboard.
func ExportDashboard(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Dashboard(r.Context(), parseSelection(r))
		if err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao montar o relatório")
			writeReportError(w, err)
			return
		}

		filename := fmt.Sprintf("vendas_%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)

		if err := writer.Write(report.Columns); err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao escrever cabeçalho CSV")
			return
		}

		for _, record := range report.Records {
			row := make([]string, 0, len(report.Columns))
			for _, column := range report.Columns {
				row = append(row, cellValue(record, column, cfg))
			}
			if err := writer.Write(row); err != nil {
				logger.WithError(err).Error("dashboard-export: erro ao escrever linha CSV")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao finalizar CSV")
			return
		}

		logger.WithField("rows_exported", len(report.Records)).Info("dashboard-export: CSV gerado com sucesso")
	})
}

func cellValue(record domain.SalesRecord, column string, cfg *config.Config) string {
	switch column {
	case cfg.Warehouse.ColumnMonth:
		return record.Month
	case cfg.Warehouse.ColumnRepresentative:
		return record.Representative
	case cfg.Warehouse.ColumnSaleAmount:
		return record.SaleAmount.String()
	case cfg.Warehouse.ColumnGrossProfit:
		return record.GrossProfit.String()
	default:
		if value, ok := record.Extras[column]; ok && value != nil {
			return fmt.Sprintf("%v", value)
		}
		return ""
	}
}
