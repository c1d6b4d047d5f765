package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard monta o relatório completo para a seleção de filtros da query
// string. Sem parâmetros de filtro, aplica a seleção padrão (3 meses mais
// recentes, todos os representantes). Qualquer erro de carregamento responde
// fail-closed: payload de erro, nenhum conteúdo parcial.
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection := parseSelection(r)

		report, err := service.Dashboard(r.Context(), selection)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar o relatório")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"months_selected": len(report.Selection.Months),
			"reps_selected":   len(report.Selection.Representatives),
			"rows_returned":   len(report.Records),
		}).Info("dashboard: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFilterOptions retorna apenas os valores selecionáveis dos filtros
func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.Options(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard-options: erro ao buscar opções de filtro")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"months":          len(options.Months),
			"representatives": len(options.Representatives),
		}).Info("dashboard-options: opções recuperadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("dashboard-options: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard invalida o cache de dados e recarrega a view imediatamente
func RefreshDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard-refresh: recarga manual solicitada")

		if err := service.Refresh(r.Context()); err != nil {
			logger.WithError(err).Error("dashboard-refresh: erro ao recarregar dados")
			writeReportError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// parseSelection interpreta os filtros da query string. Sem nenhum parâmetro
// de filtro retorna nil (seleção padrão). Um parâmetro presente porém vazio
// é um conjunto vazio, não um fallback para "todos".
func parseSelection(r *http.Request) *domain.FilterSelection {
	query := r.URL.Query()

	_, hasMonths := query["months"]
	_, hasReps := query["representatives"]
	if !hasMonths && !hasReps {
		return nil
	}

	return &domain.FilterSelection{
		Months:          splitParam(query.Get("months")),
		Representatives: splitParam(query.Get("representatives")),
	}
}

func splitParam(raw string) []string {
	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// writeReportError traduz a taxonomia de erros do relatório para o payload
// padronizado da API
func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *domain.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
