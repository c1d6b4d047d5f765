package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Service implementa a interface Reporter com cache de TTL sobre a consulta
// ao warehouse e retry limitado para falhas de conectividade
type Service struct {
	cfg         *config.Config
	fetcher     SalesViewFetcher
	cache       *resultCache
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewService cria uma nova instância do serviço de relatório
func NewService(cfg *config.Config, fetcher SalesViewFetcher) *Service {
	ttl := time.Duration(cfg.Report.CacheTTLSeconds) * time.Second

	maxAttempts := cfg.Report.RetryMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Service{
		cfg:         cfg,
		fetcher:     fetcher,
		cache:       newResultCache(ttl, time.Now),
		maxAttempts: maxAttempts,
		baseDelay:   time.Duration(cfg.Report.RetryBaseDelaySeconds) * time.Second,
		sleep:       sleepWithContext,
	}
}

// WithClock substitui o relógio do cache, usado em testes de expiração
func (s *Service) WithClock(now func() time.Time) *Service {
	ttl := time.Duration(s.cfg.Report.CacheTTLSeconds) * time.Second
	s.cache = newResultCache(ttl, now)
	return s
}

// Dashboard monta o relatório completo: opções de filtro, seleção aplicada,
// KPIs, séries e a tabela detalhada. Qualquer erro de carregamento é
// propagado sem renderização parcial.
func (s *Service) Dashboard(ctx context.Context, selection *domain.FilterSelection) (*domain.DashboardReport, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	options := DeriveOptions(table)

	applied := domain.FilterSelection{}
	if selection == nil {
		applied = DefaultSelection(options)
	} else {
		applied = *selection
	}

	view := FilterRecords(table, applied)
	kpis, monthly, reps := Aggregate(view)

	return &domain.DashboardReport{
		Columns:              table.Columns,
		Options:              options,
		Selection:            applied,
		KPIs:                 kpis,
		MonthlySeries:        monthly,
		RepresentativeSeries: reps,
		Records:              view,
	}, nil
}

// Options retorna apenas os valores selecionáveis, sem montar o relatório
func (s *Service) Options(ctx context.Context) (*domain.FilterOptions, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	options := DeriveOptions(table)
	return &options, nil
}

// Refresh invalida o cache e recarrega a tabela imediatamente
func (s *Service) Refresh(ctx context.Context) error {
	s.cache.Invalidate()

	_, err := s.loadTable(ctx)
	return err
}

// loadTable devolve a tabela do cache ou consulta o warehouse em caso de
// cache vazio ou expirado
func (s *Service) loadTable(ctx context.Context) (*domain.ResultTable, error) {
	if table, ok := s.cache.Get(); ok {
		return table, nil
	}

	table, err := s.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(table)

	logrus.WithFields(logrus.Fields{
		"rows":    len(table.Records),
		"columns": len(table.Columns),
	}).Info("report: tabela de vendas recarregada do warehouse")

	return table, nil
}

// fetchWithRetry aplica retry com backoff exponencial apenas para falhas de
// conectividade; erros de consulta, esquema e configuração nunca são repetidos
func (s *Service) fetchWithRetry(ctx context.Context) (*domain.ResultTable, error) {
	var lastErr error
	delay := s.baseDelay

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		table, err := s.fetcher.FetchSalesView(ctx)
		if err == nil {
			return table, nil
		}

		lastErr = err
		if !domain.IsRetryable(err) {
			return nil, err
		}

		if attempt < s.maxAttempts {
			logrus.WithError(err).WithFields(logrus.Fields{
				"attempt":      attempt,
				"max_attempts": s.maxAttempts,
				"retry_in":     delay.String(),
			}).Warn("report: falha de conectividade com o warehouse, tentando novamente")

			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
		}
	}

	return nil, lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
