package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Valores monetários serializados como números JSON para os gráficos
	decimal.MarshalJSONWithoutQuotes = true

	secretClient := config.NewSecretClient(cfg)

	// Falha de credencial é terminal: nenhuma consulta é tentada e nada do
	// dashboard é servido
	provider := warehouse.NewCredentialProvider(cfg, secretClient)
	conn, err := provider.Connect(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao autenticar no warehouse")
	}
	defer conn.Close()

	salesReportRepo := repository.NewSalesReportRepository(conn, cfg)
	reportService := reporting.NewService(cfg, salesReportRepo)
	authenticator := authenticating.NewService(cfg)

	warmupService := scheduler.NewCacheWarmupService(reportService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		warmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
