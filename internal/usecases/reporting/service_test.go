package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			CacheTTLSeconds:       600,
			RetryMaxAttempts:      3,
			RetryBaseDelaySeconds: 1,
		},
	}
}

func testTable() *domain.ResultTable {
	return &domain.ResultTable{
		Columns: []string{"sales_month", "sales_rep", "sale_amount", "gross_profit"},
		Records: []domain.SalesRecord{
			record("2024-03", "Ana", 1000, 200),
			record("2024-02", "Bruno", 500, 100),
			record("2024-01", "Ana", 800, 160),
			record("2023-12", "Carla", 300, 30),
		},
		FetchedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

// fakeClock permite avançar o tempo manualmente nos testes de expiração
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestServiceDashboardCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
	clock := &fakeClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}

	service := NewService(testConfig(), mockFetcher).WithClock(clock.Now)

	// Dentro da janela de 600s o warehouse é consultado uma única vez
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).Return(testTable(), nil).Times(1)

	for i := 0; i < 3; i++ {
		report, err := service.Dashboard(context.Background(), nil)
		assert.NoError(t, err)
		assert.Equal(t, "2300", report.KPIs.TotalSales.String())
	}

	clock.Advance(599 * time.Second)
	_, err := service.Dashboard(context.Background(), nil)
	assert.NoError(t, err)

	// Após a expiração do TTL ocorre exatamente uma nova consulta
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).Return(testTable(), nil).Times(1)

	clock.Advance(2 * time.Second)
	_, err = service.Dashboard(context.Background(), nil)
	assert.NoError(t, err)

	_, err = service.Options(context.Background())
	assert.NoError(t, err)
}

func TestServiceDashboardSelecaoPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).Return(testTable(), nil).Times(1)

	service := NewService(testConfig(), mockFetcher)

	report, err := service.Dashboard(context.Background(), nil)

	assert.NoError(t, err)
	// Seleção padrão: os 3 meses mais recentes e todos os representantes
	assert.Equal(t, []string{"2024-03", "2024-02", "2024-01"}, report.Selection.Months)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, report.Selection.Representatives)
	assert.Len(t, report.Records, 3)
	assert.Equal(t, "2300", report.KPIs.TotalSales.String())
	assert.Equal(t, "460", report.KPIs.TotalProfit.String())
	assert.Equal(t, "20", report.KPIs.MarginPercent.String())
}

func TestServiceDashboardSelecaoVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).Return(testTable(), nil).Times(1)

	service := NewService(testConfig(), mockFetcher)

	report, err := service.Dashboard(context.Background(), &domain.FilterSelection{
		Months:          []string{},
		Representatives: []string{"Ana"},
	})

	assert.NoError(t, err)
	assert.Empty(t, report.Records)
	assert.Equal(t, "0", report.KPIs.TotalSales.String())
	assert.Equal(t, "0", report.KPIs.MarginPercent.String())
	assert.Empty(t, report.MonthlySeries)
	assert.Empty(t, report.RepresentativeSeries)
	// As opções continuam completas mesmo com a visão vazia
	assert.Equal(t, []string{"2024-03", "2024-02", "2024-01", "2023-12"}, report.Options.Months)
}

func TestServiceRefreshInvalidaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).Return(testTable(), nil).Times(2)

	service := NewService(testConfig(), mockFetcher)

	_, err := service.Dashboard(context.Background(), nil)
	assert.NoError(t, err)

	err = service.Refresh(context.Background())
	assert.NoError(t, err)
}

func TestServiceRetry(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mockFetcher *mocks.MockSalesViewFetcher)
		wantedErr error
	}{
		{
			name: "Falha de conectividade é repetida até o sucesso",
			setup: func(mockFetcher *mocks.MockSalesViewFetcher) {
				gomock.InOrder(
					mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
						Return(nil, domain.NewReportError(domain.ErrConnectivity, "connection reset")),
					mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
						Return(testTable(), nil),
				)
			},
			wantedErr: nil,
		},
		{
			name: "Falha de conectividade persistente esgota as tentativas",
			setup: func(mockFetcher *mocks.MockSalesViewFetcher) {
				mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
					Return(nil, domain.NewReportError(domain.ErrConnectivity, "timeout")).
					Times(3)
			},
			wantedErr: domain.ErrConnectivity,
		},
		{
			name: "Erro de consulta não é repetido",
			setup: func(mockFetcher *mocks.MockSalesViewFetcher) {
				mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
					Return(nil, domain.NewReportError(domain.ErrQuery, "permission denied")).
					Times(1)
			},
			wantedErr: domain.ErrQuery,
		},
		{
			name: "Erro de esquema não é repetido",
			setup: func(mockFetcher *mocks.MockSalesViewFetcher) {
				mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
					Return(nil, domain.NewReportError(domain.ErrSchema, "coluna sale_amount ausente")).
					Times(1)
			},
			wantedErr: domain.ErrSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
			tt.setup(mockFetcher)

			service := NewService(testConfig(), mockFetcher)
			service.sleep = func(ctx context.Context, d time.Duration) error { return nil }

			_, err := service.Dashboard(context.Background(), nil)

			if tt.wantedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantedErr)
			}
		})
	}
}

func TestServiceRetryRespeitaContextoCancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSalesViewFetcher(ctrl)
	mockFetcher.EXPECT().FetchSalesView(gomock.Any()).
		Return(nil, domain.NewReportError(domain.ErrConnectivity, "timeout")).
		Times(1)

	service := NewService(testConfig(), mockFetcher)
	service.sleep = func(ctx context.Context, d time.Duration) error { return context.Canceled }

	_, err := service.Dashboard(context.Background(), nil)

	assert.ErrorIs(t, err, context.Canceled)
}
