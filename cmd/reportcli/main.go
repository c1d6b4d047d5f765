package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var (
	flagMonths []string
	flagReps   []string
	flagJSON   bool

	kpiColor    = color.New(color.FgGreen, color.Bold)
	marginColor = color.New(color.FgCyan)
)

// rootCmd renderiza o relatório de vendas no terminal, para operadores sem o
// front end web
var rootCmd = &cobra.Command{
	Use:   "reportcli",
	Short: "Renderiza o relatório de vendas do dashboard no terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Saída limpa no terminal, sem ruído de log
		logrus.SetLevel(logrus.WarnLevel)

		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()

		provider := warehouse.NewCredentialProvider(cfg, config.NewSecretClient(cfg))
		conn, err := provider.Connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		salesReportRepo := repository.NewSalesReportRepository(conn, cfg)
		reportService := reporting.NewService(cfg, salesReportRepo)

		var selection *domain.FilterSelection
		if cmd.Flags().Changed("months") || cmd.Flags().Changed("representatives") {
			selection = &domain.FilterSelection{
				Months:          flagMonths,
				Representatives: flagReps,
			}
		}

		report, err := reportService.Dashboard(ctx, selection)
		if err != nil {
			return err
		}

		if flagJSON {
			fmt.Println(utils.PrettyJson(report))
			return nil
		}

		return render(report)
	},
}

func render(report *domain.DashboardReport) error {
	fmt.Printf("Período: %v | Representantes: %d selecionados\n\n",
		report.Selection.Months, len(report.Selection.Representatives))

	kpiColor.Printf("Vendas totais:  %s\n", report.KPIs.TotalSales.StringFixed(2))
	kpiColor.Printf("Lucro total:    %s\n", report.KPIs.TotalProfit.StringFixed(2))
	marginColor.Printf("Margem:         %s%%\n\n", report.KPIs.MarginPercent.StringFixed(2))

	if err := renderMonthly(report.MonthlySeries); err != nil {
		return err
	}
	fmt.Println()
	return renderRepresentatives(report.RepresentativeSeries, report.KPIs.TotalProfit)
}

func renderMonthly(series []domain.MonthlyPoint) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Mês", "Vendas", "Lucro"})

	data := make([][]string, 0, len(series))
	for _, point := range series {
		data = append(data, []string{
			point.Month,
			point.SaleAmount.StringFixed(2),
			point.GrossProfit.StringFixed(2),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func renderRepresentatives(series []domain.RepresentativePoint, totalProfit decimal.Decimal) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Representante", "Lucro", "% do total"})

	data := make([][]string, 0, len(series))
	for _, point := range series {
		share := 0.0
		if !totalProfit.IsZero() {
			share, _ = point.GrossProfit.Div(totalProfit).Mul(decimal.NewFromInt(100)).Float64()
		}
		data = append(data, []string{
			point.Representative,
			point.GrossProfit.StringFixed(2),
			fmt.Sprintf("%.1f", utils.RoundWithTwoDecimalPlace(share)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func main() {
	rootCmd.Flags().StringSliceVar(&flagMonths, "months", nil, "meses selecionados (ex: 2024-01,2024-02)")
	rootCmd.Flags().StringSliceVar(&flagReps, "representatives", nil, "representantes selecionados")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "imprime o relatório completo em JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
