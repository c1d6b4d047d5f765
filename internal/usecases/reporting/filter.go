package reporting

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// defaultMonthsWindow é a quantidade de meses mais recentes aplicada quando o
// usuário ainda não escolheu um período
const defaultMonthsWindow = 3

// DeriveOptions extrai os valores distintos da tabela para popular os filtros
// do dashboard: meses em ordem decrescente (mais recente primeiro) e
// representantes em ordem crescente.
func DeriveOptions(table *domain.ResultTable) domain.FilterOptions {
	monthSeen := make(map[string]bool)
	repSeen := make(map[string]bool)

	months := make([]string, 0)
	reps := make([]string, 0)

	for _, record := range table.Records {
		if !monthSeen[record.Month] {
			monthSeen[record.Month] = true
			months = append(months, record.Month)
		}
		if !repSeen[record.Representative] {
			repSeen[record.Representative] = true
			reps = append(reps, record.Representative)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	sort.Strings(reps)

	return domain.FilterOptions{
		Months:          months,
		Representatives: reps,
	}
}

// DefaultSelection monta a seleção inicial: os 3 meses mais recentes (ou
// menos, se a view tiver menos meses) e todos os representantes.
func DefaultSelection(options domain.FilterOptions) domain.FilterSelection {
	window := defaultMonthsWindow
	if len(options.Months) < window {
		window = len(options.Months)
	}

	months := make([]string, window)
	copy(months, options.Months[:window])

	reps := make([]string, len(options.Representatives))
	copy(reps, options.Representatives)

	return domain.FilterSelection{
		Months:          months,
		Representatives: reps,
	}
}

// FilterRecords aplica o AND lógico dos dois filtros sobre a tabela,
// preservando a ordem das linhas. Uma seleção vazia em qualquer dimensão
// produz uma visão vazia, nunca um erro nem um fallback para "todos".
func FilterRecords(table *domain.ResultTable, selection domain.FilterSelection) []domain.SalesRecord {
	monthSet := toSet(selection.Months)
	repSet := toSet(selection.Representatives)

	filtered := make([]domain.SalesRecord, 0)
	for _, record := range table.Records {
		if monthSet[record.Month] && repSet[record.Representative] {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
