package domain

// FilterSelection representa os filtros escolhidos pelo usuário no dashboard.
// Uma lista vazia em qualquer dimensão significa "nenhum valor selecionado",
// nunca "todos".
type FilterSelection struct {
	Months          []string `json:"months"`
	Representatives []string `json:"representatives"`
}

// FilterOptions representa os valores selecionáveis derivados da tabela de
// resultados: meses em ordem decrescente e representantes em ordem crescente.
type FilterOptions struct {
	Months          []string `json:"months"`
	Representatives []string `json:"representatives"`
}
