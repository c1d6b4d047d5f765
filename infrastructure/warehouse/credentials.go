package warehouse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	defaultPort    = 5439
	defaultSSLMode = "require"
)

// ServiceAccount é o documento de credencial JSON da conta de serviço do
// warehouse. O campo project_id é obrigatório; os demais têm defaults.
type ServiceAccount struct {
	ProjectID string `json:"project_id"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	User      string `json:"user"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"sslmode"`
}

// ParseServiceAccount valida e decodifica o documento de credencial.
// Documento vazio, JSON malformado ou project_id ausente produzem um erro
// de configuração.
func ParseServiceAccount(raw []byte) (*ServiceAccount, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.NewReportError(domain.ErrConfig, "documento de credencial vazio")
	}

	account := &ServiceAccount{}
	if err := json.Unmarshal(raw, account); err != nil {
		return nil, domain.NewReportError(domain.ErrConfig, fmt.Sprintf("documento de credencial malformado: %v", err))
	}

	if account.ProjectID == "" {
		return nil, domain.NewReportError(domain.ErrConfig, "campo project_id ausente no documento de credencial")
	}

	if account.Port == 0 {
		account.Port = defaultPort
	}
	if account.SSLMode == "" {
		account.SSLMode = defaultSSLMode
	}
	if account.Database == "" {
		account.Database = account.ProjectID
	}

	return account, nil
}

// DSN monta a string de conexão do warehouse a partir do documento
func (a *ServiceAccount) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(a.User),
		url.QueryEscape(a.Password),
		a.Host,
		a.Port,
		a.Database,
		a.SSLMode,
	)
}
