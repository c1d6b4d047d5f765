package warehouse

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// CredentialProvider resolve o documento de credencial e constrói a conexão
// autenticada com o warehouse uma única vez por processo. Chamadas
// subsequentes a Connect devolvem a mesma conexão (ou o mesmo erro).
type CredentialProvider struct {
	cfg     *config.Config
	secrets config.SecretStorage

	once sync.Once
	conn *Connection
	err  error
}

func NewCredentialProvider(cfg *config.Config, secrets config.SecretStorage) *CredentialProvider {
	return &CredentialProvider{
		cfg:     cfg,
		secrets: secrets,
	}
}

// Connect devolve a conexão memoizada com o warehouse
func (p *CredentialProvider) Connect(ctx context.Context) (*Connection, error) {
	p.once.Do(func() {
		p.conn, p.err = p.connect(ctx)
	})
	return p.conn, p.err
}

func (p *CredentialProvider) connect(ctx context.Context) (*Connection, error) {
	raw, err := p.resolveDocument()
	if err != nil {
		return nil, err
	}

	account, err := ParseServiceAccount(raw)
	if err != nil {
		return nil, err
	}

	conn, err := NewConnection(ctx, account.DSN())
	if err != nil {
		return nil, domain.NewReportError(domain.ErrConfig, fmt.Sprintf("erro ao construir a conexão: %v", err))
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, classifyPingError(err)
	}

	logrus.WithFields(logrus.Fields{
		"project_id": account.ProjectID,
		"host":       account.Host,
	}).Info("warehouse: conexão autenticada estabelecida")

	return conn, nil
}

// resolveDocument busca o documento de credencial na ordem: valor inline de
// configuração, arquivo local, secret store
func (p *CredentialProvider) resolveDocument() ([]byte, error) {
	if p.cfg.Warehouse.CredentialJSON != "" {
		return []byte(p.cfg.Warehouse.CredentialJSON), nil
	}

	if path := p.cfg.Warehouse.CredentialFile; path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.NewReportError(domain.ErrConfig, fmt.Sprintf("erro ao ler o arquivo de credencial %s: %v", path, err))
		}
		return raw, nil
	}

	if p.secrets != nil && p.cfg.SecretStore.ServiceID != "" {
		content, err := p.secrets.GetSecret(p.cfg.Warehouse.CredentialSecretName)
		if err != nil {
			return nil, domain.NewReportError(domain.ErrConfig, fmt.Sprintf("erro ao buscar a credencial no secret store: %v", err))
		}
		return []byte(content), nil
	}

	return nil, domain.NewReportError(domain.ErrConfig, "nenhuma origem de credencial configurada")
}

// classifyPingError separa rejeição de autenticação (classe 28 do Postgres)
// de falha de transporte
func classifyPingError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code.Class() == "28" {
			return domain.NewReportError(domain.ErrConfig, fmt.Sprintf("credencial rejeitada pelo warehouse: %v", pqErr))
		}
		return domain.NewReportError(domain.ErrConfig, fmt.Sprintf("warehouse recusou a conexão: %v", pqErr))
	}

	return domain.NewReportError(domain.ErrConnectivity, fmt.Sprintf("falha ao alcançar o warehouse: %v", err))
}
