package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// SecretStorage abstrai o secret store que guarda o documento de credencial
// do warehouse
type SecretStorage interface {
	GetSecret(secretName string) (string, error)
}

// SecretClient consulta os secret files do serviço hospedado
type SecretClient struct {
	BaseURL    string
	APIKey     string
	ServiceID  string
	HTTPClient *http.Client
}

func NewSecretClient(config *Config) *SecretClient {
	return &SecretClient{
		BaseURL:    config.SecretStore.BaseURL,
		APIKey:     config.SecretStore.APIKey,
		ServiceID:  config.SecretStore.ServiceID,
		HTTPClient: &http.Client{},
	}
}

// GetSecret retorna o conteúdo de um secret pelo nome
func (c *SecretClient) GetSecret(secretName string) (string, error) {
	secrets, err := c.listSecrets()
	if err != nil {
		return "", err
	}

	content, ok := secrets[secretName]
	if !ok {
		return "", errors.Errorf("config: secret %q não encontrado no serviço %s", secretName, c.ServiceID)
	}

	return content, nil
}

func (c *SecretClient) listSecrets() (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, c.ServiceID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "config: erro ao consultar o secret store")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("config: erro ao listar secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string)
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}
