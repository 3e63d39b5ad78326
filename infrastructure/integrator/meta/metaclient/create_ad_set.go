package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
)

// CreateAdSet envia o payload montado para o endpoint de criação de conjuntos
// de anúncios da conta. A requisição é um POST form-urlencoded; o endpoint é
// um "create" puro, sem chave de idempotência: duas chamadas idênticas criam
// dois conjuntos distintos.
func (c *MetaClient) CreateAdSet(accountExternalID string, token string, payload map[string]string) (*metadomain.CreateAdSetResponse, error) {
	// Garantir que o token global seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, accountExternalID)

	form := url.Values{}
	for key, value := range payload {
		form.Set(key, value)
	}
	form.Set("access_token", c.accessToken(token))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response metadomain.CreateAdSetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.ID == "" {
		return nil, fmt.Errorf("resposta da Meta sem id do conjunto criado: %s", string(body))
	}

	return &response, nil
}
