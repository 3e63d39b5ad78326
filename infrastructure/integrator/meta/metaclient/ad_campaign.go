package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignByID busca a campanha pai com seus campos de orçamento. O
// normalizador usa o resultado para decidir se o conjunto pode carregar
// orçamento próprio.
func (c *MetaClient) GetAdCampaignByID(campaignID string, token string) (*metadomain.Campaign, error) {
	return c.getAdCampaignByID(campaignID, token, false)
}

func (c *MetaClient) getAdCampaignByID(campaignID, token string, retried bool) (*metadomain.Campaign, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,status,objective,daily_budget,lifetime_budget,bid_strategy")
	params.Add("access_token", c.accessToken(token))

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Token renovado: repete a requisição com o token novo, uma única vez
		if errors.Is(err, errTokenRenewed) && !retried {
			return c.getAdCampaignByID(campaignID, token, true)
		}
		return nil, err
	}

	var campaign metadomain.Campaign
	if err := json.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if campaign.ID == "" {
		return nil, errors.New("campaign not found")
	}

	return &campaign, nil
}

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) GetAdCampaignsByAccountID(accountExternalID string, token string) ([]metadomain.Campaign, error) {
	return c.getAdCampaignsByAccountID(accountExternalID, token, false)
}

func (c *MetaClient) getAdCampaignsByAccountID(accountExternalID, token string, retried bool) ([]metadomain.Campaign, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountExternalID)

	params := url.Values{}
	params.Add("fields", "id,name,status,objective,daily_budget,lifetime_budget")
	params.Add("effective_status", "['ACTIVE']")
	params.Add("access_token", c.accessToken(token))

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if errors.Is(err, errTokenRenewed) && !retried {
			return c.getAdCampaignsByAccountID(accountExternalID, token, true)
		}
		return nil, err
	}

	var response ResponseAdCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
