package meta

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/utils"
)

// RejectionError carrega a rejeição da Meta com o envelope original e a dica
// humana para códigos conhecidos. O envelope é repassado ao chamador sem
// tradução; a dica é apenas uma anotação.
type RejectionError struct {
	Envelope *metadomain.ErrorResponse
	Hint     string
}

func (e *RejectionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("meta: %s (%s)", e.Envelope.Error.Message, e.Hint)
	}
	return fmt.Sprintf("meta: %s", e.Envelope.Error.Message)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CreateAdSet envia o payload montado e devolve o id criado. Rejeições da
// plataforma voltam como *RejectionError; falhas de transporte voltam como o
// erro original para serem embrulhadas pela camada de caso de uso.
func (s *MetaIntegrator) CreateAdSet(accountExternalID string, token string, payload map[string]string) (*metadomain.CreateAdSetResponse, error) {
	resp, err := s.Client.CreateAdSet(accountExternalID, token, payload)
	if err != nil {
		var respErr *metaclient.ResponseError
		if errors.As(err, &respErr) && respErr.Envelope != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountExternalID,
				"error_code": respErr.Envelope.Error.Code,
				"fbtrace_id": respErr.Envelope.Error.FBTraceID,
			}).Error("adsets: Meta rejected ad set creation")

			return nil, &RejectionError{
				Envelope: respErr.Envelope,
				Hint:     respErr.Envelope.HumanHint(),
			}
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("adsets: failed to create ad set on Meta")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountExternalID,
		"adset_id":   resp.ID,
	}).Info("adsets: ad set created on Meta")

	return resp, nil
}

// GetCampaignBudgetState lê os campos de orçamento da campanha pai e informa
// se a otimização de orçamento de campanha (CBO) está habilitada.
func (s *MetaIntegrator) GetCampaignBudgetState(campaignID string, token string) (*metadomain.CampaignBudgetState, error) {
	campaign, err := s.Client.GetAdCampaignByID(campaignID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("adsets: failed to read parent campaign budget")
		return nil, err
	}

	return &metadomain.CampaignBudgetState{
		CampaignID: campaign.ID,
		CBOEnabled: campaign.HasCampaignBudget(),
	}, nil
}

// GetAdCampaigns lista as campanhas ativas da conta, com os campos de
// orçamento para o painel indicar quando o CBO está habilitado.
func (s *MetaIntegrator) GetAdCampaigns(accountExternalID string, token string) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.GetAdCampaignsByAccountID(accountExternalID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("adsets: failed to list campaigns for account")
		return nil, err
	}

	return campaigns, nil
}

// GetAdAccounts percorre os business managers acessíveis ao token global e
// lista as contas de anúncio de cada um.
func (s *MetaIntegrator) GetAdAccounts() ([]*domain.AdAccount, error) {
	bms, err := s.getBusinessManagers()
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to get business managers")
		return nil, err
	}

	allAdAccounts := make([]*domain.AdAccount, 0)
	for _, b := range bms {
		logrus.WithFields(logrus.Fields{
			"business_id":   b.ID,
			"business_name": b.Name,
		}).Debug("accounts: fetching ad accounts for business")

		adAccounts, err := s.Client.GetAdAccountsByBusinessID(b.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("accounts: failed to get ad accounts for business")
			continue
		}

		for _, adAccount := range adAccounts {
			allAdAccounts = append(allAdAccounts, &domain.AdAccount{
				ExternalID:          adAccount.ID,
				Name:                adAccount.Name,
				Nickname:            &adAccount.Name,
				Currency:            adAccount.Currency,
				Origin:              "meta",
				BusinessManagerID:   b.ID,
				BusinessManagerName: b.Name,
			})
		}
	}

	logrus.WithField("total_accounts", len(allAdAccounts)).Info("accounts: successfully retrieved all ad accounts")

	return allAdAccounts, nil
}

func (s *MetaIntegrator) getBusinessManagers() ([]metadomain.BusinessManager, error) {
	if err := s.Client.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	accounts, err := s.fetchBusinesses()
	if err != nil {
		// Uma falha aqui costuma ser token velho em memória; renova e tenta
		// uma única vez.
		if refreshErr := s.Client.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token: %w", refreshErr)
		}

		return s.fetchBusinesses()
	}

	return accounts, nil
}

func (s *MetaIntegrator) fetchBusinesses() ([]metadomain.BusinessManager, error) {
	url := fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []metadomain.BusinessManager `json:"data"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
