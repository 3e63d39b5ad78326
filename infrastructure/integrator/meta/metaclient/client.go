package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-builder-api/internal/config"
)

type Client interface {
	CreateAdSet(accountExternalID string, token string, payload map[string]string) (*metadomain.CreateAdSetResponse, error)
	GetAdCampaignByID(campaignID string, token string) (*metadomain.Campaign, error)
	GetAdCampaignsByAccountID(accountExternalID string, token string) ([]metadomain.Campaign, error)
	GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// accessToken resolve o token usado na requisição: o token da conta quando
// fornecido pelo resolvedor de credenciais, senão o token global do app.
func (c *MetaClient) accessToken(token string) string {
	if token != "" {
		return token
	}
	return c.Cfg.Meta.AccessToken
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
