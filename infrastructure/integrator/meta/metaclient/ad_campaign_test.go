package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adset-builder-api/internal/config"
)

const tokenExpiredBody = `{"error":{"message":"Error validating access token: Session has expired","type":"OAuthException","code":190}}`

func newTestMetaClient(serverURL string) *MetaClient {
	cfg := &config.Config{
		Meta: config.Meta{
			BaseURL:        serverURL,
			URL:            serverURL,
			Version:        "v21.0",
			AccessToken:    "token-antigo",
			LongLivedToken: "token-antigo",
			AppID:          "123456",
			AppSecret:      "segredo",
			TokenExpiresAt: time.Now().Add(48 * time.Hour),
		},
	}

	return &MetaClient{
		Cfg:          cfg,
		TokenManager: NewTokenManager(cfg, nil),
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGetAdCampaignByID(t *testing.T) {
	t.Run("Repete a requisição após renovar o token", func(t *testing.T) {
		var campaignCalls int

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/oauth/access_token") {
				fmt.Fprint(w, `{"access_token":"token-novo","token_type":"bearer","expires_in":5184000}`)
				return
			}

			campaignCalls++
			if campaignCalls == 1 {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, tokenExpiredBody)
				return
			}
			fmt.Fprint(w, `{"id":"120211234567890123","name":"Leads PH","status":"ACTIVE","objective":"OUTCOME_LEADS"}`)
		}))
		defer srv.Close()

		client := newTestMetaClient(srv.URL)

		campaign, err := client.GetAdCampaignByID("120211234567890123", "")

		require.NoError(t, err)
		assert.Equal(t, 2, campaignCalls)
		assert.Equal(t, "120211234567890123", campaign.ID)
		assert.Equal(t, "token-novo", client.Cfg.Meta.AccessToken)
	})

	t.Run("Desiste após uma única repetição quando o token continua expirando", func(t *testing.T) {
		var campaignCalls int

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/oauth/access_token") {
				fmt.Fprint(w, `{"access_token":"token-novo","token_type":"bearer","expires_in":5184000}`)
				return
			}

			campaignCalls++
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, tokenExpiredBody)
		}))
		defer srv.Close()

		client := newTestMetaClient(srv.URL)

		campaign, err := client.GetAdCampaignByID("120211234567890123", "")

		require.Error(t, err)
		assert.Nil(t, campaign)
		assert.ErrorIs(t, err, errTokenRenewed)
		assert.Equal(t, 2, campaignCalls)
	})
}

func TestGetAdCampaignsByAccountID(t *testing.T) {
	t.Run("Desiste após uma única repetição quando o token continua expirando", func(t *testing.T) {
		var listCalls int

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/oauth/access_token") {
				fmt.Fprint(w, `{"access_token":"token-novo","token_type":"bearer","expires_in":5184000}`)
				return
			}

			listCalls++
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, tokenExpiredBody)
		}))
		defer srv.Close()

		client := newTestMetaClient(srv.URL)

		campaigns, err := client.GetAdCampaignsByAccountID("1020304050", "")

		require.Error(t, err)
		assert.Nil(t, campaigns)
		assert.ErrorIs(t, err, errTokenRenewed)
		assert.Equal(t, 2, listCalls)
	})
}
