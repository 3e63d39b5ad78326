package adsetting

import (
	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// MetaAdSetIntegrator é a fatia da integração com a Meta consumida por este
// caso de uso: criação do conjunto e leitura do orçamento da campanha pai.
// O transporte em si não pertence a este pacote.
type MetaAdSetIntegrator interface {
	CreateAdSet(accountExternalID string, token string, payload map[string]string) (*metadomain.CreateAdSetResponse, error)
	GetCampaignBudgetState(campaignID string, token string) (*metadomain.CampaignBudgetState, error)
}

// CredentialResolver resolve a credencial de longa duração de uma conta antes
// da construção do conjunto. Uma conta sem token interrompe o fluxo.
type CredentialResolver interface {
	ResolveToken(accountID string) (*domain.AccountCredential, error)
}
