package domain

type BusinessManager struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
	Origin     string `json:"origin"`
}

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	BusinessManagerID   string          `json:"business_id"`
	BusinessManagerName string          `json:"business_name"`
	Currency            string          `json:"currency"`
	DefaultPageID       *string         `json:"default_page_id"`
	DefaultPixelID      *string         `json:"default_pixel_id"`
	ExternalID          string          `json:"external_id"`
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Nickname            *string         `json:"nickname"`
	Origin              string          `json:"origin"`
	SecretName          *string         `json:"secret_name"`
	Status              AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	Currency       string          `json:"currency"`
	DefaultPageID  *string         `json:"default_page_id"`
	DefaultPixelID *string         `json:"default_pixel_id"`
	ExternalID     string          `json:"external_id"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Nickname       *string         `json:"nickname"`
	HasToken       bool            `json:"hasToken"`
	Status         AdAccountStatus `json:"status"`
}

// AccountCredential é o resultado da resolução de credencial de uma conta:
// a conta e o token de longa duração associado a ela.
type AccountCredential struct {
	AccountID         string
	AccountExternalID string
	Token             string
}

type UpdateAdAccountRequest struct {
	ID             string  `json:"id"`
	Nickname       *string `json:"nickname,omitempty"`
	DefaultPageID  *string `json:"default_page_id,omitempty"`
	DefaultPixelID *string `json:"default_pixel_id,omitempty"`
	SecretName     *string `json:"secret_name,omitempty"`
	Token          *string `json:"token,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type UpdateAdAccountResponse struct {
	ID             string  `json:"id"`
	Nickname       *string `json:"nickname,omitempty"`
	DefaultPageID  *string `json:"default_page_id,omitempty"`
	DefaultPixelID *string `json:"default_pixel_id,omitempty"`
	SecretName     *string `json:"secret_name,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
