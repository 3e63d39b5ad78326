package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		cfg       *config.Config
		setup     func(repo *mocks.MockAccountRepository)
		validate  func(t *testing.T, credential *domain.AccountCredential, err error)
	}{
		{
			name:      "Conta com secret próprio usa o token da conta",
			accountID: "qIBpB2",
			cfg: &config.Config{
				Meta:           config.Meta{AccessToken: "token-global"},
				AccountSecrets: map[string]string{"meta_bm-B1-act-qIBpB2": "token-da-conta"},
			},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("qIBpB2").Return(&domain.AdAccount{
					ID:         "qIBpB2",
					ExternalID: "987654321",
					SecretName: stringPtr("meta_bm-B1-act-qIBpB2"),
				}, nil)
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "token-da-conta", credential.Token)
				assert.Equal(t, "987654321", credential.AccountExternalID)
			},
		},
		{
			name:      "Conta sem secret cai no token global",
			accountID: "qIBpB2",
			cfg: &config.Config{
				Meta: config.Meta{AccessToken: "token-global"},
			},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("qIBpB2").Return(&domain.AdAccount{
					ID:         "qIBpB2",
					ExternalID: "987654321",
				}, nil)
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "token-global", credential.Token)
			},
		},
		{
			name:      "Secret cadastrado mas ausente no cofre cai no token global",
			accountID: "qIBpB2",
			cfg: &config.Config{
				Meta:           config.Meta{AccessToken: "token-global"},
				AccountSecrets: map[string]string{},
			},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("qIBpB2").Return(&domain.AdAccount{
					ID:         "qIBpB2",
					ExternalID: "987654321",
					SecretName: stringPtr("meta_bm-B1-act-qIBpB2"),
				}, nil)
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "token-global", credential.Token)
			},
		},
		{
			name:      "Conta não encontrada",
			accountID: "zzzzzz",
			cfg:       &config.Config{},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("zzzzzz").Return(nil, nil)
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.Nil(t, credential)

				var accountErr *AccountError
				assert.ErrorAs(t, err, &accountErr)
				assert.ErrorIs(t, err, ErrAccountNotFound)
			},
		},
		{
			name:      "Nenhum token configurado",
			accountID: "qIBpB2",
			cfg:       &config.Config{},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("qIBpB2").Return(&domain.AdAccount{
					ID:         "qIBpB2",
					ExternalID: "987654321",
				}, nil)
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.Nil(t, credential)

				var accountErr *AccountError
				assert.ErrorAs(t, err, &accountErr)
				assert.ErrorIs(t, err, ErrNoTokenConfigured)
				assert.Equal(t, apiErrors.ErrAccountTokenMissing, accountErr.Code)
			},
		},
		{
			name:      "Falha no banco de dados",
			accountID: "qIBpB2",
			cfg:       &config.Config{},
			setup: func(repo *mocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID("qIBpB2").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, credential *domain.AccountCredential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
			tt.setup(mockAccountRepo)

			service := &Service{
				accountRepository: mockAccountRepo,
				cfg:               tt.cfg,
			}

			credential, err := service.ResolveToken(tt.accountID)
			tt.validate(t, credential, err)
		})
	}
}
