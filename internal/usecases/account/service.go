package account

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta"
	"github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/adset-builder-api/infrastructure/repository"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/apiErrors"
	"github.com/vfg2006/adset-builder-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error)
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	ListCampaigns(accountID string) ([]domain.Campaign, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
	ResolveToken(accountID string) (*domain.AccountCredential, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metaService       *meta.MetaIntegrator
	secretStorage     config.SecretStorage
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	metaService *meta.MetaIntegrator,
	secretStorage config.SecretStorage,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		metaService:       metaService,
		secretStorage:     secretStorage,
		cfg:               cfg,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:             account.ID,
			ExternalID:     account.ExternalID,
			Name:           account.Name,
			Nickname:       account.Nickname,
			Status:         account.Status,
			Currency:       account.Currency,
			DefaultPageID:  account.DefaultPageID,
			DefaultPixelID: account.DefaultPixelID,
			HasToken:       account.SecretName != nil,
		})
	}

	return adAccountsResponse, nil
}

// ListCampaigns devolve as campanhas ativas da conta, direto da plataforma.
// Usado pelo painel para o usuário escolher a campanha pai do conjunto.
func (s *Service) ListCampaigns(accountID string) ([]domain.Campaign, error) {
	credential, err := s.ResolveToken(accountID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.metaService.GetAdCampaigns(credential.AccountExternalID, credential.Token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("accounts: failed to fetch campaigns")
		return nil, NewAccountErrorWithID(ErrMetaIntegration, apiErrors.ErrExternalService, accountID, "Falha ao obter campanhas da API do Meta")
	}

	// Transforma as campanhas para o formato de resposta da API
	response := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		response = append(response, domain.Campaign{
			ID:         campaign.ID,
			Name:       campaign.Name,
			Status:     campaign.Status,
			Objective:  campaign.Objective,
			CBOEnabled: campaign.HasCampaignBudget(),
		})
	}

	return response, nil
}

// ResolveToken resolve a credencial a ser usada nas chamadas à plataforma em
// nome da conta: o token próprio da conta quando há um secret configurado, ou
// o token global do app como fallback.
func (s *Service) ResolveToken(accountID string) (*domain.AccountCredential, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	token := s.cfg.Meta.AccessToken
	if account.SecretName != nil && *account.SecretName != "" {
		if secret, ok := s.cfg.AccountSecrets[*account.SecretName]; ok && secret != "" {
			token = secret
		}
	}

	if token == "" {
		return nil, NewAccountErrorWithID(ErrNoTokenConfigured, apiErrors.ErrAccountTokenMissing, accountID, "Nenhum token configurado para a conta")
	}

	return &domain.AccountCredential{
		AccountID:         account.ID,
		AccountExternalID: account.ExternalID,
		Token:             token,
	}, nil
}

func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	accounts, err := s.metaService.GetAdAccounts()
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return response, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting ad accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	bms := make([]*domain.BusinessManager, 0)
	accountsToCreate := make([]*domain.AdAccount, 0)
	for _, acc := range accounts {
		externalID := strings.Split(acc.ExternalID, "_")[1]
		compositeKey := fmt.Sprintf("%s:%s", acc.Origin, externalID)

		if _, exists := existingAccounts[compositeKey]; exists {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}

		acc.ID = accountID
		acc.ExternalID = externalID
		acc.Status = domain.AdAccountStatusActive

		bmID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para business manager")
		}

		accountsToCreate = append(accountsToCreate, acc)

		bms = append(bms, &domain.BusinessManager{
			ID:         bmID,
			ExternalID: acc.BusinessManagerID,
			Name:       acc.BusinessManagerName,
			Origin:     acc.Origin,
		})
	}

	businessManagerIDs, err := s.accountRepository.SaveOrUpdateBusinessManager(bms)
	if err != nil {
		return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar business managers")
	}

	// Agora tenta salvar as contas com os business managers resolvidos
	if len(accountsToCreate) > 0 {
		err = s.accountRepository.SaveOrUpdate(accountsToCreate, businessManagerIDs)
		if err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	quantity := len(accountsToCreate)

	logrus.Infof("%d accounts were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.Token != nil && *request.Token != "" {
		key := fmt.Sprintf("meta_bm-%s-act-%s", account.BusinessManagerID, account.ID)

		// Valida o token contra a plataforma antes de persistir
		isValid, err := metaclient.CheckTokenValidity(*request.Token, s.cfg.Meta.URL)
		if err != nil {
			logrus.Error("Error checking token validity with meta:", err)
			return nil, NewAccountErrorWithID(ErrTokenValidationFailed, apiErrors.ErrExternalService, request.ID, "Falha ao verificar o token com a plataforma")
		}

		if !isValid {
			logrus.Warn("Invalid token for account:", account.ID)
			return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrInvalidToken, request.ID, "Token inválido para a conta")
		}

		err = s.secretStorage.AddOrUpdateSecret(s.cfg.Render.ServiceID, key, *request.Token)
		if err != nil {
			logrus.Error("Error updating secret on render:", err)
			return nil, NewAccountErrorWithID(ErrRenderSecretUpdate, apiErrors.ErrExternalService, request.ID, "Falha ao atualizar chave secreta no Render")
		}

		request.SecretName = &key
		s.cfg.AccountSecrets[key] = *request.Token
	}

	// Atualiza a conta no repositório
	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateAdAccountResponse{
		ID:             request.ID,
		Nickname:       request.Nickname,
		DefaultPageID:  request.DefaultPageID,
		DefaultPixelID: request.DefaultPixelID,
		SecretName:     request.SecretName,
		Status:         request.Status,
	}, nil
}
