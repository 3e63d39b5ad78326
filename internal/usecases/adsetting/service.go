package adsetting

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta"
	"github.com/vfg2006/adset-builder-api/infrastructure/repository"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/apiErrors"
)

const defaultStatus = "PAUSED"

type AdSetService interface {
	CreateAdSet(params *domain.AdSetParams) (*domain.AdSetResult, error)
	PreviewAdSet(params *domain.AdSetParams) (map[string]string, error)
	ListAdSets(accountID string) ([]*domain.AdSetRecord, error)
}

type Service struct {
	metaService MetaAdSetIntegrator
	credentials CredentialResolver
	adSetRepo   repository.AdSetRepository
	cfg         *config.Config
}

func NewService(
	metaService MetaAdSetIntegrator,
	credentials CredentialResolver,
	adSetRepo repository.AdSetRepository,
	cfg *config.Config,
) AdSetService {
	return &Service{
		metaService: metaService,
		credentials: credentials,
		adSetRepo:   adSetRepo,
		cfg:         cfg,
	}
}

// CreateAdSet valida, resolve e monta o payload do conjunto de anúncios e o
// submete à Meta. Todo caminho resolve para um resultado ou para um erro
// estruturado; nenhum pânico cruza esta fronteira. O endpoint da Meta é um
// "create" puro: chamadas repetidas com os mesmos parâmetros criam conjuntos
// distintos.
func (s *Service) CreateAdSet(params *domain.AdSetParams) (*domain.AdSetResult, error) {
	resolved, fieldErrors := Validate(params)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	credential, err := s.credentials.ResolveToken(params.AccountID)
	if err != nil {
		return nil, err
	}

	payload, draft, err := s.buildPayload(params, resolved, credential)
	if err != nil {
		return nil, err
	}

	resp, err := s.metaService.CreateAdSet(credential.AccountExternalID, credential.Token, payload)
	if err != nil {
		return nil, classifyMetaError(err, params.AccountID)
	}

	s.recordAdSet(params, draft, resp.ID)

	return &domain.AdSetResult{
		ID:               resp.ID,
		AccountID:        params.AccountID,
		CampaignID:       params.CampaignID,
		Name:             draft.Name,
		OptimizationGoal: draft.OptimizationGoal,
	}, nil
}

// PreviewAdSet executa o mesmo fluxo de validação, resolução e montagem, mas
// devolve o payload sem submeter nada à Meta. Usado pelo painel como dry-run.
func (s *Service) PreviewAdSet(params *domain.AdSetParams) (map[string]string, error) {
	resolved, fieldErrors := Validate(params)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	credential, err := s.credentials.ResolveToken(params.AccountID)
	if err != nil {
		return nil, err
	}

	payload, _, err := s.buildPayload(params, resolved, credential)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (s *Service) ListAdSets(accountID string) ([]*domain.AdSetRecord, error) {
	records, err := s.adSetRepo.ListByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("adsets: failed to list ad set records")
		return nil, NewAdSetErrorWithAccount(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao listar conjuntos criados")
	}

	return records, nil
}

// buildPayload consulta o estado de orçamento da campanha pai e monta o
// payload final. A leitura do CBO é a única suspensão externa do fluxo de
// construção; falhas são devolvidas imediatamente, sem retry.
func (s *Service) buildPayload(params *domain.AdSetParams, resolved *ResolvedConfig, credential *domain.AccountCredential) (map[string]string, *AdSetDraft, error) {
	budgetState, err := s.metaService.GetCampaignBudgetState(params.CampaignID, credential.Token)
	if err != nil {
		return nil, nil, classifyMetaError(err, params.AccountID)
	}

	draft := buildDraft(params, resolved, budgetState.CBOEnabled)

	return Assemble(draft), draft, nil
}

// buildDraft materializa o rascunho do conjunto a partir dos parâmetros
// validados e das configurações resolvidas do Registry.
func buildDraft(params *domain.AdSetParams, resolved *ResolvedConfig, cboEnabled bool) *AdSetDraft {
	objectiveCfg := resolved.Objective

	draft := &AdSetDraft{
		Name:             params.Name,
		CampaignID:       params.CampaignID,
		BillingEvent:     objectiveCfg.BillingEvent,
		Status:           params.Status,
		Targeting:        BuildTargeting(params),
		Budget:           NormalizeBudget(params, cboEnabled),
		FrequencyControl: objectiveCfg.DefaultFrequencyControl,
	}

	if draft.Name == "" {
		draft.Name = fmt.Sprintf("%s %s", objectiveCfg.Objective, time.Now().Format("2006-01-02 15:04:05"))
	}

	if draft.Status == "" {
		draft.Status = defaultStatus
	}

	customEventType := params.CustomEventType
	if resolved.Location != nil {
		draft.OptimizationGoal = ResolveOptimizationGoal(params.ConversionLocation, params.PerformanceGoal)
		draft.DestinationType = resolved.Location.DestinationType
		draft.AttributionSpec = resolved.Location.AttributionSpec

		// O evento de conversão padrão só faz sentido quando há pixel ou app
		// para reportá-lo.
		if customEventType == "" && (params.PixelID != "" || params.ApplicationID != "") {
			customEventType = resolved.Location.DefaultCustomEvent
		}
	} else {
		draft.OptimizationGoal = ResolveObjectiveGoal(objectiveCfg, params.PerformanceGoal)
	}

	draft.PromotedObject = BuildPromotedObject(params.PageID, params.PixelID, params.ApplicationID, customEventType)

	return draft
}

// recordAdSet guarda o registro de auditoria do conjunto criado. Falha aqui
// não desfaz a criação na Meta; apenas logamos.
func (s *Service) recordAdSet(params *domain.AdSetParams, draft *AdSetDraft, externalID string) {
	record := &domain.AdSetRecord{
		ExternalID:       externalID,
		AccountID:        params.AccountID,
		CampaignID:       params.CampaignID,
		Name:             draft.Name,
		OptimizationGoal: string(draft.OptimizationGoal),
		BillingEvent:     string(draft.BillingEvent),
		Status:           draft.Status,
	}

	if err := s.adSetRepo.SaveAdSet(record); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": params.AccountID,
			"adset_id":   externalID,
			"error":      err.Error(),
		}).Warn("adsets: failed to record created ad set")
	}
}

// classifyMetaError traduz falhas da integração para a taxonomia de erros da
// API: rejeição da plataforma com envelope preservado, ou falha de rede.
func classifyMetaError(err error, accountID string) error {
	var rejection *meta.RejectionError
	if errors.As(err, &rejection) {
		details := rejection.Envelope.Error.Message
		if rejection.Hint != "" {
			details = fmt.Sprintf("%s (%s)", details, rejection.Hint)
		}

		return NewAdSetErrorWithAccount(ErrMetaRejection, apiErrors.ErrPlatformRejection, accountID, details)
	}

	return NewAdSetErrorWithAccount(ErrNetwork, apiErrors.ErrPlatformNetwork, accountID, err.Error())
}
