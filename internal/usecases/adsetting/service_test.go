package adsetting_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/adset-builder-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/adset-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-builder-api/internal/usecases/adsetting/mocks"
	"github.com/vfg2006/adset-builder-api/pkg/apiErrors"
)

func newTestService(t *testing.T) (adsetting.AdSetService, *mocks.MockMetaAdSetIntegrator, *mocks.MockCredentialResolver, *repomocks.MockAdSetRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metaService := mocks.NewMockMetaAdSetIntegrator(ctrl)
	credentials := mocks.NewMockCredentialResolver(ctrl)
	adSetRepo := repomocks.NewMockAdSetRepository(ctrl)

	service := adsetting.NewService(metaService, credentials, adSetRepo, &config.Config{})

	return service, metaService, credentials, adSetRepo
}

func testParams() *domain.AdSetParams {
	return &domain.AdSetParams{
		AccountID:          "qIBpB2",
		CampaignID:         "120211234567890123",
		Name:               "Leads site fevereiro",
		Objective:          domain.ObjectiveLeads,
		ConversionLocation: domain.LocationWebsite,
		PerformanceGoal:    domain.GoalMaximizeLeads,
		PageID:             "111222333",
		PixelID:            "444555666",
		BudgetType:         domain.BudgetDaily,
		DailyBudget:        250.00,
	}
}

func testCredential() *domain.AccountCredential {
	return &domain.AccountCredential{
		AccountID:         "qIBpB2",
		AccountExternalID: "act_987654321",
		Token:             "EAAtoken",
	}
}

func TestCreateAdSet(t *testing.T) {
	t.Run("Criação com sucesso registra auditoria e retorna o id", func(t *testing.T) {
		service, metaService, credentials, adSetRepo := newTestService(t)
		params := testParams()

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(&metadomain.CampaignBudgetState{CampaignID: "120211234567890123"}, nil)
		metaService.EXPECT().CreateAdSet("act_987654321", "EAAtoken", gomock.Any()).
			DoAndReturn(func(_ string, _ string, payload map[string]string) (*metadomain.CreateAdSetResponse, error) {
				assert.Equal(t, "OFFSITE_CONVERSIONS", payload["optimization_goal"])
				assert.Equal(t, "25000", payload["daily_budget"])
				assert.Equal(t, "PAUSED", payload["status"])
				return &metadomain.CreateAdSetResponse{ID: "120220000000000001"}, nil
			})
		adSetRepo.EXPECT().SaveAdSet(gomock.Any()).
			DoAndReturn(func(record *domain.AdSetRecord) error {
				assert.Equal(t, "120220000000000001", record.ExternalID)
				assert.Equal(t, "qIBpB2", record.AccountID)
				assert.Equal(t, "OFFSITE_CONVERSIONS", record.OptimizationGoal)
				return nil
			})

		result, err := service.CreateAdSet(params)
		assert.NoError(t, err)
		assert.Equal(t, "120220000000000001", result.ID)
		assert.Equal(t, "Leads site fevereiro", result.Name)
		assert.Equal(t, domain.OptimizationOffsiteConversions, result.OptimizationGoal)
	})

	t.Run("Parâmetros inválidos não chegam na integração", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		params := testParams()
		params.CampaignID = ""

		result, err := service.CreateAdSet(params)
		assert.Nil(t, result)

		var validationErr *adsetting.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "campaign_id", validationErr.Fields[0].Field)
	})

	t.Run("Falha na resolução do token interrompe o fluxo", func(t *testing.T) {
		service, _, credentials, _ := newTestService(t)
		tokenErr := errors.New("conta sem token")

		credentials.EXPECT().ResolveToken("qIBpB2").Return(nil, tokenErr)

		result, err := service.CreateAdSet(testParams())
		assert.Nil(t, result)
		assert.Equal(t, tokenErr, err)
	})

	t.Run("CBO habilitado suprime o orçamento do conjunto", func(t *testing.T) {
		service, metaService, credentials, adSetRepo := newTestService(t)

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(&metadomain.CampaignBudgetState{CampaignID: "120211234567890123", CBOEnabled: true}, nil)
		metaService.EXPECT().CreateAdSet("act_987654321", "EAAtoken", gomock.Any()).
			DoAndReturn(func(_ string, _ string, payload map[string]string) (*metadomain.CreateAdSetResponse, error) {
				assert.NotContains(t, payload, "daily_budget")
				assert.NotContains(t, payload, "lifetime_budget")
				return &metadomain.CreateAdSetResponse{ID: "120220000000000002"}, nil
			})
		adSetRepo.EXPECT().SaveAdSet(gomock.Any()).Return(nil)

		_, err := service.CreateAdSet(testParams())
		assert.NoError(t, err)
	})

	t.Run("Rejeição da Meta vira erro de plataforma com o envelope", func(t *testing.T) {
		service, metaService, credentials, _ := newTestService(t)

		rejection := &meta.RejectionError{
			Envelope: &metadomain.ErrorResponse{
				Error: metadomain.ErrorDetails{
					Message: "Invalid parameter",
					Code:    100,
				},
			},
			Hint: "A Meta rejeitou um dos parâmetros enviados. Verifique os campos do conjunto de anúncios.",
		}

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(&metadomain.CampaignBudgetState{CampaignID: "120211234567890123"}, nil)
		metaService.EXPECT().CreateAdSet("act_987654321", "EAAtoken", gomock.Any()).
			Return(nil, rejection)

		result, err := service.CreateAdSet(testParams())
		assert.Nil(t, result)

		var adSetErr *adsetting.AdSetError
		assert.ErrorAs(t, err, &adSetErr)
		assert.Equal(t, apiErrors.ErrPlatformRejection, adSetErr.Code)
		assert.Equal(t, "qIBpB2", adSetErr.AccountID)
		assert.Contains(t, adSetErr.Details, "Invalid parameter")
		assert.Contains(t, adSetErr.Details, "Verifique os campos")
	})

	t.Run("Falha de transporte vira erro de rede", func(t *testing.T) {
		service, metaService, credentials, _ := newTestService(t)

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(nil, errors.New("connection refused"))

		result, err := service.CreateAdSet(testParams())
		assert.Nil(t, result)

		var adSetErr *adsetting.AdSetError
		assert.ErrorAs(t, err, &adSetErr)
		assert.Equal(t, apiErrors.ErrPlatformNetwork, adSetErr.Code)
	})

	t.Run("Falha na auditoria não desfaz a criação", func(t *testing.T) {
		service, metaService, credentials, adSetRepo := newTestService(t)

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(&metadomain.CampaignBudgetState{CampaignID: "120211234567890123"}, nil)
		metaService.EXPECT().CreateAdSet("act_987654321", "EAAtoken", gomock.Any()).
			Return(&metadomain.CreateAdSetResponse{ID: "120220000000000003"}, nil)
		adSetRepo.EXPECT().SaveAdSet(gomock.Any()).Return(errors.New("db down"))

		result, err := service.CreateAdSet(testParams())
		assert.NoError(t, err)
		assert.Equal(t, "120220000000000003", result.ID)
	})
}

func TestPreviewAdSet(t *testing.T) {
	t.Run("Preview monta o payload sem submeter à Meta", func(t *testing.T) {
		service, metaService, credentials, _ := newTestService(t)

		credentials.EXPECT().ResolveToken("qIBpB2").Return(testCredential(), nil)
		metaService.EXPECT().GetCampaignBudgetState("120211234567890123", "EAAtoken").
			Return(&metadomain.CampaignBudgetState{CampaignID: "120211234567890123"}, nil)

		payload, err := service.PreviewAdSet(testParams())
		assert.NoError(t, err)
		assert.Equal(t, "Leads site fevereiro", payload["name"])
		assert.Equal(t, "OFFSITE_CONVERSIONS", payload["optimization_goal"])
		assert.Equal(t, "WEBSITE", payload["destination_type"])
		assert.Contains(t, payload["promoted_object"], "444555666")
	})

	t.Run("Preview também valida a entrada", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		params := testParams()
		params.Objective = "engagement"

		payload, err := service.PreviewAdSet(params)
		assert.Nil(t, payload)

		var validationErr *adsetting.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestListAdSets(t *testing.T) {
	t.Run("Lista os registros da conta", func(t *testing.T) {
		service, _, _, adSetRepo := newTestService(t)

		adSetRepo.EXPECT().ListByAccountID("qIBpB2").Return([]*domain.AdSetRecord{
			{ID: "aB3dE9", ExternalID: "120220000000000001", AccountID: "qIBpB2"},
		}, nil)

		records, err := service.ListAdSets("qIBpB2")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "120220000000000001", records[0].ExternalID)
	})

	t.Run("Falha no banco vira erro estruturado", func(t *testing.T) {
		service, _, _, adSetRepo := newTestService(t)

		adSetRepo.EXPECT().ListByAccountID("qIBpB2").Return(nil, errors.New("db down"))

		records, err := service.ListAdSets("qIBpB2")
		assert.Nil(t, records)

		var adSetErr *adsetting.AdSetError
		assert.ErrorAs(t, err, &adSetErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, adSetErr.Code)
	})
}
