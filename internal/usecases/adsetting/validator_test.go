package adsetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

func validLeadsParams() *domain.AdSetParams {
	return &domain.AdSetParams{
		AccountID:          "qIBpB2",
		CampaignID:         "120211234567890123",
		Objective:          domain.ObjectiveLeads,
		ConversionLocation: domain.LocationWebsite,
		PerformanceGoal:    domain.GoalMaximizeLeads,
		PageID:             "111222333",
		PixelID:            "444555666",
		BudgetType:         domain.BudgetDaily,
		DailyBudget:        250.00,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *domain.AdSetParams)
		validate func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError)
	}{
		{
			name:   "Requisição completa passa sem erros",
			mutate: func(p *domain.AdSetParams) {},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Empty(t, fieldErrors)
				assert.Equal(t, domain.ObjectiveLeads, resolved.Objective.Objective)
				assert.Equal(t, domain.LocationWebsite, resolved.Location.Location)
			},
		},
		{
			name: "account_id e campaign_id são obrigatórios",
			mutate: func(p *domain.AdSetParams) {
				p.AccountID = ""
				p.CampaignID = ""
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 2)
				assert.Equal(t, MissingRequiredParameter, fieldErrors[0].Kind)
			},
		},
		{
			name: "Objetivo desconhecido interrompe a validação",
			mutate: func(p *domain.AdSetParams) {
				p.Objective = "engagement"
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 1)
				assert.Equal(t, InvalidEnumValue, fieldErrors[0].Kind)
				assert.Equal(t, "objective", fieldErrors[0].Field)
			},
		},
		{
			name: "Localização desconhecida para o objetivo",
			mutate: func(p *domain.AdSetParams) {
				p.ConversionLocation = "metaverse"
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, "conversion_location", fieldErrors[0].Field)
			},
		},
		{
			name: "Meta incompatível com a localização",
			mutate: func(p *domain.AdSetParams) {
				p.PerformanceGoal = domain.GoalMaximizeConversations
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, IncompatibleGoal, fieldErrors[0].Kind)
			},
		},
		{
			name: "Localização de site exige pixel",
			mutate: func(p *domain.AdSetParams) {
				p.PixelID = ""
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, MissingConditionalField, fieldErrors[0].Kind)
				assert.Equal(t, "pixel_id", fieldErrors[0].Field)
			},
		},
		{
			name: "page_id ausente acumula as duas falhas",
			mutate: func(p *domain.AdSetParams) {
				p.PageID = ""
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				// A localização exige page_id e o objetivo Leads também
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 2)
			},
		},
		{
			name: "Orçamento diário não positivo",
			mutate: func(p *domain.AdSetParams) {
				p.DailyBudget = 0
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, InvalidBudgetConfiguration, fieldErrors[0].Kind)
				assert.Equal(t, "daily_budget", fieldErrors[0].Field)
			},
		},
		{
			name: "Orçamento vitalício sem end_time aponta o campo ausente",
			mutate: func(p *domain.AdSetParams) {
				p.BudgetType = domain.BudgetLifetime
				p.LifetimeBudget = 900
				p.StartTime = "2025-02-01T00:00:00-0800"
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 1)
				assert.Equal(t, InvalidBudgetConfiguration, fieldErrors[0].Kind)
				assert.Equal(t, "end_time", fieldErrors[0].Field)
			},
		},
		{
			name: "Orçamento vitalício sem start_time aponta o campo ausente",
			mutate: func(p *domain.AdSetParams) {
				p.BudgetType = domain.BudgetLifetime
				p.LifetimeBudget = 900
				p.EndTime = "2025-02-15T00:00:00-0800"
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 1)
				assert.Equal(t, InvalidBudgetConfiguration, fieldErrors[0].Kind)
				assert.Equal(t, "start_time", fieldErrors[0].Field)
			},
		},
		{
			name: "Orçamento vitalício sem a janela inteira gera um erro por campo",
			mutate: func(p *domain.AdSetParams) {
				p.BudgetType = domain.BudgetLifetime
				p.LifetimeBudget = 900
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Len(t, fieldErrors, 2)
				assert.Equal(t, "start_time", fieldErrors[0].Field)
				assert.Equal(t, "end_time", fieldErrors[1].Field)
			},
		},
		{
			name: "Tipo de orçamento desconhecido",
			mutate: func(p *domain.AdSetParams) {
				p.BudgetType = "weekly_budget"
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, "budget_type", fieldErrors[0].Field)
			},
		},
		{
			name: "Segmentação custom exige o público",
			mutate: func(p *domain.AdSetParams) {
				p.DetailedTargeting = domain.TargetingCustom
			},
			validate: func(t *testing.T, resolved *ResolvedConfig, fieldErrors []FieldError) {
				assert.Nil(t, resolved)
				assert.Equal(t, MissingCustomAudience, fieldErrors[0].Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validLeadsParams()
			tt.mutate(params)

			resolved, fieldErrors := Validate(params)
			tt.validate(t, resolved, fieldErrors)
		})
	}
}

func TestValidateAwareness(t *testing.T) {
	params := &domain.AdSetParams{
		AccountID:       "qIBpB2",
		CampaignID:      "120211234567890123",
		Objective:       domain.ObjectiveAwareness,
		PerformanceGoal: domain.GoalMaximizeReach,
		BudgetType:      domain.BudgetDaily,
		DailyBudget:     100,
	}

	resolved, fieldErrors := Validate(params)
	assert.Empty(t, fieldErrors)
	assert.Nil(t, resolved.Location)

	// Awareness não aceita metas de clique
	params.PerformanceGoal = domain.GoalMaximizeLinkClicks
	resolved, fieldErrors = Validate(params)
	assert.Nil(t, resolved)
	assert.Equal(t, IncompatibleGoal, fieldErrors[0].Kind)
}

func TestValidateSalesCalls(t *testing.T) {
	params := &domain.AdSetParams{
		AccountID:          "qIBpB2",
		CampaignID:         "120211234567890123",
		Objective:          domain.ObjectiveSales,
		ConversionLocation: domain.LocationCalls,
		PerformanceGoal:    domain.GoalMaximizeCalls,
		PageID:             "111222333",
		BudgetType:         domain.BudgetDaily,
		DailyBudget:        80,
	}

	resolved, fieldErrors := Validate(params)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, domain.DestinationPhoneCall, resolved.Location.DestinationType)
}
