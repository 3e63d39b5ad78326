package adsetting

import (
	"fmt"

	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// ResolvedConfig carrega as configurações resolvidas do Registry para uma
// requisição validada. Location é nil para objetivos sem localização.
type ResolvedConfig struct {
	Objective *ObjectiveConfig
	Location  *ConversionLocationConfig
}

// Validate verifica a consistência interna dos parâmetros contra o Registry.
// Função pura: sem efeitos colaterais, resultado determinado apenas pelos
// parâmetros e pelas tabelas estáticas. Retorna as configurações resolvidas e
// a lista de falhas atribuídas a campos; a requisição só prossegue com a lista
// vazia.
func Validate(params *domain.AdSetParams) (*ResolvedConfig, []FieldError) {
	var fieldErrors []FieldError

	if params.AccountID == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    MissingRequiredParameter,
			Field:   "account_id",
			Message: "account_id é obrigatório",
		})
	}

	if params.CampaignID == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    MissingRequiredParameter,
			Field:   "campaign_id",
			Message: "campaign_id é obrigatório",
		})
	}

	objectiveCfg, ok := ObjectiveConfigFor(params.Objective)
	if !ok {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    InvalidEnumValue,
			Field:   "objective",
			Message: fmt.Sprintf("objetivo de campanha não reconhecido: %q", params.Objective),
		})

		// Sem objetivo válido não há como resolver o restante das regras.
		return nil, fieldErrors
	}

	resolved := &ResolvedConfig{Objective: objectiveCfg}

	if objectiveCfg.UsesConversionLocation {
		locationCfg, ok := LocationConfigFor(params.Objective, params.ConversionLocation)
		if !ok {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    InvalidEnumValue,
				Field:   "conversion_location",
				Message: fmt.Sprintf("localização de conversão não reconhecida para o objetivo %s: %q", params.Objective, params.ConversionLocation),
			})
		} else {
			resolved.Location = locationCfg
			fieldErrors = append(fieldErrors, validateAgainstLocation(params, locationCfg)...)
		}

		if params.PageID == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    MissingRequiredParameter,
				Field:   "page_id",
				Message: "page_id é obrigatório para os objetivos Leads e Sales",
			})
		}
	} else if params.PerformanceGoal != "" && !containsGoal(objectiveCfg.ValidPerformanceGoals, params.PerformanceGoal) {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    IncompatibleGoal,
			Field:   "performance_goal",
			Message: fmt.Sprintf("meta de performance %q não é válida para o objetivo %s", params.PerformanceGoal, params.Objective),
		})
	}

	fieldErrors = append(fieldErrors, validateBudget(params)...)

	if params.DetailedTargeting == domain.TargetingCustom && params.CustomAudienceID == "" {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    MissingCustomAudience,
			Field:   "custom_audience_id",
			Message: "custom_audience_id é obrigatório quando detailed_targeting é \"custom\"",
		})
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return resolved, nil
}

func validateAgainstLocation(params *domain.AdSetParams, cfg *ConversionLocationConfig) []FieldError {
	var fieldErrors []FieldError

	if !containsGoal(cfg.ValidPerformanceGoals, params.PerformanceGoal) {
		fieldErrors = append(fieldErrors, FieldError{
			Kind:    IncompatibleGoal,
			Field:   "performance_goal",
			Message: fmt.Sprintf("meta de performance %q não é válida para a localização %s", params.PerformanceGoal, cfg.Location),
		})
	}

	for _, field := range cfg.RequiredFields {
		if fieldValue(params, field) == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    MissingConditionalField,
				Field:   field,
				Message: fmt.Sprintf("%s é obrigatório para a localização %s", field, cfg.Location),
			})
		}
	}

	return fieldErrors
}

func validateBudget(params *domain.AdSetParams) []FieldError {
	switch params.BudgetType {
	case domain.BudgetDaily:
		if params.DailyBudget <= 0 {
			return []FieldError{{
				Kind:    InvalidBudgetConfiguration,
				Field:   "daily_budget",
				Message: "daily_budget deve ser maior que zero",
			}}
		}
	case domain.BudgetLifetime:
		var fieldErrors []FieldError

		if params.LifetimeBudget <= 0 {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    InvalidBudgetConfiguration,
				Field:   "lifetime_budget",
				Message: "lifetime_budget deve ser maior que zero",
			})
		}

		// Orçamento vitalício exige janela de veiculação completa, com um
		// erro por campo ausente.
		if params.StartTime == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    InvalidBudgetConfiguration,
				Field:   "start_time",
				Message: "lifetime_budget exige start_time",
			})
		}
		if params.EndTime == "" {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    InvalidBudgetConfiguration,
				Field:   "end_time",
				Message: "lifetime_budget exige end_time",
			})
		}

		return fieldErrors
	default:
		return []FieldError{{
			Kind:    InvalidBudgetConfiguration,
			Field:   "budget_type",
			Message: fmt.Sprintf("budget_type deve ser %q ou %q", domain.BudgetDaily, domain.BudgetLifetime),
		}}
	}

	return nil
}

func fieldValue(params *domain.AdSetParams, field string) string {
	switch field {
	case "page_id":
		return params.PageID
	case "pixel_id":
		return params.PixelID
	case "application_id":
		return params.ApplicationID
	default:
		return ""
	}
}

func containsGoal(goals []domain.PerformanceGoal, goal domain.PerformanceGoal) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}
