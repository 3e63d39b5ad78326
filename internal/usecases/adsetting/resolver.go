package adsetting

import (
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// conversationGoals mapeia metas de conversa/ligação para a meta de otimização
// da plataforma. Esse mapeamento independe da localização de conversão.
var conversationGoals = map[domain.PerformanceGoal]domain.OptimizationGoal{
	domain.GoalMaximizeConversations: domain.OptimizationConversations,
	domain.GoalCostPerConversation:   domain.OptimizationConversations,
	domain.GoalMaximizeCalls:         domain.OptimizationQualityCall,
	domain.GoalCostPerCall:           domain.OptimizationQualityCall,
}

// leadGoalByLocation resolve metas de lead conforme a localização de conversão.
var leadGoalByLocation = map[domain.ConversionLocation]domain.OptimizationGoal{
	domain.LocationInstantForms:             domain.OptimizationLeadGeneration,
	domain.LocationInstantFormsAndMessenger: domain.OptimizationLeadGeneration,
	domain.LocationWebsite:                  domain.OptimizationOffsiteConversions,
	domain.LocationWebsiteAndCalls:          domain.OptimizationOffsiteConversions,
	domain.LocationWebsiteAndInstantForms:   domain.OptimizationOffsiteConversions,
	domain.LocationApp:                      domain.OptimizationConversions,
	domain.LocationMessenger:                domain.OptimizationConversations,
	domain.LocationInstagram:                domain.OptimizationConversations,
}

// conversionGoalByLocation resolve metas de conversão (fluxo Sales) conforme a
// localização de conversão.
var conversionGoalByLocation = map[domain.ConversionLocation]domain.OptimizationGoal{
	domain.LocationWebsite:         domain.OptimizationOffsiteConversions,
	domain.LocationWebsiteAndCalls: domain.OptimizationOffsiteConversions,
	domain.LocationApp:             domain.OptimizationConversions,
	domain.LocationMessenger:       domain.OptimizationConversations,
}

// defaultGoal é o fallback estático por meta de performance, usado quando
// nenhuma regra de localização se aplica.
var defaultGoal = map[domain.PerformanceGoal]domain.OptimizationGoal{
	domain.GoalMaximizeLeads:           domain.OptimizationLeadGeneration,
	domain.GoalCostPerLead:             domain.OptimizationLeadGeneration,
	domain.GoalMaximizeConversions:     domain.OptimizationOffsiteConversions,
	domain.GoalCostPerConversion:       domain.OptimizationOffsiteConversions,
	domain.GoalMaximizeReach:           domain.OptimizationReach,
	domain.GoalMaximizeImpressions:     domain.OptimizationImpressions,
	domain.GoalMaximizeLinkClicks:      domain.OptimizationLinkClicks,
	domain.GoalMaximizeLandingPageView: domain.OptimizationLandingPageViews,
}

// ResolveOptimizationGoal resolve (localização de conversão, meta de
// performance) para a meta de otimização da plataforma.
//
// Quando nenhuma regra de localização casa, a função cai no fallback estático
// por meta de performance e, em último caso, em LEAD_GENERATION. Casos não
// resolvidos degradam de forma silenciosa em vez de bloquear a criação do
// conjunto de anúncios; essa leniência é intencional e faz parte do contrato.
func ResolveOptimizationGoal(location domain.ConversionLocation, performanceGoal domain.PerformanceGoal) domain.OptimizationGoal {
	if goal, ok := conversationGoals[performanceGoal]; ok {
		return goal
	}

	switch performanceGoal {
	case domain.GoalMaximizeLeads, domain.GoalCostPerLead:
		if goal, ok := leadGoalByLocation[location]; ok {
			return goal
		}
	case domain.GoalMaximizeConversions, domain.GoalCostPerConversion:
		if goal, ok := conversionGoalByLocation[location]; ok {
			return goal
		}
	}

	// Fallback documentado: nunca retorna erro.
	if goal, ok := defaultGoal[performanceGoal]; ok {
		return goal
	}

	return domain.OptimizationLeadGeneration
}

// ResolveObjectiveGoal resolve a meta de otimização para objetivos que não
// usam localização de conversão (Awareness e o modo guiado por objetivo).
// Metas desconhecidas caem no padrão do objetivo.
func ResolveObjectiveGoal(cfg *ObjectiveConfig, performanceGoal domain.PerformanceGoal) domain.OptimizationGoal {
	if goal, ok := defaultGoal[performanceGoal]; ok {
		if _, valid := cfg.ValidOptimizationGoals[goal]; valid {
			return goal
		}
	}

	return cfg.DefaultOptimizationGoal
}
