package adsetting

import (
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// FrequencyControl representa o frequency_control_specs enviado à Meta.
type FrequencyControl struct {
	Event        string `json:"event"`
	IntervalDays int    `json:"interval_days"`
	MaxFrequency int    `json:"max_frequency"`
}

// AttributionWindow representa uma entrada do attribution_spec.
type AttributionWindow struct {
	EventType  string `json:"event_type"`
	WindowDays int    `json:"window_days"`
}

// ObjectiveConfig descreve, por objetivo de campanha, quais metas são válidas,
// qual evento de cobrança se aplica e quais campos de promoted_object são
// obrigatórios. As tabelas são carregadas uma única vez e nunca mutadas.
type ObjectiveConfig struct {
	Objective                    domain.CampaignObjective
	ValidPerformanceGoals        []domain.PerformanceGoal
	ValidOptimizationGoals       map[domain.OptimizationGoal]struct{}
	BillingEvent                 domain.BillingEvent
	DefaultOptimizationGoal      domain.OptimizationGoal
	RequiredPromotedObjectFields []string
	DefaultFrequencyControl      *FrequencyControl
	DestinationTypes             map[domain.DestinationType]struct{}
	UsesConversionLocation       bool
}

// ConversionLocationConfig descreve, por localização de conversão (fluxos
// Leads/Sales), as metas de performance válidas, os campos obrigatórios e o
// destination_type correspondente.
type ConversionLocationConfig struct {
	Location               domain.ConversionLocation
	ValidPerformanceGoals  []domain.PerformanceGoal
	ValidOptimizationGoals map[domain.OptimizationGoal]struct{}
	RequiredFields         []string
	DestinationType        domain.DestinationType
	DefaultCustomEvent     string
	AttributionSpec        []AttributionWindow
}

func goalSet(goals ...domain.OptimizationGoal) map[domain.OptimizationGoal]struct{} {
	set := make(map[domain.OptimizationGoal]struct{}, len(goals))
	for _, g := range goals {
		set[g] = struct{}{}
	}
	return set
}

// clickThrough7d é a janela de atribuição padrão usada nos fluxos de site.
var clickThrough7d = []AttributionWindow{
	{EventType: "CLICK_THROUGH", WindowDays: 7},
}

// objectiveRegistry é a tabela estática de objetivos suportados.
var objectiveRegistry = map[domain.CampaignObjective]*ObjectiveConfig{
	domain.ObjectiveAwareness: {
		Objective: domain.ObjectiveAwareness,
		ValidPerformanceGoals: []domain.PerformanceGoal{
			domain.GoalMaximizeReach,
			domain.GoalMaximizeImpressions,
		},
		ValidOptimizationGoals:  goalSet(domain.OptimizationReach, domain.OptimizationImpressions),
		BillingEvent:            domain.BillingImpressions,
		DefaultOptimizationGoal: domain.OptimizationReach,
		DefaultFrequencyControl: &FrequencyControl{
			Event:        "IMPRESSIONS",
			IntervalDays: 7,
			MaxFrequency: 2,
		},
	},
	domain.ObjectiveLeads: {
		Objective: domain.ObjectiveLeads,
		ValidPerformanceGoals: []domain.PerformanceGoal{
			domain.GoalMaximizeLeads,
			domain.GoalCostPerLead,
			domain.GoalMaximizeConversations,
			domain.GoalCostPerConversation,
			domain.GoalMaximizeCalls,
			domain.GoalCostPerCall,
		},
		ValidOptimizationGoals: goalSet(
			domain.OptimizationLeadGeneration,
			domain.OptimizationOffsiteConversions,
			domain.OptimizationConversions,
			domain.OptimizationConversations,
			domain.OptimizationQualityCall,
		),
		BillingEvent:                 domain.BillingImpressions,
		DefaultOptimizationGoal:      domain.OptimizationLeadGeneration,
		RequiredPromotedObjectFields: []string{"page_id"},
		DestinationTypes: map[domain.DestinationType]struct{}{
			domain.DestinationOnAd:      {},
			domain.DestinationWebsite:   {},
			domain.DestinationApp:       {},
			domain.DestinationMessenger: {},
			domain.DestinationInstagram: {},
			domain.DestinationPhoneCall: {},
		},
		UsesConversionLocation: true,
	},
	domain.ObjectiveSales: {
		Objective: domain.ObjectiveSales,
		ValidPerformanceGoals: []domain.PerformanceGoal{
			domain.GoalMaximizeConversions,
			domain.GoalCostPerConversion,
			domain.GoalMaximizeConversations,
			domain.GoalCostPerConversation,
			domain.GoalMaximizeCalls,
			domain.GoalCostPerCall,
		},
		ValidOptimizationGoals: goalSet(
			domain.OptimizationOffsiteConversions,
			domain.OptimizationConversions,
			domain.OptimizationConversations,
			domain.OptimizationQualityCall,
		),
		BillingEvent:                 domain.BillingImpressions,
		DefaultOptimizationGoal:      domain.OptimizationOffsiteConversions,
		RequiredPromotedObjectFields: []string{"page_id"},
		DestinationTypes: map[domain.DestinationType]struct{}{
			domain.DestinationWebsite:   {},
			domain.DestinationApp:       {},
			domain.DestinationMessenger: {},
			domain.DestinationPhoneCall: {},
		},
		UsesConversionLocation: true,
	},
	domain.ObjectiveDriven: {
		Objective: domain.ObjectiveDriven,
		ValidPerformanceGoals: []domain.PerformanceGoal{
			domain.GoalMaximizeLinkClicks,
			domain.GoalMaximizeLandingPageView,
			domain.GoalMaximizeReach,
			domain.GoalMaximizeImpressions,
		},
		ValidOptimizationGoals: goalSet(
			domain.OptimizationLinkClicks,
			domain.OptimizationLandingPageViews,
			domain.OptimizationReach,
			domain.OptimizationImpressions,
		),
		BillingEvent:            domain.BillingImpressions,
		DefaultOptimizationGoal: domain.OptimizationLinkClicks,
	},
}

// leadsLocationRegistry descreve as localizações de conversão do fluxo Leads.
var leadsLocationRegistry = map[domain.ConversionLocation]*ConversionLocationConfig{
	domain.LocationInstantForms: {
		Location:               domain.LocationInstantForms,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead},
		ValidOptimizationGoals: goalSet(domain.OptimizationLeadGeneration),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationOnAd,
	},
	domain.LocationInstantFormsAndMessenger: {
		Location:               domain.LocationInstantFormsAndMessenger,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead},
		ValidOptimizationGoals: goalSet(domain.OptimizationLeadGeneration),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationOnAd,
	},
	domain.LocationWebsite: {
		Location:               domain.LocationWebsite,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead},
		ValidOptimizationGoals: goalSet(domain.OptimizationOffsiteConversions),
		RequiredFields:         []string{"page_id", "pixel_id"},
		DestinationType:        domain.DestinationWebsite,
		DefaultCustomEvent:     "LEAD",
		AttributionSpec:        clickThrough7d,
	},
	domain.LocationWebsiteAndCalls: {
		Location:               domain.LocationWebsiteAndCalls,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead, domain.GoalMaximizeCalls, domain.GoalCostPerCall},
		ValidOptimizationGoals: goalSet(domain.OptimizationOffsiteConversions, domain.OptimizationQualityCall),
		RequiredFields:         []string{"page_id", "pixel_id"},
		DestinationType:        domain.DestinationWebsite,
		DefaultCustomEvent:     "LEAD",
		AttributionSpec:        clickThrough7d,
	},
	domain.LocationWebsiteAndInstantForms: {
		Location:               domain.LocationWebsiteAndInstantForms,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead},
		ValidOptimizationGoals: goalSet(domain.OptimizationOffsiteConversions, domain.OptimizationLeadGeneration),
		RequiredFields:         []string{"page_id", "pixel_id"},
		DestinationType:        domain.DestinationWebsite,
		DefaultCustomEvent:     "LEAD",
		AttributionSpec:        clickThrough7d,
	},
	domain.LocationApp: {
		Location:               domain.LocationApp,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeLeads, domain.GoalCostPerLead},
		ValidOptimizationGoals: goalSet(domain.OptimizationConversions),
		RequiredFields:         []string{"application_id"},
		DestinationType:        domain.DestinationApp,
		DefaultCustomEvent:     "LEAD",
	},
	domain.LocationMessenger: {
		Location:               domain.LocationMessenger,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversations, domain.GoalCostPerConversation, domain.GoalMaximizeLeads},
		ValidOptimizationGoals: goalSet(domain.OptimizationConversations),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationMessenger,
	},
	domain.LocationInstagram: {
		Location:               domain.LocationInstagram,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversations, domain.GoalCostPerConversation, domain.GoalMaximizeLeads},
		ValidOptimizationGoals: goalSet(domain.OptimizationConversations),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationInstagram,
	},
	domain.LocationCalls: {
		Location:               domain.LocationCalls,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeCalls, domain.GoalCostPerCall},
		ValidOptimizationGoals: goalSet(domain.OptimizationQualityCall),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationPhoneCall,
	},
}

// salesLocationRegistry descreve as localizações de conversão do fluxo Sales.
var salesLocationRegistry = map[domain.ConversionLocation]*ConversionLocationConfig{
	domain.LocationWebsite: {
		Location:               domain.LocationWebsite,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversions, domain.GoalCostPerConversion},
		ValidOptimizationGoals: goalSet(domain.OptimizationOffsiteConversions),
		RequiredFields:         []string{"page_id", "pixel_id"},
		DestinationType:        domain.DestinationWebsite,
		DefaultCustomEvent:     "PURCHASE",
		AttributionSpec:        clickThrough7d,
	},
	domain.LocationWebsiteAndCalls: {
		Location:               domain.LocationWebsiteAndCalls,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversions, domain.GoalCostPerConversion, domain.GoalMaximizeCalls, domain.GoalCostPerCall},
		ValidOptimizationGoals: goalSet(domain.OptimizationOffsiteConversions, domain.OptimizationQualityCall),
		RequiredFields:         []string{"page_id", "pixel_id"},
		DestinationType:        domain.DestinationWebsite,
		DefaultCustomEvent:     "PURCHASE",
		AttributionSpec:        clickThrough7d,
	},
	domain.LocationApp: {
		Location:               domain.LocationApp,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversions, domain.GoalCostPerConversion},
		ValidOptimizationGoals: goalSet(domain.OptimizationConversions),
		RequiredFields:         []string{"application_id"},
		DestinationType:        domain.DestinationApp,
		DefaultCustomEvent:     "PURCHASE",
	},
	domain.LocationMessenger: {
		Location:               domain.LocationMessenger,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeConversations, domain.GoalCostPerConversation},
		ValidOptimizationGoals: goalSet(domain.OptimizationConversations),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationMessenger,
	},
	domain.LocationCalls: {
		Location:               domain.LocationCalls,
		ValidPerformanceGoals:  []domain.PerformanceGoal{domain.GoalMaximizeCalls, domain.GoalCostPerCall},
		ValidOptimizationGoals: goalSet(domain.OptimizationQualityCall),
		RequiredFields:         []string{"page_id"},
		DestinationType:        domain.DestinationPhoneCall,
	},
}

// ObjectiveConfigFor retorna a configuração do objetivo, se registrado.
func ObjectiveConfigFor(objective domain.CampaignObjective) (*ObjectiveConfig, bool) {
	cfg, ok := objectiveRegistry[objective]
	return cfg, ok
}

// LocationConfigFor retorna a configuração da localização de conversão para o
// objetivo informado. Apenas os fluxos Leads e Sales usam localização.
func LocationConfigFor(objective domain.CampaignObjective, location domain.ConversionLocation) (*ConversionLocationConfig, bool) {
	switch objective {
	case domain.ObjectiveLeads:
		cfg, ok := leadsLocationRegistry[location]
		return cfg, ok
	case domain.ObjectiveSales:
		cfg, ok := salesLocationRegistry[location]
		return cfg, ok
	default:
		return nil, false
	}
}

// RegisteredLocations lista as localizações registradas para um objetivo, útil
// para mensagens de erro e para os testes das tabelas.
func RegisteredLocations(objective domain.CampaignObjective) []domain.ConversionLocation {
	var registry map[domain.ConversionLocation]*ConversionLocationConfig

	switch objective {
	case domain.ObjectiveLeads:
		registry = leadsLocationRegistry
	case domain.ObjectiveSales:
		registry = salesLocationRegistry
	default:
		return nil
	}

	locations := make([]domain.ConversionLocation, 0, len(registry))
	for location := range registry {
		locations = append(locations, location)
	}

	return locations
}
