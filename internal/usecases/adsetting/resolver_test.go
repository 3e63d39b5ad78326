package adsetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

func TestResolveOptimizationGoal(t *testing.T) {
	tests := []struct {
		name            string
		location        domain.ConversionLocation
		performanceGoal domain.PerformanceGoal
		expected        domain.OptimizationGoal
	}{
		{
			name:            "Meta de lead em formulários instantâneos resolve para LEAD_GENERATION",
			location:        domain.LocationInstantForms,
			performanceGoal: domain.GoalMaximizeLeads,
			expected:        domain.OptimizationLeadGeneration,
		},
		{
			name:            "Meta de lead no site resolve para OFFSITE_CONVERSIONS",
			location:        domain.LocationWebsite,
			performanceGoal: domain.GoalMaximizeLeads,
			expected:        domain.OptimizationOffsiteConversions,
		},
		{
			name:            "Custo por lead segue a mesma regra de localização",
			location:        domain.LocationWebsiteAndInstantForms,
			performanceGoal: domain.GoalCostPerLead,
			expected:        domain.OptimizationOffsiteConversions,
		},
		{
			name:            "Meta de lead no app resolve para CONVERSIONS",
			location:        domain.LocationApp,
			performanceGoal: domain.GoalMaximizeLeads,
			expected:        domain.OptimizationConversions,
		},
		{
			name:            "Meta de conversão no site resolve para OFFSITE_CONVERSIONS",
			location:        domain.LocationWebsite,
			performanceGoal: domain.GoalMaximizeConversions,
			expected:        domain.OptimizationOffsiteConversions,
		},
		{
			name:            "Meta de conversão no app resolve para CONVERSIONS",
			location:        domain.LocationApp,
			performanceGoal: domain.GoalCostPerConversion,
			expected:        domain.OptimizationConversions,
		},
		{
			name:            "Meta de conversa ignora a localização",
			location:        domain.LocationWebsite,
			performanceGoal: domain.GoalMaximizeConversations,
			expected:        domain.OptimizationConversations,
		},
		{
			name:            "Meta de ligação ignora a localização",
			location:        domain.LocationInstantForms,
			performanceGoal: domain.GoalCostPerCall,
			expected:        domain.OptimizationQualityCall,
		},
		{
			name:            "Localização desconhecida cai no fallback estático da meta",
			location:        domain.ConversionLocation("somewhere_new"),
			performanceGoal: domain.GoalMaximizeConversions,
			expected:        domain.OptimizationOffsiteConversions,
		},
		{
			name:            "Meta de alcance usa o fallback estático",
			location:        "",
			performanceGoal: domain.GoalMaximizeReach,
			expected:        domain.OptimizationReach,
		},
		{
			name:            "Meta desconhecida degrada para LEAD_GENERATION sem erro",
			location:        domain.LocationWebsite,
			performanceGoal: domain.PerformanceGoal("brand_new_goal"),
			expected:        domain.OptimizationLeadGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := ResolveOptimizationGoal(tt.location, tt.performanceGoal)
			assert.Equal(t, tt.expected, goal)
		})
	}
}

func TestResolveObjectiveGoal(t *testing.T) {
	awareness, ok := ObjectiveConfigFor(domain.ObjectiveAwareness)
	assert.True(t, ok)

	driven, ok := ObjectiveConfigFor(domain.ObjectiveDriven)
	assert.True(t, ok)

	// Meta compatível com o objetivo é respeitada
	assert.Equal(t, domain.OptimizationImpressions, ResolveObjectiveGoal(awareness, domain.GoalMaximizeImpressions))
	assert.Equal(t, domain.OptimizationLandingPageViews, ResolveObjectiveGoal(driven, domain.GoalMaximizeLandingPageView))

	// Meta incompatível com o objetivo cai no padrão do objetivo
	assert.Equal(t, domain.OptimizationReach, ResolveObjectiveGoal(awareness, domain.GoalMaximizeLinkClicks))

	// Meta vazia cai no padrão do objetivo
	assert.Equal(t, domain.OptimizationLinkClicks, ResolveObjectiveGoal(driven, ""))
}

// Toda localização registrada precisa resolver as metas de lead e conversão
// para uma meta de otimização aceita pela própria localização.
func TestResolverConsistentWithRegistry(t *testing.T) {
	for _, objective := range []domain.CampaignObjective{domain.ObjectiveLeads, domain.ObjectiveSales} {
		for _, location := range RegisteredLocations(objective) {
			cfg, ok := LocationConfigFor(objective, location)
			assert.True(t, ok)

			for _, performanceGoal := range cfg.ValidPerformanceGoals {
				goal := ResolveOptimizationGoal(location, performanceGoal)

				_, valid := cfg.ValidOptimizationGoals[goal]
				assert.True(t, valid,
					"objetivo %s localização %s meta %s resolveu para %s, fora da tabela",
					objective, location, performanceGoal, goal)
			}
		}
	}
}
