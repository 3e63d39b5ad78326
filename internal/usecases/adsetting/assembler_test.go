package adsetting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

func TestAssemble(t *testing.T) {
	draft := &AdSetDraft{
		Name:             "Leads site fevereiro",
		CampaignID:       "120211234567890123",
		OptimizationGoal: domain.OptimizationOffsiteConversions,
		BillingEvent:     domain.BillingImpressions,
		Status:           "PAUSED",
		DestinationType:  domain.DestinationWebsite,
		Targeting: &domain.TargetingSpec{
			GeoLocations: &domain.GeoLocations{Countries: []string{"BR"}},
			AgeMin:       18,
			AgeMax:       45,
			Genders:      []int{1, 2},
		},
		PromotedObject: domain.PromotedObject{
			"page_id":           "111222333",
			"pixel_id":          "444555666",
			"custom_event_type": "LEAD",
		},
		Budget: &domain.BudgetBidSpec{
			DailyBudget: "25000",
			BidStrategy: domain.BidLowestCostWithoutCap,
		},
		AttributionSpec: []AttributionWindow{
			{EventType: "CLICK_THROUGH", WindowDays: 7},
		},
	}

	payload := Assemble(draft)

	assert.Equal(t, "Leads site fevereiro", payload["name"])
	assert.Equal(t, "120211234567890123", payload["campaign_id"])
	assert.Equal(t, "OFFSITE_CONVERSIONS", payload["optimization_goal"])
	assert.Equal(t, "IMPRESSIONS", payload["billing_event"])
	assert.Equal(t, "PAUSED", payload["status"])
	assert.Equal(t, "WEBSITE", payload["destination_type"])
	assert.Equal(t, "25000", payload["daily_budget"])
	assert.Equal(t, "LOWEST_COST_WITHOUT_CAP", payload["bid_strategy"])

	// Chaves vazias do orçamento são removidas na limpeza final
	assert.NotContains(t, payload, "lifetime_budget")
	assert.NotContains(t, payload, "start_time")
	assert.NotContains(t, payload, "end_time")
	assert.NotContains(t, payload, "bid_amount")

	var targeting domain.TargetingSpec
	assert.NoError(t, json.Unmarshal([]byte(payload["targeting"]), &targeting))
	assert.Equal(t, []string{"BR"}, targeting.GeoLocations.Countries)
	assert.Equal(t, 18, targeting.AgeMin)
	assert.Equal(t, []int{1, 2}, targeting.Genders)

	var promoted map[string]string
	assert.NoError(t, json.Unmarshal([]byte(payload["promoted_object"]), &promoted))
	assert.Equal(t, "111222333", promoted["page_id"])
	assert.Equal(t, "LEAD", promoted["custom_event_type"])

	var attribution []AttributionWindow
	assert.NoError(t, json.Unmarshal([]byte(payload["attribution_spec"]), &attribution))
	assert.Len(t, attribution, 1)
	assert.Equal(t, 7, attribution[0].WindowDays)
}

func TestAssembleFrequencyControl(t *testing.T) {
	draft := &AdSetDraft{
		Name:             "Reconhecimento",
		CampaignID:       "120219876543210987",
		OptimizationGoal: domain.OptimizationReach,
		BillingEvent:     domain.BillingImpressions,
		Status:           "PAUSED",
		FrequencyControl: &FrequencyControl{
			Event:        "IMPRESSIONS",
			IntervalDays: 7,
			MaxFrequency: 2,
		},
	}

	payload := Assemble(draft)

	// frequency_control_specs é codificado como lista de um elemento
	var specs []FrequencyControl
	assert.NoError(t, json.Unmarshal([]byte(payload["frequency_control_specs"]), &specs))
	assert.Len(t, specs, 1)
	assert.Equal(t, "IMPRESSIONS", specs[0].Event)
	assert.Equal(t, 2, specs[0].MaxFrequency)
}

func TestAssembleOmitsEmpty(t *testing.T) {
	draft := &AdSetDraft{
		Name:             "Cliques no link",
		CampaignID:       "120215555555555555",
		OptimizationGoal: domain.OptimizationLinkClicks,
		BillingEvent:     domain.BillingImpressions,
		Status:           "PAUSED",
	}

	payload := Assemble(draft)

	assert.NotContains(t, payload, "destination_type")
	assert.NotContains(t, payload, "targeting")
	assert.NotContains(t, payload, "promoted_object")
	assert.NotContains(t, payload, "frequency_control_specs")
	assert.NotContains(t, payload, "attribution_spec")
	assert.NotContains(t, payload, "daily_budget")

	expectedKeys := []string{"name", "campaign_id", "optimization_goal", "billing_event", "status"}
	assert.Len(t, payload, len(expectedKeys))
	for _, key := range expectedKeys {
		assert.Contains(t, payload, key)
	}
}

func TestAssembleStripsWhitespaceOnly(t *testing.T) {
	draft := &AdSetDraft{
		Name:             "   ",
		CampaignID:       "120213333333333333",
		OptimizationGoal: domain.OptimizationImpressions,
		BillingEvent:     domain.BillingImpressions,
		Status:           "ACTIVE",
	}

	payload := Assemble(draft)

	assert.NotContains(t, payload, "name")
	assert.Equal(t, "ACTIVE", payload["status"])
}
