package adsetting

import (
	"encoding/json"
	"strings"

	"github.com/vfg2006/adset-builder-api/internal/domain"
)

// AdSetDraft é a acumulação mutável de campos do payload antes da limpeza de
// valores vazios. Criado por requisição, descartado após a montagem.
type AdSetDraft struct {
	Name             string
	CampaignID       string
	OptimizationGoal domain.OptimizationGoal
	BillingEvent     domain.BillingEvent
	Status           string
	DestinationType  domain.DestinationType
	Targeting        *domain.TargetingSpec
	PromotedObject   domain.PromotedObject
	Budget           *domain.BudgetBidSpec
	FrequencyControl *FrequencyControl
	AttributionSpec  []AttributionWindow
}

// Assemble mescla os subdocumentos no mapa final enviado como formulário à
// Meta. Objetos aninhados são codificados em JSON; chaves com valor vazio ou
// só com espaços são removidas. Nenhuma validação acontece aqui.
func Assemble(draft *AdSetDraft) map[string]string {
	payload := map[string]string{
		"name":              draft.Name,
		"campaign_id":       draft.CampaignID,
		"optimization_goal": string(draft.OptimizationGoal),
		"billing_event":     string(draft.BillingEvent),
		"status":            draft.Status,
		"destination_type":  string(draft.DestinationType),
	}

	if draft.Targeting != nil {
		payload["targeting"] = encodeJSON(draft.Targeting)
	}

	if len(draft.PromotedObject) > 0 {
		payload["promoted_object"] = encodeJSON(draft.PromotedObject)
	}

	if draft.Budget != nil {
		payload["daily_budget"] = draft.Budget.DailyBudget
		payload["lifetime_budget"] = draft.Budget.LifetimeBudget
		payload["start_time"] = draft.Budget.StartTime
		payload["end_time"] = draft.Budget.EndTime
		payload["bid_strategy"] = string(draft.Budget.BidStrategy)
		payload["bid_amount"] = draft.Budget.BidAmount
	}

	if draft.FrequencyControl != nil {
		payload["frequency_control_specs"] = encodeJSON([]*FrequencyControl{draft.FrequencyControl})
	}

	if len(draft.AttributionSpec) > 0 {
		payload["attribution_spec"] = encodeJSON(draft.AttributionSpec)
	}

	for key, value := range payload {
		if strings.TrimSpace(value) == "" {
			delete(payload, key)
		}
	}

	return payload
}

func encodeJSON(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		// Os subdocumentos são structs e mapas próprios; marshal não falha.
		return ""
	}

	return string(encoded)
}
