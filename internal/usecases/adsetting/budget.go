package adsetting

import (
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/pkg/utils"
)

// NormalizeBudget decide quais campos de orçamento e lance entram no payload.
//
// Quando a campanha pai já carrega o orçamento (CBO habilitado), nenhum campo
// de orçamento é emitido no nível do conjunto: a otimização de orçamento da
// campanha tem precedência. Valores monetários chegam em unidades maiores
// (pesos, reais) e saem em unidades menores (centavos). Valores ausentes ou
// não positivos são rejeitados antes, pelo Validator, não aqui.
func NormalizeBudget(params *domain.AdSetParams, cboEnabled bool) *domain.BudgetBidSpec {
	spec := &domain.BudgetBidSpec{
		BidStrategy: params.BidStrategy,
	}

	if spec.BidStrategy == "" {
		spec.BidStrategy = domain.BidLowestCostWithoutCap
	}

	// cost_per_result_goal, quando informado, prevalece sobre bid_amount.
	switch {
	case params.CostPerResultGoal > 0:
		spec.BidAmount = utils.ToMinorUnits(params.CostPerResultGoal)
	case params.BidAmount > 0:
		spec.BidAmount = utils.ToMinorUnits(params.BidAmount)
	}

	if cboEnabled {
		return spec
	}

	switch params.BudgetType {
	case domain.BudgetDaily:
		spec.DailyBudget = utils.ToMinorUnits(params.DailyBudget)
	case domain.BudgetLifetime:
		spec.LifetimeBudget = utils.ToMinorUnits(params.LifetimeBudget)
		spec.StartTime = params.StartTime
		spec.EndTime = params.EndTime
	}

	return spec
}
