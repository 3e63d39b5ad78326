package adsetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
)

func TestNormalizeBudget(t *testing.T) {
	tests := []struct {
		name       string
		params     *domain.AdSetParams
		cboEnabled bool
		expected   *domain.BudgetBidSpec
	}{
		{
			name: "Orçamento diário convertido para centavos",
			params: &domain.AdSetParams{
				BudgetType:  domain.BudgetDaily,
				DailyBudget: 350.00,
			},
			expected: &domain.BudgetBidSpec{
				BidStrategy: domain.BidLowestCostWithoutCap,
				DailyBudget: "35000",
			},
		},
		{
			name: "Valores fracionados são arredondados no centavo",
			params: &domain.AdSetParams{
				BudgetType:  domain.BudgetDaily,
				DailyBudget: 19.999,
			},
			expected: &domain.BudgetBidSpec{
				BidStrategy: domain.BidLowestCostWithoutCap,
				DailyBudget: "2000",
			},
		},
		{
			name: "Orçamento vitalício carrega a janela de veiculação",
			params: &domain.AdSetParams{
				BudgetType:     domain.BudgetLifetime,
				LifetimeBudget: 1500.50,
				StartTime:      "2025-02-01T00:00:00-0800",
				EndTime:        "2025-02-28T23:59:59-0800",
			},
			expected: &domain.BudgetBidSpec{
				BidStrategy:    domain.BidLowestCostWithoutCap,
				LifetimeBudget: "150050",
				StartTime:      "2025-02-01T00:00:00-0800",
				EndTime:        "2025-02-28T23:59:59-0800",
			},
		},
		{
			name: "CBO habilitado suprime o orçamento no nível do conjunto",
			params: &domain.AdSetParams{
				BudgetType:  domain.BudgetDaily,
				DailyBudget: 350.00,
				BidAmount:   5.00,
			},
			cboEnabled: true,
			expected: &domain.BudgetBidSpec{
				BidStrategy: domain.BidLowestCostWithoutCap,
				BidAmount:   "500",
			},
		},
		{
			name: "cost_per_result_goal prevalece sobre bid_amount",
			params: &domain.AdSetParams{
				BudgetType:        domain.BudgetDaily,
				DailyBudget:       100.00,
				BidAmount:         5.00,
				CostPerResultGoal: 2.50,
			},
			expected: &domain.BudgetBidSpec{
				BidStrategy: domain.BidLowestCostWithoutCap,
				DailyBudget: "10000",
				BidAmount:   "250",
			},
		},
		{
			name: "Estratégia de lance informada é respeitada",
			params: &domain.AdSetParams{
				BudgetType:  domain.BudgetDaily,
				DailyBudget: 100.00,
				BidStrategy: domain.BidCostCap,
				BidAmount:   3.75,
			},
			expected: &domain.BudgetBidSpec{
				BidStrategy: domain.BidCostCap,
				DailyBudget: "10000",
				BidAmount:   "375",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeBudget(tt.params, tt.cboEnabled))
		})
	}
}
