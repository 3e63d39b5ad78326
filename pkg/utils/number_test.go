package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Valor inteiro", amount: 500, expected: "50000"},
		{name: "Valor com centavos", amount: 1500.50, expected: "150050"},
		{name: "Arredondamento para cima", amount: 19.999, expected: "2000"},
		{name: "Zero", amount: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMinorUnits(tt.amount))
		})
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []float64{500, 1500.50, 0.01, 99999.99} {
		recovered, err := FromMinorUnits(ToMinorUnits(amount))
		assert.NoError(t, err)
		assert.InDelta(t, amount, recovered, 0.005)
	}
}

func TestFromMinorUnitsInvalid(t *testing.T) {
	_, err := FromMinorUnits("abc")
	assert.Error(t, err)
}
