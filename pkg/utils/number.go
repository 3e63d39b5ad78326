package utils

import (
	"math"
	"strconv"
)

// ToMinorUnits converte um valor monetário em unidades maiores (pesos, reais)
// para unidades menores (centavos), no formato string exigido pela Meta.
func ToMinorUnits(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount*100)), 10)
}

// FromMinorUnits faz a conversão inversa, de centavos para unidades maiores.
func FromMinorUnits(minor string) (float64, error) {
	value, err := strconv.ParseInt(minor, 10, 64)
	if err != nil {
		return 0, err
	}

	return float64(value) / 100, nil
}
