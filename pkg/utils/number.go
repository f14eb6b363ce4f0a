package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToCents converte um valor monetário para centavos, arredondando meio centavo para cima
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// FromCents converte centavos (como string, formato da Graph API) para o valor monetário
func FromCents(cents string) (float64, error) {
	if cents == "" {
		return 0, nil
	}

	value, err := decimal.NewFromString(cents)
	if err != nil {
		return 0, err
	}

	return value.Div(hundred).InexactFloat64(), nil
}

// ScaleBudget aplica o multiplicador ao orçamento com precisão decimal e duas casas
func ScaleBudget(budget, multiplier float64) float64 {
	return decimal.NewFromFloat(budget).
		Mul(decimal.NewFromFloat(multiplier)).
		Round(2).
		InexactFloat64()
}
