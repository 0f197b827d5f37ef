package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func requireAtLeastOne(field string, v int64) error {
	if v < 1 {
		return invalidInput(field, "deve ser maior ou igual a 1")
	}
	return nil
}

func requireNonNegative(field string, v int64) error {
	if v < 0 {
		return invalidInput(field, "não pode ser negativo")
	}
	return nil
}

func requireNonNegativeDecimal(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalidInput(field, "não pode ser negativo")
	}
	return nil
}

func requirePercentage(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return invalidInput(field, "deve estar entre 0 e 100")
	}
	return nil
}

// multiplyCounts multiplica contagens não negativas protegendo contra overflow
func multiplyCounts(field string, a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, invalidInput(field, "valor excede o limite suportado")
	}
	return a * b, nil
}

// percentOf retorna v × pct / 100 sem arredondamento
func percentOf(v, pct decimal.Decimal) decimal.Decimal {
	return v.Mul(pct).Shift(-2)
}

// revenueFromPlays converte plays em receita: averageValue é cotado por 1.000.000 de plays
func revenueFromPlays(plays int64, valuePerMillion decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(plays).Shift(-playsPerValueUnitExp).Mul(valuePerMillion)
}
