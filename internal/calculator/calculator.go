// Package calculator implementa as fórmulas das projeções de receita (catálogo,
// show e projeto) e a divisão percentual entre as partes.
//
// Todas as funções são puras: não fazem I/O e não guardam estado mutável, então
// podem ser chamadas concorrentemente. Os valores derivados são sempre
// reconstruídos a partir da entrada completa.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// playsPerValueUnitExp: o valor médio é cotado por 10^6 plays
	playsPerValueUnitExp = 6

	monthsPerYear = 12

	// DefaultProfitabilityMultiplier projeta o pro-rata de um período para a
	// rentabilidade de longo prazo do catálogo
	DefaultProfitabilityMultiplier = 5

	// DefaultExchangeRate é a cotação fixa USD→BRL
	DefaultExchangeRate = "5.0"
)

type Settings struct {
	ExchangeRate            decimal.Decimal
	ProfitabilityMultiplier decimal.Decimal
}

func DefaultSettings() Settings {
	return Settings{
		ExchangeRate:            decimal.RequireFromString(DefaultExchangeRate),
		ProfitabilityMultiplier: decimal.NewFromInt(DefaultProfitabilityMultiplier),
	}
}

// ParseSettings monta as configurações a partir dos valores textuais da configuração.
// Valores vazios usam os padrões.
func ParseSettings(exchangeRate, profitabilityMultiplier string) (Settings, error) {
	settings := DefaultSettings()

	if exchangeRate != "" {
		rate, err := decimal.NewFromString(exchangeRate)
		if err != nil {
			return settings, fmt.Errorf("cotação inválida %q: %w", exchangeRate, err)
		}
		settings.ExchangeRate = rate
	}

	if profitabilityMultiplier != "" {
		multiplier, err := decimal.NewFromString(profitabilityMultiplier)
		if err != nil {
			return settings, fmt.Errorf("multiplicador de rentabilidade inválido %q: %w", profitabilityMultiplier, err)
		}
		settings.ProfitabilityMultiplier = multiplier
	}

	return settings, nil
}

type Calculator struct {
	converter               *Converter
	profitabilityMultiplier decimal.Decimal
}

func New(settings Settings) (*Calculator, error) {
	converter, err := NewConverter(settings.ExchangeRate)
	if err != nil {
		return nil, err
	}

	if settings.ProfitabilityMultiplier.IsNegative() {
		return nil, fmt.Errorf("multiplicador de rentabilidade não pode ser negativo: %s", settings.ProfitabilityMultiplier)
	}

	return &Calculator{
		converter:               converter,
		profitabilityMultiplier: settings.ProfitabilityMultiplier,
	}, nil
}

func (c *Calculator) Converter() *Converter {
	return c.converter
}

func (c *Calculator) ProfitabilityMultiplier() decimal.Decimal {
	return c.profitabilityMultiplier
}
