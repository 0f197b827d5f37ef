package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()

	calc, err := New(DefaultSettings())
	require.NoError(t, err)
	return calc
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "%s: esperado %s, obtido %s", field, expected, actual)
}

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name               string
		rate               string
		multiplier         string
		expectedRate       string
		expectedMultiplier string
		expectErr          bool
	}{
		{
			name:               "Valores vazios usam os padrões",
			expectedRate:       "5",
			expectedMultiplier: "5",
		},
		{
			name:               "Cotação configurada",
			rate:               "5.5",
			multiplier:         "3",
			expectedRate:       "5.5",
			expectedMultiplier: "3",
		},
		{
			name:      "Cotação inválida",
			rate:      "cinco",
			expectErr: true,
		},
		{
			name:       "Multiplicador inválido",
			multiplier: "x",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := ParseSettings(tt.rate, tt.multiplier)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assertDecimal(t, tt.expectedRate, settings.ExchangeRate, "exchange_rate")
			assertDecimal(t, tt.expectedMultiplier, settings.ProfitabilityMultiplier, "profitability_multiplier")
		})
	}
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	_, err := New(Settings{ExchangeRate: decimal.Zero, ProfitabilityMultiplier: dec("5")})
	assert.Error(t, err)

	_, err = New(Settings{ExchangeRate: dec("5"), ProfitabilityMultiplier: dec("-1")})
	assert.Error(t, err)
}

func TestConverter_ToBRL(t *testing.T) {
	converter, err := NewConverter(dec("5.5"))
	require.NoError(t, err)

	assertDecimal(t, "55", converter.ToBRL(dec("10")), "brl")
	assertDecimal(t, "0", converter.ToBRL(decimal.Zero), "brl")
	assertDecimal(t, "5.5", converter.Rate(), "rate")

	_, err = NewConverter(dec("-1"))
	assert.Error(t, err)
}
