package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Converter aplica uma cotação fixa USD→BRL. Não há consulta de câmbio ao vivo.
type Converter struct {
	rate decimal.Decimal
}

func NewConverter(rate decimal.Decimal) (*Converter, error) {
	if !rate.IsPositive() {
		return nil, fmt.Errorf("cotação deve ser positiva: %s", rate)
	}
	return &Converter{rate: rate}, nil
}

func (c *Converter) ToBRL(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.rate)
}

func (c *Converter) Rate() decimal.Decimal {
	return c.rate
}
