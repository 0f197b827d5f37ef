package calculator

import (
	"github.com/shopspring/decimal"
)

// Nomes dos campos percentuais, iguais aos campos JSON dos formulários
const (
	FieldCrew    = "crew_percentage"
	FieldArtist  = "artist_percentage"
	FieldCompany = "company_percentage"
)

// Split guarda os percentuais de uma divisão por nome de campo
type Split map[string]decimal.Decimal

// Sum soma todos os percentuais da divisão
func (s Split) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s {
		total = total.Add(v)
	}
	return total
}

// SplitLayout descreve uma divisão percentual em que exatamente um campo é o
// remanescente (100 menos a soma dos demais) e nunca é editado diretamente.
// Exact indica que a soma de todos os campos precisa fechar em 100.
type SplitLayout struct {
	Name    string
	Fields  []string
	Derived string
	Exact   bool
}

var (
	CatalogSplit = SplitLayout{
		Name:    "catalog",
		Fields:  []string{FieldCompany, FieldArtist},
		Derived: FieldArtist,
	}

	ProjectSplit = SplitLayout{
		Name:    "project",
		Fields:  []string{FieldCompany, FieldArtist},
		Derived: FieldArtist,
	}

	ConcertSplit = SplitLayout{
		Name:    "concert",
		Fields:  []string{FieldCrew, FieldArtist, FieldCompany},
		Derived: FieldCompany,
		Exact:   true,
	}
)

var layouts = map[string]SplitLayout{
	CatalogSplit.Name: CatalogSplit,
	ProjectSplit.Name: ProjectSplit,
	ConcertSplit.Name: ConcertSplit,
}

// LayoutByName retorna o layout de divisão registrado com o nome informado
func LayoutByName(name string) (SplitLayout, bool) {
	layout, ok := layouts[name]
	return layout, ok
}

func (l SplitLayout) has(field string) bool {
	for _, f := range l.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Rebalance define um campo editável e recalcula o remanescente como
// max(0, 100 − soma dos demais). Cada campo editável é limitado a [0,100] antes
// do cálculo. Se a soma dos campos editáveis passar de 100 o remanescente fica em
// 0 e a divisão resultante não fecha em 100; a validação do cálculo rejeita esse caso.
func (l SplitLayout) Rebalance(changed string, value decimal.Decimal, current Split) (Split, error) {
	if changed == l.Derived {
		return nil, invalidInput(changed, "campo calculado automaticamente não pode ser editado")
	}

	if !l.has(changed) {
		return nil, invalidInput(changed, "campo desconhecido para a divisão "+l.Name)
	}

	if value.IsNegative() {
		return nil, invalidInput(changed, "não pode ser negativo")
	}

	next := make(Split, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[changed] = value

	return l.Derive(next)
}

// Derive recalcula o campo remanescente a partir dos campos editáveis
func (l SplitLayout) Derive(current Split) (Split, error) {
	next := make(Split, len(l.Fields))
	fixed := decimal.Zero

	for _, field := range l.Fields {
		if field == l.Derived {
			continue
		}

		v := current[field]
		if v.IsNegative() {
			return nil, invalidInput(field, "não pode ser negativo")
		}
		if v.GreaterThan(hundred) {
			v = hundred
		}

		next[field] = v
		fixed = fixed.Add(v)
	}

	remainder := hundred.Sub(fixed)
	if remainder.IsNegative() {
		remainder = decimal.Zero
	}
	next[l.Derived] = remainder

	return next, nil
}

// Validate verifica cada percentual em [0,100] e a política única de divisão:
// campos editáveis somando mais de 100 são rejeitados, e layouts exatos precisam
// fechar em 100.
func (l SplitLayout) Validate(split Split) error {
	fixed, total := decimal.Zero, decimal.Zero
	for _, field := range l.Fields {
		v := split[field]
		if err := requirePercentage(field, v); err != nil {
			return err
		}
		total = total.Add(v)
		if field != l.Derived {
			fixed = fixed.Add(v)
		}
	}

	if fixed.GreaterThan(hundred) {
		return inconsistentSplit(l.Derived, "a soma dos percentuais ultrapassa 100")
	}

	if l.Exact && !total.Equal(hundred) {
		return inconsistentSplit(l.Derived, "a soma dos percentuais deve ser exatamente 100")
	}

	if total.GreaterThan(hundred) {
		return inconsistentSplit(l.Derived, "a soma dos percentuais ultrapassa 100")
	}

	return nil
}
