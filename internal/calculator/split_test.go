package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLayout_Rebalance(t *testing.T) {
	tests := []struct {
		name     string
		layout   SplitLayout
		changed  string
		value    string
		current  Split
		expected Split
		errIs    error
	}{
		{
			name:     "Show - alterar equipe recalcula a empresa",
			layout:   ConcertSplit,
			changed:  FieldCrew,
			value:    "20",
			current:  Split{FieldCrew: dec("10"), FieldArtist: dec("40"), FieldCompany: dec("50")},
			expected: Split{FieldCrew: dec("20"), FieldArtist: dec("40"), FieldCompany: dec("40")},
		},
		{
			name:     "Catálogo - alterar empresa recalcula o artista",
			layout:   CatalogSplit,
			changed:  FieldCompany,
			value:    "35.5",
			current:  Split{FieldCompany: dec("40"), FieldArtist: dec("60")},
			expected: Split{FieldCompany: dec("35.5"), FieldArtist: dec("64.5")},
		},
		{
			name:     "Soma acima de 100 limita o remanescente em zero",
			layout:   ConcertSplit,
			changed:  FieldArtist,
			value:    "90",
			current:  Split{FieldCrew: dec("30"), FieldArtist: dec("40"), FieldCompany: dec("30")},
			expected: Split{FieldCrew: dec("30"), FieldArtist: dec("90"), FieldCompany: dec("0")},
		},
		{
			name:     "Campo acima de 100 é limitado a 100",
			layout:   CatalogSplit,
			changed:  FieldCompany,
			value:    "150",
			current:  Split{},
			expected: Split{FieldCompany: dec("100"), FieldArtist: dec("0")},
		},
		{
			name:    "Valor negativo é rejeitado",
			layout:  ConcertSplit,
			changed: FieldCrew,
			value:   "-1",
			current: Split{},
			errIs:   ErrInvalidInput,
		},
		{
			name:    "Campo derivado não pode ser editado",
			layout:  ConcertSplit,
			changed: FieldCompany,
			value:   "10",
			current: Split{},
			errIs:   ErrInvalidInput,
		},
		{
			name:    "Campo desconhecido",
			layout:  CatalogSplit,
			changed: FieldCrew,
			value:   "10",
			current: Split{},
			errIs:   ErrInvalidInput,
		},
		{
			name:    "Valor negativo já existente é rejeitado",
			layout:  ConcertSplit,
			changed: FieldCrew,
			value:   "10",
			current: Split{FieldArtist: dec("-5")},
			errIs:   ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.layout.Rebalance(tt.changed, dec(tt.value), tt.current)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.errIs))

				var calcErr *CalculationError
				require.True(t, errors.As(err, &calcErr))
				assert.NotEmpty(t, calcErr.Field)
				return
			}

			require.NoError(t, err)
			require.Len(t, result, len(tt.expected))
			for field, expected := range tt.expected {
				assertDecimal(t, expected.String(), result[field], field)
			}
		})
	}
}

func TestSplitLayout_RebalanceSumsToHundredWithoutClamp(t *testing.T) {
	values := []string{"0", "0.01", "12.5", "33.33", "49.99", "60"}

	for _, crew := range values {
		for _, artist := range values {
			split, err := ConcertSplit.Rebalance(FieldArtist, dec(artist), Split{FieldCrew: dec(crew)})
			require.NoError(t, err)

			if dec(crew).Add(dec(artist)).GreaterThan(hundred) {
				continue
			}

			assertDecimal(t, "100", split.Sum(), "crew="+crew+" artist="+artist)
		}
	}
}

func TestSplitLayout_RebalanceDoesNotMutateCurrent(t *testing.T) {
	current := Split{FieldCrew: dec("10"), FieldArtist: dec("10"), FieldCompany: dec("80")}

	_, err := ConcertSplit.Rebalance(FieldCrew, dec("50"), current)
	require.NoError(t, err)

	assertDecimal(t, "10", current[FieldCrew], FieldCrew)
	assertDecimal(t, "80", current[FieldCompany], FieldCompany)
}

func TestSplitLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		layout SplitLayout
		split  Split
		errIs  error
	}{
		{
			name:   "Show fechando em 100",
			layout: ConcertSplit,
			split:  Split{FieldCrew: dec("20"), FieldArtist: dec("40"), FieldCompany: dec("40")},
		},
		{
			name:   "Show sem fechar em 100",
			layout: ConcertSplit,
			split:  Split{FieldCrew: dec("20"), FieldArtist: dec("40"), FieldCompany: dec("30")},
			errIs:  ErrInconsistentSplit,
		},
		{
			name:   "Show com campos editáveis acima de 100",
			layout: ConcertSplit,
			split:  Split{FieldCrew: dec("60"), FieldArtist: dec("60"), FieldCompany: dec("0")},
			errIs:  ErrInconsistentSplit,
		},
		{
			name:   "Catálogo abaixo de 100 é aceito",
			layout: CatalogSplit,
			split:  Split{FieldCompany: dec("40"), FieldArtist: dec("20")},
		},
		{
			name:   "Catálogo acima de 100",
			layout: CatalogSplit,
			split:  Split{FieldCompany: dec("70"), FieldArtist: dec("40")},
			errIs:  ErrInconsistentSplit,
		},
		{
			name:   "Percentual fora do intervalo",
			layout: ProjectSplit,
			split:  Split{FieldCompany: dec("101"), FieldArtist: dec("0")},
			errIs:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.split)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestLayoutByName(t *testing.T) {
	for _, name := range []string{"catalog", "project", "concert"} {
		layout, ok := LayoutByName(name)
		assert.True(t, ok)
		assert.Equal(t, name, layout.Name)
	}

	_, ok := LayoutByName("unknown")
	assert.False(t, ok)
}
