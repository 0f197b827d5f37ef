package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func baseCatalogInput() domain.CatalogProjectionInput {
	return domain.CatalogProjectionInput{
		ArtistID:                "ART001",
		CatalogID:               "CAT001",
		NumberOfTracks:          10,
		Period:                  30,
		DailyPlaysPerTrack:      1000,
		AverageValue:            dec("1000"),
		ParticipationPercentage: dec("50"),
		ArtistPercentage:        dec("60"),
		CompanyPercentage:       dec("40"),
	}
}

func TestCalculator_Catalog(t *testing.T) {
	calc := newTestCalculator(t)
	distributor := &domain.Distributor{ID: "DST001", Name: "Distribuidora", Percentage: dec("20")}

	result, err := calc.Catalog(baseCatalogInput(), distributor)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), result.DailyPlaysPerCatalog)
	assert.Equal(t, int64(300000), result.TotalPlays)
	assertDecimal(t, "20", result.DistributorPercentage, "distributor_percentage")
	assertDecimal(t, "300.00", result.GrossRevenue, "gross_revenue")
	assertDecimal(t, "240.00", result.GrossProfit, "gross_profit")
	assertDecimal(t, "96.00", result.ProRata, "pro_rata")
	assertDecimal(t, "480.00", result.Profitability, "profitability")
}

func TestCalculator_CatalogUsesConfiguredMultiplier(t *testing.T) {
	calc, err := New(Settings{ExchangeRate: dec("5"), ProfitabilityMultiplier: dec("3")})
	require.NoError(t, err)

	result, err := calc.Catalog(baseCatalogInput(), &domain.Distributor{Percentage: dec("20")})
	require.NoError(t, err)

	assertDecimal(t, "288", result.Profitability, "profitability")
}

func TestCalculator_CatalogIsIdempotent(t *testing.T) {
	calc := newTestCalculator(t)
	distributor := &domain.Distributor{Percentage: dec("17.35")}
	in := baseCatalogInput()
	in.AverageValue = dec("1234.5678")
	in.CompanyPercentage = dec("33.33")
	in.ArtistPercentage = dec("66.67")

	first, err := calc.Catalog(in, distributor)
	require.NoError(t, err)
	second, err := calc.Catalog(in, distributor)
	require.NoError(t, err)

	assert.Equal(t, first.GrossRevenue.String(), second.GrossRevenue.String())
	assert.Equal(t, first.GrossProfit.String(), second.GrossProfit.String())
	assert.Equal(t, first.ProRata.String(), second.ProRata.String())
	assert.Equal(t, first.Profitability.String(), second.Profitability.String())
}

func TestCalculator_CatalogNonNegative(t *testing.T) {
	calc := newTestCalculator(t)

	inputs := []domain.CatalogProjectionInput{
		baseCatalogInput(),
		{NumberOfTracks: 1, Period: 1},
		{NumberOfTracks: 3, Period: 365, DailyPlaysPerTrack: 77, AverageValue: dec("0.01"), CompanyPercentage: dec("100")},
	}

	for _, in := range inputs {
		for _, pct := range []string{"0", "50", "100"} {
			result, err := calc.Catalog(in, &domain.Distributor{Percentage: dec(pct)})
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.DailyPlaysPerCatalog, int64(0))
			assert.GreaterOrEqual(t, result.TotalPlays, int64(0))
			assert.False(t, result.GrossRevenue.IsNegative())
			assert.False(t, result.GrossProfit.IsNegative())
			assert.False(t, result.ProRata.IsNegative())
			assert.False(t, result.Profitability.IsNegative())
		}
	}
}

func TestCalculator_CatalogErrors(t *testing.T) {
	calc := newTestCalculator(t)
	distributor := &domain.Distributor{Percentage: dec("20")}

	tests := []struct {
		name        string
		mutate      func(in *domain.CatalogProjectionInput)
		distributor *domain.Distributor
		noDist      bool
		errIs       error
		field       string
	}{
		{
			name:   "Número de faixas zero",
			mutate: func(in *domain.CatalogProjectionInput) { in.NumberOfTracks = 0 },
			errIs:  ErrInvalidInput,
			field:  "number_of_tracks",
		},
		{
			name:   "Período zero",
			mutate: func(in *domain.CatalogProjectionInput) { in.Period = 0 },
			errIs:  ErrInvalidInput,
			field:  "period",
		},
		{
			name:   "Plays diários negativos",
			mutate: func(in *domain.CatalogProjectionInput) { in.DailyPlaysPerTrack = -1 },
			errIs:  ErrInvalidInput,
			field:  "daily_plays_per_track",
		},
		{
			name:   "Valor médio negativo",
			mutate: func(in *domain.CatalogProjectionInput) { in.AverageValue = dec("-0.5") },
			errIs:  ErrInvalidInput,
			field:  "average_value",
		},
		{
			name:   "Participação acima de 100",
			mutate: func(in *domain.CatalogProjectionInput) { in.ParticipationPercentage = dec("100.01") },
			errIs:  ErrInvalidInput,
			field:  "participation_percentage",
		},
		{
			name: "Artista e empresa acima de 100",
			mutate: func(in *domain.CatalogProjectionInput) {
				in.ArtistPercentage = dec("70")
				in.CompanyPercentage = dec("40")
			},
			errIs: ErrInconsistentSplit,
		},
		{
			name:   "Distribuidora ausente",
			mutate: func(in *domain.CatalogProjectionInput) {},
			noDist: true,
			errIs:  ErrMissingReference,
			field:  "distributor_id",
		},
		{
			name:        "Percentual da distribuidora inválido",
			mutate:      func(in *domain.CatalogProjectionInput) {},
			distributor: &domain.Distributor{Percentage: dec("120")},
			errIs:       ErrInvalidInput,
			field:       "distributor_percentage",
		},
		{
			name: "Overflow de plays",
			mutate: func(in *domain.CatalogProjectionInput) {
				in.NumberOfTracks = 1 << 40
				in.DailyPlaysPerTrack = 1 << 40
			},
			errIs: ErrInvalidInput,
			field: "daily_plays_per_track",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseCatalogInput()
			tt.mutate(&in)

			d := distributor
			if tt.distributor != nil || tt.noDist {
				d = tt.distributor
			}

			_, err := calc.Catalog(in, d)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)

			if tt.field != "" {
				var calcErr *CalculationError
				require.ErrorAs(t, err, &calcErr)
				assert.Equal(t, tt.field, calcErr.Field)
			}
		})
	}
}

func TestNormalizeCatalogSplit(t *testing.T) {
	in := baseCatalogInput()
	in.CompanyPercentage = dec("25")
	in.ArtistPercentage = dec("10")

	normalized, err := NormalizeCatalogSplit(in)
	require.NoError(t, err)

	assertDecimal(t, "75", normalized.ArtistPercentage, "artist_percentage")
	assertDecimal(t, "25", normalized.CompanyPercentage, "company_percentage")
	assertDecimal(t, "10", in.ArtistPercentage, "entrada original")
}
