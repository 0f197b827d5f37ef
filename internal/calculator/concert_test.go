package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func baseConcertInput() domain.ConcertProjectionInput {
	return domain.ConcertProjectionInput{
		ArtistID:           "ART001",
		Title:              "Turnê 2025",
		Year:               2025,
		ShowsPerYear:       12,
		Period:             12,
		AverageTicketValue: dec("5000"),
		CrewPercentage:     dec("20"),
		ArtistPercentage:   dec("40"),
		CompanyPercentage:  dec("40"),
		Status:             domain.ConcertStatusDraft,
	}
}

func TestCalculator_Concert(t *testing.T) {
	calc := newTestCalculator(t)

	result, err := calc.Concert(baseConcertInput())
	require.NoError(t, err)

	assertDecimal(t, "12", result.TotalShows, "total_shows")
	assertDecimal(t, "60000", result.GrossRevenue, "gross_revenue")
	assertDecimal(t, "12000", result.CrewShare, "crew_share")
	assertDecimal(t, "24000", result.ArtistShare, "artist_share")
	assertDecimal(t, "24000", result.CompanyShare, "company_share")
}

func TestCalculator_ConcertProratesPeriod(t *testing.T) {
	calc := newTestCalculator(t)

	in := baseConcertInput()
	in.ShowsPerYear = 24
	in.Period = 6

	result, err := calc.Concert(in)
	require.NoError(t, err)

	assertDecimal(t, "12", result.TotalShows, "total_shows")
	assertDecimal(t, "60000", result.GrossRevenue, "gross_revenue")
}

func TestCalculator_ConcertPartition(t *testing.T) {
	calc := newTestCalculator(t)

	splits := [][3]string{
		{"20", "40", "40"},
		{"33.33", "33.33", "33.34"},
		{"0", "0", "100"},
		{"12.5", "57.25", "30.25"},
		{"1", "1", "98"},
	}
	tickets := []string{"0", "0.01", "99.99", "5000", "1234.5678"}
	shows := []int64{0, 1, 7, 13, 250}
	periods := []int64{1, 5, 7, 12}

	for _, split := range splits {
		for _, ticket := range tickets {
			for _, n := range shows {
				for _, period := range periods {
					in := baseConcertInput()
					in.CrewPercentage = dec(split[0])
					in.ArtistPercentage = dec(split[1])
					in.CompanyPercentage = dec(split[2])
					in.AverageTicketValue = dec(ticket)
					in.ShowsPerYear = n
					in.Period = period

					result, err := calc.Concert(in)
					require.NoError(t, err)

					total := result.CrewShare.Add(result.ArtistShare).Add(result.CompanyShare)
					assert.Truef(t, total.Equal(result.GrossRevenue), "partição quebrada: %s != %s", total, result.GrossRevenue)
					assert.False(t, result.GrossRevenue.IsNegative())
					assert.False(t, result.TotalShows.IsNegative())
				}
			}
		}
	}
}

func TestCalculator_ConcertIsIdempotent(t *testing.T) {
	calc := newTestCalculator(t)

	in := baseConcertInput()
	in.ShowsPerYear = 10
	in.Period = 5

	first, err := calc.Concert(in)
	require.NoError(t, err)
	second, err := calc.Concert(in)
	require.NoError(t, err)

	assert.Equal(t, first.TotalShows.String(), second.TotalShows.String())
	assert.Equal(t, first.CompanyShare.String(), second.CompanyShare.String())
}

func TestCalculator_ConcertErrors(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name   string
		mutate func(in *domain.ConcertProjectionInput)
		errIs  error
	}{
		{
			name:   "Período zero",
			mutate: func(in *domain.ConcertProjectionInput) { in.Period = 0 },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "Período acima de 12 meses",
			mutate: func(in *domain.ConcertProjectionInput) { in.Period = 13 },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "Shows negativos",
			mutate: func(in *domain.ConcertProjectionInput) { in.ShowsPerYear = -1 },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "Ingresso negativo",
			mutate: func(in *domain.ConcertProjectionInput) { in.AverageTicketValue = dec("-10") },
			errIs:  ErrInvalidInput,
		},
		{
			name:   "Divisão sem fechar 100",
			mutate: func(in *domain.ConcertProjectionInput) { in.CompanyPercentage = dec("39") },
			errIs:  ErrInconsistentSplit,
		},
		{
			name: "Equipe e artista acima de 100",
			mutate: func(in *domain.ConcertProjectionInput) {
				in.CrewPercentage = dec("60")
				in.ArtistPercentage = dec("50")
				in.CompanyPercentage = dec("0")
			},
			errIs: ErrInconsistentSplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseConcertInput()
			tt.mutate(&in)

			_, err := calc.Concert(in)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNormalizeConcertSplit(t *testing.T) {
	in := baseConcertInput()
	in.CrewPercentage = dec("15")
	in.ArtistPercentage = dec("45")
	in.CompanyPercentage = dec("99")

	normalized, err := NormalizeConcertSplit(in)
	require.NoError(t, err)
	assertDecimal(t, "40", normalized.CompanyPercentage, "company_percentage")

	in.CrewPercentage = dec("70")
	in.ArtistPercentage = dec("50")
	normalized, err = NormalizeConcertSplit(in)
	require.NoError(t, err)
	assertDecimal(t, "0", normalized.CompanyPercentage, "company_percentage")

	calc := newTestCalculator(t)
	_, err = calc.Concert(normalized)
	assert.ErrorIs(t, err, ErrInconsistentSplit)
}

func TestCalculator_ConcertPeriodNotDividingYear(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name          string
		showsPerYear  int64
		period        int64
		ticket        string
		expectedGross string
	}{
		{name: "10 shows em 7 meses", showsPerYear: 10, period: 7, ticket: "1200", expectedGross: "7000"},
		{name: "1 show em 1 mês", showsPerYear: 1, period: 1, ticket: "12", expectedGross: "1"},
		{name: "5 shows em 5 meses", showsPerYear: 5, period: 5, ticket: "360", expectedGross: "750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseConcertInput()
			in.ShowsPerYear = tt.showsPerYear
			in.Period = tt.period
			in.AverageTicketValue = dec(tt.ticket)

			result, err := calc.Concert(in)
			require.NoError(t, err)

			assertDecimal(t, tt.expectedGross, result.GrossRevenue, "gross_revenue")
			assertDecimal(t, tt.expectedGross, result.CrewShare.Add(result.ArtistShare).Add(result.CompanyShare), "soma das cotas")
		})
	}
}
