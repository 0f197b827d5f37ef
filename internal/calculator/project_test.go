package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func baseProjectInput() domain.ProjectProjectionInput {
	return domain.ProjectProjectionInput{
		ProjectID:                 "PRJ001",
		DistributorID:             "DST001",
		Year:                      2025,
		NumberOfTracks:            5,
		Period:                    365,
		AverageDailyPlaysPerTrack: 2000,
		AverageValuePerMPlays:     dec("1000"),
		ParticipationPercentage:   dec("100"),
		ArtistPercentage:          dec("60"),
		CompanyPercentage:         dec("40"),
	}
}

func TestCalculator_Project(t *testing.T) {
	calc := newTestCalculator(t)
	distributor := &domain.Distributor{ID: "DST001", Percentage: dec("20")}
	project := &domain.Project{ID: "PRJ001", Budget: dec("4000")}

	result, err := calc.Project(baseProjectInput(), distributor, project)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), result.AverageDailyPlaysPerProject)
	assert.Equal(t, int64(3650000), result.TotalPlays)
	assertDecimal(t, "3650.00", result.GrossRevenue, "gross_revenue")
	assertDecimal(t, "20", result.DistributorPercentage, "distributor_percentage")
	assertDecimal(t, "2920.00", result.DistributorProfit, "distributor_profit")
	assertDecimal(t, "1168.00", result.ProRataUSD, "pro_rata_usd")
	assertDecimal(t, "5840.00", result.ProRataBRL, "pro_rata_brl")
	assertDecimal(t, "5840.00", result.NetRevenue12Months, "net_revenue_12_months")
	assertDecimal(t, "0", result.BudgetAllocation, "budget_allocation")
	assertDecimal(t, "4000", result.ProjectBudget, "project_budget")
	assertDecimal(t, "1840.00", result.DigitalProfitability, "digital_profitability")
}

func TestCalculator_ProjectBudgetPercentage(t *testing.T) {
	calc := newTestCalculator(t)

	in := baseProjectInput()
	in.BudgetPercentage = decPtr("10")

	result, err := calc.Project(in, &domain.Distributor{Percentage: dec("20")}, &domain.Project{Budget: dec("6000")})
	require.NoError(t, err)

	assertDecimal(t, "584", result.BudgetAllocation, "budget_allocation")
	assertDecimal(t, "-160", result.DigitalProfitability, "digital_profitability")
}

func TestCalculator_ProjectUsesConfiguredExchangeRate(t *testing.T) {
	calc, err := New(Settings{ExchangeRate: dec("5.5"), ProfitabilityMultiplier: dec("5")})
	require.NoError(t, err)

	result, err := calc.Project(baseProjectInput(), &domain.Distributor{Percentage: dec("20")}, &domain.Project{})
	require.NoError(t, err)

	assertDecimal(t, "6424", result.ProRataBRL, "pro_rata_brl")
}

func TestCalculator_ProjectIsIdempotent(t *testing.T) {
	calc := newTestCalculator(t)
	in := baseProjectInput()
	in.AverageValuePerMPlays = dec("987.654")
	in.BudgetPercentage = decPtr("12.5")
	distributor := &domain.Distributor{Percentage: dec("13.7")}
	project := &domain.Project{Budget: dec("1500.25")}

	first, err := calc.Project(in, distributor, project)
	require.NoError(t, err)
	second, err := calc.Project(in, distributor, project)
	require.NoError(t, err)

	assert.Equal(t, first.ProRataBRL.String(), second.ProRataBRL.String())
	assert.Equal(t, first.BudgetAllocation.String(), second.BudgetAllocation.String())
	assert.Equal(t, first.DigitalProfitability.String(), second.DigitalProfitability.String())
}

func TestCalculator_ProjectErrors(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name        string
		mutate      func(in *domain.ProjectProjectionInput)
		distributor *domain.Distributor
		project     *domain.Project
		errIs       error
	}{
		{
			name:        "Número de faixas zero",
			mutate:      func(in *domain.ProjectProjectionInput) { in.NumberOfTracks = 0 },
			distributor: &domain.Distributor{Percentage: dec("20")},
			project:     &domain.Project{},
			errIs:       ErrInvalidInput,
		},
		{
			name:        "Período zero",
			mutate:      func(in *domain.ProjectProjectionInput) { in.Period = 0 },
			distributor: &domain.Distributor{Percentage: dec("20")},
			project:     &domain.Project{},
			errIs:       ErrInvalidInput,
		},
		{
			name:        "Percentual de orçamento inválido",
			mutate:      func(in *domain.ProjectProjectionInput) { in.BudgetPercentage = decPtr("-1") },
			distributor: &domain.Distributor{Percentage: dec("20")},
			project:     &domain.Project{},
			errIs:       ErrInvalidInput,
		},
		{
			name: "Divisão acima de 100",
			mutate: func(in *domain.ProjectProjectionInput) {
				in.CompanyPercentage = dec("80")
				in.ArtistPercentage = dec("30")
			},
			distributor: &domain.Distributor{Percentage: dec("20")},
			project:     &domain.Project{},
			errIs:       ErrInconsistentSplit,
		},
		{
			name:    "Distribuidora ausente",
			mutate:  func(in *domain.ProjectProjectionInput) {},
			project: &domain.Project{},
			errIs:   ErrMissingReference,
		},
		{
			name:        "Projeto ausente",
			mutate:      func(in *domain.ProjectProjectionInput) {},
			distributor: &domain.Distributor{Percentage: dec("20")},
			errIs:       ErrMissingReference,
		},
		{
			name:        "Orçamento negativo",
			mutate:      func(in *domain.ProjectProjectionInput) {},
			distributor: &domain.Distributor{Percentage: dec("20")},
			project:     &domain.Project{Budget: dec("-1")},
			errIs:       ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseProjectInput()
			tt.mutate(&in)

			_, err := calc.Project(in, tt.distributor, tt.project)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNormalizeProjectSplit(t *testing.T) {
	in := baseProjectInput()
	in.CompanyPercentage = dec("30")

	normalized, err := NormalizeProjectSplit(in)
	require.NoError(t, err)
	assertDecimal(t, "70", normalized.ArtistPercentage, "artist_percentage")
}
