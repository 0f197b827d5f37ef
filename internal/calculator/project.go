package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// NormalizeProjectSplit recalcula o percentual do artista como remanescente do
// percentual da empresa
func NormalizeProjectSplit(in domain.ProjectProjectionInput) (domain.ProjectProjectionInput, error) {
	split, err := ProjectSplit.Derive(Split{FieldCompany: in.CompanyPercentage})
	if err != nil {
		return in, err
	}

	in.ArtistPercentage = split[FieldArtist]
	return in, nil
}

func projectSplitOf(in domain.ProjectProjectionInput) Split {
	return Split{
		FieldCompany: in.CompanyPercentage,
		FieldArtist:  in.ArtistPercentage,
	}
}

func validateProjectInput(in domain.ProjectProjectionInput) error {
	if err := requireAtLeastOne("number_of_tracks", in.NumberOfTracks); err != nil {
		return err
	}
	if err := requireAtLeastOne("period", in.Period); err != nil {
		return err
	}
	if err := requireNonNegative("average_daily_plays_per_track", in.AverageDailyPlaysPerTrack); err != nil {
		return err
	}
	if err := requireNonNegativeDecimal("average_value_per_m_plays", in.AverageValuePerMPlays); err != nil {
		return err
	}
	if err := requirePercentage("participation_percentage", in.ParticipationPercentage); err != nil {
		return err
	}
	if in.BudgetPercentage != nil {
		if err := requirePercentage("budget_percentage", *in.BudgetPercentage); err != nil {
			return err
		}
	}
	return ProjectSplit.Validate(projectSplitOf(in))
}

// Project calcula a projeção digital agregada de um projeto. O pro-rata é
// convertido para BRL e comparado com o orçamento cadastrado no projeto.
func (c *Calculator) Project(in domain.ProjectProjectionInput, distributor *domain.Distributor, project *domain.Project) (domain.ProjectProjectionResult, error) {
	var result domain.ProjectProjectionResult

	if project == nil {
		return result, missingReference("project_id", "projeto não encontrado")
	}

	if distributor == nil {
		return result, missingReference("distributor_id", "distribuidora não encontrada")
	}

	if err := validateProjectInput(in); err != nil {
		return result, err
	}

	if err := requirePercentage("distributor_percentage", distributor.Percentage); err != nil {
		return result, err
	}

	if err := requireNonNegativeDecimal("project_budget", project.Budget); err != nil {
		return result, err
	}

	dailyPlays, err := multiplyCounts("average_daily_plays_per_track", in.NumberOfTracks, in.AverageDailyPlaysPerTrack)
	if err != nil {
		return result, err
	}

	totalPlays, err := multiplyCounts("period", dailyPlays, in.Period)
	if err != nil {
		return result, err
	}

	grossRevenue := revenueFromPlays(totalPlays, in.AverageValuePerMPlays)
	distributorProfit := grossRevenue.Sub(percentOf(grossRevenue, distributor.Percentage))
	proRataUSD := percentOf(distributorProfit, in.CompanyPercentage)
	proRataBRL := c.converter.ToBRL(proRataUSD)
	netRevenue := proRataBRL

	budgetAllocation := decimal.Zero
	if in.BudgetPercentage != nil {
		budgetAllocation = percentOf(proRataBRL, *in.BudgetPercentage)
	}

	result.AverageDailyPlaysPerProject = dailyPlays
	result.TotalPlays = totalPlays
	result.GrossRevenue = grossRevenue
	result.DistributorPercentage = distributor.Percentage
	result.DistributorProfit = distributorProfit
	result.ProRataUSD = proRataUSD
	result.ProRataBRL = proRataBRL
	result.NetRevenue12Months = netRevenue
	result.BudgetAllocation = budgetAllocation
	result.ProjectBudget = project.Budget
	result.DigitalProfitability = netRevenue.Sub(project.Budget)

	return result, nil
}
