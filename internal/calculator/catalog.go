package calculator

import (
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// NormalizeCatalogSplit recalcula o percentual do artista como remanescente do
// percentual da empresa
func NormalizeCatalogSplit(in domain.CatalogProjectionInput) (domain.CatalogProjectionInput, error) {
	split, err := CatalogSplit.Derive(Split{FieldCompany: in.CompanyPercentage})
	if err != nil {
		return in, err
	}

	in.ArtistPercentage = split[FieldArtist]
	return in, nil
}

func catalogSplitOf(in domain.CatalogProjectionInput) Split {
	return Split{
		FieldCompany: in.CompanyPercentage,
		FieldArtist:  in.ArtistPercentage,
	}
}

func validateCatalogInput(in domain.CatalogProjectionInput) error {
	if err := requireAtLeastOne("number_of_tracks", in.NumberOfTracks); err != nil {
		return err
	}
	if err := requireAtLeastOne("period", in.Period); err != nil {
		return err
	}
	if err := requireNonNegative("daily_plays_per_track", in.DailyPlaysPerTrack); err != nil {
		return err
	}
	if err := requireNonNegativeDecimal("average_value", in.AverageValue); err != nil {
		return err
	}
	if err := requirePercentage("participation_percentage", in.ParticipationPercentage); err != nil {
		return err
	}
	return CatalogSplit.Validate(catalogSplitOf(in))
}

// Catalog calcula a projeção de streaming de um catálogo. O percentual da
// distribuidora vem da distribuidora associada ao catálogo.
func (c *Calculator) Catalog(in domain.CatalogProjectionInput, distributor *domain.Distributor) (domain.CatalogProjectionResult, error) {
	var result domain.CatalogProjectionResult

	if distributor == nil {
		return result, missingReference("distributor_id", "distribuidora do catálogo não encontrada")
	}

	if err := validateCatalogInput(in); err != nil {
		return result, err
	}

	if err := requirePercentage("distributor_percentage", distributor.Percentage); err != nil {
		return result, err
	}

	dailyPlays, err := multiplyCounts("daily_plays_per_track", in.NumberOfTracks, in.DailyPlaysPerTrack)
	if err != nil {
		return result, err
	}

	totalPlays, err := multiplyCounts("period", dailyPlays, in.Period)
	if err != nil {
		return result, err
	}

	grossRevenue := revenueFromPlays(totalPlays, in.AverageValue)
	grossProfit := grossRevenue.Sub(percentOf(grossRevenue, distributor.Percentage))
	proRata := percentOf(grossProfit, in.CompanyPercentage)

	result.DistributorPercentage = distributor.Percentage
	result.DailyPlaysPerCatalog = dailyPlays
	result.TotalPlays = totalPlays
	result.GrossRevenue = grossRevenue
	result.GrossProfit = grossProfit
	result.ProRata = proRata
	result.Profitability = proRata.Mul(c.profitabilityMultiplier)

	return result, nil
}
