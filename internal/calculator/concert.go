package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// NormalizeConcertSplit recalcula o percentual da empresa como remanescente de
// equipe e artista
func NormalizeConcertSplit(in domain.ConcertProjectionInput) (domain.ConcertProjectionInput, error) {
	split, err := ConcertSplit.Derive(Split{
		FieldCrew:   in.CrewPercentage,
		FieldArtist: in.ArtistPercentage,
	})
	if err != nil {
		return in, err
	}

	in.CompanyPercentage = split[FieldCompany]
	return in, nil
}

func concertSplitOf(in domain.ConcertProjectionInput) Split {
	return Split{
		FieldCrew:    in.CrewPercentage,
		FieldArtist:  in.ArtistPercentage,
		FieldCompany: in.CompanyPercentage,
	}
}

func validateConcertInput(in domain.ConcertProjectionInput) error {
	if err := requireNonNegative("shows_per_year", in.ShowsPerYear); err != nil {
		return err
	}
	if in.Period < 1 || in.Period > monthsPerYear {
		return invalidInput("period", "deve estar entre 1 e 12 meses")
	}
	if err := requireNonNegativeDecimal("average_ticket_value", in.AverageTicketValue); err != nil {
		return err
	}
	return ConcertSplit.Validate(concertSplitOf(in))
}

// Concert calcula a projeção de shows: a frequência anual é proporcionalizada
// pelo período em meses e a receita bruta é dividida entre equipe, artista e empresa
func (c *Calculator) Concert(in domain.ConcertProjectionInput) (domain.ConcertProjectionResult, error) {
	var result domain.ConcertProjectionResult

	if err := validateConcertInput(in); err != nil {
		return result, err
	}

	// a única divisão fica por último, senão o arredondamento de totalShows
	// se propaga para a receita e para as cotas
	showMonths := decimal.NewFromInt(in.ShowsPerYear).Mul(decimal.NewFromInt(in.Period))
	months := decimal.NewFromInt(monthsPerYear)

	totalShows := showMonths.Div(months)
	grossRevenue := showMonths.Mul(in.AverageTicketValue).Div(months)

	result.TotalShows = totalShows
	result.GrossRevenue = grossRevenue
	result.CrewShare = percentOf(grossRevenue, in.CrewPercentage)
	result.ArtistShare = percentOf(grossRevenue, in.ArtistPercentage)
	result.CompanyShare = percentOf(grossRevenue, in.CompanyPercentage)

	return result, nil
}
