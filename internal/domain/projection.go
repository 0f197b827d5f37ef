package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectionKind string

const (
	ProjectionKindCatalog ProjectionKind = "catalog"
	ProjectionKindConcert ProjectionKind = "concert"
	ProjectionKindProject ProjectionKind = "project"
)

// CatalogProjectionInput são os campos editáveis de uma projeção de catálogo (streaming)
type CatalogProjectionInput struct {
	ArtistID                string          `json:"artist_id"`
	CatalogID               string          `json:"catalog_id"`
	NumberOfTracks          int64           `json:"number_of_tracks"`
	Period                  int64           `json:"period"` // dias
	DailyPlaysPerTrack      int64           `json:"daily_plays_per_track"`
	AverageValue            decimal.Decimal `json:"average_value"` // valor por 1.000.000 de plays
	ParticipationPercentage decimal.Decimal `json:"participation_percentage"`
	ArtistPercentage        decimal.Decimal `json:"artist_percentage"`
	CompanyPercentage       decimal.Decimal `json:"company_percentage"`
}

// CatalogProjectionResult são os campos derivados, nunca editados pelo usuário
type CatalogProjectionResult struct {
	DistributorPercentage decimal.Decimal `json:"distributor_percentage"`
	DailyPlaysPerCatalog  int64           `json:"daily_plays_per_catalog"`
	TotalPlays            int64           `json:"total_plays"`
	GrossRevenue          decimal.Decimal `json:"gross_revenue"`
	GrossProfit           decimal.Decimal `json:"gross_profit"`
	ProRata               decimal.Decimal `json:"pro_rata"`
	Profitability         decimal.Decimal `json:"profitability"`
}

type CatalogProjection struct {
	ID string `json:"id"`
	CatalogProjectionInput
	CatalogProjectionResult
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConcertStatus string

const (
	ConcertStatusDraft    ConcertStatus = "draft"
	ConcertStatusActive   ConcertStatus = "active"
	ConcertStatusArchived ConcertStatus = "archived"
)

func (s ConcertStatus) IsValid() bool {
	switch s {
	case ConcertStatusDraft, ConcertStatusActive, ConcertStatusArchived:
		return true
	}
	return false
}

type ConcertProjectionInput struct {
	ArtistID           string          `json:"artist_id"`
	Title              string          `json:"title"`
	Year               int             `json:"year"`
	ShowsPerYear       int64           `json:"shows_per_year"`
	Period             int64           `json:"period"` // meses (1-12)
	AverageTicketValue decimal.Decimal `json:"average_ticket_value"`
	CrewPercentage     decimal.Decimal `json:"crew_percentage"`
	ArtistPercentage   decimal.Decimal `json:"artist_percentage"`
	CompanyPercentage  decimal.Decimal `json:"company_percentage"`
	Status             ConcertStatus   `json:"status"`
}

type ConcertProjectionResult struct {
	TotalShows   decimal.Decimal `json:"total_shows"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	CrewShare    decimal.Decimal `json:"crew_share"`
	ArtistShare  decimal.Decimal `json:"artist_share"`
	CompanyShare decimal.Decimal `json:"company_share"`
}

type ConcertProjection struct {
	ID string `json:"id"`
	ConcertProjectionInput
	ConcertProjectionResult
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectProjectionInput struct {
	ProjectID                 string           `json:"project_id"`
	DistributorID             string           `json:"distributor_id"`
	Year                      int              `json:"year"`
	NumberOfTracks            int64            `json:"number_of_tracks"`
	Period                    int64            `json:"period"` // dias
	AverageDailyPlaysPerTrack int64            `json:"average_daily_plays_per_track"`
	AverageValuePerMPlays     decimal.Decimal  `json:"average_value_per_m_plays"`
	ParticipationPercentage   decimal.Decimal  `json:"participation_percentage"`
	ArtistPercentage          decimal.Decimal  `json:"artist_percentage"`
	CompanyPercentage         decimal.Decimal  `json:"company_percentage"`
	BudgetPercentage          *decimal.Decimal `json:"budget_percentage,omitempty"`
}

type ProjectProjectionResult struct {
	AverageDailyPlaysPerProject int64           `json:"average_daily_plays_per_project"`
	TotalPlays                  int64           `json:"total_plays"`
	GrossRevenue                decimal.Decimal `json:"gross_revenue"`
	DistributorPercentage       decimal.Decimal `json:"distributor_percentage"`
	DistributorProfit           decimal.Decimal `json:"distributor_profit"`
	ProRataUSD                  decimal.Decimal `json:"pro_rata_usd"`
	ProRataBRL                  decimal.Decimal `json:"pro_rata_brl"`
	NetRevenue12Months          decimal.Decimal `json:"net_revenue_12_months"`
	BudgetAllocation            decimal.Decimal `json:"budget_allocation"`
	ProjectBudget               decimal.Decimal `json:"project_budget"`
	DigitalProfitability        decimal.Decimal `json:"digital_profitability"`
}

type ProjectProjection struct {
	ID string `json:"id"`
	ProjectProjectionInput
	ProjectProjectionResult
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecalculationSummary resume uma execução de recálculo em lote das projeções
type RecalculationSummary struct {
	Kind    ProjectionKind `json:"kind"`
	Total   int            `json:"total"`
	Updated int            `json:"updated"`
	Failed  int            `json:"failed"`
}
