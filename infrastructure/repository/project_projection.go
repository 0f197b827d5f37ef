package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const projectProjectionsTable = "project_projections"

var projectProjectionColumns = []string{
	"id",
	"project_id",
	"distributor_id",
	"year",
	"number_of_tracks",
	"period",
	"average_daily_plays_per_track",
	"average_value_per_m_plays",
	"participation_percentage",
	"artist_percentage",
	"company_percentage",
	"budget_percentage",
	"average_daily_plays_per_project",
	"total_plays",
	"gross_revenue",
	"distributor_percentage",
	"distributor_profit",
	"pro_rata_usd",
	"pro_rata_brl",
	"net_revenue_12_months",
	"budget_allocation",
	"project_budget",
	"digital_profitability",
	"created_at",
	"updated_at",
}

type ProjectProjectionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ProjectProjection, error)
	List(ctx context.Context, projectID string) ([]*domain.ProjectProjection, error)
	Create(ctx context.Context, projection *domain.ProjectProjection) error
	Update(ctx context.Context, projection *domain.ProjectProjection) error
	Delete(ctx context.Context, id string) error
}

type projectProjectionRepository struct {
	conn *postgres.Connection
}

func NewProjectProjectionRepository(conn *postgres.Connection) ProjectProjectionRepository {
	return &projectProjectionRepository{
		conn: conn,
	}
}

func (r *projectProjectionRepository) GetByID(ctx context.Context, id string) (*domain.ProjectProjection, error) {
	query, args, err := squirrel.
		Select(projectProjectionColumns...).
		From(projectProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	projection, err := scanProjectProjection(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get project projection")
	}

	return projection, nil
}

func (r *projectProjectionRepository) List(ctx context.Context, projectID string) ([]*domain.ProjectProjection, error) {
	queryBuilder := squirrel.
		Select(projectProjectionColumns...).
		From(projectProjectionsTable).
		OrderBy("year DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if projectID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"project_id": projectID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list project projections")
	}
	defer rows.Close()

	projections := make([]*domain.ProjectProjection, 0)
	for rows.Next() {
		projection, err := scanProjectProjection(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan project projection")
		}
		projections = append(projections, projection)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate project projections")
	}

	return projections, nil
}

func (r *projectProjectionRepository) Create(ctx context.Context, projection *domain.ProjectProjection) error {
	values := projectProjectionValues(projection)
	values["id"] = projection.ID

	query, args, err := squirrel.
		Insert(projectProjectionsTable).
		SetMap(values).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&projection.CreatedAt, &projection.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create project projection")
	}

	return nil
}

func (r *projectProjectionRepository) Update(ctx context.Context, projection *domain.ProjectProjection) error {
	values := projectProjectionValues(projection)
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update(projectProjectionsTable).
		SetMap(values).
		Where(squirrel.Eq{"id": projection.ID}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&projection.CreatedAt, &projection.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update project projection")
		}
		return wrapDBError(err, "failed to update project projection")
	}

	return nil
}

func (r *projectProjectionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(projectProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete project projection")
	}

	return checkAffected(result, "failed to delete project projection")
}

func projectProjectionValues(p *domain.ProjectProjection) map[string]any {
	return map[string]any{
		"project_id":                      p.ProjectID,
		"distributor_id":                  p.DistributorID,
		"year":                            p.Year,
		"number_of_tracks":                p.NumberOfTracks,
		"period":                          p.Period,
		"average_daily_plays_per_track":   p.AverageDailyPlaysPerTrack,
		"average_value_per_m_plays":       p.AverageValuePerMPlays,
		"participation_percentage":        p.ParticipationPercentage,
		"artist_percentage":               p.ArtistPercentage,
		"company_percentage":              p.CompanyPercentage,
		"budget_percentage":               nullDecimal(p.BudgetPercentage),
		"average_daily_plays_per_project": p.AverageDailyPlaysPerProject,
		"total_plays":                     p.TotalPlays,
		"gross_revenue":                   p.GrossRevenue,
		"distributor_percentage":          p.DistributorPercentage,
		"distributor_profit":              p.DistributorProfit,
		"pro_rata_usd":                    p.ProRataUSD,
		"pro_rata_brl":                    p.ProRataBRL,
		"net_revenue_12_months":           p.NetRevenue12Months,
		"budget_allocation":               p.BudgetAllocation,
		"project_budget":                  p.ProjectBudget,
		"digital_profitability":           p.DigitalProfitability,
	}
}

func scanProjectProjection(row scanner) (*domain.ProjectProjection, error) {
	p := &domain.ProjectProjection{}
	var budgetPercentage decimal.NullDecimal

	if err := row.Scan(
		&p.ID,
		&p.ProjectID,
		&p.DistributorID,
		&p.Year,
		&p.NumberOfTracks,
		&p.Period,
		&p.AverageDailyPlaysPerTrack,
		&p.AverageValuePerMPlays,
		&p.ParticipationPercentage,
		&p.ArtistPercentage,
		&p.CompanyPercentage,
		&budgetPercentage,
		&p.AverageDailyPlaysPerProject,
		&p.TotalPlays,
		&p.GrossRevenue,
		&p.DistributorPercentage,
		&p.DistributorProfit,
		&p.ProRataUSD,
		&p.ProRataBRL,
		&p.NetRevenue12Months,
		&p.BudgetAllocation,
		&p.ProjectBudget,
		&p.DigitalProfitability,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.BudgetPercentage = decimalPtr(budgetPercentage)

	return p, nil
}
