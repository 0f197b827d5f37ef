package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const catalogProjectionsTable = "catalog_projections"

var catalogProjectionColumns = []string{
	"id",
	"artist_id",
	"catalog_id",
	"number_of_tracks",
	"period",
	"daily_plays_per_track",
	"average_value",
	"participation_percentage",
	"artist_percentage",
	"company_percentage",
	"distributor_percentage",
	"daily_plays_per_catalog",
	"total_plays",
	"gross_revenue",
	"gross_profit",
	"pro_rata",
	"profitability",
	"created_at",
	"updated_at",
}

type CatalogProjectionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CatalogProjection, error)
	List(ctx context.Context, artistID string) ([]*domain.CatalogProjection, error)
	Create(ctx context.Context, projection *domain.CatalogProjection) error
	Update(ctx context.Context, projection *domain.CatalogProjection) error
	Delete(ctx context.Context, id string) error
}

type catalogProjectionRepository struct {
	conn *postgres.Connection
}

func NewCatalogProjectionRepository(conn *postgres.Connection) CatalogProjectionRepository {
	return &catalogProjectionRepository{
		conn: conn,
	}
}

func (r *catalogProjectionRepository) GetByID(ctx context.Context, id string) (*domain.CatalogProjection, error) {
	query, args, err := squirrel.
		Select(catalogProjectionColumns...).
		From(catalogProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	projection, err := scanCatalogProjection(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get catalog projection")
	}

	return projection, nil
}

func (r *catalogProjectionRepository) List(ctx context.Context, artistID string) ([]*domain.CatalogProjection, error) {
	queryBuilder := squirrel.
		Select(catalogProjectionColumns...).
		From(catalogProjectionsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if artistID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"artist_id": artistID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list catalog projections")
	}
	defer rows.Close()

	projections := make([]*domain.CatalogProjection, 0)
	for rows.Next() {
		projection, err := scanCatalogProjection(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan catalog projection")
		}
		projections = append(projections, projection)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate catalog projections")
	}

	return projections, nil
}

func (r *catalogProjectionRepository) Create(ctx context.Context, projection *domain.CatalogProjection) error {
	values := catalogProjectionValues(projection)
	values["id"] = projection.ID

	query, args, err := squirrel.
		Insert(catalogProjectionsTable).
		SetMap(values).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&projection.CreatedAt, &projection.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create catalog projection")
	}

	return nil
}

func (r *catalogProjectionRepository) Update(ctx context.Context, projection *domain.CatalogProjection) error {
	values := catalogProjectionValues(projection)
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update(catalogProjectionsTable).
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
			return wrapDBError(ErrNotFound, "failed to update catalog projection")
		}
		return wrapDBError(err, "failed to update catalog projection")
	}

	return nil
}

func (r *catalogProjectionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(catalogProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete catalog projection")
	}

	return checkAffected(result, "failed to delete catalog projection")
}

// catalogProjectionValues mapeia as colunas gravadas tanto no insert quanto no update
func catalogProjectionValues(p *domain.CatalogProjection) map[string]any {
	return map[string]any{
		"artist_id":                p.ArtistID,
		"catalog_id":               p.CatalogID,
		"number_of_tracks":         p.NumberOfTracks,
		"period":                   p.Period,
		"daily_plays_per_track":    p.DailyPlaysPerTrack,
		"average_value":            p.AverageValue,
		"participation_percentage": p.ParticipationPercentage,
		"artist_percentage":        p.ArtistPercentage,
		"company_percentage":       p.CompanyPercentage,
		"distributor_percentage":   p.DistributorPercentage,
		"daily_plays_per_catalog":  p.DailyPlaysPerCatalog,
		"total_plays":              p.TotalPlays,
		"gross_revenue":            p.GrossRevenue,
		"gross_profit":             p.GrossProfit,
		"pro_rata":                 p.ProRata,
		"profitability":            p.Profitability,
	}
}

func scanCatalogProjection(row scanner) (*domain.CatalogProjection, error) {
	p := &domain.CatalogProjection{}

	if err := row.Scan(
		&p.ID,
		&p.ArtistID,
		&p.CatalogID,
		&p.NumberOfTracks,
		&p.Period,
		&p.DailyPlaysPerTrack,
		&p.AverageValue,
		&p.ParticipationPercentage,
		&p.ArtistPercentage,
		&p.CompanyPercentage,
		&p.DistributorPercentage,
		&p.DailyPlaysPerCatalog,
		&p.TotalPlays,
		&p.GrossRevenue,
		&p.GrossProfit,
		&p.ProRata,
		&p.Profitability,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p, nil
}
