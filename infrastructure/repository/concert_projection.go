package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const concertProjectionsTable = "concert_projections"

var concertProjectionColumns = []string{
	"id",
	"artist_id",
	"title",
	"year",
	"shows_per_year",
	"period",
	"average_ticket_value",
	"crew_percentage",
	"artist_percentage",
	"company_percentage",
	"status",
	"total_shows",
	"gross_revenue",
	"crew_share",
	"artist_share",
	"company_share",
	"created_at",
	"updated_at",
}

type ConcertProjectionFilter struct {
	ArtistID string
	Status   domain.ConcertStatus
}

type ConcertProjectionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ConcertProjection, error)
	List(ctx context.Context, filter ConcertProjectionFilter) ([]*domain.ConcertProjection, error)
	Create(ctx context.Context, projection *domain.ConcertProjection) error
	Update(ctx context.Context, projection *domain.ConcertProjection) error
	Delete(ctx context.Context, id string) error
}

type concertProjectionRepository struct {
	conn *postgres.Connection
}

func NewConcertProjectionRepository(conn *postgres.Connection) ConcertProjectionRepository {
	return &concertProjectionRepository{
		conn: conn,
	}
}

func (r *concertProjectionRepository) GetByID(ctx context.Context, id string) (*domain.ConcertProjection, error) {
	query, args, err := squirrel.
		Select(concertProjectionColumns...).
		From(concertProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	projection, err := scanConcertProjection(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get concert projection")
	}

	return projection, nil
}

func (r *concertProjectionRepository) List(ctx context.Context, filter ConcertProjectionFilter) ([]*domain.ConcertProjection, error) {
	queryBuilder := squirrel.
		Select(concertProjectionColumns...).
		From(concertProjectionsTable).
		OrderBy("year DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ArtistID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"artist_id": filter.ArtistID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list concert projections")
	}
	defer rows.Close()

	projections := make([]*domain.ConcertProjection, 0)
	for rows.Next() {
		projection, err := scanConcertProjection(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan concert projection")
		}
		projections = append(projections, projection)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate concert projections")
	}

	return projections, nil
}

func (r *concertProjectionRepository) Create(ctx context.Context, projection *domain.ConcertProjection) error {
	values := concertProjectionValues(projection)
	values["id"] = projection.ID

	query, args, err := squirrel.
		Insert(concertProjectionsTable).
		SetMap(values).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&projection.CreatedAt, &projection.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create concert projection")
	}

	return nil
}

func (r *concertProjectionRepository) Update(ctx context.Context, projection *domain.ConcertProjection) error {
	values := concertProjectionValues(projection)
	values["updated_at"] = squirrel.Expr("CURRENT_TIMESTAMP")

	query, args, err := squirrel.
		Update(concertProjectionsTable).
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
			return wrapDBError(ErrNotFound, "failed to update concert projection")
		}
		return wrapDBError(err, "failed to update concert projection")
	}

	return nil
}

func (r *concertProjectionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(concertProjectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete concert projection")
	}

	return checkAffected(result, "failed to delete concert projection")
}

func concertProjectionValues(p *domain.ConcertProjection) map[string]any {
	return map[string]any{
		"artist_id":            p.ArtistID,
		"title":                p.Title,
		"year":                 p.Year,
		"shows_per_year":       p.ShowsPerYear,
		"period":               p.Period,
		"average_ticket_value": p.AverageTicketValue,
		"crew_percentage":      p.CrewPercentage,
		"artist_percentage":    p.ArtistPercentage,
		"company_percentage":   p.CompanyPercentage,
		"status":               p.Status,
		"total_shows":          p.TotalShows,
		"gross_revenue":        p.GrossRevenue,
		"crew_share":           p.CrewShare,
		"artist_share":         p.ArtistShare,
		"company_share":        p.CompanyShare,
	}
}

func scanConcertProjection(row scanner) (*domain.ConcertProjection, error) {
	p := &domain.ConcertProjection{}

	if err := row.Scan(
		&p.ID,
		&p.ArtistID,
		&p.Title,
		&p.Year,
		&p.ShowsPerYear,
		&p.Period,
		&p.AverageTicketValue,
		&p.CrewPercentage,
		&p.ArtistPercentage,
		&p.CompanyPercentage,
		&p.Status,
		&p.TotalShows,
		&p.GrossRevenue,
		&p.CrewShare,
		&p.ArtistShare,
		&p.CompanyShare,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p, nil
}
