package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const catalogsTable = "catalogs"

var catalogColumns = []string{"id", "title", "artist_id", "distributor_id", "release_date", "created_at", "updated_at"}

type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Catalog, error)
	List(ctx context.Context, artistID string) ([]*domain.Catalog, error)
	Create(ctx context.Context, catalog *domain.Catalog) error
	Update(ctx context.Context, catalog *domain.Catalog) error
	Delete(ctx context.Context, id string) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*domain.Catalog, error) {
	query, args, err := squirrel.
		Select(catalogColumns...).
		From(catalogsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	catalog, err := scanCatalog(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get catalog")
	}

	return catalog, nil
}

// List retorna os catálogos, filtrando pelo artista quando artistID não é vazio
func (r *catalogRepository) List(ctx context.Context, artistID string) ([]*domain.Catalog, error) {
	queryBuilder := squirrel.
		Select(catalogColumns...).
		From(catalogsTable).
		OrderBy("title ASC").
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
		return nil, wrapDBError(err, "failed to list catalogs")
	}
	defer rows.Close()

	catalogs := make([]*domain.Catalog, 0)
	for rows.Next() {
		catalog, err := scanCatalog(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan catalog")
		}
		catalogs = append(catalogs, catalog)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate catalogs")
	}

	return catalogs, nil
}

func (r *catalogRepository) Create(ctx context.Context, catalog *domain.Catalog) error {
	query, args, err := squirrel.
		Insert(catalogsTable).
		Columns("id", "title", "artist_id", "distributor_id", "release_date").
		Values(catalog.ID, catalog.Title, catalog.ArtistID, catalog.DistributorID, catalog.ReleaseDate).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&catalog.CreatedAt, &catalog.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create catalog")
	}

	return nil
}

func (r *catalogRepository) Update(ctx context.Context, catalog *domain.Catalog) error {
	query, args, err := squirrel.
		Update(catalogsTable).
		Set("title", catalog.Title).
		Set("artist_id", catalog.ArtistID).
		Set("distributor_id", catalog.DistributorID).
		Set("release_date", catalog.ReleaseDate).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": catalog.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&catalog.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update catalog")
		}
		return wrapDBError(err, "failed to update catalog")
	}

	return nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(catalogsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete catalog")
	}

	return checkAffected(result, "failed to delete catalog")
}

func scanCatalog(row scanner) (*domain.Catalog, error) {
	catalog := &domain.Catalog{}

	if err := row.Scan(
		&catalog.ID,
		&catalog.Title,
		&catalog.ArtistID,
		&catalog.DistributorID,
		&catalog.ReleaseDate,
		&catalog.CreatedAt,
		&catalog.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return catalog, nil
}
