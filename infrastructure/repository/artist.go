package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const artistsTable = "artists"

var artistColumns = []string{"id", "name", "stage_name", "email", "created_at", "updated_at"}

type ArtistRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	List(ctx context.Context) ([]*domain.Artist, error)
	Create(ctx context.Context, artist *domain.Artist) error
	Update(ctx context.Context, artist *domain.Artist) error
	Delete(ctx context.Context, id string) error
}

type artistRepository struct {
	conn *postgres.Connection
}

func NewArtistRepository(conn *postgres.Connection) ArtistRepository {
	return &artistRepository{
		conn: conn,
	}
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	query, args, err := squirrel.
		Select(artistColumns...).
		From(artistsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	artist, err := scanArtist(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get artist")
	}

	return artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	query, args, err := squirrel.
		Select(artistColumns...).
		From(artistsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list artists")
	}
	defer rows.Close()

	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan artist")
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate artists")
	}

	return artists, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query, args, err := squirrel.
		Insert(artistsTable).
		Columns("id", "name", "stage_name", "email").
		Values(artist.ID, artist.Name, artist.StageName, artist.Email).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&artist.CreatedAt, &artist.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create artist")
	}

	return nil
}

func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	query, args, err := squirrel.
		Update(artistsTable).
		Set("name", artist.Name).
		Set("stage_name", artist.StageName).
		Set("email", artist.Email).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": artist.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&artist.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update artist")
		}
		return wrapDBError(err, "failed to update artist")
	}

	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(artistsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete artist")
	}

	return checkAffected(result, "failed to delete artist")
}

func scanArtist(row scanner) (*domain.Artist, error) {
	artist := &domain.Artist{}

	if err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.StageName,
		&artist.Email,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return artist, nil
}
