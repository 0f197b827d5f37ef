package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const tracksTable = "tracks"

var trackColumns = []string{"id", "catalog_id", "artist_id", "title", "isrc", "duration_seconds", "created_at", "updated_at"}

type TrackRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Track, error)
	List(ctx context.Context, catalogID string) ([]*domain.Track, error)
	Create(ctx context.Context, track *domain.Track) error
	Update(ctx context.Context, track *domain.Track) error
	Delete(ctx context.Context, id string) error
}

type trackRepository struct {
	conn *postgres.Connection
}

func NewTrackRepository(conn *postgres.Connection) TrackRepository {
	return &trackRepository{
		conn: conn,
	}
}

func (r *trackRepository) GetByID(ctx context.Context, id string) (*domain.Track, error) {
	query, args, err := squirrel.
		Select(trackColumns...).
		From(tracksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	track, err := scanTrack(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get track")
	}

	return track, nil
}

// List retorna as faixas, filtrando pelo catálogo quando catalogID não é vazio
func (r *trackRepository) List(ctx context.Context, catalogID string) ([]*domain.Track, error) {
	queryBuilder := squirrel.
		Select(trackColumns...).
		From(tracksTable).
		OrderBy("title ASC").
		PlaceholderFormat(squirrel.Dollar)

	if catalogID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"catalog_id": catalogID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list tracks")
	}
	defer rows.Close()

	tracks := make([]*domain.Track, 0)
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan track")
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate tracks")
	}

	return tracks, nil
}

func (r *trackRepository) Create(ctx context.Context, track *domain.Track) error {
	query, args, err := squirrel.
		Insert(tracksTable).
		Columns("id", "catalog_id", "artist_id", "title", "isrc", "duration_seconds").
		Values(track.ID, track.CatalogID, track.ArtistID, track.Title, track.ISRC, track.DurationSeconds).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&track.CreatedAt, &track.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create track")
	}

	return nil
}

func (r *trackRepository) Update(ctx context.Context, track *domain.Track) error {
	query, args, err := squirrel.
		Update(tracksTable).
		Set("catalog_id", track.CatalogID).
		Set("artist_id", track.ArtistID).
		Set("title", track.Title).
		Set("isrc", track.ISRC).
		Set("duration_seconds", track.DurationSeconds).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": track.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&track.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update track")
		}
		return wrapDBError(err, "failed to update track")
	}

	return nil
}

func (r *trackRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(tracksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete track")
	}

	return checkAffected(result, "failed to delete track")
}

func scanTrack(row scanner) (*domain.Track, error) {
	track := &domain.Track{}

	if err := row.Scan(
		&track.ID,
		&track.CatalogID,
		&track.ArtistID,
		&track.Title,
		&track.ISRC,
		&track.DurationSeconds,
		&track.CreatedAt,
		&track.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return track, nil
}
