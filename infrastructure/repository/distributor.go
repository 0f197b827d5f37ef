package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const distributorsTable = "distributors"

var distributorColumns = []string{"id", "name", "percentage", "created_at", "updated_at"}

type DistributorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Distributor, error)
	List(ctx context.Context) ([]*domain.Distributor, error)
	Create(ctx context.Context, distributor *domain.Distributor) error
	Update(ctx context.Context, distributor *domain.Distributor) error
	Delete(ctx context.Context, id string) error
}

type distributorRepository struct {
	conn *postgres.Connection
}

func NewDistributorRepository(conn *postgres.Connection) DistributorRepository {
	return &distributorRepository{
		conn: conn,
	}
}

func (r *distributorRepository) GetByID(ctx context.Context, id string) (*domain.Distributor, error) {
	query, args, err := squirrel.
		Select(distributorColumns...).
		From(distributorsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	distributor, err := scanDistributor(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get distributor")
	}

	return distributor, nil
}

func (r *distributorRepository) List(ctx context.Context) ([]*domain.Distributor, error) {
	query, args, err := squirrel.
		Select(distributorColumns...).
		From(distributorsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list distributors")
	}
	defer rows.Close()

	distributors := make([]*domain.Distributor, 0)
	for rows.Next() {
		distributor, err := scanDistributor(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan distributor")
		}
		distributors = append(distributors, distributor)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate distributors")
	}

	return distributors, nil
}

func (r *distributorRepository) Create(ctx context.Context, distributor *domain.Distributor) error {
	query, args, err := squirrel.
		Insert(distributorsTable).
		Columns("id", "name", "percentage").
		Values(distributor.ID, distributor.Name, distributor.Percentage).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&distributor.CreatedAt, &distributor.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create distributor")
	}

	return nil
}

func (r *distributorRepository) Update(ctx context.Context, distributor *domain.Distributor) error {
	query, args, err := squirrel.
		Update(distributorsTable).
		Set("name", distributor.Name).
		Set("percentage", distributor.Percentage).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": distributor.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&distributor.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update distributor")
		}
		return wrapDBError(err, "failed to update distributor")
	}

	return nil
}

func (r *distributorRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(distributorsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete distributor")
	}

	return checkAffected(result, "failed to delete distributor")
}

func scanDistributor(row scanner) (*domain.Distributor, error) {
	distributor := &domain.Distributor{}

	if err := row.Scan(
		&distributor.ID,
		&distributor.Name,
		&distributor.Percentage,
		&distributor.CreatedAt,
		&distributor.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return distributor, nil
}
