package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

const projectsTable = "projects"

var projectColumns = []string{"id", "name", "artist_id", "budget", "created_at", "updated_at"}

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, artistID string) ([]*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, wrapDBError(err, "failed to build query")
	}

	project, err := scanProject(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDBError(err, "failed to get project")
	}

	return project, nil
}

// List retorna os projetos, filtrando pelo artista quando artistID não é vazio
func (r *projectRepository) List(ctx context.Context, artistID string) ([]*domain.Project, error) {
	queryBuilder := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		OrderBy("name ASC").
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
		return nil, wrapDBError(err, "failed to list projects")
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan project")
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to iterate projects")
	}

	return projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query, args, err := squirrel.
		Insert(projectsTable).
		Columns("id", "name", "artist_id", "budget").
		Values(project.ID, project.Name, project.ArtistID, project.Budget).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		return wrapDBError(err, "failed to create project")
	}

	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query, args, err := squirrel.
		Update(projectsTable).
		Set("name", project.Name).
		Set("artist_id", project.ArtistID).
		Set("budget", project.Budget).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": project.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&project.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return wrapDBError(ErrNotFound, "failed to update project")
		}
		return wrapDBError(err, "failed to update project")
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return wrapDBError(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err, "failed to delete project")
	}

	return checkAffected(result, "failed to delete project")
}

func scanProject(row scanner) (*domain.Project, error) {
	project := &domain.Project{}

	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.ArtistID,
		&project.Budget,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return project, nil
}
