// Package projecting orquestra o pipeline das projeções: resolve as entidades
// relacionadas, normaliza a divisão de percentuais, calcula e persiste.
package projecting

import (
	"context"

	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"github.com/vfg2006/royalty-manager-api/pkg/utils"
)

type CatalogProjector interface {
	CreateCatalogProjection(ctx context.Context, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error)
	UpdateCatalogProjection(ctx context.Context, id string, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error)
	GetCatalogProjection(ctx context.Context, id string) (*domain.CatalogProjection, error)
	ListCatalogProjections(ctx context.Context, artistID string) ([]*domain.CatalogProjection, error)
	DeleteCatalogProjection(ctx context.Context, id string) error
	PreviewCatalogProjection(ctx context.Context, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error)
}

type ConcertProjector interface {
	CreateConcertProjection(ctx context.Context, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error)
	UpdateConcertProjection(ctx context.Context, id string, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error)
	GetConcertProjection(ctx context.Context, id string) (*domain.ConcertProjection, error)
	ListConcertProjections(ctx context.Context, filter repository.ConcertProjectionFilter) ([]*domain.ConcertProjection, error)
	DeleteConcertProjection(ctx context.Context, id string) error
	PreviewConcertProjection(ctx context.Context, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error)
}

type ProjectProjector interface {
	CreateProjectProjection(ctx context.Context, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error)
	UpdateProjectProjection(ctx context.Context, id string, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error)
	GetProjectProjection(ctx context.Context, id string) (*domain.ProjectProjection, error)
	ListProjectProjections(ctx context.Context, projectID string) ([]*domain.ProjectProjection, error)
	DeleteProjectProjection(ctx context.Context, id string) error
	PreviewProjectProjection(ctx context.Context, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error)
}

// Projector agrupa os três tipos de projeção e o recálculo em lote
type Projector interface {
	CatalogProjector
	ConcertProjector
	ProjectProjector
	RecalculateAll(ctx context.Context) ([]domain.RecalculationSummary, error)
}

type Repositories struct {
	Artists            repository.ArtistRepository
	Catalogs           repository.CatalogRepository
	Distributors       repository.DistributorRepository
	Projects           repository.ProjectRepository
	CatalogProjections repository.CatalogProjectionRepository
	ConcertProjections repository.ConcertProjectionRepository
	ProjectProjections repository.ProjectProjectionRepository
}

type Service struct {
	repos      Repositories
	calculator *calculator.Calculator
	newID      func() (string, error)
}

func NewService(repos Repositories, calc *calculator.Calculator) *Service {
	return &Service{
		repos:      repos,
		calculator: calc,
		newID:      utils.GenerateID,
	}
}

var _ Projector = (*Service)(nil)

func (s *Service) requireArtist(ctx context.Context, artistID string) error {
	if artistID == "" {
		return missingReference("artist_id", "artista não informado")
	}

	artist, err := s.repos.Artists.GetByID(ctx, artistID)
	if err != nil {
		return fromRepository(err)
	}
	if artist == nil {
		return missingReference("artist_id", "artista não encontrado")
	}

	return nil
}

func (s *Service) getDistributor(ctx context.Context, distributorID string) (*domain.Distributor, error) {
	if distributorID == "" {
		return nil, missingReference("distributor_id", "distribuidora não informada")
	}

	distributor, err := s.repos.Distributors.GetByID(ctx, distributorID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if distributor == nil {
		return nil, missingReference("distributor_id", "distribuidora não encontrada")
	}

	return distributor, nil
}

func (s *Service) generateID() (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", NewProjectionError(err, apiErrors.ErrInternalServer, "", "erro ao gerar identificador")
	}
	return id, nil
}

func invalidInput(field, details string) error {
	return NewProjectionError(calculator.ErrInvalidInput, apiErrors.ErrInvalidInput, field, details)
}
