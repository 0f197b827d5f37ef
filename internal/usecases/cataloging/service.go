// Package cataloging mantém o cadastro das entidades de contexto das projeções:
// artistas, faixas, catálogos, distribuidoras e projetos.
package cataloging

import (
	"context"

	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"github.com/vfg2006/royalty-manager-api/pkg/utils"
)

const (
	entityArtist      = "artist"
	entityTrack       = "track"
	entityCatalog     = "catalog"
	entityDistributor = "distributor"
	entityProject     = "project"
)

type Registry interface {
	CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)
	ListArtists(ctx context.Context) ([]*domain.Artist, error)
	DeleteArtist(ctx context.Context, id string) error

	CreateTrack(ctx context.Context, track *domain.Track) (*domain.Track, error)
	UpdateTrack(ctx context.Context, track *domain.Track) (*domain.Track, error)
	GetTrack(ctx context.Context, id string) (*domain.Track, error)
	ListTracks(ctx context.Context, catalogID string) ([]*domain.Track, error)
	DeleteTrack(ctx context.Context, id string) error

	CreateCatalog(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error)
	UpdateCatalog(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error)
	GetCatalog(ctx context.Context, id string) (*domain.Catalog, error)
	ListCatalogs(ctx context.Context, artistID string) ([]*domain.Catalog, error)
	DeleteCatalog(ctx context.Context, id string) error

	CreateDistributor(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error)
	UpdateDistributor(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error)
	GetDistributor(ctx context.Context, id string) (*domain.Distributor, error)
	ListDistributors(ctx context.Context) ([]*domain.Distributor, error)
	DeleteDistributor(ctx context.Context, id string) error

	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context, artistID string) ([]*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type Service struct {
	artistRepository      repository.ArtistRepository
	trackRepository       repository.TrackRepository
	catalogRepository     repository.CatalogRepository
	distributorRepository repository.DistributorRepository
	projectRepository     repository.ProjectRepository
	newID                 func() (string, error)
}

func NewService(
	artistRepository repository.ArtistRepository,
	trackRepository repository.TrackRepository,
	catalogRepository repository.CatalogRepository,
	distributorRepository repository.DistributorRepository,
	projectRepository repository.ProjectRepository,
) *Service {
	return &Service{
		artistRepository:      artistRepository,
		trackRepository:       trackRepository,
		catalogRepository:     catalogRepository,
		distributorRepository: distributorRepository,
		projectRepository:     projectRepository,
		newID:                 utils.GenerateID,
	}
}

var _ Registry = (*Service)(nil)

func (s *Service) generateID(entity string) (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", NewRegistryError(ErrGenerateID, apiErrors.ErrInternalServer, entity, "", err.Error())
	}
	return id, nil
}

// requireArtist é usado por faixas, catálogos e projetos
func (s *Service) requireArtist(ctx context.Context, entity, artistID string) error {
	if artistID == "" {
		return requiredField(entity, "artist_id")
	}

	artist, err := s.artistRepository.GetByID(ctx, artistID)
	if err != nil {
		return fromRepository(err, entity)
	}
	if artist == nil {
		return referenceNotFound(entity, "artist_id")
	}

	return nil
}
