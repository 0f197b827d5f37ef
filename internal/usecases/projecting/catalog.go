package projecting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// resolveCatalog garante que artista e catálogo existem e retorna a distribuidora do catálogo
func (s *Service) resolveCatalog(ctx context.Context, in domain.CatalogProjectionInput) (*domain.Distributor, error) {
	if err := s.requireArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	if in.CatalogID == "" {
		return nil, missingReference("catalog_id", "catálogo não informado")
	}

	catalog, err := s.repos.Catalogs.GetByID(ctx, in.CatalogID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if catalog == nil {
		return nil, missingReference("catalog_id", "catálogo não encontrado")
	}
	if catalog.ArtistID != in.ArtistID {
		return nil, missingReference("catalog_id", "catálogo não pertence ao artista")
	}

	return s.getDistributor(ctx, catalog.DistributorID)
}

// buildCatalog executa resolução, normalização e cálculo. Todos os campos
// derivados são reconstruídos a partir da entrada completa.
func (s *Service) buildCatalog(ctx context.Context, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error) {
	distributor, err := s.resolveCatalog(ctx, in)
	if err != nil {
		return nil, err
	}

	normalized, err := calculator.NormalizeCatalogSplit(in)
	if err != nil {
		return nil, fromCalculation(err)
	}

	result, err := s.calculator.Catalog(normalized, distributor)
	if err != nil {
		return nil, fromCalculation(err)
	}

	return &domain.CatalogProjection{
		CatalogProjectionInput:  normalized,
		CatalogProjectionResult: result,
	}, nil
}

func (s *Service) CreateCatalogProjection(ctx context.Context, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error) {
	projection, err := s.buildCatalog(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID, err = s.generateID()
	if err != nil {
		return nil, err
	}

	if err := s.repos.CatalogProjections.Create(ctx, projection); err != nil {
		logrus.WithError(err).Error("Erro ao salvar projeção de catálogo")
		return nil, fromRepository(err)
	}

	logrus.WithFields(logrus.Fields{
		"projection_id": projection.ID,
		"catalog_id":    projection.CatalogID,
	}).Info("Projeção de catálogo criada")

	return projection, nil
}

func (s *Service) UpdateCatalogProjection(ctx context.Context, id string, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error) {
	existing, err := s.GetCatalogProjection(ctx, id)
	if err != nil {
		return nil, err
	}

	projection, err := s.buildCatalog(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID = existing.ID
	projection.CreatedAt = existing.CreatedAt

	if err := s.repos.CatalogProjections.Update(ctx, projection); err != nil {
		logrus.WithError(err).WithField("projection_id", id).Error("Erro ao atualizar projeção de catálogo")
		return nil, fromRepository(err)
	}

	return projection, nil
}

func (s *Service) GetCatalogProjection(ctx context.Context, id string) (*domain.CatalogProjection, error) {
	projection, err := s.repos.CatalogProjections.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if projection == nil {
		return nil, notFound(id)
	}

	return projection, nil
}

func (s *Service) ListCatalogProjections(ctx context.Context, artistID string) ([]*domain.CatalogProjection, error) {
	projections, err := s.repos.CatalogProjections.List(ctx, artistID)
	if err != nil {
		return nil, fromRepository(err)
	}

	return projections, nil
}

func (s *Service) DeleteCatalogProjection(ctx context.Context, id string) error {
	if err := s.repos.CatalogProjections.Delete(ctx, id); err != nil {
		return fromRepository(err)
	}

	return nil
}

// PreviewCatalogProjection calcula sem persistir
func (s *Service) PreviewCatalogProjection(ctx context.Context, in domain.CatalogProjectionInput) (*domain.CatalogProjection, error) {
	return s.buildCatalog(ctx, in)
}
