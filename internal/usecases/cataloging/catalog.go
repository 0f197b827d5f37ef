package cataloging

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func (s *Service) validateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	catalog.Title = strings.TrimSpace(catalog.Title)
	if catalog.Title == "" {
		return requiredField(entityCatalog, "title")
	}

	if err := s.requireArtist(ctx, entityCatalog, catalog.ArtistID); err != nil {
		return err
	}

	if catalog.DistributorID == "" {
		return requiredField(entityCatalog, "distributor_id")
	}

	distributor, err := s.distributorRepository.GetByID(ctx, catalog.DistributorID)
	if err != nil {
		return fromRepository(err, entityCatalog)
	}
	if distributor == nil {
		return referenceNotFound(entityCatalog, "distributor_id")
	}

	return nil
}

func (s *Service) CreateCatalog(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error) {
	if err := s.validateCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	id, err := s.generateID(entityCatalog)
	if err != nil {
		return nil, err
	}
	catalog.ID = id

	if err := s.catalogRepository.Create(ctx, catalog); err != nil {
		logrus.WithError(err).Error("Erro ao cadastrar catálogo")
		return nil, fromRepository(err, entityCatalog)
	}

	return catalog, nil
}

func (s *Service) UpdateCatalog(ctx context.Context, catalog *domain.Catalog) (*domain.Catalog, error) {
	if catalog.ID == "" {
		return nil, requiredField(entityCatalog, "id")
	}

	if err := s.validateCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	if err := s.catalogRepository.Update(ctx, catalog); err != nil {
		return nil, fromRepository(err, entityCatalog)
	}

	return catalog, nil
}

func (s *Service) GetCatalog(ctx context.Context, id string) (*domain.Catalog, error) {
	catalog, err := s.catalogRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, entityCatalog)
	}
	if catalog == nil {
		return nil, entityNotFound(entityCatalog, id)
	}

	return catalog, nil
}

func (s *Service) ListCatalogs(ctx context.Context, artistID string) ([]*domain.Catalog, error) {
	catalogs, err := s.catalogRepository.List(ctx, artistID)
	if err != nil {
		return nil, fromRepository(err, entityCatalog)
	}

	return catalogs, nil
}

func (s *Service) DeleteCatalog(ctx context.Context, id string) error {
	if err := s.catalogRepository.Delete(ctx, id); err != nil {
		return fromRepository(err, entityCatalog)
	}

	return nil
}
