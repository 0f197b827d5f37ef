package projecting

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func (s *Service) buildConcert(ctx context.Context, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, invalidInput("title", "título é obrigatório")
	}

	if in.Year < 1 {
		return nil, invalidInput("year", "ano inválido")
	}

	if in.Status == "" {
		in.Status = domain.ConcertStatusDraft
	}
	if !in.Status.IsValid() {
		return nil, invalidInput("status", "status deve ser draft, active ou archived")
	}

	if err := s.requireArtist(ctx, in.ArtistID); err != nil {
		return nil, err
	}

	normalized, err := calculator.NormalizeConcertSplit(in)
	if err != nil {
		return nil, fromCalculation(err)
	}

	result, err := s.calculator.Concert(normalized)
	if err != nil {
		return nil, fromCalculation(err)
	}

	return &domain.ConcertProjection{
		ConcertProjectionInput:  normalized,
		ConcertProjectionResult: result,
	}, nil
}

func (s *Service) CreateConcertProjection(ctx context.Context, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error) {
	projection, err := s.buildConcert(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID, err = s.generateID()
	if err != nil {
		return nil, err
	}

	if err := s.repos.ConcertProjections.Create(ctx, projection); err != nil {
		logrus.WithError(err).Error("Erro ao salvar projeção de shows")
		return nil, fromRepository(err)
	}

	logrus.WithFields(logrus.Fields{
		"projection_id": projection.ID,
		"artist_id":     projection.ArtistID,
	}).Info("Projeção de shows criada")

	return projection, nil
}

func (s *Service) UpdateConcertProjection(ctx context.Context, id string, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error) {
	existing, err := s.GetConcertProjection(ctx, id)
	if err != nil {
		return nil, err
	}

	projection, err := s.buildConcert(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID = existing.ID
	projection.CreatedAt = existing.CreatedAt

	if err := s.repos.ConcertProjections.Update(ctx, projection); err != nil {
		logrus.WithError(err).WithField("projection_id", id).Error("Erro ao atualizar projeção de shows")
		return nil, fromRepository(err)
	}

	return projection, nil
}

func (s *Service) GetConcertProjection(ctx context.Context, id string) (*domain.ConcertProjection, error) {
	projection, err := s.repos.ConcertProjections.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if projection == nil {
		return nil, notFound(id)
	}

	return projection, nil
}

func (s *Service) ListConcertProjections(ctx context.Context, filter repository.ConcertProjectionFilter) ([]*domain.ConcertProjection, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, invalidInput("status", "status deve ser draft, active ou archived")
	}

	projections, err := s.repos.ConcertProjections.List(ctx, filter)
	if err != nil {
		return nil, fromRepository(err)
	}

	return projections, nil
}

func (s *Service) DeleteConcertProjection(ctx context.Context, id string) error {
	if err := s.repos.ConcertProjections.Delete(ctx, id); err != nil {
		return fromRepository(err)
	}

	return nil
}

func (s *Service) PreviewConcertProjection(ctx context.Context, in domain.ConcertProjectionInput) (*domain.ConcertProjection, error) {
	return s.buildConcert(ctx, in)
}
