package cataloging

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// validateTrack exige um catálogo existente; sem artista informado a faixa
// herda o artista do catálogo
func (s *Service) validateTrack(ctx context.Context, track *domain.Track) error {
	track.Title = strings.TrimSpace(track.Title)
	if track.Title == "" {
		return requiredField(entityTrack, "title")
	}

	if track.DurationSeconds < 0 {
		return invalidField(entityTrack, "duration_seconds", "duração não pode ser negativa")
	}

	if track.ISRC != nil {
		isrc := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(*track.ISRC), "-", ""))
		if isrc == "" {
			track.ISRC = nil
		} else if len(isrc) != 12 {
			return invalidField(entityTrack, "isrc", "ISRC deve conter 12 caracteres")
		} else {
			track.ISRC = &isrc
		}
	}

	if track.CatalogID == "" {
		return requiredField(entityTrack, "catalog_id")
	}

	catalog, err := s.catalogRepository.GetByID(ctx, track.CatalogID)
	if err != nil {
		return fromRepository(err, entityTrack)
	}
	if catalog == nil {
		return referenceNotFound(entityTrack, "catalog_id")
	}

	if track.ArtistID == "" {
		track.ArtistID = catalog.ArtistID
		return nil
	}

	return s.requireArtist(ctx, entityTrack, track.ArtistID)
}

func (s *Service) CreateTrack(ctx context.Context, track *domain.Track) (*domain.Track, error) {
	if err := s.validateTrack(ctx, track); err != nil {
		return nil, err
	}

	id, err := s.generateID(entityTrack)
	if err != nil {
		return nil, err
	}
	track.ID = id

	if err := s.trackRepository.Create(ctx, track); err != nil {
		logrus.WithError(err).Error("Erro ao cadastrar faixa")
		return nil, fromRepository(err, entityTrack)
	}

	return track, nil
}

func (s *Service) UpdateTrack(ctx context.Context, track *domain.Track) (*domain.Track, error) {
	if track.ID == "" {
		return nil, requiredField(entityTrack, "id")
	}

	if err := s.validateTrack(ctx, track); err != nil {
		return nil, err
	}

	if err := s.trackRepository.Update(ctx, track); err != nil {
		return nil, fromRepository(err, entityTrack)
	}

	return track, nil
}

func (s *Service) GetTrack(ctx context.Context, id string) (*domain.Track, error) {
	track, err := s.trackRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, entityTrack)
	}
	if track == nil {
		return nil, entityNotFound(entityTrack, id)
	}

	return track, nil
}

func (s *Service) ListTracks(ctx context.Context, catalogID string) ([]*domain.Track, error) {
	tracks, err := s.trackRepository.List(ctx, catalogID)
	if err != nil {
		return nil, fromRepository(err, entityTrack)
	}

	return tracks, nil
}

func (s *Service) DeleteTrack(ctx context.Context, id string) error {
	if err := s.trackRepository.Delete(ctx, id); err != nil {
		return fromRepository(err, entityTrack)
	}

	return nil
}
