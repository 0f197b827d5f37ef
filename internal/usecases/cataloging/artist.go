package cataloging

import (
	"context"
	"net/mail"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func validateArtist(artist *domain.Artist) error {
	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return requiredField(entityArtist, "name")
	}

	if artist.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*artist.Email))
		if email == "" {
			artist.Email = nil
			return nil
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return invalidField(entityArtist, "email", "email inválido")
		}
		artist.Email = &email
	}

	return nil
}

func (s *Service) CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	id, err := s.generateID(entityArtist)
	if err != nil {
		return nil, err
	}
	artist.ID = id

	if err := s.artistRepository.Create(ctx, artist); err != nil {
		logrus.WithError(err).Error("Erro ao cadastrar artista")
		return nil, fromRepository(err, entityArtist)
	}

	return artist, nil
}

func (s *Service) UpdateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	if artist.ID == "" {
		return nil, requiredField(entityArtist, "id")
	}

	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	if err := s.artistRepository.Update(ctx, artist); err != nil {
		return nil, fromRepository(err, entityArtist)
	}

	return artist, nil
}

func (s *Service) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.artistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, entityArtist)
	}
	if artist == nil {
		return nil, entityNotFound(entityArtist, id)
	}

	return artist, nil
}

func (s *Service) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	artists, err := s.artistRepository.List(ctx)
	if err != nil {
		return nil, fromRepository(err, entityArtist)
	}

	return artists, nil
}

func (s *Service) DeleteArtist(ctx context.Context, id string) error {
	if err := s.artistRepository.Delete(ctx, id); err != nil {
		return fromRepository(err, entityArtist)
	}

	return nil
}
