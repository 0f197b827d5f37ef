package cataloging

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func (s *Service) validateProject(ctx context.Context, project *domain.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return requiredField(entityProject, "name")
	}

	if project.Budget.IsNegative() {
		return invalidField(entityProject, "budget", "orçamento não pode ser negativo")
	}

	return s.requireArtist(ctx, entityProject, project.ArtistID)
}

func (s *Service) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := s.validateProject(ctx, project); err != nil {
		return nil, err
	}

	id, err := s.generateID(entityProject)
	if err != nil {
		return nil, err
	}
	project.ID = id

	if err := s.projectRepository.Create(ctx, project); err != nil {
		logrus.WithError(err).Error("Erro ao cadastrar projeto")
		return nil, fromRepository(err, entityProject)
	}

	return project, nil
}

func (s *Service) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.ID == "" {
		return nil, requiredField(entityProject, "id")
	}

	if err := s.validateProject(ctx, project); err != nil {
		return nil, err
	}

	if err := s.projectRepository.Update(ctx, project); err != nil {
		return nil, fromRepository(err, entityProject)
	}

	return project, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, entityProject)
	}
	if project == nil {
		return nil, entityNotFound(entityProject, id)
	}

	return project, nil
}

func (s *Service) ListProjects(ctx context.Context, artistID string) ([]*domain.Project, error) {
	projects, err := s.projectRepository.List(ctx, artistID)
	if err != nil {
		return nil, fromRepository(err, entityProject)
	}

	return projects, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.projectRepository.Delete(ctx, id); err != nil {
		return fromRepository(err, entityProject)
	}

	return nil
}
