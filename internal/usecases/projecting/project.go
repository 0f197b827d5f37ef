package projecting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

func (s *Service) resolveProject(ctx context.Context, in domain.ProjectProjectionInput) (*domain.Project, *domain.Distributor, error) {
	if in.ProjectID == "" {
		return nil, nil, missingReference("project_id", "projeto não informado")
	}

	project, err := s.repos.Projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, nil, fromRepository(err)
	}
	if project == nil {
		return nil, nil, missingReference("project_id", "projeto não encontrado")
	}

	distributor, err := s.getDistributor(ctx, in.DistributorID)
	if err != nil {
		return nil, nil, err
	}

	return project, distributor, nil
}

func (s *Service) buildProject(ctx context.Context, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error) {
	if in.Year < 1 {
		return nil, invalidInput("year", "ano inválido")
	}

	project, distributor, err := s.resolveProject(ctx, in)
	if err != nil {
		return nil, err
	}

	normalized, err := calculator.NormalizeProjectSplit(in)
	if err != nil {
		return nil, fromCalculation(err)
	}

	result, err := s.calculator.Project(normalized, distributor, project)
	if err != nil {
		return nil, fromCalculation(err)
	}

	return &domain.ProjectProjection{
		ProjectProjectionInput:  normalized,
		ProjectProjectionResult: result,
	}, nil
}

func (s *Service) CreateProjectProjection(ctx context.Context, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error) {
	projection, err := s.buildProject(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID, err = s.generateID()
	if err != nil {
		return nil, err
	}

	if err := s.repos.ProjectProjections.Create(ctx, projection); err != nil {
		logrus.WithError(err).Error("Erro ao salvar projeção de projeto")
		return nil, fromRepository(err)
	}

	logrus.WithFields(logrus.Fields{
		"projection_id": projection.ID,
		"project_id":    projection.ProjectID,
	}).Info("Projeção de projeto criada")

	return projection, nil
}

func (s *Service) UpdateProjectProjection(ctx context.Context, id string, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error) {
	existing, err := s.GetProjectProjection(ctx, id)
	if err != nil {
		return nil, err
	}

	projection, err := s.buildProject(ctx, in)
	if err != nil {
		return nil, err
	}

	projection.ID = existing.ID
	projection.CreatedAt = existing.CreatedAt

	if err := s.repos.ProjectProjections.Update(ctx, projection); err != nil {
		logrus.WithError(err).WithField("projection_id", id).Error("Erro ao atualizar projeção de projeto")
		return nil, fromRepository(err)
	}

	return projection, nil
}

func (s *Service) GetProjectProjection(ctx context.Context, id string) (*domain.ProjectProjection, error) {
	projection, err := s.repos.ProjectProjections.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if projection == nil {
		return nil, notFound(id)
	}

	return projection, nil
}

func (s *Service) ListProjectProjections(ctx context.Context, projectID string) ([]*domain.ProjectProjection, error) {
	projections, err := s.repos.ProjectProjections.List(ctx, projectID)
	if err != nil {
		return nil, fromRepository(err)
	}

	return projections, nil
}

func (s *Service) DeleteProjectProjection(ctx context.Context, id string) error {
	if err := s.repos.ProjectProjections.Delete(ctx, id); err != nil {
		return fromRepository(err)
	}

	return nil
}

func (s *Service) PreviewProjectProjection(ctx context.Context, in domain.ProjectProjectionInput) (*domain.ProjectProjection, error) {
	return s.buildProject(ctx, in)
}
