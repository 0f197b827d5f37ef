package projecting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

// RecalculateAll reconstrói todas as projeções salvas com os percentuais de
// distribuidora, orçamentos de projeto e constantes vigentes. Falhas em uma
// projeção são registradas e não interrompem as demais.
func (s *Service) RecalculateAll(ctx context.Context) ([]domain.RecalculationSummary, error) {
	summaries := make([]domain.RecalculationSummary, 0, 3)

	catalogSummary, err := s.recalculateCatalogs(ctx)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, catalogSummary)

	concertSummary, err := s.recalculateConcerts(ctx)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, concertSummary)

	projectSummary, err := s.recalculateProjects(ctx)
	if err != nil {
		return summaries, err
	}
	summaries = append(summaries, projectSummary)

	return summaries, nil
}

func (s *Service) recalculateCatalogs(ctx context.Context) (domain.RecalculationSummary, error) {
	summary := domain.RecalculationSummary{Kind: domain.ProjectionKindCatalog}

	projections, err := s.repos.CatalogProjections.List(ctx, "")
	if err != nil {
		return summary, fromRepository(err)
	}
	summary.Total = len(projections)

	for _, stored := range projections {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		projection, err := s.buildCatalog(ctx, stored.CatalogProjectionInput)
		if err == nil {
			projection.ID = stored.ID
			projection.CreatedAt = stored.CreatedAt
			err = s.repos.CatalogProjections.Update(ctx, projection)
		}

		if err != nil {
			summary.Failed++
			logRecalculationFailure(domain.ProjectionKindCatalog, stored.ID, err)
			continue
		}
		summary.Updated++
	}

	logRecalculationSummary(summary)
	return summary, nil
}

func (s *Service) recalculateConcerts(ctx context.Context) (domain.RecalculationSummary, error) {
	summary := domain.RecalculationSummary{Kind: domain.ProjectionKindConcert}

	projections, err := s.repos.ConcertProjections.List(ctx, repository.ConcertProjectionFilter{})
	if err != nil {
		return summary, fromRepository(err)
	}
	summary.Total = len(projections)

	for _, stored := range projections {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		projection, err := s.buildConcert(ctx, stored.ConcertProjectionInput)
		if err == nil {
			projection.ID = stored.ID
			projection.CreatedAt = stored.CreatedAt
			err = s.repos.ConcertProjections.Update(ctx, projection)
		}

		if err != nil {
			summary.Failed++
			logRecalculationFailure(domain.ProjectionKindConcert, stored.ID, err)
			continue
		}
		summary.Updated++
	}

	logRecalculationSummary(summary)
	return summary, nil
}

func (s *Service) recalculateProjects(ctx context.Context) (domain.RecalculationSummary, error) {
	summary := domain.RecalculationSummary{Kind: domain.ProjectionKindProject}

	projections, err := s.repos.ProjectProjections.List(ctx, "")
	if err != nil {
		return summary, fromRepository(err)
	}
	summary.Total = len(projections)

	for _, stored := range projections {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		projection, err := s.buildProject(ctx, stored.ProjectProjectionInput)
		if err == nil {
			projection.ID = stored.ID
			projection.CreatedAt = stored.CreatedAt
			err = s.repos.ProjectProjections.Update(ctx, projection)
		}

		if err != nil {
			summary.Failed++
			logRecalculationFailure(domain.ProjectionKindProject, stored.ID, err)
			continue
		}
		summary.Updated++
	}

	logRecalculationSummary(summary)
	return summary, nil
}

func logRecalculationFailure(kind domain.ProjectionKind, id string, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"kind":          kind,
		"projection_id": id,
	}).Warn("Falha ao recalcular projeção")
}

func logRecalculationSummary(summary domain.RecalculationSummary) {
	logrus.WithFields(logrus.Fields{
		"kind":    summary.Kind,
		"total":   summary.Total,
		"updated": summary.Updated,
		"failed":  summary.Failed,
	}).Info("Recálculo de projeções concluído")
}
