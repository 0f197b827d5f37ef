package cataloging

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

var maxPercentage = decimal.NewFromInt(100)

func validateDistributor(distributor *domain.Distributor) error {
	distributor.Name = strings.TrimSpace(distributor.Name)
	if distributor.Name == "" {
		return requiredField(entityDistributor, "name")
	}

	if distributor.Percentage.IsNegative() || distributor.Percentage.GreaterThan(maxPercentage) {
		return invalidField(entityDistributor, "percentage", "percentual deve estar entre 0 e 100")
	}

	return nil
}

func (s *Service) CreateDistributor(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error) {
	if err := validateDistributor(distributor); err != nil {
		return nil, err
	}

	id, err := s.generateID(entityDistributor)
	if err != nil {
		return nil, err
	}
	distributor.ID = id

	if err := s.distributorRepository.Create(ctx, distributor); err != nil {
		logrus.WithError(err).Error("Erro ao cadastrar distribuidora")
		return nil, fromRepository(err, entityDistributor)
	}

	return distributor, nil
}

// UpdateDistributor altera o percentual usado nos próximos cálculos; projeções
// já salvas só mudam no recálculo em lote
func (s *Service) UpdateDistributor(ctx context.Context, distributor *domain.Distributor) (*domain.Distributor, error) {
	if distributor.ID == "" {
		return nil, requiredField(entityDistributor, "id")
	}

	if err := validateDistributor(distributor); err != nil {
		return nil, err
	}

	if err := s.distributorRepository.Update(ctx, distributor); err != nil {
		return nil, fromRepository(err, entityDistributor)
	}

	logrus.WithFields(logrus.Fields{
		"distributor_id": distributor.ID,
		"percentage":     distributor.Percentage.String(),
	}).Info("Percentual da distribuidora atualizado")

	return distributor, nil
}

func (s *Service) GetDistributor(ctx context.Context, id string) (*domain.Distributor, error) {
	distributor, err := s.distributorRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, entityDistributor)
	}
	if distributor == nil {
		return nil, entityNotFound(entityDistributor, id)
	}

	return distributor, nil
}

func (s *Service) ListDistributors(ctx context.Context) ([]*domain.Distributor, error) {
	distributors, err := s.distributorRepository.List(ctx)
	if err != nil {
		return nil, fromRepository(err, entityDistributor)
	}

	return distributors, nil
}

func (s *Service) DeleteDistributor(ctx context.Context, id string) error {
	if err := s.distributorRepository.Delete(ctx, id); err != nil {
		return fromRepository(err, entityDistributor)
	}

	return nil
}
