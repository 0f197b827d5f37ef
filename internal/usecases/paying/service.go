// Package paying controla o fluxo das solicitações de pagamento dos artistas.
package paying

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"github.com/vfg2006/royalty-manager-api/pkg/utils"
)

type PaymentRequester interface {
	Create(ctx context.Context, request *domain.PaymentRequest) (*domain.PaymentRequest, error)
	Get(ctx context.Context, id string) (*domain.PaymentRequest, error)
	List(ctx context.Context, filter repository.PaymentRequestFilter) ([]*domain.PaymentRequest, error)
	ChangeStatus(ctx context.Context, req *domain.ChangePaymentRequestStatusRequest) (*domain.PaymentRequest, error)
}

type Service struct {
	paymentRequestRepository repository.PaymentRequestRepository
	artistRepository         repository.ArtistRepository
	newID                    func() (string, error)
}

func NewService(paymentRequestRepository repository.PaymentRequestRepository, artistRepository repository.ArtistRepository) *Service {
	return &Service{
		paymentRequestRepository: paymentRequestRepository,
		artistRepository:         artistRepository,
		newID:                    utils.GenerateID,
	}
}

var _ PaymentRequester = (*Service)(nil)

// Create registra a solicitação sempre como pending
func (s *Service) Create(ctx context.Context, request *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	if !request.Amount.IsPositive() {
		return nil, NewPaymentError(ErrInvalidAmount, apiErrors.ErrInvalidInput, "amount", "valor deve ser maior que zero")
	}

	if request.ArtistID == "" {
		return nil, NewPaymentError(ErrArtistNotFound, apiErrors.ErrMissingRequiredData, "artist_id", "artist_id é obrigatório")
	}

	artist, err := s.artistRepository.GetByID(ctx, request.ArtistID)
	if err != nil {
		return nil, databaseError(err)
	}
	if artist == nil {
		return nil, NewPaymentError(ErrArtistNotFound, apiErrors.ErrMissingReference, "artist_id", request.ArtistID)
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewPaymentError(err, apiErrors.ErrInternalServer, "", "erro ao gerar identificador")
	}

	request.ID = id
	request.Description = strings.TrimSpace(request.Description)
	request.Status = domain.PaymentRequestStatusPending
	request.Justification = nil

	if err := s.paymentRequestRepository.Create(ctx, request); err != nil {
		logrus.WithError(err).Error("Erro ao registrar solicitação de pagamento")
		return nil, databaseError(err)
	}

	logrus.WithFields(logrus.Fields{
		"payment_request_id": request.ID,
		"artist_id":          request.ArtistID,
		"amount":             request.Amount.StringFixed(2),
	}).Info("Solicitação de pagamento criada")

	return request, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	request, err := s.paymentRequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err)
	}
	if request == nil {
		return nil, NewPaymentError(ErrPaymentRequestNotFound, apiErrors.ErrNotFound, "id", id)
	}

	return request, nil
}

func (s *Service) List(ctx context.Context, filter repository.PaymentRequestFilter) ([]*domain.PaymentRequest, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, NewPaymentError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "status", string(filter.Status))
	}

	requests, err := s.paymentRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, databaseError(err)
	}

	return requests, nil
}

// ChangeStatus aplica a transição do domínio e persiste o novo status
func (s *Service) ChangeStatus(ctx context.Context, req *domain.ChangePaymentRequestStatusRequest) (*domain.PaymentRequest, error) {
	if !req.Status.IsValid() {
		return nil, NewPaymentError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "status", string(req.Status))
	}

	request, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	from := request.Status
	if err := request.Transition(req.Status, req.Justification); err != nil {
		return nil, fromTransition(err, from, req.Status)
	}

	if err := s.paymentRequestRepository.UpdateStatus(ctx, request, from); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// outra requisição alterou o status depois da leitura
			return nil, NewPaymentError(ErrStatusChanged, apiErrors.ErrInvalidTransition, "status", fmt.Sprintf("%s -> %s", from, req.Status))
		}
		return nil, databaseError(err)
	}

	logrus.WithFields(logrus.Fields{
		"payment_request_id": request.ID,
		"from":               from,
		"to":                 request.Status,
	}).Info("Status da solicitação de pagamento alterado")

	return request, nil
}
