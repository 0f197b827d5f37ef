package paying

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPaymentRequestRepository, *mocks.MockArtistRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentRequestRepository(ctrl)
	artists := mocks.NewMockArtistRepository(ctrl)

	service := NewService(payments, artists)
	service.newID = func() (string, error) { return "PAY001", nil }

	return service, payments, artists
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	var payErr *PaymentError
	require.True(t, errors.As(err, &payErr), "esperado PaymentError, obtido %v", err)
	assert.Equal(t, code, payErr.Code)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("sempre nasce pending", func(t *testing.T) {
		service, payments, artists := newTestService(t)

		artists.EXPECT().GetByID(ctx, "A1").Return(&domain.Artist{ID: "A1"}, nil)
		payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		justification := "herdada"
		request, err := service.Create(ctx, &domain.PaymentRequest{
			ArtistID:      "A1",
			Amount:        decimal.NewFromInt(500),
			Status:        domain.PaymentRequestStatusPaid,
			Justification: &justification,
		})
		require.NoError(t, err)
		assert.Equal(t, "PAY001", request.ID)
		assert.Equal(t, domain.PaymentRequestStatusPending, request.Status)
		assert.Nil(t, request.Justification)
	})

	t.Run("valor zero", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Create(ctx, &domain.PaymentRequest{ArtistID: "A1", Amount: decimal.Zero})
		requireCode(t, err, apiErrors.ErrInvalidInput)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("artista inexistente", func(t *testing.T) {
		service, _, artists := newTestService(t)

		artists.EXPECT().GetByID(ctx, "A9").Return(nil, nil)

		_, err := service.Create(ctx, &domain.PaymentRequest{ArtistID: "A9", Amount: decimal.NewFromInt(10)})
		requireCode(t, err, apiErrors.ErrMissingReference)
	})
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		from          domain.PaymentRequestStatus
		to            domain.PaymentRequestStatus
		justification string
		code          string
	}{
		{"pending para approved", domain.PaymentRequestStatusPending, domain.PaymentRequestStatusApproved, "", ""},
		{"approved para paid", domain.PaymentRequestStatusApproved, domain.PaymentRequestStatusPaid, "", ""},
		{"rejected volta para pending", domain.PaymentRequestStatusRejected, domain.PaymentRequestStatusPending, "", ""},
		{"rejeição com justificativa", domain.PaymentRequestStatusPending, domain.PaymentRequestStatusRejected, "sem saldo", ""},
		{"rejeição sem justificativa", domain.PaymentRequestStatusApproved, domain.PaymentRequestStatusRejected, "  ", apiErrors.ErrJustificationRequired},
		{"paid é terminal", domain.PaymentRequestStatusPaid, domain.PaymentRequestStatusPending, "", apiErrors.ErrInvalidTransition},
		{"pending direto para paid", domain.PaymentRequestStatusPending, domain.PaymentRequestStatusPaid, "", apiErrors.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, payments, _ := newTestService(t)

			payments.EXPECT().GetByID(ctx, "PAY001").Return(&domain.PaymentRequest{ID: "PAY001", Status: tt.from}, nil)
			if tt.code == "" {
				payments.EXPECT().UpdateStatus(ctx, gomock.Any(), tt.from).Return(nil)
			}

			request, err := service.ChangeStatus(ctx, &domain.ChangePaymentRequestStatusRequest{
				ID:            "PAY001",
				Status:        tt.to,
				Justification: tt.justification,
			})
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, request.Status)
			if tt.to == domain.PaymentRequestStatusRejected {
				require.NotNil(t, request.Justification)
				assert.Equal(t, tt.justification, *request.Justification)
			} else {
				assert.Nil(t, request.Justification)
			}
		})
	}
}

func TestChangeStatusNotFound(t *testing.T) {
	service, payments, _ := newTestService(t)
	ctx := context.Background()

	payments.EXPECT().GetByID(ctx, "X").Return(nil, nil)

	_, err := service.ChangeStatus(ctx, &domain.ChangePaymentRequestStatusRequest{ID: "X", Status: domain.PaymentRequestStatusApproved})
	requireCode(t, err, apiErrors.ErrNotFound)
}

func TestChangeStatusConcurrentChange(t *testing.T) {
	service, payments, _ := newTestService(t)
	ctx := context.Background()

	payments.EXPECT().GetByID(ctx, "PAY001").
		Return(&domain.PaymentRequest{ID: "PAY001", Status: domain.PaymentRequestStatusApproved}, nil)
	payments.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.PaymentRequestStatusApproved).
		Return(repository.ErrNotFound)

	_, err := service.ChangeStatus(ctx, &domain.ChangePaymentRequestStatusRequest{
		ID:            "PAY001",
		Status:        domain.PaymentRequestStatusRejected,
		Justification: "duplicado",
	})
	requireCode(t, err, apiErrors.ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrStatusChanged)
}

func TestListInvalidStatus(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.List(context.Background(), repository.PaymentRequestFilter{Status: "archived"})
	requireCode(t, err, apiErrors.ErrInvalidFormat)
}
