package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentRequestStatusCanTransitionTo(t *testing.T) {
	all := []PaymentRequestStatus{
		PaymentRequestStatusPending,
		PaymentRequestStatusApproved,
		PaymentRequestStatusRejected,
		PaymentRequestStatusPaid,
	}

	allowed := map[[2]PaymentRequestStatus]bool{
		{PaymentRequestStatusPending, PaymentRequestStatusApproved}:  true,
		{PaymentRequestStatusPending, PaymentRequestStatusRejected}:  true,
		{PaymentRequestStatusApproved, PaymentRequestStatusPaid}:     true,
		{PaymentRequestStatusApproved, PaymentRequestStatusRejected}: true,
		{PaymentRequestStatusRejected, PaymentRequestStatusPending}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]PaymentRequestStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPaymentRequestTransition(t *testing.T) {
	t.Run("rejeição exige justificativa", func(t *testing.T) {
		p := &PaymentRequest{Status: PaymentRequestStatusPending}

		assert.ErrorIs(t, p.Transition(PaymentRequestStatusRejected, " "), ErrJustificationRequired)
		assert.Equal(t, PaymentRequestStatusPending, p.Status)
	})

	t.Run("justificativa descartada ao reabrir", func(t *testing.T) {
		p := &PaymentRequest{Status: PaymentRequestStatusPending}

		assert.NoError(t, p.Transition(PaymentRequestStatusRejected, " sem saldo "))
		assert.Equal(t, "sem saldo", *p.Justification)

		assert.NoError(t, p.Transition(PaymentRequestStatusPending, ""))
		assert.Nil(t, p.Justification)
	})

	t.Run("transição inválida não altera status", func(t *testing.T) {
		p := &PaymentRequest{Status: PaymentRequestStatusPaid}

		assert.ErrorIs(t, p.Transition(PaymentRequestStatusApproved, ""), ErrInvalidStatusTransition)
		assert.Equal(t, PaymentRequestStatusPaid, p.Status)
	})
}

func TestPaymentRequestStatusIsValid(t *testing.T) {
	assert.True(t, PaymentRequestStatusPaid.IsValid())
	assert.False(t, PaymentRequestStatus("archived").IsValid())
}
