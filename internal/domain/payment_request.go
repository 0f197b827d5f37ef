package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRequestStatus string

const (
	PaymentRequestStatusPending  PaymentRequestStatus = "pending"
	PaymentRequestStatusApproved PaymentRequestStatus = "approved"
	PaymentRequestStatusRejected PaymentRequestStatus = "rejected"
	PaymentRequestStatusPaid     PaymentRequestStatus = "paid"
)

var (
	ErrInvalidStatusTransition = errors.New("invalid payment request status transition")
	ErrJustificationRequired   = errors.New("justification is required to reject a payment request")
)

// paymentRequestTransitions lista os destinos permitidos a partir de cada status.
// paid é terminal.
var paymentRequestTransitions = map[PaymentRequestStatus][]PaymentRequestStatus{
	PaymentRequestStatusPending:  {PaymentRequestStatusApproved, PaymentRequestStatusRejected},
	PaymentRequestStatusApproved: {PaymentRequestStatusPaid, PaymentRequestStatusRejected},
	PaymentRequestStatusRejected: {PaymentRequestStatusPending},
}

func (s PaymentRequestStatus) IsValid() bool {
	switch s {
	case PaymentRequestStatusPending, PaymentRequestStatusApproved, PaymentRequestStatusRejected, PaymentRequestStatusPaid:
		return true
	}
	return false
}

func (s PaymentRequestStatus) CanTransitionTo(next PaymentRequestStatus) bool {
	for _, allowed := range paymentRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentRequest struct {
	ID            string               `json:"id"`
	ArtistID      string               `json:"artist_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	Status        PaymentRequestStatus `json:"status"`
	Justification *string              `json:"justification"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Transition aplica a mudança de status validando a máquina de estados.
// A justificativa só é mantida quando o destino é rejected.
func (p *PaymentRequest) Transition(next PaymentRequestStatus, justification string) error {
	if !p.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}

	justification = strings.TrimSpace(justification)
	if next == PaymentRequestStatusRejected {
		if justification == "" {
			return ErrJustificationRequired
		}
		p.Justification = &justification
	} else {
		p.Justification = nil
	}

	p.Status = next
	return nil
}

type ChangePaymentRequestStatusRequest struct {
	ID            string               `json:"id"`
	Status        PaymentRequestStatus `json:"status"`
	Justification string               `json:"justification"`
}
