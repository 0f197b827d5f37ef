package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/paying"
)

// ListPaymentRequests aceita ?artist_id= e ?status=
func ListPaymentRequests(service paying.PaymentRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repository.PaymentRequestFilter{
			ArtistID: r.URL.Query().Get("artist_id"),
			Status:   domain.PaymentRequestStatus(r.URL.Query().Get("status")),
		}

		requests, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar solicitações de pagamento")
			return
		}

		writeJSON(w, http.StatusOK, requests)
	}
}

func GetPaymentRequest(service paying.PaymentRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, err := service.Get(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar solicitação de pagamento")
			return
		}

		writeJSON(w, http.StatusOK, request)
	}
}

func CreatePaymentRequest(service paying.PaymentRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePaymentRequest")

		var request domain.PaymentRequest
		if !decodeBody(w, r, &request) {
			return
		}

		created, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar solicitação de pagamento")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ChangePaymentRequestStatus(service paying.PaymentRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePaymentRequestStatus")

		var req domain.ChangePaymentRequestStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		updated, err := service.ChangeStatus(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao alterar status da solicitação de pagamento")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
