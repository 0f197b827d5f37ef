package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/paying"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/projecting"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logrus.WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func fieldDetails(field string) map[string]any {
	if field == "" {
		return nil
	}
	return map[string]any{"field": field}
}

// writeServiceError converte os erros tipados dos casos de uso no envelope da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		registryErr    *cataloging.RegistryError
		projectionErr  *projecting.ProjectionError
		calculationErr *calculator.CalculationError
		paymentErr     *paying.PaymentError
		authErr        *authenticating.AuthError
	)

	switch {
	case errors.As(err, &registryErr):
		apiErrors.WriteError(w, registryErr.Code, registryErr.Error(), fieldDetails(registryErr.Field))

	case errors.As(err, &projectionErr):
		apiErrors.WriteError(w, projectionErr.Code, projectionErr.Error(), fieldDetails(projectionErr.Field))

	case errors.As(err, &calculationErr):
		apiErrors.WriteError(w, calculationCode(calculationErr), calculationErr.Error(), fieldDetails(calculationErr.Field))

	case errors.As(err, &paymentErr):
		apiErrors.WriteError(w, paymentErr.Code, paymentErr.Error(), fieldDetails(paymentErr.Field))

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func calculationCode(err *calculator.CalculationError) string {
	switch {
	case errors.Is(err, calculator.ErrInconsistentSplit):
		return apiErrors.ErrInconsistentSplit
	case errors.Is(err, calculator.ErrMissingReference):
		return apiErrors.ErrMissingReference
	}
	return apiErrors.ErrInvalidInput
}
