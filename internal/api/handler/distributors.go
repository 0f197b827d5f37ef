package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
)

func ListDistributors(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		distributors, err := service.ListDistributors(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar distribuidoras")
			return
		}

		writeJSON(w, http.StatusOK, distributors)
	}
}

func GetDistributor(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		distributor, err := service.GetDistributor(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar distribuidora")
			return
		}

		writeJSON(w, http.StatusOK, distributor)
	}
}

func CreateDistributor(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateDistributor")

		var distributor domain.Distributor
		if !decodeBody(w, r, &distributor) {
			return
		}

		created, err := service.CreateDistributor(r.Context(), &distributor)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar distribuidora")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateDistributor(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDistributor")

		var distributor domain.Distributor
		if !decodeBody(w, r, &distributor) {
			return
		}
		distributor.ID = pathParam(r, "id")

		updated, err := service.UpdateDistributor(r.Context(), &distributor)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar distribuidora")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteDistributor(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDistributor")

		if err := service.DeleteDistributor(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover distribuidora")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
