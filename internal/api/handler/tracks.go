package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
)

// ListTracks aceita ?catalog_id= para filtrar as faixas de um catálogo
func ListTracks(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracks, err := service.ListTracks(r.Context(), r.URL.Query().Get("catalog_id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar faixas")
			return
		}

		writeJSON(w, http.StatusOK, tracks)
	}
}

func GetTrack(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		track, err := service.GetTrack(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar faixa")
			return
		}

		writeJSON(w, http.StatusOK, track)
	}
}

func CreateTrack(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTrack")

		var track domain.Track
		if !decodeBody(w, r, &track) {
			return
		}

		created, err := service.CreateTrack(r.Context(), &track)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar faixa")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTrack(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTrack")

		var track domain.Track
		if !decodeBody(w, r, &track) {
			return
		}
		track.ID = pathParam(r, "id")

		updated, err := service.UpdateTrack(r.Context(), &track)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar faixa")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTrack(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTrack")

		if err := service.DeleteTrack(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover faixa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
