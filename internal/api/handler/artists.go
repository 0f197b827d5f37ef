package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
)

func ListArtists(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := service.ListArtists(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar artistas")
			return
		}

		writeJSON(w, http.StatusOK, artists)
	}
}

func GetArtist(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artist, err := service.GetArtist(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar artista")
			return
		}

		writeJSON(w, http.StatusOK, artist)
	}
}

func CreateArtist(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateArtist")

		var artist domain.Artist
		if !decodeBody(w, r, &artist) {
			return
		}

		created, err := service.CreateArtist(r.Context(), &artist)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar artista")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateArtist(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateArtist")

		var artist domain.Artist
		if !decodeBody(w, r, &artist) {
			return
		}

		// Garante que o ID da URL seja usado
		artist.ID = pathParam(r, "id")

		updated, err := service.UpdateArtist(r.Context(), &artist)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar artista")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteArtist(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteArtist")

		if err := service.DeleteArtist(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover artista")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
