package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
)

// ListProjects aceita ?artist_id= para filtrar os projetos de um artista
func ListProjects(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := service.ListProjects(r.Context(), r.URL.Query().Get("artist_id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar projetos")
			return
		}

		writeJSON(w, http.StatusOK, projects)
	}
}

func GetProject(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := service.GetProject(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}

func CreateProject(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProject")

		var project domain.Project
		if !decodeBody(w, r, &project) {
			return
		}

		created, err := service.CreateProject(r.Context(), &project)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar projeto")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateProject(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProject")

		var project domain.Project
		if !decodeBody(w, r, &project) {
			return
		}
		project.ID = pathParam(r, "id")

		updated, err := service.UpdateProject(r.Context(), &project)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar projeto")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteProject(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProject")

		if err := service.DeleteProject(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
