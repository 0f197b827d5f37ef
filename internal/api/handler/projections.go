package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/projecting"
)

// Projeções de catálogo (streaming)

func ListCatalogProjections(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projections, err := service.ListCatalogProjections(r.Context(), r.URL.Query().Get("artist_id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar projeções de catálogo")
			return
		}

		writeJSON(w, http.StatusOK, projections)
	}
}

func GetCatalogProjection(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projection, err := service.GetCatalogProjection(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar projeção de catálogo")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func CreateCatalogProjection(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCatalogProjection")

		var in domain.CatalogProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.CreateCatalogProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar projeção de catálogo")
			return
		}

		writeJSON(w, http.StatusCreated, projection)
	}
}

func UpdateCatalogProjection(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCatalogProjection")

		var in domain.CatalogProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.UpdateCatalogProjection(r.Context(), pathParam(r, "id"), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar projeção de catálogo")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func DeleteCatalogProjection(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCatalogProjection")

		if err := service.DeleteCatalogProjection(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover projeção de catálogo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PreviewCatalogProjection calcula sem persistir, usado enquanto o formulário é editado
func PreviewCatalogProjection(service projecting.CatalogProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.CatalogProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.PreviewCatalogProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular projeção de catálogo")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

// Projeções de shows

// ListConcertProjections aceita ?artist_id= e ?status=
func ListConcertProjections(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repository.ConcertProjectionFilter{
			ArtistID: r.URL.Query().Get("artist_id"),
			Status:   domain.ConcertStatus(r.URL.Query().Get("status")),
		}

		projections, err := service.ListConcertProjections(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar projeções de shows")
			return
		}

		writeJSON(w, http.StatusOK, projections)
	}
}

func GetConcertProjection(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projection, err := service.GetConcertProjection(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar projeção de shows")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func CreateConcertProjection(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateConcertProjection")

		var in domain.ConcertProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.CreateConcertProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar projeção de shows")
			return
		}

		writeJSON(w, http.StatusCreated, projection)
	}
}

func UpdateConcertProjection(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateConcertProjection")

		var in domain.ConcertProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.UpdateConcertProjection(r.Context(), pathParam(r, "id"), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar projeção de shows")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func DeleteConcertProjection(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteConcertProjection")

		if err := service.DeleteConcertProjection(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover projeção de shows")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func PreviewConcertProjection(service projecting.ConcertProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ConcertProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.PreviewConcertProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular projeção de shows")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

// Projeções de projeto

// ListProjectProjections aceita ?project_id=
func ListProjectProjections(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projections, err := service.ListProjectProjections(r.Context(), r.URL.Query().Get("project_id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar projeções de projeto")
			return
		}

		writeJSON(w, http.StatusOK, projections)
	}
}

func GetProjectProjection(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projection, err := service.GetProjectProjection(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar projeção de projeto")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func CreateProjectProjection(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProjectProjection")

		var in domain.ProjectProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.CreateProjectProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar projeção de projeto")
			return
		}

		writeJSON(w, http.StatusCreated, projection)
	}
}

func UpdateProjectProjection(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProjectProjection")

		var in domain.ProjectProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.UpdateProjectProjection(r.Context(), pathParam(r, "id"), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar projeção de projeto")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

func DeleteProjectProjection(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProjectProjection")

		if err := service.DeleteProjectProjection(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover projeção de projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func PreviewProjectProjection(service projecting.ProjectProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ProjectProjectionInput
		if !decodeBody(w, r, &in) {
			return
		}

		projection, err := service.PreviewProjectProjection(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular projeção de projeto")
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}
