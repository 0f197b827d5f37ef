package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"github.com/vfg2006/royalty-manager-api/pkg/utils"
)

// CatalogRequest recebe a data de lançamento como YYYY-MM-DD
type CatalogRequest struct {
	Title         string `json:"title"`
	ArtistID      string `json:"artist_id"`
	DistributorID string `json:"distributor_id"`
	ReleaseDate   string `json:"release_date"`
}

type CatalogResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ArtistID      string    `json:"artist_id"`
	DistributorID string    `json:"distributor_id"`
	ReleaseDate   string    `json:"release_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toCatalogResponse(c *domain.Catalog) CatalogResponse {
	return CatalogResponse{
		ID:            c.ID,
		Title:         c.Title,
		ArtistID:      c.ArtistID,
		DistributorID: c.DistributorID,
		ReleaseDate:   utils.FormatDate(c.ReleaseDate),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func decodeCatalog(w http.ResponseWriter, r *http.Request) (*domain.Catalog, bool) {
	var req CatalogRequest
	if !decodeBody(w, r, &req) {
		return nil, false
	}

	releaseDate, err := utils.ParseDate(req.ReleaseDate)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "release_date deve estar no formato YYYY-MM-DD", fieldDetails("release_date"))
		return nil, false
	}

	return &domain.Catalog{
		Title:         req.Title,
		ArtistID:      req.ArtistID,
		DistributorID: req.DistributorID,
		ReleaseDate:   releaseDate,
	}, true
}

// ListCatalogs aceita ?artist_id= para filtrar os catálogos de um artista
func ListCatalogs(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalogs, err := service.ListCatalogs(r.Context(), r.URL.Query().Get("artist_id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao listar catálogos")
			return
		}

		resp := make([]CatalogResponse, 0, len(catalogs))
		for _, c := range catalogs {
			resp = append(resp, toCatalogResponse(c))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetCatalog(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := service.GetCatalog(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar catálogo")
			return
		}

		writeJSON(w, http.StatusOK, toCatalogResponse(catalog))
	}
}

func CreateCatalog(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCatalog")

		catalog, ok := decodeCatalog(w, r)
		if !ok {
			return
		}

		created, err := service.CreateCatalog(r.Context(), catalog)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar catálogo")
			return
		}

		writeJSON(w, http.StatusCreated, toCatalogResponse(created))
	}
}

func UpdateCatalog(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCatalog")

		catalog, ok := decodeCatalog(w, r)
		if !ok {
			return
		}
		catalog.ID = pathParam(r, "id")

		updated, err := service.UpdateCatalog(r.Context(), catalog)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar catálogo")
			return
		}

		writeJSON(w, http.StatusOK, toCatalogResponse(updated))
	}
}

func DeleteCatalog(service cataloging.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCatalog")

		if err := service.DeleteCatalog(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover catálogo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
