package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

type RebalanceRequest struct {
	Changed string           `json:"changed"`
	Value   decimal.Decimal  `json:"value"`
	Current calculator.Split `json:"current"`
}

type RebalanceResponse struct {
	Layout  string           `json:"layout"`
	Derived string           `json:"derived"`
	Split   calculator.Split `json:"split"`
	Total   decimal.Decimal  `json:"total"`
}

// RebalanceSplit recalcula o campo remanescente quando um percentual do
// formulário é alterado
func RebalanceSplit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layout, ok := calculator.LayoutByName(pathParam(r, "layout"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Divisão desconhecida. Valores aceitos: catalog, concert, project", nil)
			return
		}

		var req RebalanceRequest
		if !decodeBody(w, r, &req) {
			return
		}

		split, err := layout.Rebalance(req.Changed, req.Value, req.Current)
		if err != nil {
			writeServiceError(w, err, "Erro ao recalcular divisão")
			return
		}

		writeJSON(w, http.StatusOK, RebalanceResponse{
			Layout:  layout.Name,
			Derived: layout.Derived,
			Split:   split,
			Total:   split.Sum(),
		})
	}
}
