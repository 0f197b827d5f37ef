package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "entrada inválida", code: ErrInvalidInput, wantStatus: http.StatusUnprocessableEntity},
		{name: "divisão inconsistente", code: ErrInconsistentSplit, wantStatus: http.StatusUnprocessableEntity},
		{name: "referência ausente", code: ErrMissingReference, wantStatus: http.StatusUnprocessableEntity},
		{name: "não encontrado", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "transição inválida", code: ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "period"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(nil, ErrInvalidInput)
	assert.Equal(t, ErrInternalServer, apiErr.Code)

	apiErr = FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
