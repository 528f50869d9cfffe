package sheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/sheets"
)

func TestExportProducts_EnviaListaJSON(t *testing.T) {
	var body []map[string]any
	var syncID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		syncID = r.Header.Get("X-Sync-ID")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte("ignorado"))
	}))
	defer srv.Close()

	client := sheets.NewClient(srv.URL, time.Second)
	err := client.ExportProducts(context.Background(), []*entity.Product{
		{ID: "P001", Name: "Luva", Quantity: decimal.NewFromInt(3)},
	})

	require.NoError(t, err)
	require.Len(t, body, 1)
	assert.Equal(t, "P001", body[0]["id"])
	assert.EqualValues(t, 3, body[0]["quantidade"])
	assert.NotEmpty(t, syncID)
}

func TestExportProducts_StatusDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := sheets.NewClient(srv.URL, time.Second).ExportProducts(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrSync)
}

func TestExportProducts_SinConexion(t *testing.T) {
	err := sheets.NewClient("http://127.0.0.1:1", 200*time.Millisecond).ExportProducts(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrSync)
}
