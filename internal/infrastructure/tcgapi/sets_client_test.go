package tcgapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/infrastructure/tcgapi"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

func TestFetchSets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/sets", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"sv1","name":"Scarlet & Violet"},{"id":"","name":""}]}`))
	}))
	defer srv.Close()

	c := tcgapi.NewSetsClient(srv.URL, logger.New(logger.Config{Env: "test", Level: "error"}))
	sets, err := c.FetchSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 1, "las entradas sin nombre se descartan")
	assert.Equal(t, "Scarlet & Violet", sets[0].Name)
	assert.Equal(t, "sv1", sets[0].Code)
}

func TestFetchSets_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := tcgapi.NewSetsClient(srv.URL, logger.New(logger.Config{Env: "test", Level: "error"}))
	_, err := c.FetchSets(context.Background())
	assert.Error(t, err)
}
