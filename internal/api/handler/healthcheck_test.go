package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

func TestHealthcheck(t *testing.T) {
	t.Run("banco ok", func(t *testing.T) {
		rec := serve(t, Healthcheck(stubPinger{}), http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	})

	t.Run("sem banco", func(t *testing.T) {
		rec := serve(t, Healthcheck(nil), http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("banco fora", func(t *testing.T) {
		rec := serve(t, Healthcheck(stubPinger{err: errors.New("refused")}), http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, errorCode(t, rec))
	})
}

func TestRouterFallbacks(t *testing.T) {
	t.Run("rota inexistente", func(t *testing.T) {
		rec := serve(t, Healthcheck(nil), http.MethodGet, "/api/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, rec))
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := serve(t, Healthcheck(nil), http.MethodPost, "/healthcheck", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
