package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/internal/api/handler/router"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
	"github.com/vfg2006/stockwise-api/pkg/middleware"
)

func serve(t *testing.T, routes []router.Route, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serveRequest(t, routes, httptest.NewRequest(method, path, strings.NewReader(body)))
}

func serveRequest(t *testing.T, routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rt := router.New(router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apiErrors.APIError](t, rec).Code
}

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
