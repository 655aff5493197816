package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

type expiredErr struct{}

func (expiredErr) Error() string   { return "token expirado" }
func (expiredErr) APICode() string { return apiErrors.ErrExpiredToken }

type fakeValidator struct {
	claims *domain.Claims
	err    error
	calls  int
}

func (f *fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	f.calls++
	return f.claims, f.err
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 3, Username: "thandi"}

	var seen *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		enabled    bool
		path       string
		header     string
		validator  *fakeValidator
		wantStatus int
		wantCode   string
		wantClaims bool
	}{
		{"login é público", true, "/api/auth/login", "", &fakeValidator{}, http.StatusOK, "", false},
		{"register com barra final", true, "/api/auth/register/", "", &fakeValidator{}, http.StatusOK, "", false},
		{"healthcheck fora de /api", true, "/healthcheck", "", &fakeValidator{}, http.StatusOK, "", false},
		{"imagens fora de /api", true, "/images/iconic/Apple.jpg", "", &fakeValidator{}, http.StatusOK, "", false},
		{"desabilitado", false, "/api/dashboard/stats", "", &fakeValidator{}, http.StatusOK, "", false},
		{"sem header", true, "/api/dashboard/stats", "", &fakeValidator{}, http.StatusUnauthorized, apiErrors.ErrInvalidToken, false},
		{"sem Bearer", true, "/api/dashboard/stats", "Token abc", &fakeValidator{}, http.StatusUnauthorized, apiErrors.ErrInvalidToken, false},
		{"token inválido", true, "/api/dashboard/stats", "Bearer abc", &fakeValidator{err: errors.New("bad")}, http.StatusUnauthorized, apiErrors.ErrInvalidToken, false},
		{"token expirado", true, "/api/dashboard/stats", "Bearer abc", &fakeValidator{err: expiredErr{}}, http.StatusUnauthorized, apiErrors.ErrExpiredToken, false},
		{"token válido", true, "/api/auth/me", "Bearer abc", &fakeValidator{claims: claims}, http.StatusOK, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator, tt.enabled)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
			if tt.wantClaims {
				assert.Equal(t, claims, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Cors([]string{"http://localhost:5173"})(next)

	t.Run("origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sales/monthly", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sales/monthly", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/countertop/transaction/add", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://anything")
		rec := httptest.NewRecorder()
		Cors([]string{"*"})(next).ServeHTTP(rec, req)

		assert.Equal(t, "http://anything", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("zero-count bucket")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forecast/moving-average", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/supply-chain/orders", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

func TestLoggingResponseWriter_KeepsFirstStatus(t *testing.T) {
	lrw := newLoggingResponseWriter(httptest.NewRecorder())
	_, _ = lrw.Write([]byte("abc"))
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, lrw.statusCode)
	assert.Equal(t, 3, lrw.bytes)
}
