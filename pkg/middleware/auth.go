package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/stockwise-api/internal/domain"
	"github.com/vfg2006/stockwise-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator valida o JWT enviado no header Authorization.
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// codedError é satisfeito pelos erros de autenticação que carregam código de API.
type codedError interface {
	error
	APICode() string
}

// Rotas /api que não exigem token. Fora de /api (healthcheck, swagger,
// imagens) nada é protegido.
var publicPaths = map[string]struct{}{
	"/api/auth/login":    {},
	"/api/auth/register": {},
}

func isPublic(path string) bool {
	if !strings.HasPrefix(path, "/api/") {
		return true
	}

	_, ok := publicPaths[strings.TrimSuffix(path, "/")]
	return ok
}

// AuthMiddleware protege as rotas /api/*. Com enabled=false apenas repassa a
// requisição.
func AuthMiddleware(validator TokenValidator, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || r.Method == http.MethodOptions || isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var coded codedError
				if errors.As(err, &coded) {
					code = coded.APICode()
				}
				apiErrors.WriteError(w, code, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext devolve as claims gravadas pelo AuthMiddleware.
func UserFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
