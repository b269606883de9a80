package middleware

import (
	"context"
	"net/http"
	"strings"

	"cardapio-be/internal/logger"
	"cardapio-be/internal/user"
	"cardapio-be/internal/utils"

	"go.uber.org/zap"
)

// RoleResolver looks up the role of a user whose token does not carry one of ours.
type RoleResolver interface {
	PrimaryRole(ctx context.Context, userID string) (user.Role, error)
}

func extractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthMiddleware is optional auth: anonymous requests pass through, a bad
// token is rejected with 401.
func AuthMiddleware(roles RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := user.ParseJWT(tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Info("rejected token", zap.Error(err))
				utils.WriteJSONError(w, "Sessão inválida ou expirada", http.StatusUnauthorized)
				return
			}

			role := user.Role(claims.Role)
			if !role.Valid() && roles != nil {
				resolved, err := roles.PrimaryRole(r.Context(), claims.ID())
				if err == nil {
					role = resolved
				}
			}
			if !role.Valid() {
				role = ""
			}

			ctx := utils.SetUserContext(r.Context(), claims.ID(), claims.Email, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
