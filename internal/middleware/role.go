package middleware

import (
	"slices"

	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"
	"cardapio-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			transport.Unauthorized(c, "Faça login para continuar")
			return
		}
		c.Next()
	}
}

// RequireRole lets through authenticated users holding one of roles.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, ok := utils.GetUserIDFromContext(ctx); !ok {
			transport.Unauthorized(c, "Faça login para continuar")
			return
		}

		role := user.Role(utils.GetUserRoleFromContext(ctx))
		if !slices.Contains(roles, role) {
			transport.Forbidden(c, "Acesso negado")
			return
		}
		c.Next()
	}
}
