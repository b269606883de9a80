package api

import (
	"errors"

	"cardapio-be/internal/business"
	"cardapio-be/internal/logger"
	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"
	"cardapio-be/internal/utils"

	"github.com/gin-gonic/gin"
)

const businessKey = "business"

// currentUserID is the authenticated user; routes calling it sit behind RequireAuth.
func currentUserID(c *gin.Context) string {
	id, _ := utils.GetUserIDFromContext(c.Request.Context())
	return id
}

// ResolveBusiness loads the business the dashboard works on: the caller's own,
// or for admins the one named by ?business_id=.
func (h *Handler) ResolveBusiness() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			b   *business.Business
			err error
		)
		role := user.Role(utils.GetUserRoleFromContext(ctx))
		if id := c.Query("business_id"); id != "" && role == user.RoleAdmin {
			b, err = h.BusinessSvc.Get(ctx, id)
		} else {
			b, err = h.BusinessSvc.GetByOwner(ctx, currentUserID(c))
		}
		if err != nil {
			if errors.Is(err, business.ErrBusinessNotFound) {
				transport.NotFound(c, "Cadastre seu negócio primeiro")
				return
			}
			respondError(c, err)
			return
		}

		c.Set(businessKey, b)
		c.Request = c.Request.WithContext(logger.WithBusinessID(ctx, b.ID))
		c.Next()
	}
}

func currentBusiness(c *gin.Context) *business.Business {
	b, _ := c.MustGet(businessKey).(*business.Business)
	return b
}
