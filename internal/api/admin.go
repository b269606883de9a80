package api

import (
	"cardapio-be/internal/business"
	"cardapio-be/internal/transport"

	"github.com/gin-gonic/gin"
)

// GET /admin/metrics
func (h *Handler) GetMetrics(c *gin.Context) {
	m, err := h.AdminSvc.Metrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, m)
}

// GET /admin/businesses?plan=
func (h *Handler) ListBusinesses(c *gin.Context) {
	var plan *business.Plan
	if p := c.Query("plan"); p != "" {
		v := business.Plan(p)
		if !v.Valid() {
			transport.BadRequest(c, "Plano inválido")
			return
		}
		plan = &v
	}

	list, err := h.BusinessSvc.List(c.Request.Context(), plan)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// PATCH /admin/businesses/:id
func (h *Handler) AdminUpdateBusiness(c *gin.Context) {
	var req AdminBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.BusinessSvc.AdminUpdate(c.Request.Context(), business.AdminUpdateParams{
		ID:       c.Param("id"),
		Plan:     req.Plan,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Negócio atualizado!", b)
}
