package api

import (
	"cardapio-be/internal/order"
	"cardapio-be/internal/transport"

	"github.com/gin-gonic/gin"
)

// GET /dashboard/orders?status=
func (h *Handler) ListOrders(c *gin.Context) {
	var filter order.ListFilter
	if s := c.Query("status"); s != "" {
		status := order.Status(s)
		filter.Status = &status
	}

	list, err := h.OrderSvc.ListByBusiness(c.Request.Context(), currentBusiness(c).ID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// GET /dashboard/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.OrderSvc.GetForBusiness(c.Request.Context(), currentBusiness(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, toOrderView(o))
}

// PATCH /dashboard/orders/:id/status
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	o, err := h.OrderSvc.UpdateStatus(c.Request.Context(), currentBusiness(c).ID, c.Param("id"), req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Status atualizado!", toOrderView(o))
}

// PATCH /dashboard/orders/:id/driver
func (h *Handler) AssignOrderDriver(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	o, err := h.OrderSvc.AssignDriver(c.Request.Context(), currentBusiness(c).ID, c.Param("id"), req.DriverID)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Entregador atribuído!", toOrderView(o))
}
