package api

import (
	"cardapio-be/internal/transport"

	"github.com/gin-gonic/gin"
)

// GET /courier/me
func (h *Handler) CourierMe(c *gin.Context) {
	d, err := h.DriverSvc.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, d)
}

// GET /courier/orders
func (h *Handler) CourierOrders(c *gin.Context) {
	list, err := h.OrderSvc.CourierOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// PATCH /courier/availability
func (h *Handler) CourierAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.DriverSvc.SetMyAvailability(c.Request.Context(), currentUserID(c), *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Disponibilidade atualizada!", d)
}

// PATCH /courier/location
func (h *Handler) CourierLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.DriverSvc.UpdateMyLocation(c.Request.Context(), currentUserID(c), *req.Lat, *req.Lng)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, d)
}

// POST /courier/orders/:id/start
func (h *Handler) StartDelivery(c *gin.Context) {
	o, err := h.OrderSvc.StartDelivery(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Entrega iniciada!", o)
}

// POST /courier/orders/:id/finish
func (h *Handler) FinishDelivery(c *gin.Context) {
	o, err := h.OrderSvc.FinishDelivery(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Entrega finalizada!", o)
}
