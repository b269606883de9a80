package api

import (
	"cardapio-be/internal/driver"
	"cardapio-be/internal/transport"

	"github.com/gin-gonic/gin"
)

/* ---------- DASHBOARD DRIVERS ---------- */

// GET /dashboard/drivers
func (h *Handler) ListDrivers(c *gin.Context) {
	list, err := h.DriverSvc.List(c.Request.Context(), currentBusiness(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// POST /dashboard/drivers
func (h *Handler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.DriverSvc.Create(c.Request.Context(), driver.CreateDriverParams{
		BusinessID:   currentBusiness(c).ID,
		OwnerID:      currentBusiness(c).OwnerID,
		Email:        req.Email,
		VehicleType:  req.VehicleType,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Entregador cadastrado!", d)
}

// PATCH /dashboard/drivers/:id/availability
func (h *Handler) SetDriverAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	d, err := h.DriverSvc.SetAvailability(c.Request.Context(), currentBusiness(c).ID, c.Param("id"), *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Disponibilidade atualizada!", d)
}

// DELETE /dashboard/drivers/:id
func (h *Handler) DeleteDriver(c *gin.Context) {
	if err := h.DriverSvc.Delete(c.Request.Context(), currentBusiness(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Entregador removido!", nil)
}

/* ---------- COUPONS ---------- */

// GET /dashboard/coupons
func (h *Handler) ListCoupons(c *gin.Context) {
	list, err := h.CouponSvc.List(c.Request.Context(), currentBusiness(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// POST /dashboard/coupons
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cp, err := h.CouponSvc.Create(c.Request.Context(), req.toParams(currentBusiness(c).ID))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Cupom criado!", cp)
}

// PATCH /dashboard/coupons/:id/active
func (h *Handler) SetCouponActive(c *gin.Context) {
	var req ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.CouponSvc.SetActive(c.Request.Context(), currentBusiness(c).ID, c.Param("id"), *req.IsActive); err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Cupom atualizado!", nil)
}
