package api

import (
	"cardapio-be/internal/category"
	"cardapio-be/internal/order"
	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"

	"github.com/gin-gonic/gin"
)

// GET /menu/:businessId
func (h *Handler) GetMenu(c *gin.Context) {
	ctx := c.Request.Context()

	b, err := h.BusinessSvc.GetPublic(ctx, c.Param("businessId"))
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.CategorySvc.List(ctx, b.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	active := make([]*category.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.IsActive {
			active = append(active, cat)
		}
	}

	products, err := h.ProductSvc.ListAvailable(ctx, b.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	transport.OK(c, MenuResponse{
		Business:   b,
		Links:      b.Links(),
		Categories: active,
		Products:   products,
	})
}

// POST /menu/:businessId/cart/quote
func (h *Handler) QuoteCart(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	summary, err := h.OrderSvc.Quote(c.Request.Context(), order.QuoteParams{
		BusinessID:   c.Param("businessId"),
		DeliveryType: req.DeliveryType,
		CouponCode:   req.CouponCode,
		Lines:        toCheckoutLines(req.Items),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, summary)
}

// POST /menu/:businessId/orders
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var customerID *string
	if id := currentUserID(c); id != "" {
		customerID = &id
	}

	o, err := h.OrderSvc.Checkout(c.Request.Context(), req.toParams(c.Param("businessId"), customerID))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Pedido realizado com sucesso!", o)
}

// GET /orders/:id
func (h *Handler) GetOrderConfirmation(c *gin.Context) {
	o, err := h.OrderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, o)
}

// GET /me/orders
func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.OrderSvc.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, orders)
}

// GET /me
func (h *Handler) GetMe(c *gin.Context) {
	p, err := h.UserSvc.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, p)
}

// PATCH /me
func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.UserSvc.UpdateProfile(c.Request.Context(), user.UpdateProfileParams{
		UserID:   currentUserID(c),
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Perfil atualizado", p)
}
