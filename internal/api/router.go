package api

import (
	"net/http"

	"cardapio-be/internal/metrics"
	"cardapio-be/internal/middleware"
	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"

	"github.com/gin-gonic/gin"
)

// NewRouter registers every route. Auth, request ids, access logs and rate
// limits are net/http middleware wrapped around the returned engine.
func NewRouter(h *Handler, corsOrigins string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(corsOrigins))

	r.NoRoute(func(c *gin.Context) {
		transport.NotFound(c, "Rota não encontrada")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "metrics": metrics.Default.Snapshot()})
	})

	// Public
	menu := r.Group("/menu/:businessId")
	{
		menu.GET("", h.GetMenu)
		menu.POST("/cart/quote", h.QuoteCart)
		menu.POST("/orders", h.Checkout)
	}
	r.GET("/orders/:id", h.GetOrderConfirmation)

	// Signed-in customer
	me := r.Group("/me", middleware.RequireAuth())
	{
		me.GET("", h.GetMe)
		me.PATCH("", h.UpdateMe)
		me.GET("/orders", h.ListMyOrders)
	}

	// Business dashboard
	dash := r.Group("/dashboard", middleware.RequireRole(user.RoleCliente, user.RoleAdmin))
	dash.POST("/business", h.CreateBusiness)

	owned := dash.Group("", h.ResolveBusiness())
	{
		owned.GET("/business", h.GetMyBusiness)
		owned.PATCH("/business", h.UpdateBusiness)
		owned.GET("/plan", h.GetPlan)

		owned.GET("/categories", h.ListCategories)
		owned.POST("/categories", h.CreateCategory)
		owned.PATCH("/categories/:id", h.UpdateCategory)
		owned.DELETE("/categories/:id", h.DeleteCategory)
		owned.POST("/categories/:id/move", h.MoveCategory)

		owned.GET("/products", h.ListProducts)
		owned.POST("/products", h.CreateProduct)
		owned.PATCH("/products/:id", h.UpdateProduct)
		owned.DELETE("/products/:id", h.DeleteProduct)

		owned.GET("/orders", h.ListOrders)
		owned.GET("/orders/:id", h.GetOrder)
		owned.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		owned.PATCH("/orders/:id/driver", h.AssignOrderDriver)

		owned.GET("/drivers", h.ListDrivers)
		owned.POST("/drivers", h.CreateDriver)
		owned.PATCH("/drivers/:id/availability", h.SetDriverAvailability)
		owned.DELETE("/drivers/:id", h.DeleteDriver)

		owned.GET("/coupons", h.ListCoupons)
		owned.POST("/coupons", h.CreateCoupon)
		owned.PATCH("/coupons/:id/active", h.SetCouponActive)
	}

	// Platform admin
	adm := r.Group("/admin", middleware.RequireRole(user.RoleAdmin))
	{
		adm.GET("/metrics", h.GetMetrics)
		adm.GET("/businesses", h.ListBusinesses)
		adm.PATCH("/businesses/:id", h.AdminUpdateBusiness)
	}

	// Courier portal
	courier := r.Group("/courier", middleware.RequireRole(user.RoleEntregador))
	{
		courier.GET("/me", h.CourierMe)
		courier.GET("/orders", h.CourierOrders)
		courier.PATCH("/availability", h.CourierAvailability)
		courier.PATCH("/location", h.CourierLocation)
		courier.POST("/orders/:id/start", h.StartDelivery)
		courier.POST("/orders/:id/finish", h.FinishDelivery)
	}

	return r
}
