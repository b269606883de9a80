package api

import (
	"cardapio-be/internal/admin"
	"cardapio-be/internal/business"
	"cardapio-be/internal/category"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/order"
	"cardapio-be/internal/product"
	"cardapio-be/internal/user"
)

// Handler serves every HTTP route on top of the domain services.
type Handler struct {
	BusinessSvc business.Service
	CategorySvc category.Service
	ProductSvc  product.Service
	OrderSvc    order.Service
	DriverSvc   driver.Service
	CouponSvc   coupon.Service
	UserSvc     user.Service
	AdminSvc    admin.Service
}
