package api

import (
	"time"

	"cardapio-be/internal/business"
	"cardapio-be/internal/category"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/order"
	"cardapio-be/internal/pricing"
	"cardapio-be/internal/product"

	"github.com/shopspring/decimal"
)

/* ---------- MENU & CHECKOUT ---------- */

type LineRequest struct {
	ProductID   string             `json:"product_id" binding:"required"`
	Quantity    int                `json:"quantity" binding:"required"`
	Selections  pricing.Selections `json:"selections"`
	Observation string             `json:"observation"`
}

func toCheckoutLines(in []LineRequest) []order.CheckoutLine {
	out := make([]order.CheckoutLine, 0, len(in))
	for _, l := range in {
		out = append(out, order.CheckoutLine{
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Selections:  l.Selections,
			Observation: l.Observation,
		})
	}
	return out
}

type QuoteRequest struct {
	DeliveryType order.DeliveryType `json:"delivery_type" binding:"required"`
	CouponCode   *string            `json:"coupon_code"`
	Items        []LineRequest      `json:"items" binding:"required,min=1,dive"`
}

type CheckoutRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required"`
	CustomerPhone string              `json:"customer_phone" binding:"required"`
	DeliveryType  order.DeliveryType  `json:"delivery_type" binding:"required"`
	Address       *string             `json:"address"`
	Complement    *string             `json:"complement"`
	Reference     *string             `json:"reference"`
	PaymentMethod order.PaymentMethod `json:"payment_method" binding:"required"`
	ChangeFor     *decimal.Decimal    `json:"change_for"`
	Notes         *string             `json:"notes"`
	CouponCode    *string             `json:"coupon_code"`
	Items         []LineRequest       `json:"items" binding:"required,min=1,dive"`
}

func (r CheckoutRequest) toParams(businessID string, customerID *string) order.CheckoutParams {
	return order.CheckoutParams{
		BusinessID:    businessID,
		CustomerID:    customerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		DeliveryType:  r.DeliveryType,
		Address:       r.Address,
		Complement:    r.Complement,
		Reference:     r.Reference,
		PaymentMethod: r.PaymentMethod,
		ChangeFor:     r.ChangeFor,
		Notes:         r.Notes,
		CouponCode:    r.CouponCode,
		Lines:         toCheckoutLines(r.Items),
	}
}

// MenuResponse is the public menu: the business, its links and what it sells.
type MenuResponse struct {
	Business   *business.Business   `json:"business"`
	Links      business.Links       `json:"links"`
	Categories []*category.Category `json:"categories"`
	Products   []*product.Product   `json:"products"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}

/* ---------- DASHBOARD ---------- */

type BusinessRequest struct {
	Name         *string               `json:"name"`
	Description  *string               `json:"description"`
	Phone        *string               `json:"phone"`
	Address      *string               `json:"address"`
	City         *string               `json:"city"`
	State        *string               `json:"state"`
	CEP          *string               `json:"cep"`
	Instagram    *string               `json:"instagram"`
	LogoURL      *string               `json:"logo_url"`
	CoverURL     *string               `json:"cover_url"`
	DeliveryFee  *decimal.Decimal      `json:"delivery_fee"`
	MinimumOrder *decimal.Decimal      `json:"minimum_order"`
	OpeningHours business.OpeningHours `json:"opening_hours"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (r BusinessRequest) toCreate(ownerID string) business.CreateBusinessParams {
	return business.CreateBusinessParams{
		OwnerID:      ownerID,
		Name:         deref(r.Name),
		Description:  r.Description,
		Phone:        deref(r.Phone),
		Address:      deref(r.Address),
		City:         r.City,
		State:        r.State,
		CEP:          r.CEP,
		Instagram:    r.Instagram,
		LogoURL:      r.LogoURL,
		CoverURL:     r.CoverURL,
		DeliveryFee:  decimalOrZero(r.DeliveryFee),
		MinimumOrder: decimalOrZero(r.MinimumOrder),
		OpeningHours: r.OpeningHours,
	}
}

func (r BusinessRequest) toUpdate(b *business.Business) business.UpdateBusinessParams {
	return business.UpdateBusinessParams{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         r.Name,
		Description:  r.Description,
		Phone:        r.Phone,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		CEP:          r.CEP,
		Instagram:    r.Instagram,
		LogoURL:      r.LogoURL,
		CoverURL:     r.CoverURL,
		DeliveryFee:  r.DeliveryFee,
		MinimumOrder: r.MinimumOrder,
		OpeningHours: r.OpeningHours,
	}
}

// BusinessView adds the derived deep links and plan details.
type BusinessView struct {
	*business.Business
	Links    business.Links    `json:"links"`
	PlanInfo business.PlanInfo `json:"plan_info"`
}

func toBusinessView(b *business.Business) BusinessView {
	return BusinessView{Business: b, Links: b.Links(), PlanInfo: b.Plan.Info()}
}

type CategoryRequest struct {
	Name     *string `json:"name"`
	Emoji    *string `json:"emoji"`
	IsActive *bool   `json:"is_active"`
}

type MoveCategoryRequest struct {
	RefID     string             `json:"ref_id" binding:"required"`
	Placement category.Placement `json:"placement" binding:"required,oneof=before after"`
}

type ProductRequest struct {
	CategoryID    *string              `json:"category_id"`
	ClearCategory bool                 `json:"clear_category"`
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	Price         *decimal.Decimal     `json:"price"`
	ImageURL      *string              `json:"image_url"`
	IsAvailable   *bool                `json:"is_available"`
	Addons        *product.AddonGroups `json:"addons"`
}

func (r ProductRequest) toCreate(businessID string) product.CreateProductParams {
	p := product.CreateProductParams{
		BusinessID:  businessID,
		CategoryID:  r.CategoryID,
		Name:        deref(r.Name),
		Description: r.Description,
		Price:       decimalOrZero(r.Price),
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
	if r.Addons != nil {
		p.Addons = *r.Addons
	}
	return p
}

func (r ProductRequest) toUpdate(businessID, id string) product.UpdateProductParams {
	return product.UpdateProductParams{
		ID:            id,
		BusinessID:    businessID,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		ImageURL:      r.ImageURL,
		IsAvailable:   r.IsAvailable,
		Addons:        r.Addons,
	}
}

type StatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
	Notes  *string      `json:"notes"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
}

// OrderView adds the statuses the order may move to next.
type OrderView struct {
	*order.Order
	NextStatuses []order.Status `json:"next_statuses"`
}

func toOrderView(o *order.Order) OrderView {
	return OrderView{Order: o, NextStatuses: order.NextStatuses(o.Status, o.DeliveryType)}
}

type CreateDriverRequest struct {
	Email        string              `json:"email" binding:"required,email"`
	VehicleType  *driver.VehicleType `json:"vehicle_type"`
	LicensePlate *string             `json:"license_plate"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type LocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type CouponRequest struct {
	Code          string              `json:"code" binding:"required"`
	DiscountType  coupon.DiscountType `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal     `json:"discount_value"`
	MinimumOrder  *decimal.Decimal    `json:"minimum_order"`
	MaxUses       *int                `json:"max_uses"`
	ExpiresAt     *time.Time          `json:"expires_at"`
}

func (r CouponRequest) toParams(businessID string) coupon.CreateCouponParams {
	return coupon.CreateCouponParams{
		BusinessID:    businessID,
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinimumOrder:  decimalOrZero(r.MinimumOrder),
		MaxUses:       r.MaxUses,
		ExpiresAt:     r.ExpiresAt,
	}
}

type ActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PlanResponse is the dashboard view of the subscription.
type PlanResponse struct {
	Current      business.PlanInfo   `json:"current"`
	ProductCount int                 `json:"product_count"`
	Plans        []business.PlanInfo `json:"plans"`
}

/* ---------- ADMIN ---------- */

type AdminBusinessRequest struct {
	Plan     *business.Plan `json:"plan"`
	IsActive *bool          `json:"is_active"`
}
