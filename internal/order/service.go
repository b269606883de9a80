package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cardapio-be/internal/business"
	"cardapio-be/internal/cache"
	"cardapio-be/internal/cart"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/logger"
	"cardapio-be/internal/metrics"
	"cardapio-be/internal/product"
	"cardapio-be/internal/utils"

	"go.uber.org/zap"
)

type BusinessReader interface {
	GetPublic(ctx context.Context, id string) (*business.Business, error)
}

type ProductReader interface {
	GetMany(ctx context.Context, businessID string, ids []string) (map[string]*product.Product, error)
}

type DriverReader interface {
	Get(ctx context.Context, businessID, id string) (*driver.Driver, error)
	Me(ctx context.Context, userID string) (*driver.Driver, error)
}

// Dependencies are the collaborators checkout and delivery rely on.
type Dependencies struct {
	Businesses BusinessReader
	Products   ProductReader
	Coupons    cart.CouponLookup
	Drivers    DriverReader
}

type Service interface {
	Quote(ctx context.Context, params QuoteParams) (*cart.Summary, error)
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	GetForBusiness(ctx context.Context, businessID, id string) (*Order, error)
	ListByBusiness(ctx context.Context, businessID string, filter ListFilter) ([]*Order, error)
	ListMine(ctx context.Context, customerID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, businessID, id string, to Status, notes *string) (*Order, error)
	AssignDriver(ctx context.Context, businessID, orderID, driverID string) (*Order, error)

	CourierOrders(ctx context.Context, userID string) ([]*Order, error)
	StartDelivery(ctx context.Context, userID, orderID string) (*Order, error)
	FinishDelivery(ctx context.Context, userID, orderID string) (*Order, error)
}

type service struct {
	repo  Repository
	deps  Dependencies
	cache *cache.Cache

	created     *metrics.Counter
	transitions *metrics.Counter
}

func NewService(repo Repository, deps Dependencies, c *cache.Cache, reg *metrics.Registry) Service {
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &service{
		repo:        repo,
		deps:        deps,
		cache:       c,
		created:     reg.Counter("orders_created"),
		transitions: reg.Counter("order_status_changes"),
	}
}

/* ---------- PRICING ---------- */

// buildCart reprices the posted lines from the catalog.
func (s *service) buildCart(ctx context.Context, b *business.Business, delivery DeliveryType, couponCode *string, lines []CheckoutLine) (*cart.Cart, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !delivery.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery type %q", ErrInvalidCheckout, string(delivery))
	}

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	products, err := s.deps.Products.GetMany(ctx, b.ID, ids)
	if err != nil {
		return nil, err
	}

	c := cart.New(b.ID, b.DeliveryFee, b.MinimumOrder)
	c.SetPickup(delivery == DeliveryRetirada)

	for i, l := range lines {
		p, ok := products[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("line %d: %w", i+1, product.ErrProductNotFound)
		}
		line, err := cart.NewLine(p, l.Selections, l.Quantity, l.Observation)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		c.AddItem(line)
	}

	if couponCode != nil && strings.TrimSpace(*couponCode) != "" {
		if err := c.ApplyCoupon(ctx, *couponCode, s.deps.Coupons); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Quote prices a cart without placing the order.
func (s *service) Quote(ctx context.Context, params QuoteParams) (*cart.Summary, error) {
	b, err := s.deps.Businesses.GetPublic(ctx, params.BusinessID)
	if err != nil {
		return nil, err
	}

	c, err := s.buildCart(ctx, b, params.DeliveryType, params.CouponCode, params.Lines)
	if err != nil {
		return nil, err
	}

	summary := c.Summary()
	return &summary, nil
}

/* ---------- CHECKOUT ---------- */

func invalidCheckout(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidCheckout, msg)
}

func (p *CheckoutParams) normalize() error {
	p.CustomerName = strings.TrimSpace(p.CustomerName)
	if n := utf8.RuneCountInString(p.CustomerName); n < 2 || n > 100 {
		return invalidCheckout("name must have 2 to 100 characters")
	}
	if n := len(utils.Digits(p.CustomerPhone)); n < 10 || n > 11 {
		return invalidCheckout("phone must have 10 or 11 digits")
	}
	if !p.PaymentMethod.Valid() {
		return invalidCheckout("unknown payment method")
	}
	if p.PaymentMethod != PaymentDinheiro {
		p.ChangeFor = nil
	}
	if p.Notes != nil && utf8.RuneCountInString(*p.Notes) > 500 {
		return invalidCheckout("notes must have at most 500 characters")
	}

	switch p.DeliveryType {
	case DeliveryEntrega:
		if p.Address == nil || strings.TrimSpace(*p.Address) == "" {
			return invalidCheckout("address is required for delivery")
		}
		addr := strings.TrimSpace(*p.Address)
		p.Address = &addr
	case DeliveryRetirada:
		p.Address, p.Complement, p.Reference = nil, nil, nil
	default:
		return invalidCheckout("unknown delivery type")
	}
	return nil
}

// Checkout reprices the cart server-side and stores the order atomically.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("business_id", params.BusinessID),
		zap.Int("line_count", len(params.Lines)),
	)
	log.Info("Checkout started")

	if err := params.normalize(); err != nil {
		log.Info("invalid checkout input", zap.Error(err))
		return nil, err
	}

	b, err := s.deps.Businesses.GetPublic(ctx, params.BusinessID)
	if err != nil {
		return nil, err
	}

	c, err := s.buildCart(ctx, b, params.DeliveryType, params.CouponCode, params.Lines)
	if err != nil {
		log.Info("cart rejected", zap.Error(err))
		return nil, err
	}
	if !c.CanCheckout() {
		return nil, fmt.Errorf("%w (%s)", ErrBelowMinimum, b.MinimumOrder.StringFixed(2))
	}

	total := c.GrandTotal()
	if params.ChangeFor != nil && params.ChangeFor.LessThan(total) {
		return nil, ErrInvalidChange
	}

	o := &Order{
		BusinessID:         b.ID,
		CustomerID:         params.CustomerID,
		CustomerName:       params.CustomerName,
		CustomerPhone:      params.CustomerPhone,
		DeliveryType:       params.DeliveryType,
		CustomerAddress:    params.Address,
		CustomerComplement: params.Complement,
		CustomerReference:  params.Reference,
		PaymentMethod:      params.PaymentMethod,
		ChangeFor:          params.ChangeFor,
		Notes:              params.Notes,
		Subtotal:           c.Subtotal(),
		DeliveryFee:        c.DeliveryFee(),
		Discount:           c.Discount(),
		Total:              total,
		Status:             StatusPendente,
	}
	if cp := c.Coupon(); cp != nil {
		code := cp.Code
		o.CouponCode = &code
	}

	for _, l := range c.Lines() {
		productID := l.ProductID
		item := Item{
			ProductID:   &productID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice(),
			Subtotal:    l.Total,
			Addons:      Addons(l.Addons),
		}
		if l.Observation != "" {
			obs := l.Observation
			item.Notes = &obs
		}
		o.Items = append(o.Items, item)
	}

	created, err := s.repo.CreateOrderTx(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	s.created.Inc()
	s.cache.InvalidateEntity(ctx, cache.EntityOrder)
	if o.CouponCode != nil {
		s.cache.InvalidateEntity(ctx, cache.EntityCoupon)
	}

	log.Info("Checkout success",
		zap.String("order_id", created.ID),
		zap.Int64("order_number", created.OrderNumber),
		zap.String("total", created.Total.StringFixed(2)),
	)
	return created, nil
}

/* ---------- READS ---------- */

// Get is the confirmation lookup by id.
func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	if !utils.IsUUID(id) {
		return nil, ErrOrderNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetForBusiness(ctx context.Context, businessID, id string) (*Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.BusinessID != businessID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// ListByBusiness returns the orders of a business, newest first.
func (s *service) ListByBusiness(ctx context.Context, businessID string, filter ListFilter) ([]*Order, error) {
	if businessID == "" {
		return []*Order{}, nil
	}
	parent := businessID
	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		parent += ":" + string(*filter.Status)
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityOrder, parent, func(ctx context.Context) ([]*Order, error) {
		return s.repo.ListByBusiness(ctx, businessID, filter)
	})
}

func (s *service) ListMine(ctx context.Context, customerID string) ([]*Order, error) {
	if customerID == "" {
		return []*Order{}, nil
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

/* ---------- STATUS ---------- */

func (s *service) transition(ctx context.Context, o *Order, to Status, notes *string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", o.ID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(to)),
	)

	if err := CanTransition(o.Status, to, o.DeliveryType); err != nil {
		log.Info("transition rejected", zap.Error(err))
		return nil, err
	}

	t := Transition{OrderID: o.ID, From: o.Status, To: to, Notes: notes}
	if to == StatusEntregue && o.DriverID != nil {
		t.CreditDriver = o.DriverID
	}

	if err := s.repo.UpdateStatusTx(ctx, t); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			log.Info("order changed concurrently")
		} else {
			log.Error("failed to update status", zap.Error(err))
		}
		return nil, err
	}

	s.transitions.Inc()
	s.cache.InvalidateEntity(ctx, cache.EntityOrder)
	if t.CreditDriver != nil {
		s.cache.InvalidateEntity(ctx, cache.EntityDriver)
	}
	log.Info("UpdateStatus success")

	return s.repo.GetByID(ctx, o.ID)
}

func (s *service) UpdateStatus(ctx context.Context, businessID, id string, to Status, notes *string) (*Order, error) {
	o, err := s.GetForBusiness(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, o, to, notes)
}

func (s *service) AssignDriver(ctx context.Context, businessID, orderID, driverID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AssignDriver"),
		zap.String("order_id", orderID),
		zap.String("driver_id", driverID),
	)

	o, err := s.GetForBusiness(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}
	if o.DeliveryType != DeliveryEntrega {
		return nil, ErrNotDeliveryOrder
	}
	if o.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	d, err := s.deps.Drivers.Get(ctx, businessID, driverID)
	if err != nil {
		log.Info("driver lookup failed", zap.Error(err))
		return nil, err
	}
	if !d.IsAvailable {
		return nil, ErrDriverUnavailable
	}

	if err := s.repo.AssignDriver(ctx, businessID, orderID, driverID); err != nil {
		log.Error("failed to assign driver", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityOrder)
	log.Info("AssignDriver success")
	return s.repo.GetByID(ctx, orderID)
}

/* ---------- COURIER ---------- */

var courierStatuses = []Status{StatusPronto, StatusEmEntrega}

// CourierOrders lists what the courier should pick up or is carrying.
func (s *service) CourierOrders(ctx context.Context, userID string) ([]*Order, error) {
	me, err := s.deps.Drivers.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByDriver(ctx, me.ID, courierStatuses)
}

func (s *service) courierOrder(ctx context.Context, userID, orderID string) (*Order, error) {
	me, err := s.deps.Drivers.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.DriverID == nil || *o.DriverID != me.ID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// StartDelivery takes a ready order out for delivery.
func (s *service) StartDelivery(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.courierOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPronto {
		return nil, ErrInvalidTransition
	}
	return s.transition(ctx, o, StatusEmEntrega, nil)
}

func (s *service) FinishDelivery(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.courierOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusEmEntrega {
		return nil, ErrInvalidTransition
	}
	return s.transition(ctx, o, StatusEntregue, nil)
}
