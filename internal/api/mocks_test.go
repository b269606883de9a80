package api

import (
	"context"

	"cardapio-be/internal/admin"
	"cardapio-be/internal/business"
	"cardapio-be/internal/cart"
	"cardapio-be/internal/category"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/order"
	"cardapio-be/internal/product"
	"cardapio-be/internal/user"

	"github.com/stretchr/testify/mock"
)

/* ---------- BUSINESS ---------- */

type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) Get(ctx context.Context, id string) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) GetPublic(ctx context.Context, id string) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) GetByOwner(ctx context.Context, ownerID string) (*business.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) List(ctx context.Context, plan *business.Plan) ([]*business.Business, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*business.Business), args.Error(1)
}

func (m *MockBusinessService) Create(ctx context.Context, params business.CreateBusinessParams) (*business.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) Update(ctx context.Context, params business.UpdateBusinessParams) (*business.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) AdminUpdate(ctx context.Context, params business.AdminUpdateParams) (*business.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessService) ProductLimit(ctx context.Context, businessID string) (int, error) {
	args := m.Called(ctx, businessID)
	return args.Int(0), args.Error(1)
}

/* ---------- CATEGORY ---------- */

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, businessID string) ([]*category.Category, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, params category.CreateCategoryParams) (*category.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, params category.UpdateCategoryParams) (*category.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, businessID, id string) error {
	return m.Called(ctx, businessID, id).Error(0)
}

func (m *MockCategoryService) Reorder(ctx context.Context, params category.MoveParams) ([]*category.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

/* ---------- PRODUCT ---------- */

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, businessID string) ([]*product.Product, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) ListAvailable(ctx context.Context, businessID string) ([]*product.Product, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, businessID, id string) (*product.Product, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) GetMany(ctx context.Context, businessID string, ids []string) (map[string]*product.Product, error) {
	args := m.Called(ctx, businessID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, params product.CreateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, params product.UpdateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, businessID, id string) error {
	return m.Called(ctx, businessID, id).Error(0)
}

/* ---------- ORDER ---------- */

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Quote(ctx context.Context, params order.QuoteParams) (*cart.Summary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Summary), args.Error(1)
}

func (m *MockOrderService) Checkout(ctx context.Context, params order.CheckoutParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetForBusiness(ctx context.Context, businessID, id string) (*order.Order, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListByBusiness(ctx context.Context, businessID string, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) ListMine(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, businessID, id string, to order.Status, notes *string) (*order.Order, error) {
	args := m.Called(ctx, businessID, id, to, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) AssignDriver(ctx context.Context, businessID, orderID, driverID string) (*order.Order, error) {
	args := m.Called(ctx, businessID, orderID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) CourierOrders(ctx context.Context, userID string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) StartDelivery(ctx context.Context, userID, orderID string) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) FinishDelivery(ctx context.Context, userID, orderID string) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

/* ---------- DRIVER ---------- */

type MockDriverService struct {
	mock.Mock
}

func (m *MockDriverService) List(ctx context.Context, businessID string) ([]*driver.Driver, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverService) Get(ctx context.Context, businessID, id string) (*driver.Driver, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverService) Create(ctx context.Context, params driver.CreateDriverParams) (*driver.Driver, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverService) SetAvailability(ctx context.Context, businessID, id string, available bool) (*driver.Driver, error) {
	args := m.Called(ctx, businessID, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverService) Delete(ctx context.Context, businessID, id string) error {
	return m.Called(ctx, businessID, id).Error(0)
}

func (m *MockDriverService) Me(ctx context.Context, userID string) (*driver.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverService) SetMyAvailability(ctx context.Context, userID string, available bool) (*driver.Driver, error) {
	args := m.Called(ctx, userID, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverService) UpdateMyLocation(ctx context.Context, userID string, lat, lng float64) (*driver.Driver, error) {
	args := m.Called(ctx, userID, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

/* ---------- COUPON ---------- */

type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) Lookup(ctx context.Context, businessID, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, businessID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponService) List(ctx context.Context, businessID string) ([]*coupon.Coupon, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

func (m *MockCouponService) Create(ctx context.Context, params coupon.CreateCouponParams) (*coupon.Coupon, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *MockCouponService) SetActive(ctx context.Context, businessID, id string, active bool) error {
	return m.Called(ctx, businessID, id, active).Error(0)
}

/* ---------- USER & ADMIN ---------- */

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*user.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*user.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, params user.UpdateProfileParams) (*user.Profile, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockUserService) PrimaryRole(ctx context.Context, userID string) (user.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.Role), args.Error(1)
}

func (m *MockUserService) HasRole(ctx context.Context, userID string, role user.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) AssignRole(ctx context.Context, userID string, role user.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Metrics(ctx context.Context) (*admin.Metrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Metrics), args.Error(1)
}
