package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardapio-be/internal/business"
	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"
	"cardapio-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

type mocks struct {
	business *MockBusinessService
	category *MockCategoryService
	product  *MockProductService
	order    *MockOrderService
	driver   *MockDriverService
	coupon   *MockCouponService
	user     *MockUserService
	admin    *MockAdminService
}

func setup(t *testing.T) (*gin.Engine, *mocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &mocks{
		business: new(MockBusinessService),
		category: new(MockCategoryService),
		product:  new(MockProductService),
		order:    new(MockOrderService),
		driver:   new(MockDriverService),
		coupon:   new(MockCouponService),
		user:     new(MockUserService),
		admin:    new(MockAdminService),
	}
	h := &Handler{
		BusinessSvc: m.business,
		CategorySvc: m.category,
		ProductSvc:  m.product,
		OrderSvc:    m.order,
		DriverSvc:   m.driver,
		CouponSvc:   m.coupon,
		UserSvc:     m.user,
		AdminSvc:    m.admin,
	}
	return NewRouter(h, "http://localhost:3000"), m
}

// do sends a request as testUserID holding role; an empty role is anonymous.
func do(r http.Handler, method, path, body string, role user.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req = req.WithContext(utils.SetUserContext(req.Context(), testUserID, "user@example.com", string(role)))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func lanchonete() *business.Business {
	return &business.Business{
		ID:           "biz-1",
		OwnerID:      testUserID,
		Name:         "Lanchonete do Zé",
		Phone:        "11987654321",
		Address:      "Rua das Flores, 123",
		DeliveryFee:  decimal.RequireFromString("5.00"),
		MinimumOrder: decimal.RequireFromString("20.00"),
		Plan:         business.PlanBasico,
		IsActive:     true,
	}
}
