package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cardapio-be/internal/business"
	"cardapio-be/internal/cart"
	"cardapio-be/internal/category"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/order"
	"cardapio-be/internal/product"
	"cardapio-be/internal/user"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMenu(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := setup(t)
		m.business.On("GetPublic", mock.Anything, "biz-1").Return(lanchonete(), nil)
		m.category.On("List", mock.Anything, "biz-1").Return([]*category.Category{
			{ID: "c-1", Name: "Lanches", Emoji: "🍔", Position: 1, IsActive: true},
			{ID: "c-2", Name: "Sazonal", Emoji: "🎃", Position: 2, IsActive: false},
		}, nil)
		m.product.On("ListAvailable", mock.Anything, "biz-1").Return([]*product.Product{
			{ID: "prod-xburger", Name: "X-Burger Especial", Price: decimal.RequireFromString("25.90"), IsAvailable: true},
		}, nil)

		w := do(r, http.MethodGet, "/menu/biz-1", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		env := decode(t, w)
		assert.True(t, env.OK)
		data := env.Data.(map[string]any)
		assert.Len(t, data["categories"], 1)
		assert.Len(t, data["products"], 1)
		links := data["links"].(map[string]any)
		assert.Contains(t, links["whatsapp"], "https://wa.me/5511987654321?text=")
	})

	t.Run("InactiveBusiness", func(t *testing.T) {
		r, m := setup(t)
		m.business.On("GetPublic", mock.Anything, "biz-x").Return(nil, business.ErrBusinessNotFound)

		w := do(r, http.MethodGet, "/menu/biz-x", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, business.ErrBusinessNotFound.Error(), decode(t, w).Error)
		m.category.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("MalformedID", func(t *testing.T) {
		r, m := setup(t)
		m.business.On("GetPublic", mock.Anything, "abc").
			Return(nil, &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`})

		w := do(r, http.MethodGet, "/menu/abc", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Registro não encontrado", decode(t, w).Error)
	})
}

const quoteBody = `{
	"delivery_type": "entrega",
	"coupon_code": "desconto10",
	"items": [
		{"product_id": "prod-xburger", "quantity": 2, "selections": {"g-extras": ["bacon", "cheddar"]}},
		{"product_id": "prod-batata", "quantity": 1, "observation": "sem sal"}
	]
}`

func TestQuoteCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := setup(t)
		m.order.On("Quote", mock.Anything, mock.MatchedBy(func(p order.QuoteParams) bool {
			return p.BusinessID == "biz-1" &&
				p.DeliveryType == order.DeliveryEntrega &&
				*p.CouponCode == "desconto10" &&
				len(p.Lines) == 2 &&
				p.Lines[0].Selections["g-extras"][1] == "cheddar" &&
				p.Lines[1].Observation == "sem sal"
		})).Return(&cart.Summary{
			Subtotal:    decimal.RequireFromString("78.70"),
			DeliveryFee: decimal.RequireFromString("5.00"),
			Discount:    decimal.RequireFromString("10.00"),
			Total:       decimal.RequireFromString("73.70"),
			CanCheckout: true,
		}, nil)

		w := do(r, http.MethodPost, "/menu/biz-1/cart/quote", quoteBody, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "73.7", decode(t, w).Data.(map[string]any)["total"])
	})

	t.Run("NoItems", func(t *testing.T) {
		r, m := setup(t)

		w := do(r, http.MethodPost, "/menu/biz-1/cart/quote", `{"delivery_type":"entrega","items":[]}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.order.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything)
	})

	t.Run("CouponMinimum", func(t *testing.T) {
		r, m := setup(t)
		m.order.On("Quote", mock.Anything, mock.Anything).Return(nil, coupon.ErrCouponMinimumNotMet)

		w := do(r, http.MethodPost, "/menu/biz-1/cart/quote", quoteBody, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

const checkoutBody = `{
	"customer_name": "Maria Silva",
	"customer_phone": "11999998888",
	"delivery_type": "entrega",
	"address": "Rua das Flores, 123",
	"payment_method": "dinheiro",
	"change_for": 100,
	"items": [{"product_id": "prod-batata", "quantity": 2}]
}`

func TestCheckout(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		r, m := setup(t)
		m.order.On("Checkout", mock.Anything, mock.MatchedBy(func(p order.CheckoutParams) bool {
			return p.BusinessID == "biz-1" &&
				p.CustomerID == nil &&
				p.PaymentMethod == order.PaymentDinheiro &&
				p.ChangeFor != nil && p.ChangeFor.Equal(decimal.NewFromInt(100)) &&
				len(p.Lines) == 1 && p.Lines[0].Quantity == 2
		})).Return(&order.Order{ID: "ord-1", OrderNumber: 42, Status: order.StatusPendente}, nil)

		w := do(r, http.MethodPost, "/menu/biz-1/orders", checkoutBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		env := decode(t, w)
		assert.True(t, env.OK)
		assert.Equal(t, "Pedido realizado com sucesso!", env.Message)
		assert.Equal(t, "ord-1", env.Data.(map[string]any)["id"])
	})

	t.Run("SignedInCustomer", func(t *testing.T) {
		r, m := setup(t)
		m.order.On("Checkout", mock.Anything, mock.MatchedBy(func(p order.CheckoutParams) bool {
			return p.CustomerID != nil && *p.CustomerID == testUserID
		})).Return(&order.Order{ID: "ord-2"}, nil)

		w := do(r, http.MethodPost, "/menu/biz-1/orders", checkoutBody, user.RoleCliente)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("MissingName", func(t *testing.T) {
		r, m := setup(t)

		w := do(r, http.MethodPost, "/menu/biz-1/orders", `{"customer_phone":"11999998888","delivery_type":"retirada","payment_method":"pix","items":[{"product_id":"p","quantity":1}]}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.order.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	})

	t.Run("DomainErrors", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{fmt.Errorf("%w: address is required for delivery", order.ErrInvalidCheckout), http.StatusBadRequest},
			{fmt.Errorf("%w (20.00)", order.ErrBelowMinimum), http.StatusUnprocessableEntity},
			{order.ErrInvalidChange, http.StatusBadRequest},
			{errors.New("pq: connection refused"), http.StatusInternalServerError},
		}
		for _, tt := range tests {
			r, m := setup(t)
			m.order.On("Checkout", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := do(r, http.MethodPost, "/menu/biz-1/orders", checkoutBody, "")
			assert.Equal(t, tt.want, w.Code, tt.err.Error())
			assert.Equal(t, tt.err.Error(), decode(t, w).Error)
		}
	})

	t.Run("MalformedProductID", func(t *testing.T) {
		r, m := setup(t)
		m.order.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "prod-batata"`})

		w := do(r, http.MethodPost, "/menu/biz-1/orders", checkoutBody, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, decode(t, w).Error, "pq:")
	})
}

func TestOrderConfirmation(t *testing.T) {
	r, m := setup(t)
	m.order.On("Get", mock.Anything, "ord-x").Return(nil, order.ErrOrderNotFound)

	w := do(r, http.MethodGet, "/orders/ord-x", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyOrdersAndProfile(t *testing.T) {
	r, m := setup(t)
	m.order.On("ListMine", mock.Anything, testUserID).Return([]*order.Order{{ID: "ord-1"}, {ID: "ord-2"}}, nil)
	m.user.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p user.UpdateProfileParams) bool {
		return p.UserID == testUserID && *p.FullName == "Maria S." && p.Phone == nil
	})).Return(&user.Profile{ID: testUserID, FullName: "Maria S."}, nil)

	w := do(r, http.MethodGet, "/me/orders", "", user.RoleCliente)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w).Data, 2)

	w = do(r, http.MethodPatch, "/me", `{"full_name":"Maria S."}`, user.RoleCliente)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Perfil atualizado", decode(t, w).Message)
}
