package api

import (
	"errors"
	"net/http"

	"cardapio-be/internal/business"
	"cardapio-be/internal/cart"
	"cardapio-be/internal/category"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/logger"
	"cardapio-be/internal/order"
	"cardapio-be/internal/pricing"
	"cardapio-be/internal/product"
	"cardapio-be/internal/transport"
	"cardapio-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// pgInvalidText is raised when an id in the path or body is not a uuid.
const pgInvalidText = "22P02"

var (
	notFoundErrors = []error{
		business.ErrBusinessNotFound,
		category.ErrCategoryNotFound,
		product.ErrProductNotFound,
		product.ErrCategoryNotFound,
		order.ErrOrderNotFound,
		driver.ErrDriverNotFound,
		coupon.ErrCouponNotFound,
		user.ErrProfileNotFound,
		cart.ErrLineNotFound,
	}

	badRequestErrors = []error{
		business.ErrInvalidBusiness,
		business.ErrNothingToUpdate,
		category.ErrInvalidCategory,
		category.ErrInvalidMove,
		category.ErrNothingToUpdate,
		product.ErrInvalidProduct,
		product.ErrNothingToUpdate,
		order.ErrInvalidCheckout,
		order.ErrEmptyCart,
		order.ErrInvalidStatus,
		order.ErrInvalidChange,
		cart.ErrQuantityOutOfRange,
		cart.ErrObservationTooLong,
		pricing.ErrMaxSelections,
		pricing.ErrUnknownOption,
		pricing.ErrUnknownGroup,
		pricing.ErrInvalidGroup,
		coupon.ErrInvalidCoupon,
		driver.ErrInvalidDriver,
		driver.ErrInvalidLocation,
		user.ErrInvalidRole,
	}

	conflictErrors = []error{
		business.ErrBusinessExists,
		driver.ErrDriverExists,
		coupon.ErrCouponCodeExists,
		order.ErrInvalidTransition,
		order.ErrStatusConflict,
		order.ErrNotDeliveryOrder,
		order.ErrDriverUnavailable,
		cart.ErrCouponAlreadyApplied,
	}

	unprocessableErrors = []error{
		order.ErrBelowMinimum,
		coupon.ErrCouponMinimumNotMet,
		cart.ErrProductUnavailable,
		product.ErrProductUnavailable,
		product.ErrPlanLimitReached,
	}
)

// malformedID reports whether Postgres rejected an id that cannot exist.
func malformedID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgInvalidText
}

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	var selErr *pricing.SelectionError
	switch {
	case errors.As(err, &selErr):
		return http.StatusBadRequest
	case malformedID(err), matches(err, notFoundErrors):
		return http.StatusNotFound
	case matches(err, badRequestErrors):
		return http.StatusBadRequest
	case matches(err, conflictErrors):
		return http.StatusConflict
	case matches(err, unprocessableErrors):
		return http.StatusUnprocessableEntity
	case errors.Is(err, user.ErrNoRole):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope carrying the backend message.
func respondError(c *gin.Context, err error) {
	if malformedID(err) {
		transport.NotFound(c, "Registro não encontrado")
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		transport.ServerError(c, err)
		return
	}
	transport.Fail(c, status, err.Error())
}

// bindError answers a request body that failed gin binding.
func bindError(c *gin.Context, err error) {
	transport.BadRequest(c, "Dados inválidos: "+err.Error())
}
