package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardapio-be/internal/admin"
	"cardapio-be/internal/api"
	"cardapio-be/internal/business"
	"cardapio-be/internal/cache"
	"cardapio-be/internal/category"
	"cardapio-be/internal/config"
	"cardapio-be/internal/coupon"
	"cardapio-be/internal/db"
	"cardapio-be/internal/driver"
	"cardapio-be/internal/logger"
	"cardapio-be/internal/metrics"
	"cardapio-be/internal/middleware"
	"cardapio-be/internal/order"
	"cardapio-be/internal/product"
	"cardapio-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	logger.L().Info("🚀 server running", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	return startServerFunc(ctx, addr, newServer(ctx, cfg, database))
}

// newServer wires repositories, services and the HTTP stack.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	c := cache.New(cfg.CacheTTL, metrics.Default)

	userSvc := user.NewService(user.NewRepository(database))
	businessSvc := business.NewService(business.NewRepository(database), c)
	categorySvc := category.NewService(category.NewRepository(database), c)
	productSvc := product.NewService(product.NewRepository(database), businessSvc, c)
	couponSvc := coupon.NewService(coupon.NewRepository(database))
	driverSvc := driver.NewService(driver.NewRepository(database), userSvc, c)
	orderSvc := order.NewService(order.NewRepository(database), order.Dependencies{
		Businesses: businessSvc,
		Products:   productSvc,
		Coupons:    couponSvc,
		Drivers:    driverSvc,
	}, c, metrics.Default)
	adminSvc := admin.NewService(admin.NewRepository(database))

	h := &api.Handler{
		BusinessSvc: businessSvc,
		CategorySvc: categorySvc,
		ProductSvc:  productSvc,
		OrderSvc:    orderSvc,
		DriverSvc:   driverSvc,
		CouponSvc:   couponSvc,
		UserSvc:     userSvc,
		AdminSvc:    adminSvc,
	}

	return setupRouter(api.NewRouter(h, cfg.CORSOrigin), userSvc, middleware.NewRateLimiter(ctx))
}

// setupRouter wraps the routes: request id, access log, auth, then rate limit.
func setupRouter(routes http.Handler, roles middleware.RoleResolver, limiter *middleware.RateLimiter) http.Handler {
	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.AuthMiddleware(roles)(
				limiter.Middleware(routes),
			),
		),
	)
}

// startServer serves until ctx is cancelled, then drains in-flight requests.
func startServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
