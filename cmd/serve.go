package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicare/config"
	"medicare/database"
	bookingRepo "medicare/database/repository/booking"
	catalogRepo "medicare/database/repository/catalog"
	doctorRepo "medicare/database/repository/doctor"
	paymentRepo "medicare/database/repository/payment"
	userRepo "medicare/database/repository/user"
	"medicare/handlers"
	"medicare/middleware"
	"medicare/routes"
	"medicare/services/booking"
	"medicare/services/catalog"
	"medicare/services/doctor"
	"medicare/services/payment"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// repositories.
	catalogStore := catalogRepo.NewMongoCatalogRepo(store)
	ledger := bookingRepo.NewMongoBookingRepo(store)
	payments := paymentRepo.NewMongoPaymentRepo(store)
	users := userRepo.NewMongoUserRepo(store)
	doctors := doctorRepo.NewMongoDoctorRepo(store)

	for name, ensure := range map[string]func(context.Context) error{
		"catalog":  catalogStore.EnsureIndexes,
		"bookings": ledger.EnsureIndexes,
		"users":    users.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
		logger.Debug("indexes ensured", zap.String("collection", name))
	}

	checks := map[string]utils.HealthCheck{"mongodb": store.Ping}

	var cache booking.AvailabilityCache
	if cfg.CacheEnabled() {
		client, err := utils.NewCacheClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			return err
		}
		defer client.Close()
		cache = booking.NewRedisAvailabilityCache(client, cfg.AvailabilityCacheTTL)
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		logger.Info("availability cache enabled", zap.Duration("ttl", cfg.AvailabilityCacheTTL))
	}

	monitor := utils.NewHealthMonitor(30*time.Second, checks)
	monitor.Start(ctx)

	// services.
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	bookingService := booking.NewBookingService(catalogStore, ledger, payments, cache, booking.Options{
		StrictSlotUniqueness: cfg.StrictSlotUniqueness,
		StrictReconcile:      cfg.StrictReconcile,
	}, logger)
	catalogService := catalog.NewCatalogService(catalogStore, cfg.DefaultSlotPrice, logger)
	userService := user.NewUserService(users, tokens, logger)
	doctorService := doctor.NewDoctorService(doctors, logger)
	paymentService := payment.NewStripePaymentService(cfg.StripeKey, cfg.StripeCurrency, logger)

	handlerBundle := handlers.NewHandlerBundle(tokens, userService, handlers.Services{
		Slots:    handlers.NewSlotHandler(bookingService, catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Payments: handlers.NewPaymentHandler(paymentService, bookingService),
		Users:    handlers.NewUserHandler(userService),
		Doctors:  handlers.NewDoctorHandler(doctorService),
		Health:   handlers.NewHealthHandler(monitor),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestContext(logger))
	router.Use(middleware.Observe())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr),
			zap.Bool("strictSlotUniqueness", cfg.StrictSlotUniqueness),
			zap.Bool("strictReconcile", cfg.StrictReconcile))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
