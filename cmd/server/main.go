package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/dealer-credit-simulator/internal/config"
	"github.com/anyulbade/dealer-credit-simulator/internal/database"
	"github.com/anyulbade/dealer-credit-simulator/internal/handler"
	"github.com/anyulbade/dealer-credit-simulator/internal/jobs"
	"github.com/anyulbade/dealer-credit-simulator/internal/middleware"
	"github.com/anyulbade/dealer-credit-simulator/internal/repository"
	"github.com/anyulbade/dealer-credit-simulator/internal/service"
	"github.com/anyulbade/dealer-credit-simulator/internal/tracing"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tp, err := tracing.Init(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init tracing")
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	var (
		profiles    service.ProfileStore = repository.NewProfileRepository(pool)
		cachePinger handler.Pinger
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		cache := repository.NewProfileCache(repository.NewProfileRepository(pool), rdb, cfg.ProfileCacheTTL)
		if err := cache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, profiles will be read from the database")
		}
		profiles = cache
		cachePinger = cache
	}

	catalog := service.NewCatalogService(repository.NewVehicleRepository(pool), profiles)
	sims := service.NewSimulationService(catalog, service.Policy{
		MinDownPaymentPct: cfg.MinDownPaymentPct,
		MaxTermMonths:     cfg.MaxTermMonths,
	})
	proformas := service.NewProformaService(sims, repository.NewProformaRepository(pool), cfg.ProformaValidity)

	expiry, err := jobs.NewExpiryJob(proformas, cfg.ExpiryCron)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule proforma expiry")
	}
	expiry.Start()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool, cachePinger)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.SetupSwagger(router)
	setupAPIRoutes(router, catalog, sims, proformas)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	expiry.Stop(shutdownCtx)
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, catalog *service.CatalogService, sims *service.SimulationService, proformas *service.ProformaService) {
	api := handler.API{
		Simulations: handler.NewSimulationHandler(sims),
		Catalog:     handler.NewCatalogHandler(catalog),
		Proformas:   handler.NewProformaHandler(proformas),
	}
	api.Register(router.Group("/api/v1"))
}
