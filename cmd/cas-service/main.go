package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rapodaca/cas-number/internal/cache"
	"github.com/rapodaca/cas-number/internal/config"
	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/internal/fixture"
	casgrpc "github.com/rapodaca/cas-number/internal/grpc"
	"github.com/rapodaca/cas-number/internal/handler"
	"github.com/rapodaca/cas-number/internal/repository"
	"github.com/rapodaca/cas-number/internal/service"
	"github.com/rapodaca/cas-number/pkg/cas"
	"github.com/rapodaca/cas-number/pkg/database"
	pkglog "github.com/rapodaca/cas-number/pkg/log"
	"github.com/rapodaca/cas-number/pkg/pubsub"
	"github.com/rapodaca/cas-number/pkg/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "cas-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting cas-service")

	// Start gRPC health endpoint first so probes see NOT_SERVING during startup
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := casgrpc.NewServer(grpcAddr, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}
	grpcServer.Start()

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	if err := database.AutoMigrate(db, &domain.SampleModel{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	// Initialize storage
	ctx := context.Background()
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to create storage")
	}

	// Initialize event publisher
	publisher, err := pubsub.NewPublisher(cfg.PubSub)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.PubSub.Driver).Msg("failed to create publisher")
	}

	// Initialize sample cache
	sampleCache, err := cache.New(cfg.Cache)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Cache.Driver).Msg("failed to create cache")
	}

	// Initialize generator
	var genOpts []cas.Option
	if cfg.Generator.FullDigitRange {
		genOpts = append(genOpts, cas.WithFullDigitRange())
	}
	gen := cas.NewGenerator(genOpts...)
	logger.Info().Bool("full_digit_range", cfg.Generator.FullDigitRange).Msg("cas generator initialized")

	// Wire services
	casService := service.NewCASService(gen)
	seedService := service.NewSeedService(
		gen,
		repository.NewGormSampleRepository(db),
		sampleCache,
		cfg.Cache.TTL,
		publisher,
	)
	exporter := fixture.NewExporter(gen, store, publisher, time.Duration(cfg.Fixture.URLExpiry)*time.Minute)
	httpHandler := handler.NewHandler(casService, seedService, exporter)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), pkglog.GinMiddleware(logger))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	httpHandler.RegisterRoutes(r)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", httpAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	grpcServer.SetServing(true)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down cas-service")
	grpcServer.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	grpcServer.Stop()
	if err := sampleCache.Close(); err != nil {
		logger.Error().Err(err).Msg("cache close")
	}
	if err := publisher.Close(); err != nil {
		logger.Error().Err(err).Msg("publisher close")
	}
	if err := database.Close(db); err != nil {
		logger.Error().Err(err).Msg("database close")
	}
	logger.Info().Msg("cas-service stopped")
}
