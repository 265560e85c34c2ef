package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-attestation/internal/config"
	"github.com/prefeitura-rio/app-attestation/internal/handlers"
	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/middleware"
	"github.com/prefeitura-rio/app-attestation/internal/observability"
	"github.com/prefeitura-rio/app-attestation/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-attestation/docs"
)

// @title           covid API
// @version         1.0.0
// @description     API pour générer une attestation de déplacement dérogatoire au format PDF.

// @contact.name   Mathieu Garcia
// @contact.url    https://covid19.api.wiseflat.com

// @host      localhost:8080
// @BasePath  /

// @tag.name attestation
// @tag.description Génération des attestations

// @tag.name system
// @tag.description Santé et informations du service

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	reasons, err := services.NewReasonTable(cfg.Reasons)
	if err != nil {
		logging.Logger.Fatal("invalid reason table", zap.Error(err))
	}

	renderer, err := services.NewPDFRenderer(services.PDFRendererConfig{
		OutputDir:   cfg.OutputDir,
		FontPath:    cfg.FontPath,
		FontSize:    cfg.FontSize,
		Concurrency: cfg.RenderConcurrency,
	}, logging.Logger)
	if err != nil {
		logging.Logger.Fatal("failed to initialize renderer", zap.Error(err))
	}

	service := services.NewAttestationService(reasons, renderer, cfg.Location, logging.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	janitor := services.NewFileJanitor(renderer.OutputDir(), cfg.FileRetention, cfg.CleanupInterval, logging.Logger)
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		janitor.Start(ctx)
	}()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.Default(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router,
		handlers.NewAttestationHandlers(logging.Logger, service),
		handlers.NewSystemHandlers(renderer.OutputDir()),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("output_dir", cfg.OutputDir),
			zap.Int("reasons", len(cfg.Reasons)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logging.Logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}
	<-janitorDone

	logging.Logger.Info("server exited gracefully")
}
