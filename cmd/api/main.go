package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/archivelab/meeting-archive/internal/adapter/handler"
	"github.com/archivelab/meeting-archive/internal/usecase/aggregate"
	"github.com/archivelab/meeting-archive/internal/usecase/archive"
	"github.com/archivelab/meeting-archive/internal/usecase/export"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/internal/usecase/graph"
	"github.com/archivelab/meeting-archive/internal/usecase/people"
	"github.com/archivelab/meeting-archive/internal/usecase/topics"
	"github.com/archivelab/meeting-archive/internal/usecase/workgroup"
	"github.com/archivelab/meeting-archive/pkg/config"
	"github.com/archivelab/meeting-archive/pkg/logger"
	pkgvalidator "github.com/archivelab/meeting-archive/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Load the archive once, up front. The meeting collection is immutable
	// for the lifetime of the process.
	loader := archive.NewService(zapLogger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Archive.FetchTimeout)
	meetings, err := loader.LoadArchive(loadCtx, cfg.Archive.Source)
	cancelLoad()
	if err != nil {
		log.Fatalf("Failed to load archive: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Wire services over the loaded collection
	filters := filter.NewService(zapLogger)
	aggregates := aggregate.NewService(zapLogger)
	peopleExtractor := people.NewExtractor(zapLogger)
	topicExtractor := topics.NewExtractor()
	graphBuilder := graph.NewBuilder(peopleExtractor, filters, zapLogger)
	workgroups := workgroup.NewService(meetings)
	exports := export.NewService(zapLogger)

	explorer := handler.NewExplorer(
		meetings,
		filters,
		aggregates,
		peopleExtractor,
		topicExtractor,
		graphBuilder,
		workgroups,
		exports,
		zapLogger,
	)
	handler.RegisterRoutes(e, explorer)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s (%d meetings loaded)", addr, len(meetings))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
