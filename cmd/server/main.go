package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/notevault/vtu-notes-api/api/swagger"
	"github.com/notevault/vtu-notes-api/internal/handler"
	"github.com/notevault/vtu-notes-api/internal/repository"
	"github.com/notevault/vtu-notes-api/internal/router"
	"github.com/notevault/vtu-notes-api/internal/service"
	"github.com/notevault/vtu-notes-api/pkg/cache"
	"github.com/notevault/vtu-notes-api/pkg/config"
	"github.com/notevault/vtu-notes-api/pkg/database"
	"github.com/notevault/vtu-notes-api/pkg/export"
	"github.com/notevault/vtu-notes-api/pkg/jobs"
	"github.com/notevault/vtu-notes-api/pkg/logger"
	"github.com/notevault/vtu-notes-api/pkg/storage"
)

// @title VTU Notes API
// @version 1.0.0
// @description Course notes portal: grade calculator, curriculum index, note catalog and admin uploads
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Log, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("postgres connection failed", "error", err)
	}
	defer db.Close()

	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("redis connection failed", "error", err)
	}
	defer rdb.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		logr.Sugar().Fatalw("storage init failed", "error", err)
	}

	validate := validator.New()
	httpClient := &http.Client{Timeout: cfg.Downloads.FetchTimeout}

	queue := jobs.NewQueue(cfg.Downloads.Workers, 256, logr)

	noteRepo := repository.NewNoteRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	catalogCache := repository.NewCacheRepository(rdb)
	selectionRepo := repository.NewSelectionRepository(rdb, cfg.Selections.TTL)

	metrics := service.NewMetrics()
	calculatorSvc := service.NewCalculatorService(validate, logr)
	curriculumSvc := service.NewCurriculumService(httpClient, cfg.Curriculum.BaseURL, logr)
	noteSvc := service.NewNoteService(noteRepo, catalogCache, store, queue, auditRepo, metrics, httpClient, validate, logr, cfg.Catalog, cfg.Uploads)
	selectionSvc := service.NewSelectionService(selectionRepo, logr)
	authSvc := service.NewAuthService(userRepo, auditRepo, cfg.JWT, validate, logr)

	noteSvc.RegisterJobs(queue)
	queue.Start()
	defer queue.Stop(10 * time.Second)

	handlers := router.Handlers{
		Calculator: handler.NewCalculatorHandler(calculatorSvc),
		Curriculum: handler.NewCurriculumHandler(curriculumSvc, metrics),
		Notes:      handler.NewNoteHandler(noteSvc, metrics),
		Selections: handler.NewSelectionHandler(selectionSvc),
		Auth:       handler.NewAuthHandler(authSvc),
		Admin:      handler.NewAdminHandler(noteSvc, export.NewCSVExporter(), export.NewPDFExporter(), metrics),
	}

	engine := router.New(cfg, logr, metrics, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
