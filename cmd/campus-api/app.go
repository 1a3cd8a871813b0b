package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	"github.com/noah-isme/campus-desk-api/internal/service"
	"github.com/noah-isme/campus-desk-api/pkg/cache"
	"github.com/noah-isme/campus-desk-api/pkg/config"
	"github.com/noah-isme/campus-desk-api/pkg/logger"
	"github.com/noah-isme/campus-desk-api/pkg/storage"
)

// app holds the stores and services shared by every command.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	validate   *validator.Validate
	dispatcher events.Dispatcher
	metrics    *service.MetricsService

	tickets   *repository.TicketRepository
	requests  *repository.RequestRepository
	rooms     *repository.RoomRepository
	lecturers *repository.LecturerRepository
	users     *repository.UserRepository
	settings  *repository.SettingsRepository
	reports   *repository.ReportRepository
	dashboard repository.DashboardSeed

	exporter *service.ExportService
	closers  []func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	seed, err := repository.LoadSeed()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:        cfg,
		logger:     logr,
		validate:   service.NewValidator(),
		dispatcher: events.NewInMemoryDispatcher(),
		metrics:    service.NewMetricsService(),
		tickets:    repository.NewTicketRepository(seed.Tickets),
		requests:   repository.NewRequestRepository(seed.Requests),
		rooms:      repository.NewRoomRepository(seed.Rooms),
		lecturers:  repository.NewLecturerRepository(seed.Lecturers),
		users:      repository.NewUserRepository(seed.Users),
		settings:   repository.NewSettingsRepository(seed.Settings),
		reports:    repository.NewReportRepository(seed.Reports),
		dashboard:  seed.Dashboard,
	}

	store, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("init report storage: %w", err)
	}
	a.exporter = service.NewExportService(service.ReportSources{
		Users:     a.users,
		Lecturers: a.lecturers,
		Rooms:     a.rooms,
		Requests:  a.requests,
	}, store, storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL), service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Reports.SignedURLTTL,
	}, logr)

	return a, nil
}

// cacheService connects Redis when the dashboard cache is enabled. A failed
// connection leaves the dashboard uncached rather than aborting start-up.
func (a *app) cacheService(ctx context.Context) (*service.CacheService, func() error) {
	if !a.cfg.Dashboard.CacheEnabled {
		return service.NewCacheService(nil, a.metrics, a.cfg.Dashboard.CacheTTL, a.logger, false), nil
	}
	client, err := cache.NewRedis(ctx, a.cfg.Redis)
	if err != nil {
		a.logger.Warn("dashboard cache disabled", zap.Error(err))
		return service.NewCacheService(nil, a.metrics, a.cfg.Dashboard.CacheTTL, a.logger, false), nil
	}
	a.closers = append(a.closers, client.Close)
	repo := repository.NewCacheRepository(client, "campus-desk", a.logger)
	ping := func() error { return client.Ping(context.Background()).Err() }
	return service.NewCacheService(repo, a.metrics, a.cfg.Dashboard.CacheTTL, a.logger, true), ping
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Warn("shutdown cleanup failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
