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
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-desk-api/api/swagger"
	"github.com/noah-isme/campus-desk-api/internal/handler"
	"github.com/noah-isme/campus-desk-api/internal/middleware"
	"github.com/noah-isme/campus-desk-api/internal/service"
	"github.com/noah-isme/campus-desk-api/pkg/config"
	"github.com/noah-isme/campus-desk-api/pkg/jobs"
	"github.com/noah-isme/campus-desk-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-desk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-desk-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	cfg := a.cfg
	logr := a.logger

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	cacheSvc, redisPing := a.cacheService(ctx)

	auth, err := service.NewAuthService(service.AuthConfig{
		Username:   cfg.Auth.AdminUsername,
		Password:   cfg.Auth.AdminPassword,
		LoginDelay: cfg.Auth.LoginDelay,
	}, a.validate, a.metrics, logr)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	ticketSvc := service.NewTicketService(a.tickets, a.dispatcher, a.metrics, logr)
	requestSvc := service.NewRequestService(a.requests, a.dispatcher, a.metrics, logr)
	roomSvc := service.NewRoomService(a.rooms, a.dispatcher, a.metrics, cfg.Rooms.BulkDelay, logr)
	dashboardSvc := service.NewDashboardService(a.tickets, service.DashboardContent{
		Stats:          a.dashboard.Stats,
		WeeklyBookings: a.dashboard.WeeklyBookings,
		Profile:        a.dashboard.Profile,
	}, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	dashboardSvc.Subscribe(a.dispatcher)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(auth),
		Dashboard: handler.NewDashboardHandler(dashboardSvc, requestSvc),
		Tickets:   handler.NewTicketHandler(ticketSvc),
		Requests:  handler.NewRequestHandler(requestSvc),
		Rooms:     handler.NewRoomHandler(roomSvc),
		Lecturers: handler.NewLecturerHandler(service.NewLecturerService(a.lecturers, a.validate, logr)),
		Users:     handler.NewUserHandler(service.NewUserService(a.users, a.validate, logr)),
		Settings:  handler.NewSettingsHandler(service.NewSettingsService(a.settings, a.validate, logr)),
	}

	checks := map[string]handler.ReadinessCheck{}
	if redisPing != nil {
		checks["redis"] = redisPing
	}
	handlers.Metrics = handler.NewMetricsHandler(a.metrics, checks)

	if cfg.Reports.Enabled {
		worker := service.NewReportWorker(a.reports, a.exporter, a.metrics, logr)
		queue := jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{
			Workers:    cfg.Reports.WorkerConcurrency,
			MaxRetries: cfg.Reports.WorkerRetries,
			OnFailure:  worker.Fail,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()

		reportSvc := service.NewReportService(a.reports, queue, a.exporter, a.validate, logr, service.ReportServiceConfig{
			ResultTTL:       cfg.Reports.SignedURLTTL,
			CleanupInterval: time.Hour,
		})
		reportSvc.StartCleanup(ctx)
		handlers.Reports = handler.NewReportHandler(reportSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(a.metrics))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	handler.Register(r, cfg.APIPrefix, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
