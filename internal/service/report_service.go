package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
	"github.com/noah-isme/campus-desk-api/pkg/jobs"
)

type reportStore interface {
	Catalog() []models.ReportDefinition
	Definition(id string) (models.ReportDefinition, error)
	CreateJob(job models.ReportJob)
	FindJob(id string) (models.ReportJob, error)
	UpdateJobStatus(id string, status models.ReportStatus, progress int) error
	MarkFinished(id, resultURL string, finishedAt time.Time) error
	MarkFailed(id, message string, finishedAt time.Time) error
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type exportGenerator interface {
	Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error)
}

// ReportServiceConfig governs export cleanup.
type ReportServiceConfig struct {
	ResultTTL       time.Duration
	CleanupInterval time.Duration
}

// ReportDownload aggregates resolved download data.
type ReportDownload struct {
	File      *os.File
	Filename  string
	Format    models.ReportFormat
	ExpiresAt time.Time
}

// ReportService orchestrates report job lifecycle management.
type ReportService struct {
	repo      reportStore
	queue     jobDispatcher
	exporter  *ExportService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ReportServiceConfig
}

// NewReportService constructs the report service.
func NewReportService(repo reportStore, queue jobDispatcher, exporter *ExportService, validate *validator.Validate, logger *zap.Logger, cfg ReportServiceConfig) *ReportService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ReportService{repo: repo, queue: queue, exporter: exporter, validator: validate, logger: logger, cfg: cfg}
}

// Catalog lists downloadable reports.
func (s *ReportService) Catalog(ctx context.Context) []models.ReportDefinition {
	return s.repo.Catalog()
}

// CreateJob validates the request, records the job and enqueues it.
func (s *ReportService) CreateJob(ctx context.Context, req dto.ReportRequest) (*dto.ReportJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid report request")
	}
	if _, err := s.repo.Definition(req.ReportID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "report generation disabled")
	}
	job := models.ReportJob{
		ID:        uuid.NewString(),
		ReportID:  req.ReportID,
		Format:    req.Format,
		Status:    models.ReportStatusQueued,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.CreateJob(job)
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: job.ReportID}); err != nil {
		_ = s.repo.MarkFailed(job.ID, "failed to enqueue job", time.Now().UTC())
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue report job")
	}
	s.logger.Info("report queued", zap.String("job_id", job.ID), zap.String("report_id", job.ReportID), zap.String("format", string(job.Format)))
	return &dto.ReportJobResponse{ID: job.ID, Status: job.Status, Progress: job.Progress}, nil
}

// GetStatus exposes job metadata to clients.
func (s *ReportService) GetStatus(ctx context.Context, id string) (*models.ReportJob, error) {
	job, err := s.repo.FindJob(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report job")
	}
	return &job, nil
}

// ResolveDownload validates the token and opens the stored export file.
func (s *ReportService) ResolveDownload(ctx context.Context, token string) (*ReportDownload, error) {
	jobID, relPath, expiresAt, err := s.exporter.ParseToken(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "invalid or expired download token")
	}
	job, err := s.GetStatus(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.ReportStatusFinished || job.ResultURL == nil || !strings.HasSuffix(*job.ResultURL, token) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report not ready")
	}
	file, err := s.exporter.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return &ReportDownload{
		File:      file,
		Filename:  filepath.Base(relPath),
		Format:    job.Format,
		ExpiresAt: expiresAt,
	}, nil
}

// StartCleanup purges expired exports periodically until ctx ends.
func (s *ReportService) StartCleanup(ctx context.Context) {
	if s.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.exporter.Cleanup(s.cfg.ResultTTL)
				if err != nil {
					s.logger.Warn("export cleanup failed", zap.Error(err))
					continue
				}
				if len(removed) > 0 {
					s.logger.Info("expired exports removed", zap.Int("count", len(removed)))
				}
			}
		}
	}()
}

// ReportWorker bridges queue jobs to ExportService.
type ReportWorker struct {
	repo     reportStore
	exporter exportGenerator
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewReportWorker constructs a worker.
func NewReportWorker(repo reportStore, exporter exportGenerator, metrics *MetricsService, logger *zap.Logger) *ReportWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportWorker{repo: repo, exporter: exporter, metrics: metrics, logger: logger}
}

// Handle processes a queue job. Returning an error lets the queue retry it.
func (w *ReportWorker) Handle(ctx context.Context, job jobs.Job) error {
	record, err := w.repo.FindJob(job.ID)
	if err != nil {
		return err
	}
	if err := w.repo.UpdateJobStatus(job.ID, models.ReportStatusProcessing, 10); err != nil {
		return err
	}
	result, err := w.exporter.Generate(ctx, &record)
	if err != nil {
		if updateErr := w.repo.UpdateJobStatus(job.ID, models.ReportStatusQueued, 0); updateErr != nil {
			w.logger.Warn("failed to requeue report job", zap.String("job_id", job.ID), zap.Error(updateErr))
		}
		return err
	}
	if err := w.repo.MarkFinished(job.ID, result.URL, time.Now().UTC()); err != nil {
		return err
	}
	w.metrics.RecordReportJob(models.ReportStatusFinished)
	w.logger.Info("report generated", zap.String("job_id", job.ID), zap.String("path", result.RelativePath))
	return nil
}

// Fail marks a job failed once the queue gives up on it.
func (w *ReportWorker) Fail(job jobs.Job, err error) {
	if markErr := w.repo.MarkFailed(job.ID, err.Error(), time.Now().UTC()); markErr != nil {
		w.logger.Warn("failed to mark report job failed", zap.String("job_id", job.ID), zap.Error(markErr))
	}
	w.metrics.RecordReportJob(models.ReportStatusFailed)
}
