package repository

import (
	"sync"
	"time"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

// ReportRepository tracks report job metadata and the catalog.
type ReportRepository struct {
	mu      sync.RWMutex
	catalog []models.ReportDefinition
	jobs    map[string]models.ReportJob
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(catalog []models.ReportDefinition) *ReportRepository {
	return &ReportRepository{
		catalog: append([]models.ReportDefinition(nil), catalog...),
		jobs:    make(map[string]models.ReportJob),
	}
}

// Catalog lists available reports.
func (r *ReportRepository) Catalog() []models.ReportDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ReportDefinition(nil), r.catalog...)
}

// Definition returns a catalog entry by id.
func (r *ReportRepository) Definition(id string) (models.ReportDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, def := range r.catalog {
		if def.ID == id {
			return def, nil
		}
	}
	return models.ReportDefinition{}, ErrNotFound
}

// CreateJob stores a new job.
func (r *ReportRepository) CreateJob(job models.ReportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

// FindJob returns a job by id.
func (r *ReportRepository) FindJob(id string) (models.ReportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return models.ReportJob{}, ErrNotFound
	}
	return job, nil
}

// UpdateJobStatus records progress for a job.
func (r *ReportRepository) UpdateJobStatus(id string, status models.ReportStatus, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	job.Progress = progress
	r.jobs[id] = job
	return nil
}

// MarkFinished stores the download URL and stamps the catalog entry.
func (r *ReportRepository) MarkFinished(id, resultURL string, finishedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = models.ReportStatusFinished
	job.Progress = 100
	job.ResultURL = &resultURL
	job.FinishedAt = &finishedAt
	r.jobs[id] = job
	for i := range r.catalog {
		if r.catalog[i].ID == job.ReportID {
			r.catalog[i].LastGenerated = finishedAt.Format("2006-01-02")
		}
	}
	return nil
}

// MarkFailed records a terminal failure.
func (r *ReportRepository) MarkFailed(id, message string, finishedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = models.ReportStatusFailed
	job.ErrorMessage = &message
	job.FinishedAt = &finishedAt
	r.jobs[id] = job
	return nil
}
