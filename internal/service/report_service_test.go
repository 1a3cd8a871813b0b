package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
	"github.com/noah-isme/campus-desk-api/pkg/jobs"
	"github.com/noah-isme/campus-desk-api/pkg/storage"
)

type reportFixture struct {
	service  *ReportService
	exporter *ExportService
	worker   *ReportWorker
	repo     *repository.ReportRepository
	queue    *jobs.Queue
}

func newReportFixture(t *testing.T) *reportFixture {
	seed := loadSeed(t)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exporter := NewExportService(ReportSources{
		Users:     repository.NewUserRepository(seed.Users),
		Lecturers: repository.NewLecturerRepository(seed.Lecturers),
		Rooms:     repository.NewRoomRepository(seed.Rooms),
		Requests:  repository.NewRequestRepository(seed.Requests),
	}, store, storage.NewSignedURLSigner("test-secret", time.Hour), ExportConfig{APIPrefix: "/api/v1"}, nil)
	repo := repository.NewReportRepository(seed.Reports)
	worker := NewReportWorker(repo, exporter, nil, nil)
	queue := jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{Workers: 1, MaxRetries: 0, OnFailure: worker.Fail})
	queue.Start(context.Background())
	t.Cleanup(queue.Stop)
	return &reportFixture{
		service:  NewReportService(repo, queue, exporter, nil, nil, ReportServiceConfig{}),
		exporter: exporter,
		worker:   worker,
		repo:     repo,
		queue:    queue,
	}
}

func TestReportJobGeneratesDownload(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	resp, err := f.service.CreateJob(ctx, dto.ReportRequest{ReportID: "user-report", Format: models.ReportFormatCSV})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusQueued, resp.Status)

	var job *models.ReportJob
	require.Eventually(t, func() bool {
		job, err = f.service.GetStatus(ctx, resp.ID)
		return err == nil && job.Status == models.ReportStatusFinished
	}, 2*time.Second, 10*time.Millisecond)
	require.NotNil(t, job.ResultURL)
	assert.True(t, strings.HasPrefix(*job.ResultURL, "/api/v1/export/"))

	token := strings.TrimPrefix(*job.ResultURL, "/api/v1/export/")
	download, err := f.service.ResolveDownload(ctx, token)
	require.NoError(t, err)
	defer download.File.Close()
	body, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "ID,Name,Email,Role,Status,Last Active\nUSR001,John Smith"))
	assert.Equal(t, models.ReportFormatCSV, download.Format)

	def, err := f.repo.Definition("user-report")
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), def.LastGenerated)
}

func TestReportCreateJobValidation(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateJob(ctx, dto.ReportRequest{ReportID: "user-report", Format: "xlsx"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = f.service.CreateJob(ctx, dto.ReportRequest{ReportID: "grades", Format: models.ReportFormatPDF})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = f.service.ResolveDownload(ctx, "garbage")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestExportDatasets(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	building, err := f.exporter.BuildDataset(ctx, "building-report")
	require.NoError(t, err)
	require.Len(t, building.Rows, 5)
	assert.Equal(t, "Building B", building.Rows[1]["Building"])
	assert.Equal(t, "1", building.Rows[1]["Available"])
	assert.Equal(t, "50%", building.Rows[1]["Utilization"])

	students, err := f.exporter.BuildDataset(ctx, "student-report")
	require.NoError(t, err)
	assert.Len(t, students.Rows, 7)

	pdf, err := f.exporter.Render(ctx, "lecturer-report", models.ReportFormatPDF)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	_, err = f.exporter.BuildDataset(ctx, "unknown")
	assert.Error(t, err)
}

func TestReportWorkerFailMarksJob(t *testing.T) {
	f := newReportFixture(t)
	f.repo.CreateJob(models.ReportJob{ID: "job-x", ReportID: "user-report", Status: models.ReportStatusQueued})
	f.worker.Fail(jobs.Job{ID: "job-x"}, errors.New("disk full"))

	job, err := f.service.GetStatus(context.Background(), "job-x")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "disk full", *job.ErrorMessage)
}
