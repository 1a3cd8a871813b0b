package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/pkg/export"
	"github.com/noah-isme/campus-desk-api/pkg/storage"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ReportSources are the stores a report can read from.
type ReportSources struct {
	Users     interface{ List() []models.User }
	Lecturers interface{ List() []models.Lecturer }
	Rooms     interface{ List() []models.Room }
	Requests  interface {
		List(filter models.RequestFilter) []models.Request
	}
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	RelativePath string
	Token        string
	URL          string
	Format       models.ReportFormat
	ExpiresAt    time.Time
}

// ExportService builds report datasets and persists rendered files.
type ExportService struct {
	sources ReportSources
	storage fileStorage
	csv     renderer
	pdf     renderer
	signer  *storage.SignedURLSigner
	logger  *zap.Logger
	cfg     ExportConfig
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(sources ReportSources, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		sources: sources,
		storage: store,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		signer:  signer,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Render builds and renders a report without storing it.
func (s *ExportService) Render(ctx context.Context, reportID string, format models.ReportFormat) ([]byte, error) {
	dataset, err := s.BuildDataset(ctx, reportID)
	if err != nil {
		return nil, err
	}
	switch format {
	case models.ReportFormatCSV:
		return s.csv.Render(dataset)
	case models.ReportFormatPDF:
		return s.pdf.Render(dataset)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// Generate renders the job's report, stores it and signs a download URL.
func (s *ExportService) Generate(ctx context.Context, job *models.ReportJob) (*ExportResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job nil")
	}
	payload, err := s.Render(ctx, job.ReportID, job.Format)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_%s.%s", job.ReportID, s.now().UTC().Format("20060102_150405"), job.Format)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	return &ExportResult{
		RelativePath: relPath,
		Token:        token,
		URL:          fmt.Sprintf("%s/export/%s", prefix, token),
		Format:       job.Format,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

// BuildDataset assembles the rows of a catalog report.
func (s *ExportService) BuildDataset(ctx context.Context, reportID string) (export.Dataset, error) {
	switch reportID {
	case "user-report":
		return s.userDataset(), nil
	case "lecturer-report":
		return s.lecturerDataset(), nil
	case "building-report":
		return s.buildingDataset(), nil
	case "student-report":
		return s.studentDataset(), nil
	default:
		return export.Dataset{}, fmt.Errorf("unsupported report %s", reportID)
	}
}

func (s *ExportService) userDataset() export.Dataset {
	ds := export.Dataset{
		Title:   "User Activity Report",
		Headers: []string{"ID", "Name", "Email", "Role", "Status", "Last Active"},
	}
	for _, u := range s.sources.Users.List() {
		ds.Rows = append(ds.Rows, map[string]string{
			"ID": u.ID, "Name": u.Name, "Email": u.Email,
			"Role": string(u.Role), "Status": string(u.Status), "Last Active": u.LastActive,
		})
	}
	return ds
}

func (s *ExportService) lecturerDataset() export.Dataset {
	ds := export.Dataset{
		Title:   "Lecturer Allocation Report",
		Headers: []string{"Employee ID", "Name", "Email", "Department"},
	}
	for _, l := range s.sources.Lecturers.List() {
		ds.Rows = append(ds.Rows, map[string]string{
			"Employee ID": l.EmployeeID, "Name": l.Name, "Email": l.Email, "Department": l.Department,
		})
	}
	return ds
}

func (s *ExportService) buildingDataset() export.Dataset {
	ds := export.Dataset{
		Title:   "Building Usage Report",
		Headers: []string{"Building", "Rooms", "Available", "Capacity", "Utilization"},
	}
	type usage struct{ rooms, available, capacity int }
	order := []string{}
	totals := map[string]*usage{}
	for _, r := range s.sources.Rooms.List() {
		u, ok := totals[r.Building]
		if !ok {
			u = &usage{}
			totals[r.Building] = u
			order = append(order, r.Building)
		}
		u.rooms++
		u.capacity += r.Capacity
		if r.IsAvailable {
			u.available++
		}
	}
	for _, building := range order {
		u := totals[building]
		ds.Rows = append(ds.Rows, map[string]string{
			"Building":    building,
			"Rooms":       strconv.Itoa(u.rooms),
			"Available":   strconv.Itoa(u.available),
			"Capacity":    strconv.Itoa(u.capacity),
			"Utilization": fmt.Sprintf("%d%%", (u.rooms-u.available)*100/u.rooms),
		})
	}
	return ds
}

func (s *ExportService) studentDataset() export.Dataset {
	ds := export.Dataset{
		Title:   "Student Engagement Report",
		Headers: []string{"Student ID", "Name", "Requests", "Bookings", "Maintenance"},
	}
	type engagement struct {
		name                         string
		total, bookings, maintenance int
	}
	order := []string{}
	byStudent := map[string]*engagement{}
	for _, r := range s.sources.Requests.List(models.RequestFilter{}) {
		e, ok := byStudent[r.UserID]
		if !ok {
			e = &engagement{name: r.RequestedBy}
			byStudent[r.UserID] = e
			order = append(order, r.UserID)
		}
		e.total++
		if r.Type == models.RequestTypeBooking {
			e.bookings++
		} else {
			e.maintenance++
		}
	}
	for _, id := range order {
		e := byStudent[id]
		ds.Rows = append(ds.Rows, map[string]string{
			"Student ID":  id,
			"Name":        e.name,
			"Requests":    strconv.Itoa(e.total),
			"Bookings":    strconv.Itoa(e.bookings),
			"Maintenance": strconv.Itoa(e.maintenance),
		})
	}
	return ds
}
