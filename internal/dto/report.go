package dto

import "github.com/noah-isme/campus-desk-api/internal/models"

// ReportRequest captures POST /reports/generate payload.
type ReportRequest struct {
	ReportID string              `json:"report_id" validate:"required"`
	Format   models.ReportFormat `json:"format" validate:"required,oneof=csv pdf"`
}

// ReportJobResponse is returned after enqueueing a report.
type ReportJobResponse struct {
	ID       string              `json:"id"`
	Status   models.ReportStatus `json:"status"`
	Progress int                 `json:"progress"`
}
