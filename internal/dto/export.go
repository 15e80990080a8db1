package dto

import (
	"time"

	"github.com/noah-isme/shm-health-api/internal/models"
)

// ExportRequest queues an asynchronous export.
type ExportRequest struct {
	Type      string `json:"type" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Format    string `json:"format" validate:"required"`
}

// ExportStatusResponse reports job progress. DownloadURL and ExpiresAt are
// only set once the job has finished.
type ExportStatusResponse struct {
	ID          string              `json:"id"`
	Type        models.ExportType   `json:"type"`
	StudentID   string              `json:"student_id"`
	Format      models.ExportFormat `json:"format"`
	Status      models.ExportStatus `json:"status"`
	Error       string              `json:"error,omitempty"`
	DownloadURL string              `json:"download_url,omitempty"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
