package models

import "time"

// ExportStatus is the lifecycle of an export job.
type ExportStatus string

// Possible export statuses.
const (
	ExportStatusQueued     ExportStatus = "queued"
	ExportStatusProcessing ExportStatus = "processing"
	ExportStatusFinished   ExportStatus = "finished"
	ExportStatusFailed     ExportStatus = "failed"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

// Supported export formats.
const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportType names an exportable dataset.
type ExportType string

// Supported export types.
const (
	ExportTypeVaccinationRecords ExportType = "vaccination-records"
)

// ExportJob tracks an asynchronous export request.
type ExportJob struct {
	ID        string       `json:"id"`
	Type      ExportType   `json:"type"`
	StudentID string       `json:"student_id"`
	Format    ExportFormat `json:"format"`
	Status    ExportStatus `json:"status"`
	FilePath  string       `json:"-"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
