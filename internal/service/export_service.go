package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/shm-health-api/internal/dto"
	"github.com/noah-isme/shm-health-api/internal/models"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/export"
	"github.com/noah-isme/shm-health-api/pkg/jobs"
)

type vaccinationHistoryReader interface {
	ListRecordsByStudent(ctx context.Context, studentID string) ([]models.VaccinationRecord, error)
}

type exportStore interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
}

type downloadSigner interface {
	Generate(jobID, relPath string) (string, time.Time, error)
	Parse(token string) (jobID, relPath string, expiresAt time.Time, err error)
}

var vaccinationExportHeaders = []string{"id", "name", "vaccination_date", "status", "location", "campaign_id"}

// ExportService runs asynchronous vaccination-history exports. Jobs live in
// memory; the process owns the whole lifecycle.
type ExportService struct {
	records  vaccinationHistoryReader
	students studentReader
	store    exportStore
	signer   downloadSigner
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	metrics  *MetricsService

	queue     *jobs.Queue
	validator *validator.Validate
	logger    *zap.Logger

	mu   sync.RWMutex
	jobs map[string]*models.ExportJob
}

// NewExportService constructs ExportService and its worker queue. Call
// Start before enqueueing.
func NewExportService(records vaccinationHistoryReader, students studentReader, store exportStore, signer downloadSigner,
	metrics *MetricsService, queueCfg jobs.QueueConfig, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ExportService{
		records:   records,
		students:  students,
		store:     store,
		signer:    signer,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		jobs:      make(map[string]*models.ExportJob),
	}
	queueCfg.Logger = logger
	s.queue = jobs.NewQueue("exports", s.process, queueCfg)
	return s
}

// Start launches the worker queue.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the worker queue.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// CreateJob validates the request, registers the job and enqueues it.
func (s *ExportService) CreateJob(ctx context.Context, req dto.ExportRequest) (*models.ExportJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	if models.ExportType(req.Type) != models.ExportTypeVaccinationRecords {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export type %s", req.Type))
	}
	format := models.ExportFormat(req.Format)
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %s", req.Format))
	}
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	now := time.Now().UTC()
	job := &models.ExportJob{
		ID:        uuid.NewString(),
		Type:      models.ExportTypeVaccinationRecords,
		StudentID: req.StudentID,
		Format:    format,
		Status:    models.ExportStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Type), Payload: job.ID}); err != nil {
		s.setFailed(job.ID, err)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export")
	}
	s.logger.Sugar().Infow("export queued", "job_id", job.ID, "student_id", job.StudentID, "format", job.Format)
	return job, nil
}

// GetStatus reports job progress, including a signed download URL once the
// job has finished.
func (s *ExportService) GetStatus(jobID string) (*dto.ExportStatusResponse, error) {
	s.mu.RLock()
	job, ok := s.jobs[jobID]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}

	resp := &dto.ExportStatusResponse{
		ID:        job.ID,
		Type:      job.Type,
		StudentID: job.StudentID,
		Format:    job.Format,
		Status:    job.Status,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
	if job.Status == models.ExportStatusFinished && job.FilePath != "" {
		token, expiresAt, err := s.signer.Generate(job.ID, job.FilePath)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
		}
		resp.DownloadURL = fmt.Sprintf("/exports/download/%s", token)
		resp.ExpiresAt = &expiresAt
	}
	return resp, nil
}

// ResolveDownload validates the token and opens the export file. The caller
// closes the handle.
func (s *ExportService) ResolveDownload(token string) (*os.File, string, error) {
	jobID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid download token")
	}
	s.mu.RLock()
	job, ok := s.jobs[jobID]
	s.mu.RUnlock()
	if !ok || job.Status != models.ExportStatusFinished || job.FilePath != relPath {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export not found")
	}
	file, err := s.store.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export")
	}
	return file, relPath, nil
}

func (s *ExportService) process(ctx context.Context, job jobs.Job) error {
	jobID, _ := job.Payload.(string)
	s.setStatus(jobID, models.ExportStatusProcessing)

	s.mu.RLock()
	stored, ok := s.jobs[jobID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown export job %s", jobID)
	}

	records, err := s.records.ListRecordsByStudent(ctx, stored.StudentID)
	if err != nil {
		s.setFailed(jobID, err)
		return err
	}
	dataset := buildVaccinationDataset(records)

	var rendered []byte
	switch stored.Format {
	case models.ExportFormatPDF:
		rendered, err = s.pdf.Render(dataset, "Vaccination Records")
	default:
		rendered, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.setFailed(jobID, err)
		return err
	}

	filename := fmt.Sprintf("%s/%s.%s", stored.StudentID, jobID, stored.Format)
	relPath, err := s.store.Save(filename, rendered)
	if err != nil {
		s.setFailed(jobID, err)
		return err
	}

	s.mu.Lock()
	stored.FilePath = relPath
	stored.Status = models.ExportStatusFinished
	stored.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()
	s.metrics.CountExportJob(string(models.ExportStatusFinished))
	s.logger.Sugar().Infow("export finished", "job_id", jobID, "path", relPath)
	return nil
}

func (s *ExportService) setStatus(jobID string, status models.ExportStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[jobID]; ok {
		job.Status = status
		job.UpdatedAt = time.Now().UTC()
	}
}

func (s *ExportService) setFailed(jobID string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[jobID]; ok {
		job.Status = models.ExportStatusFailed
		job.Error = cause.Error()
		job.UpdatedAt = time.Now().UTC()
	}
	s.metrics.CountExportJob(string(models.ExportStatusFailed))
}

func buildVaccinationDataset(records []models.VaccinationRecord) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	for _, record := range records {
		row := map[string]string{
			"id":               record.ID,
			"name":             record.Name,
			"vaccination_date": record.VaccinationDate.Format("2006-01-02"),
			"status":           record.Status,
		}
		if record.Location != nil {
			row["location"] = *record.Location
		}
		if record.CampaignID != nil {
			row["campaign_id"] = *record.CampaignID
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: vaccinationExportHeaders, Rows: rows}
}
