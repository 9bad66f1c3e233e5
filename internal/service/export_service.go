package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/lms-go-api/internal/dto"
	"github.com/noah-isme/lms-go-api/internal/models"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
	"github.com/noah-isme/lms-go-api/pkg/export"
	"github.com/noah-isme/lms-go-api/pkg/jobs"
	"github.com/noah-isme/lms-go-api/pkg/storage"
)

type transcriptSource interface {
	UserGrades(ctx context.Context, universityID int64) ([]models.UserGrade, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// Transcript job statuses.
const (
	ExportStatusQueued     = "queued"
	ExportStatusProcessing = "processing"
	ExportStatusCompleted  = "completed"
	ExportStatusFailed     = "failed"
)

// ExportConfig tunes transcript export behaviour.
type ExportConfig struct {
	APIPrefix  string
	ResultTTL  time.Duration
	Workers    int
	MaxRetries int
}

// ExportService renders grade transcripts in the background. Job state is
// tracked in memory; download links are HMAC-signed and expire with the
// stored file.
type ExportService struct {
	grades  transcriptSource
	storage fileStorage
	csv     csvRenderer
	pdf     pdfRenderer
	signer  *storage.SignedURLSigner
	logger  *zap.Logger
	cfg     ExportConfig

	queue *jobs.Queue
	mu    sync.RWMutex
	state map[string]*dto.TranscriptExportJob
}

type exportPayload struct {
	JobID        string
	UniversityID int64
	Format       string
}

// NewExportService constructs an ExportService and its worker queue.
func NewExportService(grades transcriptSource, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	s := &ExportService{
		grades:  grades,
		storage: store,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		signer:  signer,
		logger:  logger,
		cfg:     cfg,
		state:   make(map[string]*dto.TranscriptExportJob),
	}
	s.queue = jobs.NewQueue("transcript-export", s.process, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})
	return s
}

// Start launches the export workers.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the export workers.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// Enqueue registers a transcript job and queues it for rendering.
func (s *ExportService) Enqueue(ctx context.Context, req dto.TranscriptExportRequest) (*dto.TranscriptExportJob, error) {
	format := strings.ToLower(req.Format)
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	job := &dto.TranscriptExportJob{
		JobID:  uuid.NewString(),
		Status: ExportStatusQueued,
		Format: format,
	}
	s.mu.Lock()
	s.state[job.JobID] = job
	s.mu.Unlock()

	err := s.queue.Enqueue(jobs.Job{
		ID:   job.JobID,
		Type: "transcript",
		Payload: exportPayload{
			JobID:        job.JobID,
			UniversityID: req.UniversityID,
			Format:       format,
		},
	})
	if err != nil {
		s.setFailure(job.JobID, err)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export")
	}

	snapshot := *job
	return &snapshot, nil
}

// Job returns the current state of an export job.
func (s *ExportService) Job(jobID string) (*dto.TranscriptExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.state[jobID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Export job not found")
	}
	snapshot := *job
	return &snapshot, nil
}

// Open validates a signed download token and opens the rendered file.
func (s *ExportService) Open(token string) (*os.File, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Export file not found")
	}
	return file, nil
}

// Cleanup removes rendered files older than the result TTL.
func (s *ExportService) Cleanup() {
	removed, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return
	}
	if len(removed) > 0 {
		s.logger.Info("export cleanup removed files", zap.Int("count", len(removed)))
	}
}

func (s *ExportService) process(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(exportPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", job.Payload)
	}
	s.setStatus(payload.JobID, ExportStatusProcessing)

	grades, err := s.grades.UserGrades(ctx, payload.UniversityID)
	if err != nil {
		s.setFailure(payload.JobID, err)
		return err
	}

	dataset := transcriptDataset(grades)
	var rendered []byte
	switch payload.Format {
	case "pdf":
		title := fmt.Sprintf("Grade Transcript %d", payload.UniversityID)
		rendered, err = s.pdf.Render(dataset, title)
	default:
		rendered, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.setFailure(payload.JobID, err)
		return err
	}

	filename := fmt.Sprintf("transcript_%d_%s.%s", payload.UniversityID, payload.JobID, payload.Format)
	relPath, err := s.storage.Save(filename, rendered)
	if err != nil {
		s.setFailure(payload.JobID, err)
		return err
	}

	token, expiresAt, err := s.signer.Generate(payload.JobID, relPath)
	if err != nil {
		s.setFailure(payload.JobID, err)
		return err
	}

	url := fmt.Sprintf("%s/exports/download?token=%s", strings.TrimRight(s.cfg.APIPrefix, "/"), token)
	s.mu.Lock()
	if st, ok := s.state[payload.JobID]; ok {
		st.Status = ExportStatusCompleted
		st.DownloadURL = &url
		st.ExpiresAt = &expiresAt
		st.Error = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *ExportService) setStatus(jobID, status string) {
	s.mu.Lock()
	if st, ok := s.state[jobID]; ok {
		st.Status = status
	}
	s.mu.Unlock()
}

func (s *ExportService) setFailure(jobID string, err error) {
	msg := err.Error()
	s.mu.Lock()
	if st, ok := s.state[jobID]; ok {
		st.Status = ExportStatusFailed
		st.Error = &msg
	}
	s.mu.Unlock()
}

// transcriptDataset flattens grade rows for rendering. Null components
// render as empty cells, never zeros.
func transcriptDataset(grades []models.UserGrade) export.Dataset {
	headers := []string{"Course_ID", "Section_ID", "Semester", "Course_Name", "Quiz_Grade", "Assignment_Grade", "Midterm_Grade", "Final_Grade", "Status", "Credits", "GPA"}
	rows := make([]map[string]string, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, map[string]string{
			"Course_ID":        cellString(g.CourseID),
			"Section_ID":       cellString(g.SectionID),
			"Semester":         cellString(g.Semester),
			"Course_Name":      cellString(g.CourseName),
			"Quiz_Grade":       cellFloat(g.QuizGrade),
			"Assignment_Grade": cellFloat(g.AssignmentGrade),
			"Midterm_Grade":    cellFloat(g.MidtermGrade),
			"Final_Grade":      cellFloat(g.FinalGrade),
			"Status":           cellString(g.Status),
			"Credits":          cellInt(g.Credits),
			"GPA":              cellFloat(g.GPA),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func cellString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cellFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func cellInt(i *int64) string {
	if i == nil {
		return ""
	}
	return strconv.FormatInt(*i, 10)
}
