package dto

import "time"

// TranscriptExportRequest asks for a grade transcript in the given format.
type TranscriptExportRequest struct {
	UniversityID int64  `json:"university_id" validate:"required"`
	Format       string `json:"format" validate:"required,oneof=csv pdf"`
}

// TranscriptExportJob reports the state of an export job.
type TranscriptExportJob struct {
	JobID       string     `json:"job_id"`
	Status      string     `json:"status"`
	Format      string     `json:"format"`
	DownloadURL *string    `json:"download_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
}
