package domain

import "time"

// File job operations.
const (
	OpAddPageNumbers = "add-page-numbers"
	OpDeletePages    = "delete-pages"
	OpRotate         = "rotate"
	OpProtect        = "protect"
	OpJPGToPDF       = "jpg-to-pdf"
)

type JobStatus string

const (
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// FileJob is a simulated file conversion. Output is a placeholder, never a
// transformed document.
type FileJob struct {
	ID         string            `json:"id"`
	Operation  string            `json:"operation"`
	SourceName string            `json:"source_name"`
	SourceSize int64             `json:"source_size"`
	OutputName string            `json:"output_name"`
	Options    map[string]string `json:"options,omitempty"`
	Status     JobStatus         `json:"status"`
	Progress   int               `json:"progress"`
	CreatedAt  time.Time         `json:"created_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
	Summary    string            `json:"summary"`
}
