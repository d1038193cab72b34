package models

import "time"

// RunStats accumulates counters while a run is in progress.
type RunStats struct {
	TotalFiles int64
	Processed  int64
	Skipped    int64
	Errors     int64
	Categories map[string]int64
	StartTime  time.Time
	EndTime    time.Time
}

// ReportSummary is the "summary" block of organization_report.json.
type ReportSummary struct {
	SourceDirectory       string  `json:"source_directory"`
	TargetDirectory       string  `json:"target_directory"`
	StartTime             string  `json:"start_time"`
	EndTime               string  `json:"end_time"`
	DurationSeconds       float64 `json:"duration_seconds"`
	TotalFilesFound       int64   `json:"total_files_found"`
	SuccessfullyProcessed int64   `json:"successfully_processed"`
	SkippedFiles          int64   `json:"skipped_files"`
	Errors                int64   `json:"errors"`
}

// Report is the run summary persisted at the target root.
type Report struct {
	Summary    ReportSummary    `json:"summary"`
	Categories map[string]int64 `json:"categories"`
	Timestamp  string           `json:"timestamp"`
}

// RunEntry is one row of the catalog run history.
type RunEntry struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	TotalFound int64
	Processed  int64
	Skipped    int64
	Errors     int64
	Report     *Report
}

// CategoryCount is a per-label aggregate over the catalog.
type CategoryCount struct {
	Label string
	Count int64
	Size  int64
}
