package models

import "time"

// FileInfo is everything the classifier can tell about a single filename.
// Date is empty when no date pattern matched, NewName is empty until the
// organizer resolves a unique destination name.
type FileInfo struct {
	OriginalName string `json:"original_name"`
	Subject      string `json:"subject"`
	Category     string `json:"category"`
	Date         string `json:"date,omitempty"`
	FileType     string `json:"file_type"`
	NewName      string `json:"new_name,omitempty"`
}

// OrganizedFile is a catalog row describing one file placed into the
// target tree during a run.
type OrganizedFile struct {
	ID           int64     `db:"id"`
	RunID        int64     `db:"run_id"`
	OriginalName string    `db:"original_name"`
	NewName      string    `db:"new_name"`
	Subject      string    `db:"subject"`
	Category     string    `db:"category"`
	Date         string    `db:"date"`
	FileType     string    `db:"file_type"`
	Size         int64     `db:"size"`
	SourcePath   string    `db:"source_path"`
	DestPath     string    `db:"dest_path"`
	OrganizedAt  time.Time `db:"organized_at"`
}
