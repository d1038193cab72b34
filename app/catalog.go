package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pavel-webdev/file-organizer/models"

	_ "modernc.org/sqlite"
)

// Catalog is the persistent record of everything ever organized into a
// target directory, kept in an sqlite database at the target root.
type Catalog struct {
	db *sql.DB
}

func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode = WAL: %w", err)
	}
	db.Exec(`PRAGMA busy_timeout = 5000`)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// RecordRun stores the run row and all its file rows in one transaction.
// Returns the run id.
func (c *Catalog) RecordRun(ctx context.Context, report models.Report, files []models.OrganizedFile) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal report: %w", err)
	}

	started, _ := time.Parse(time.RFC3339, report.Summary.StartTime)
	finished, _ := time.Parse(time.RFC3339, report.Summary.EndTime)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO runs(started_at, finished_at, total_found, processed, skipped, errors, report_json)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, started.Unix(), finished.Unix(),
		report.Summary.TotalFilesFound, report.Summary.SuccessfullyProcessed,
		report.Summary.SkippedFiles, report.Summary.Errors, string(reportJSON))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO files(run_id, original_name, new_name, subject, category, date, file_type, size, source_path, dest_path, organized_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(dest_path) DO NOTHING;
    `)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, f := range files {
		_, err = stmt.ExecContext(ctx,
			runID, f.OriginalName, f.NewName, f.Subject, f.Category, f.Date,
			f.FileType, f.Size, f.SourcePath, f.DestPath, f.OrganizedAt.Unix())
		if err != nil {
			return 0, fmt.Errorf("failed to insert file %s: %w", f.NewName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return runID, nil
}

// FileFilter narrows ListFiles results. Zero values mean no constraint.
type FileFilter struct {
	Category string
	Subject  string
	FileType string
	Query    string // substring match on original and new name
	Limit    int
}

func (c *Catalog) ListFiles(filter FileFilter) ([]models.OrganizedFile, error) {
	query := `
        SELECT id, run_id, original_name, new_name, subject, category, date, file_type, size, source_path, dest_path, organized_at
        FROM files
        WHERE 1=1`
	var args []any

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Subject != "" {
		query += ` AND subject = ?`
		args = append(args, filter.Subject)
	}
	if filter.FileType != "" {
		query += ` AND file_type = ?`
		args = append(args, filter.FileType)
	}
	if filter.Query != "" {
		query += ` AND (original_name LIKE ? OR new_name LIKE ?)`
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY organized_at DESC, id DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.OrganizedFile
	for rows.Next() {
		var f models.OrganizedFile
		var organized int64
		if err := rows.Scan(&f.ID, &f.RunID, &f.OriginalName, &f.NewName, &f.Subject,
			&f.Category, &f.Date, &f.FileType, &f.Size, &f.SourcePath, &f.DestPath, &organized); err != nil {
			return nil, err
		}
		f.OrganizedAt = time.Unix(organized, 0)
		result = append(result, f)
	}
	return result, rows.Err()
}

// CategoryStats aggregates file counts and sizes per category.
func (c *Catalog) CategoryStats() ([]models.CategoryCount, error) {
	return c.labelStats("category")
}

// FileTypeStats aggregates file counts and sizes per file type.
func (c *Catalog) FileTypeStats() ([]models.CategoryCount, error) {
	return c.labelStats("file_type")
}

func (c *Catalog) labelStats(column string) ([]models.CategoryCount, error) {
	// column is one of two fixed identifiers, never user input
	rows, err := c.db.Query(`
        SELECT ` + column + `, COUNT(*), COALESCE(SUM(size), 0)
        FROM files
        GROUP BY ` + column + `
        ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CategoryCount
	for rows.Next() {
		var s models.CategoryCount
		if err := rows.Scan(&s.Label, &s.Count, &s.Size); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// RunHistory returns the most recent runs, newest first.
func (c *Catalog) RunHistory(limit int) ([]models.RunEntry, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := c.db.Query(`
        SELECT id, started_at, finished_at, total_found, processed, skipped, errors, report_json
        FROM runs
        ORDER BY started_at DESC, id DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RunEntry
	for rows.Next() {
		var e models.RunEntry
		var started, finished int64
		var reportJSON string
		if err := rows.Scan(&e.ID, &started, &finished, &e.TotalFound, &e.Processed,
			&e.Skipped, &e.Errors, &reportJSON); err != nil {
			return nil, err
		}
		e.StartedAt = time.Unix(started, 0)
		e.FinishedAt = time.Unix(finished, 0)

		var report models.Report
		if err := json.Unmarshal([]byte(reportJSON), &report); err == nil {
			e.Report = &report
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
