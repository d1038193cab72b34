package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pavel-webdev/file-organizer/models"
)

// BuildReport turns accumulated run stats into the persisted report shape.
func BuildReport(sourceDir, targetDir string, stats models.RunStats) models.Report {
	duration := stats.EndTime.Sub(stats.StartTime)

	categories := make(map[string]int64, len(stats.Categories))
	for k, v := range stats.Categories {
		categories[k] = v
	}

	return models.Report{
		Summary: models.ReportSummary{
			SourceDirectory:       sourceDir,
			TargetDirectory:       targetDir,
			StartTime:             stats.StartTime.Format(time.RFC3339),
			EndTime:               stats.EndTime.Format(time.RFC3339),
			DurationSeconds:       duration.Seconds(),
			TotalFilesFound:       stats.TotalFiles,
			SuccessfullyProcessed: stats.Processed,
			SkippedFiles:          stats.Skipped,
			Errors:                stats.Errors,
		},
		Categories: categories,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
}

// WriteReport saves the report JSON at the given path.
func WriteReport(path string, report models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// PrintReport writes the human-readable summary to w.
func PrintReport(w io.Writer, report models.Report) {
	line := strings.Repeat("=", 50)

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "FILE ORGANIZATION REPORT")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Source directory: %s\n", report.Summary.SourceDirectory)
	fmt.Fprintf(w, "Target directory: %s\n", report.Summary.TargetDirectory)
	fmt.Fprintf(w, "Files found: %d\n", report.Summary.TotalFilesFound)
	fmt.Fprintf(w, "Successfully processed: %d\n", report.Summary.SuccessfullyProcessed)
	fmt.Fprintf(w, "Skipped: %d\n", report.Summary.SkippedFiles)
	fmt.Fprintf(w, "Errors: %d\n", report.Summary.Errors)
	fmt.Fprintf(w, "Elapsed: %.2f seconds\n", report.Summary.DurationSeconds)

	if len(report.Categories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Files per category:")

		labels := make([]string, 0, len(report.Categories))
		for label := range report.Categories {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(w, "  %s: %d files\n", label, report.Categories[label])
		}
	}

	fmt.Fprintln(w, line)
}
