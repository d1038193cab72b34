package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pavel-webdev/file-organizer/models"
)

// Options are the per-run parameters set from the command line.
type Options struct {
	SourceDir string
	TargetDir string // empty: "<source>_organized" next to the source
	Recursive bool
	DryRun    bool
}

// Run executes one organization run: scan, classify, copy, metadata,
// catalog, report.
func Run(opts Options, cfg *models.AppConfig) (models.Report, error) {
	var report models.Report

	sourceDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return report, fmt.Errorf("failed to resolve source path: %w", err)
	}

	// Pre-flight: a missing source aborts before any side effect.
	srcInfo, err := os.Stat(sourceDir)
	if err != nil {
		return report, fmt.Errorf("source directory %s does not exist", opts.SourceDir)
	}
	if !srcInfo.IsDir() {
		return report, fmt.Errorf("%s is not a directory", opts.SourceDir)
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = filepath.Join(filepath.Dir(sourceDir), filepath.Base(sourceDir)+"_organized")
	}
	targetDir, err = filepath.Abs(targetDir)
	if err != nil {
		return report, fmt.Errorf("failed to resolve target path: %w", err)
	}

	logPath := ""
	if !opts.DryRun {
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return report, fmt.Errorf("failed to create target directory: %w", err)
		}
		logPath = filepath.Join(targetDir, cfg.Organizer.LogFile)
	}

	logger, err := NewRunLogger(logPath)
	if err != nil {
		return report, err
	}
	defer logger.Close()

	logger.Log("Organizing files from: %s", sourceDir)
	logger.Log("Target directory: %s", targetDir)
	if opts.DryRun {
		logger.Log("DRY RUN: nothing will be copied")
	}

	classifier := NewClassifier(cfg.Rules)
	metaDir := filepath.Join(targetDir, cfg.Organizer.MetadataDir)

	organizer := NewOrganizer(sourceDir, targetDir, opts.Recursive, opts.DryRun, classifier, logger, metaDir)
	if err := organizer.Run(); err != nil {
		return report, err
	}

	report = BuildReport(sourceDir, targetDir, organizer.Stats())

	if !opts.DryRun {
		reportPath := filepath.Join(targetDir, cfg.Organizer.ReportFile)
		if err := WriteReport(reportPath, report); err != nil {
			return report, err
		}
		logger.Log("Report saved: %s", reportPath)

		catalog, err := OpenCatalog(filepath.Join(targetDir, cfg.Organizer.CatalogFile))
		if err != nil {
			return report, err
		}
		defer catalog.Close()

		if _, err := catalog.RecordRun(context.Background(), report, organizer.OrganizedFiles()); err != nil {
			return report, fmt.Errorf("failed to record run in catalog: %w", err)
		}
	}

	return report, nil
}
