package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_EndToEnd(t *testing.T) {
	source := writeSourceFiles(t,
		"math_lecture_2024-03-15.pptx",
		"задание_по_физике.pdf",
		"desktop.ini",
	)
	target := filepath.Join(t.TempDir(), "organized")

	cfg := DefaultConfig()
	report, err := Run(Options{SourceDir: source, TargetDir: target}, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Summary.TotalFilesFound != 3 {
		t.Errorf("total found: got %d, want 3", report.Summary.TotalFilesFound)
	}
	if report.Summary.SuccessfullyProcessed != 2 {
		t.Errorf("processed: got %d, want 2", report.Summary.SuccessfullyProcessed)
	}
	if report.Summary.SkippedFiles != 1 {
		t.Errorf("skipped: got %d, want 1", report.Summary.SkippedFiles)
	}

	// Run artifacts at the target root.
	for _, name := range []string{"organization_report.json", "organizer.log", "catalog.db"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Errorf("expected %s at target root: %v", name, err)
		}
	}

	// The run landed in the catalog.
	catalog, err := OpenCatalog(filepath.Join(target, "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	defer catalog.Close()

	files, err := catalog.ListFiles(FileFilter{})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("catalog rows: got %d, want 2", len(files))
	}

	history, err := catalog.RunHistory(5)
	if err != nil {
		t.Fatalf("RunHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("run history: got %d entries, want 1", len(history))
	}

	var out bytes.Buffer
	PrintReport(&out, report)
	for _, want := range []string{"FILE ORGANIZATION REPORT", "Files found: 3", "practice: 1 files"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("console report missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_MissingSource(t *testing.T) {
	target := filepath.Join(t.TempDir(), "organized")

	_, err := Run(Options{
		SourceDir: filepath.Join(t.TempDir(), "does-not-exist"),
		TargetDir: target,
	}, DefaultConfig())
	if err == nil {
		t.Fatalf("expected an error for a missing source")
	}

	// Pre-flight failure means no side effects.
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Errorf("target directory created despite missing source")
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	source := writeSourceFiles(t, "math_lecture.pdf")
	target := filepath.Join(t.TempDir(), "organized")

	report, err := Run(Options{SourceDir: source, TargetDir: target, DryRun: true}, DefaultConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Summary.SuccessfullyProcessed != 1 {
		t.Errorf("processed: got %d, want 1", report.Summary.SuccessfullyProcessed)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("dry run must not create the target directory")
	}
}
