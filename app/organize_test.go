package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeSourceFiles creates a source directory with the given file names.
func writeSourceFiles(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	return dir
}

func newTestOrganizer(t *testing.T, sourceDir, targetDir string, recursive, dryRun bool) *Organizer {
	t.Helper()

	logger, err := NewRunLogger("")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	o := NewOrganizer(sourceDir, targetDir, recursive, dryRun,
		NewClassifier(DefaultRules()), logger, filepath.Join(targetDir, "_metadata"))
	o.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return o
}

func TestOrganizer_Run(t *testing.T) {
	source := writeSourceFiles(t,
		"math_lecture_2024-03-15.pptx",
		"Лекция_математика_15.03.2024.pptx",
		"web_project.html",
		"randomfile.xyz",
		".hidden",
		"thumbs.db",
	)
	target := filepath.Join(t.TempDir(), "organized")

	o := newTestOrganizer(t, source, target, false, false)
	if err := o.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	stats := o.Stats()
	if stats.TotalFiles != 6 {
		t.Errorf("total files: got %d, want 6", stats.TotalFiles)
	}
	if stats.Processed != 4 {
		t.Errorf("processed: got %d, want 4", stats.Processed)
	}
	if stats.Skipped != 2 {
		t.Errorf("skipped: got %d, want 2", stats.Skipped)
	}
	if stats.Errors != 0 {
		t.Errorf("errors: got %d, want 0", stats.Errors)
	}
	if stats.Categories["lecture"] != 2 {
		t.Errorf("lecture count: got %d, want 2", stats.Categories["lecture"])
	}

	// Both lecture files classify identically, so the collision loop must
	// hand out counters 01 and 02. Files are processed in sorted name order,
	// so the ASCII name comes first.
	for _, want := range []string{
		"lecture/math_lecture_2024-03-15_presentations_01.pptx",
		"lecture/math_lecture_2024-03-15_presentations_02.pptx",
		"project/web_project_2024-06-01_code_01.html",
		"other/unknown_other_2024-06-01_other_01.xyz",
	} {
		if _, err := os.Stat(filepath.Join(target, want)); err != nil {
			t.Errorf("expected organized file %s: %v", want, err)
		}
	}

	// Skipped files never reach the destination tree.
	for _, name := range []string{".hidden", "thumbs.db"} {
		matches, _ := filepath.Glob(filepath.Join(target, "*", "*"+name+"*"))
		if len(matches) != 0 {
			t.Errorf("skipped file %s found in destination: %v", name, matches)
		}
	}

	// Metadata is written per processed file.
	metas, err := filepath.Glob(filepath.Join(target, "_metadata", "*.json"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(metas) != 4 {
		t.Errorf("metadata files: got %d, want 4", len(metas))
	}

	info, err := LoadFileInfo(filepath.Join(target, "_metadata", "math_lecture_2024-03-15_presentations_02.json"))
	if err != nil {
		t.Fatalf("failed to load metadata: %v", err)
	}
	if info.OriginalName != "Лекция_математика_15.03.2024.pptx" {
		t.Errorf("metadata original name: got %q", info.OriginalName)
	}

	// Copied content survives.
	data, err := os.ReadFile(filepath.Join(target, "other", "unknown_other_2024-06-01_other_01.xyz"))
	if err != nil {
		t.Fatalf("failed to read organized file: %v", err)
	}
	if string(data) != "content of randomfile.xyz" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestOrganizer_RerunDoesNotOverwrite(t *testing.T) {
	source := writeSourceFiles(t, "math_lecture_2024-03-15.pptx")
	target := filepath.Join(t.TempDir(), "organized")

	o := newTestOrganizer(t, source, target, false, false)
	if err := o.Run(); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	o2 := newTestOrganizer(t, source, target, false, false)
	if err := o2.Run(); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	// The second run must pick the next counter instead of overwriting.
	for _, want := range []string{
		"lecture/math_lecture_2024-03-15_presentations_01.pptx",
		"lecture/math_lecture_2024-03-15_presentations_02.pptx",
	} {
		if _, err := os.Stat(filepath.Join(target, want)); err != nil {
			t.Errorf("expected %s after rerun: %v", want, err)
		}
	}
}

func TestOrganizer_Recursive(t *testing.T) {
	source := writeSourceFiles(t, "math_lecture.pdf")
	sub := filepath.Join(source, "semester2")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "physics_lab.pdf"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	t.Run("top level only", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "organized")
		o := newTestOrganizer(t, source, target, false, false)
		if err := o.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if got := o.Stats().Processed; got != 1 {
			t.Errorf("processed: got %d, want 1", got)
		}
	})

	t.Run("recursive walks the subtree", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "organized")
		o := newTestOrganizer(t, source, target, true, false)
		if err := o.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if got := o.Stats().Processed; got != 2 {
			t.Errorf("processed: got %d, want 2", got)
		}
		if _, err := os.Stat(filepath.Join(target, "lab", "physics_lab_2024-06-01_documents_01.pdf")); err != nil {
			t.Errorf("nested file not organized: %v", err)
		}
	})

	t.Run("recursive skips the target inside the source", func(t *testing.T) {
		target := filepath.Join(source, "organized")
		o := newTestOrganizer(t, source, target, true, false)
		if err := o.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		o2 := newTestOrganizer(t, source, target, true, false)
		if err := o2.Run(); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		// The second run must not treat already organized files as input.
		if got := o2.Stats().TotalFiles; got != 2 {
			t.Errorf("total files on rerun: got %d, want 2", got)
		}
	})
}

func TestOrganizer_DryRun(t *testing.T) {
	source := writeSourceFiles(t, "math_lecture_2024-03-15.pptx", ".hidden")
	target := filepath.Join(t.TempDir(), "organized")

	o := newTestOrganizer(t, source, target, false, true)
	if err := o.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	stats := o.Stats()
	if stats.Processed != 1 || stats.Skipped != 1 {
		t.Errorf("stats: processed=%d skipped=%d, want 1/1", stats.Processed, stats.Skipped)
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("dry run must not create the target directory")
	}
	if len(o.OrganizedFiles()) != 0 {
		t.Errorf("dry run must not record organized files")
	}
}
