package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pavel-webdev/file-organizer/models"
)

// OS artifact names that never get organized.
var systemFiles = map[string]bool{
	"desktop.ini": true,
	"thumbs.db":   true,
}

// Organizer copies files from a source directory into a category hierarchy
// under the target directory. Files are processed one at a time in sorted
// order so counters and reports are reproducible.
type Organizer struct {
	SourceDir string
	TargetDir string
	Recursive bool
	DryRun    bool

	classifier *Classifier
	logger     *RunLogger
	metaDir    string
	now        func() time.Time

	stats     models.RunStats
	organized []models.OrganizedFile
}

func NewOrganizer(sourceDir, targetDir string, recursive, dryRun bool, classifier *Classifier, logger *RunLogger, metaDir string) *Organizer {
	return &Organizer{
		SourceDir:  sourceDir,
		TargetDir:  targetDir,
		Recursive:  recursive,
		DryRun:     dryRun,
		classifier: classifier,
		logger:     logger,
		metaDir:    metaDir,
		now:        time.Now,
		stats: models.RunStats{
			Categories: make(map[string]int64),
			StartTime:  time.Now(),
		},
	}
}

// Run processes every file found in the source directory. Per-file failures
// are logged and counted, never fatal.
func (o *Organizer) Run() error {
	files, err := o.listFiles()
	if err != nil {
		return fmt.Errorf("failed to list source directory: %w", err)
	}

	o.logger.LogFound(len(files))

	for _, path := range files {
		o.organizeFile(path)
	}

	o.stats.EndTime = time.Now()
	return nil
}

// Stats returns the counters accumulated so far.
func (o *Organizer) Stats() models.RunStats {
	return o.stats
}

// OrganizedFiles returns the catalog rows for everything copied in this run.
func (o *Organizer) OrganizedFiles() []models.OrganizedFile {
	return o.organized
}

// listFiles returns the sorted list of regular files to process. The target
// tree is excluded so a recursive run over its own parent does not reorganize
// already organized files.
func (o *Organizer) listFiles() ([]string, error) {
	var files []string

	if o.Recursive {
		err := filepath.WalkDir(o.SourceDir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				o.logger.LogError(path, err)
				o.stats.Errors++
				return nil
			}
			if d.IsDir() {
				if path == o.TargetDir {
					return filepath.SkipDir
				}
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(o.SourceDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, filepath.Join(o.SourceDir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func isSystemFile(name string) bool {
	return strings.HasPrefix(name, ".") || systemFiles[name]
}

// organizeFile handles a single file: classify, resolve a unique name in the
// category subdirectory, copy, persist metadata.
func (o *Organizer) organizeFile(path string) {
	name := filepath.Base(path)
	o.stats.TotalFiles++

	if isSystemFile(name) {
		o.logger.LogSkipped(name)
		o.stats.Skipped++
		return
	}

	info := o.classifier.Classify(name)

	destDir := filepath.Join(o.TargetDir, info.Category)

	if o.DryRun {
		// Classification and counting only, nothing touches the target.
		info.NewName = BuildName(info, 1, o.now)
		o.logger.LogProcessed(name, filepath.Join(info.Category, info.NewName))
		o.stats.Processed++
		o.stats.Categories[info.Category]++
		return
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		o.logger.LogError(name, err)
		o.stats.Errors++
		return
	}

	newName, err := UniqueName(destDir, info, o.now)
	if err != nil {
		o.logger.LogError(name, err)
		o.stats.Errors++
		return
	}
	info.NewName = newName

	destPath := filepath.Join(destDir, newName)
	size, err := copyFile(path, destPath)
	if err != nil {
		o.logger.LogError(name, err)
		o.stats.Errors++
		return
	}

	if err := SaveFileInfo(o.metaDir, info); err != nil {
		o.logger.LogError(name, err)
		o.stats.Errors++
		return
	}

	o.stats.Processed++
	o.stats.Categories[info.Category]++
	o.logger.LogProcessed(name, filepath.Join(info.Category, newName))

	o.organized = append(o.organized, models.OrganizedFile{
		OriginalName: info.OriginalName,
		NewName:      newName,
		Subject:      info.Subject,
		Category:     info.Category,
		Date:         info.Date,
		FileType:     info.FileType,
		Size:         size,
		SourcePath:   path,
		DestPath:     destPath,
		OrganizedAt:  o.now(),
	})
}

// copyFile copies src to dst preserving mode and modification time. On any
// failure the partial destination file is removed.
func copyFile(src, dst string) (int64, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("failed to stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create destination: %w", err)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return 0, fmt.Errorf("failed to copy: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("failed to close destination: %w", err)
	}

	if err := os.Chtimes(dst, time.Now(), srcInfo.ModTime()); err != nil {
		return written, fmt.Errorf("failed to preserve mod time: %w", err)
	}

	return written, nil
}
