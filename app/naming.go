package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pavel-webdev/file-organizer/models"
)

// BuildName renders the normalized filename template:
//
//	{subject}_{category}_{date}_{file_type}_{counter}{ext}
//
// The date falls back to "now" when the classifier found none, which is the
// only impure branch; callers wanting determinism pass a fixed clock or a
// pre-filled date. Counters below 100 are zero-padded to two digits, larger
// values keep their natural width.
func BuildName(info models.FileInfo, counter int, now func() time.Time) string {
	date := info.Date
	if date == "" {
		date = now().Format("2006-01-02")
	}

	ext := filepath.Ext(info.OriginalName)

	return fmt.Sprintf("%s_%s_%s_%s_%02d%s",
		info.Subject, info.Category, date, info.FileType, counter, ext)
}

// UniqueName resolves the first name that does not collide with an existing
// file in dir, starting at counter 1. Existence is re-checked between
// increments so an interrupted previous run is never silently overwritten.
func UniqueName(dir string, info models.FileInfo, now func() time.Time) (string, error) {
	for counter := 1; ; counter++ {
		name := BuildName(info, counter, now)
		_, err := os.Stat(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", name, err)
		}
	}
}
