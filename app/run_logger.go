package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// RunLogger writes the run log to stdout and, when a path is given, to a
// plain-text log file in the target directory. An empty path (dry runs)
// keeps the stream console-only.
type RunLogger struct {
	file      *os.File
	logger    *log.Logger
	startTime time.Time
	mu        sync.Mutex

	filesFound int64
	processed  int64
	skipped    int64
	errorCount int64
}

func NewRunLogger(logPath string) (*RunLogger, error) {
	var out io.Writer = os.Stdout
	var file *os.File

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	rl := &RunLogger{
		file:      file,
		logger:    log.New(out, "", log.Ldate|log.Ltime),
		startTime: time.Now(),
	}

	rl.Log("%s", strings.Repeat("=", 60))
	rl.Log("ORGANIZER RUN STARTED")
	rl.Log("Start time: %s", rl.startTime.Format(time.RFC3339))
	if logPath != "" {
		rl.Log("Log file: %s", logPath)
	}
	rl.Log("%s", strings.Repeat("=", 60))

	return rl, nil
}

// Log writes a formatted message to the log.
func (rl *RunLogger) Log(format string, args ...interface{}) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.logger.Printf(format, args...)
}

// LogSection writes a section header.
func (rl *RunLogger) LogSection(title string) {
	rl.Log("")
	rl.Log("----- %s -----", title)
}

func (rl *RunLogger) LogFound(count int) {
	atomic.StoreInt64(&rl.filesFound, int64(count))
	rl.Log("Found %d files to process", count)
}

func (rl *RunLogger) LogProcessed(original, newName string) {
	atomic.AddInt64(&rl.processed, 1)
	rl.Log("PROCESSED: %s -> %s", original, newName)
}

func (rl *RunLogger) LogSkipped(name string) {
	atomic.AddInt64(&rl.skipped, 1)
	rl.Log("SKIPPED: %s", name)
}

func (rl *RunLogger) LogError(name string, err error) {
	atomic.AddInt64(&rl.errorCount, 1)
	rl.Log("ERROR: %s - %v", name, err)
}

// LogSummary writes the final totals block.
func (rl *RunLogger) LogSummary() {
	duration := time.Since(rl.startTime)

	rl.LogSection("RUN SUMMARY")
	rl.Log("Duration: %v", duration)
	rl.Log("Files found: %d", atomic.LoadInt64(&rl.filesFound))
	rl.Log("Files processed: %d", atomic.LoadInt64(&rl.processed))
	rl.Log("Files skipped: %d", atomic.LoadInt64(&rl.skipped))
	rl.Log("Errors: %d", atomic.LoadInt64(&rl.errorCount))
	rl.Log("%s", strings.Repeat("=", 60))
	rl.Log("RUN COMPLETED: %s", time.Now().Format(time.RFC3339))
	rl.Log("%s", strings.Repeat("=", 60))
}

// Close writes the summary and closes the log file.
func (rl *RunLogger) Close() error {
	rl.LogSummary()
	if rl.file != nil {
		return rl.file.Close()
	}
	return nil
}
