// =============================================================================
// pain.001 / pain.002 Batch Generator - File Manager Utility
// =============================================================================
//
// This module provides the file operations used by the generator:
//   - Clearing output directories before a batch
//   - Writing document and sidecar files
//   - Creating empty trigger files
//   - Batch run ids and the processing summary
//
// Every write opens, writes and closes its file before returning, so a
// failure never leaves a handle open. Files written before a failure are
// left in place.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// writeBufferSize is the buffered writer size for document files.
const writeBufferSize = 8192 * 4

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the generator.
type FileManager struct {
	logger *slog.Logger
}

// NewFileManager creates a FileManager logging through logger.
func NewFileManager(logger *slog.Logger) *FileManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileManager{logger: logger}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// CleanDirectory removes every entry of dir, creating dir if it does not
// exist. Failures are logged and never returned: if dir cannot be created
// cleanup stops, and an entry that cannot be removed is skipped.
// It returns the number of entries removed.
func (fm *FileManager) CleanDirectory(dir string) int {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fm.logger.Warn("Failed to create directory", "dir", dir, "error", err)
			return 0
		}
		fm.logger.Info("Directory created", "dir", dir)
		return 0
	}
	if err != nil {
		fm.logger.Warn("Failed to stat directory", "dir", dir, "error", err)
		return 0
	}
	if !info.IsDir() {
		fm.logger.Warn("Output path is not a directory", "dir", dir)
		return 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fm.logger.Warn("Failed to list directory", "dir", dir, "error", err)
		return 0
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			fm.logger.Warn("Failed to delete file", "path", path, "error", err)
			continue
		}
		removed++
	}

	fm.logger.Debug("Directory cleaned", "dir", dir, "removed", removed)
	return removed
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteFile creates or truncates dir/name and writes content to it.
// It returns the full path.
func (fm *FileManager) WriteFile(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	fm.logger.Debug("Writing file", "path", path, "bytes", len(content))

	if err := writeFile(path, content); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// WriteTrigger creates or truncates an empty marker file dir/name.
func (fm *FileManager) WriteTrigger(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	fm.logger.Debug("Creating trigger file", "path", path)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create trigger %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close trigger %s: %w", path, err)
	}
	return path, nil
}

func writeFile(path, content string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	writer := bufio.NewWriterSize(file, writeBufferSize)
	if _, err := writer.WriteString(content); err != nil {
		return err
	}
	return writer.Flush()
}

// =============================================================================
// RUN IDENTIFICATION
// =============================================================================

// NewRunID returns a random id correlating the log lines of one batch.
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary contains summary information about a batch.
type ProcessingSummary struct {
	RunID        string
	StartTime    time.Time
	EndTime      time.Time
	Runs         int
	Pain001Files int
	Pain002Files int
	MetaFiles    int
	TriggerFiles int
	Transactions int
	Pain001Dir   string
	Pain002Dir   string
}

// WriteSummary writes a human-readable batch summary to w.
func WriteSummary(w io.Writer, summary ProcessingSummary) error {
	_, err := fmt.Fprintf(w, "\n=== Generation Complete ===\n"+
		"Run ID:          %s\n"+
		"Runs:            %d\n"+
		"pain.001 files:  %d (%s)\n"+
		"pain.002 files:  %d (%s)\n"+
		"Meta files:      %d\n"+
		"Trigger files:   %d\n"+
		"Transactions:    %d\n"+
		"Time elapsed:    %s\n",
		summary.RunID,
		summary.Runs,
		summary.Pain001Files, summary.Pain001Dir,
		summary.Pain002Files, summary.Pain002Dir,
		summary.MetaFiles,
		summary.TriggerFiles,
		summary.Transactions,
		summary.EndTime.Sub(summary.StartTime))
	return err
}
