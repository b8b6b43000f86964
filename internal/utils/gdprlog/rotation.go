// Package gdprlog provides GDPR-compliant logging functionalities.
//
// This file implements log rotation and retention for the GDPR logging system.
// Active log files are renamed with a timestamp once they outlive their
// retention period, and rotated files past the period are deleted. Personal
// logs are kept for a shorter time than standard logs.
package gdprlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// LogRetentionConfig defines retention settings for the two log categories.
type LogRetentionConfig struct {
	// StandardLogRetentionDays is the number of days to retain standard logs.
	StandardLogRetentionDays int
	// PersonalDataRetentionDays is the number of days to retain logs containing personal data.
	PersonalDataRetentionDays int
}

// SetupLogRotation starts a background worker that applies the retention
// policy once immediately and then every rotation interval until ctx is done.
// It does nothing when the logger writes to stdout only.
func (gl *GDPRLogger) SetupLogRotation(ctx context.Context) {
	if !gl.config.FileOutput {
		return
	}
	go gl.rotationWorker(ctx, constants.LogRotationInterval)
}

// rotationWorker periodically checks and rotates logs based on retention policy.
func (gl *GDPRLogger) rotationWorker(ctx context.Context, interval time.Duration) {
	// Run initial rotation to clean up old files
	if err := gl.CleanupLogs(); err != nil {
		log.Error().Err(err).Msg("Failed to rotate logs on startup")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := gl.CleanupLogs(); err != nil {
				log.Error().Err(err).Msg("Failed to rotate logs")
			}
		case <-ctx.Done():
			return
		}
	}
}

// CleanupLogs applies the retention policy to both log directories now.
//
// Returns:
//   - error: An error if log rotation fails for any category, nil otherwise
func (gl *GDPRLogger) CleanupLogs() error {
	return gl.cleanupLogsAt(time.Now())
}

// cleanupLogsAt applies the retention policy as of now.
func (gl *GDPRLogger) cleanupLogsAt(now time.Time) error {
	if err := rotateLogs(gl.config.StandardLogPath, gl.config.StandardLogRetentionDays, now); err != nil {
		return fmt.Errorf("failed to rotate standard logs: %w", err)
	}

	if err := rotateLogs(gl.config.PersonalLogPath, gl.config.PersonalDataRetentionDays, now); err != nil {
		return fmt.Errorf("failed to rotate personal logs: %w", err)
	}

	log.Info().
		Int("standard_retention_days", gl.config.StandardLogRetentionDays).
		Int("personal_retention_days", gl.config.PersonalDataRetentionDays).
		Msg("Log rotation completed")

	return nil
}

// rotateLogs rotates logs in a specific directory based on retention days.
// Active files older than the cutoff are renamed; rotated files older than
// the cutoff are deleted.
//
// Parameters:
//   - dirPath: The directory containing logs to rotate
//   - retentionDays: The number of days to retain logs
//   - now: The reference time for the cutoff
//
// Returns:
//   - error: An error if the directory cannot be read, nil otherwise
func rotateLogs(dirPath string, retentionDays int, now time.Time) error {
	if dirPath == "" {
		return nil
	}

	// Directory doesn't exist, nothing to rotate
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return nil
	}

	cutoffTime := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			log.Warn().
				Err(err).
				Str("file", entry.Name()).
				Msg("Failed to get file info, skipping")
			continue
		}

		if !fileInfo.ModTime().Before(cutoffTime) {
			continue
		}

		filePath := filepath.Join(dirPath, fileInfo.Name())

		if isActiveLogFile(fileInfo.Name()) {
			if err := rotateActiveLogFile(filePath, now); err != nil {
				log.Warn().
					Err(err).
					Str("file", filePath).
					Msg("Failed to rotate active log file")
			}
			continue
		}

		if err := os.Remove(filePath); err != nil {
			log.Warn().
				Err(err).
				Str("file", filePath).
				Msg("Failed to delete expired log file")
		} else {
			log.Debug().
				Str("file", filePath).
				Msg("Deleted expired log file")
		}
	}

	return nil
}

// isActiveLogFile checks if a file is an actively written log file.
func isActiveLogFile(fileName string) bool {
	return fileName == standardLogFile || fileName == personalLogFile
}

// rotateActiveLogFile renames an active log file with a timestamp and
// recreates it empty with the same permissions. Empty files are left alone.
func rotateActiveLogFile(filePath string, now time.Time) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	if info.Size() == 0 {
		return nil
	}

	dir, file := filepath.Split(filePath)
	ext := filepath.Ext(file)
	baseName := strings.TrimSuffix(file, ext)
	newPath := filepath.Join(dir, fmt.Sprintf("%s.%s%s", baseName, now.Format("20060102-150405"), ext))

	if err := os.Rename(filePath, newPath); err != nil {
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	newFile, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create new log file: %w", err)
	}
	defer newFile.Close()

	log.Info().
		Str("old_path", filePath).
		Str("new_path", newPath).
		Msg("Rotated log file")

	return nil
}

// GetLogRetentionConfig returns the current log retention configuration.
func (gl *GDPRLogger) GetLogRetentionConfig() LogRetentionConfig {
	return LogRetentionConfig{
		StandardLogRetentionDays:  gl.config.StandardLogRetentionDays,
		PersonalDataRetentionDays: gl.config.PersonalDataRetentionDays,
	}
}
