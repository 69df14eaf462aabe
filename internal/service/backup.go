package service

import (
	"encoding/json"
	"fmt"

	"vocabdeck/internal/repository"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// BackupFilePrefix starts every export file name
const BackupFilePrefix = "toeic_vocab"

// ImportReport lists what an import did with each tracked key
type ImportReport struct {
	Written []string
	// Null values leave the stored key as it was
	Null []string
	// Present but not a string, so not written
	Skipped []string
	// Write failed; the store keeps its previous value for these keys
	Failed []string
}

// BackupService exports and imports every tracked key as one JSON document
type BackupService struct {
	store   repository.KeyValueStore
	loaders []Loader
	logger  *zap.Logger
}

// NewBackupService creates a backup service. loaders are reloaded after every import.
func NewBackupService(store repository.KeyValueStore, logger *zap.Logger, loaders ...Loader) *BackupService {
	return &BackupService{store: store, loaders: loaders, logger: logger}
}

// BackupFileName returns the export file name for date
func BackupFileName(date string) string {
	return fmt.Sprintf("%s_backup_%s.json", BackupFilePrefix, date)
}

// Export returns the raw stored string of every tracked key, or null when absent
func (s *BackupService) Export(today string) ([]byte, string, error) {
	payload := make(map[string]*string, len(repository.TrackedKeys()))
	for _, key := range repository.TrackedKeys() {
		raw, found, err := s.store.Get(key)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", key, err)
		}
		if found {
			v := raw
			payload[key] = &v
		} else {
			payload[key] = nil
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encode backup: %w", err)
	}
	return data, BackupFileName(today), nil
}

// Import checks that every tracked key is present before writing anything,
// then writes each string value and reloads all registered services.
// A failed write does not stop the others, and services are reloaded even
// then so memory matches whatever the store now holds.
func (s *BackupService) Import(data []byte) (ImportReport, error) {
	var report ImportReport

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		return report, &ValidationError{Reason: "not a JSON object"}
	}

	var missing []string
	for _, key := range repository.TrackedKeys() {
		if _, ok := payload[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return report, &ValidationError{Missing: missing}
	}

	var writeErr error
	for _, key := range repository.TrackedKeys() {
		raw := payload[key]
		if string(raw) == "null" {
			report.Null = append(report.Null, key)
			continue
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			s.logger.Warn("Skipping non-string backup value", zap.String("key", key))
			report.Skipped = append(report.Skipped, key)
			continue
		}

		if err := s.store.Set(key, value); err != nil {
			s.logger.Error("Failed to write backup value", zap.String("key", key), zap.Error(err))
			report.Failed = append(report.Failed, key)
			writeErr = multierr.Append(writeErr, fmt.Errorf("write %s: %w", key, err))
			continue
		}
		report.Written = append(report.Written, key)
	}

	s.logger.Info("Backup imported",
		zap.Int("written", len(report.Written)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
	)

	return report, multierr.Append(writeErr, s.Reload())
}

// Reload rebuilds every registered service from the store
func (s *BackupService) Reload() error {
	var first error
	for _, l := range s.loaders {
		if err := l.Load(); err != nil {
			s.logger.Error("Reload failed", zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

