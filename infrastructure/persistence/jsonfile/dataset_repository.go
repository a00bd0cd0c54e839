// Package jsonfile loads the classification dataset the upstream pipeline
// writes as a static JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"
)

// DatasetRepository implements ports.DatasetRepository over a JSON file
type DatasetRepository struct {
	path     string
	validate *validator.Validate
	logger   *zap.Logger
}

// NewDatasetRepository creates a repository for the given file path
func NewDatasetRepository(path string, logger *zap.Logger) *DatasetRepository {
	return &DatasetRepository{
		path:     path,
		validate: validator.New(),
		logger:   logger,
	}
}

// Path returns the backing file path
func (r *DatasetRepository) Path() string {
	return r.path
}

// LoadRecords reads and parses the dataset. Rows the upstream pipeline
// marked as errors are kept (they count as unclassified); rows that fail
// shape validation are dropped with a warning. An unreadable or unparsable
// file is a LoadFailure; a file with no rows at all is an EmptyDatasetError.
// Both are terminal: there is no retry policy for a broken dataset.
func (r *DatasetRepository) LoadRecords(ctx context.Context) (map[string]*entities.SupervisorRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.NewLoadFailureError(r.path, err)
	}

	var raw map[string]*entities.SupervisorRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewLoadFailureError(r.path, err)
	}

	records := make(map[string]*entities.SupervisorRecord, len(raw))
	for id, record := range raw {
		if record == nil {
			continue
		}
		if record.Error != "" {
			// Upstream couldn't classify this supervisor; keep the row so
			// totals reflect the dataset, it just never reaches a cluster.
			records[id] = record
			continue
		}
		if err := r.validate.StructCtx(ctx, record); err != nil {
			r.logger.Warn("Dropping malformed dataset row",
				zap.String("id", id),
				zap.Error(err),
			)
			continue
		}
		records[id] = record
	}

	if len(records) == 0 {
		return nil, apperrors.NewEmptyDatasetError()
	}

	r.logger.Info("Dataset loaded",
		zap.String("path", r.path),
		zap.Int("records", len(records)),
		zap.Int("dropped", len(raw)-len(records)),
	)
	return records, nil
}
