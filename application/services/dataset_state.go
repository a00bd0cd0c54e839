package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"
)

// DatasetState is the single owner of the loaded dataset and its derived
// cluster index. The indexer writes it once per load (and again on hot
// reload); the filter engine and graph sessions only read. Swaps are atomic
// behind the lock, readers never observe a partially built index.
type DatasetState struct {
	mu       sync.RWMutex
	indexer  *Indexer
	logger   *zap.Logger
	records  map[string]*entities.SupervisorRecord
	index    map[string]*entities.ClusterEntry
	loadedAt time.Time
}

// NewDatasetState creates an empty state; Reload populates it
func NewDatasetState(indexer *Indexer, logger *zap.Logger) *DatasetState {
	return &DatasetState{
		indexer: indexer,
		logger:  logger,
	}
}

// Reload rebuilds the index from a fresh set of records and swaps both in
// together. On error the previous dataset stays in place.
func (s *DatasetState) Reload(records map[string]*entities.SupervisorRecord) error {
	index, err := s.indexer.BuildIndex(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.index = index
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("Dataset indexed",
		zap.Int("records", len(records)),
		zap.Int("clusters", len(index)),
	)
	return nil
}

// Ready reports whether a dataset has been loaded
func (s *DatasetState) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

// Index returns the current cluster index. Callers treat it as read-only;
// filters derive copies, they never write through.
func (s *DatasetState) Index() map[string]*entities.ClusterEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Record returns one supervisor record by its dataset identifier, falling
// back to a professor-name match for presentation layers that only hold the
// display name
func (s *DatasetState) Record(id string) (*entities.SupervisorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, exists := s.records[id]; exists {
		return record, nil
	}
	for _, record := range s.records {
		if record.ProfessorName == id {
			return record, nil
		}
	}
	return nil, apperrors.NewNotFoundError("supervisor")
}

// RecordCount returns the number of loaded records, classified or not
func (s *DatasetState) RecordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LoadedAt returns when the current dataset was swapped in
func (s *DatasetState) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
