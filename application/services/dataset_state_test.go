package services_test

import (
	"testing"

	"superviseme/application/services"
	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDatasetState_NotReadyBeforeLoad(t *testing.T) {
	state := services.NewDatasetState(services.NewIndexer(), zap.NewNop())

	assert.False(t, state.Ready())
	assert.Nil(t, state.Index())
	assert.Equal(t, 0, state.RecordCount())
}

func TestDatasetState_Reload(t *testing.T) {
	// Arrange
	state := services.NewDatasetState(services.NewIndexer(), zap.NewNop())

	// Act
	require.NoError(t, state.Reload(testRecords()))

	// Assert
	assert.True(t, state.Ready())
	assert.Equal(t, 4, state.RecordCount())
	assert.Len(t, state.Index(), 2)
	assert.False(t, state.LoadedAt().IsZero())
}

func TestDatasetState_FailedReloadKeepsPreviousData(t *testing.T) {
	// Arrange: a loaded state
	state := services.NewDatasetState(services.NewIndexer(), zap.NewNop())
	require.NoError(t, state.Reload(testRecords()))
	loadedAt := state.LoadedAt()

	// Act: an empty reload is rejected
	err := state.Reload(map[string]*entities.SupervisorRecord{})

	// Assert: the old dataset stays in place
	require.Error(t, err)
	assert.True(t, state.Ready())
	assert.Equal(t, 4, state.RecordCount())
	assert.Equal(t, loadedAt, state.LoadedAt())
}

func TestDatasetState_RecordLookup(t *testing.T) {
	state := services.NewDatasetState(services.NewIndexer(), zap.NewNop())
	require.NoError(t, state.Reload(testRecords()))

	// By dataset key
	record, err := state.Record("alice")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alice Smith", record.ProfessorName)

	// By display name
	record, err = state.Record("Dr. Bob Jones")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Bob Jones", record.ProfessorName)

	// Unknown
	_, err = state.Record("nobody")
	assert.True(t, apperrors.IsNotFound(err))
}
