package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"superviseme/infrastructure/persistence/jsonfile"
	apperrors "superviseme/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validDataset = `{
  "alice": {
    "professor_name": "Dr. Alice Smith",
    "primary_research_areas": [
      {"top_level": "Systems", "confidence": "high", "evidence_count": 8, "subcategories": ["Networking"]}
    ],
    "analysis_summary": "Networking research across 12 theses.",
    "processing_info": {"thesis_count": 12},
    "processing_timestamp": "2025-11-02T10:00:00Z"
  },
  "carol": {
    "professor_name": "Dr. Carol White",
    "error": "thesis corpus unavailable"
  }
}`

func TestDatasetRepository_LoadRecords(t *testing.T) {
	// Arrange
	path := writeDataset(t, validDataset)
	repo := jsonfile.NewDatasetRepository(path, zap.NewNop())

	// Act
	records, err := repo.LoadRecords(context.Background())
	require.NoError(t, err)

	// Assert: classified and errored rows both survive the load
	require.Len(t, records, 2)

	alice := records["alice"]
	require.NotNil(t, alice)
	assert.Equal(t, "Dr. Alice Smith", alice.ProfessorName)
	assert.True(t, alice.Classified())
	assert.Equal(t, 12, alice.ThesisCount())

	carol := records["carol"]
	require.NotNil(t, carol)
	assert.False(t, carol.Classified())
}

func TestDatasetRepository_MissingFile(t *testing.T) {
	repo := jsonfile.NewDatasetRepository(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	_, err := repo.LoadRecords(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLoadFailure))
}

func TestDatasetRepository_MalformedJSON(t *testing.T) {
	path := writeDataset(t, `{"alice": `)
	repo := jsonfile.NewDatasetRepository(path, zap.NewNop())

	_, err := repo.LoadRecords(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLoadFailure))
}

func TestDatasetRepository_EmptyDataset(t *testing.T) {
	path := writeDataset(t, `{}`)
	repo := jsonfile.NewDatasetRepository(path, zap.NewNop())

	_, err := repo.LoadRecords(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeEmptyDataset))
}

func TestDatasetRepository_DropsMalformedRows(t *testing.T) {
	// A row without a professor name fails shape validation and is dropped;
	// the rest of the file still loads.
	path := writeDataset(t, `{
	  "broken": {
	    "primary_research_areas": [
	      {"top_level": "Systems", "confidence": "high", "evidence_count": 1, "subcategories": []}
	    ]
	  },
	  "alice": {
	    "professor_name": "Dr. Alice Smith",
	    "primary_research_areas": [
	      {"top_level": "Systems", "confidence": "high", "evidence_count": 8, "subcategories": ["Networking"]}
	    ]
	  }
	}`)
	repo := jsonfile.NewDatasetRepository(path, zap.NewNop())

	records, err := repo.LoadRecords(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 1)
	assert.Contains(t, records, "alice")
}

func TestDatasetRepository_RejectsInvalidConfidence(t *testing.T) {
	path := writeDataset(t, `{
	  "alice": {
	    "professor_name": "Dr. Alice Smith",
	    "primary_research_areas": [
	      {"top_level": "Systems", "confidence": "certain", "evidence_count": 8, "subcategories": []}
	    ]
	  }
	}`)
	repo := jsonfile.NewDatasetRepository(path, zap.NewNop())

	// The only row is invalid, so the load degenerates to an empty dataset
	_, err := repo.LoadRecords(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeEmptyDataset))
}
