package valueobjects_test

import (
	"testing"

	"superviseme/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfidence(t *testing.T) {
	for _, valid := range []string{"high", "medium", "low"} {
		level, err := valueobjects.ParseConfidence(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, level.String())
	}

	_, err := valueobjects.ParseConfidence("certain")
	assert.Error(t, err)

	// "all" is a filter selector, never an assignment confidence
	_, err = valueobjects.ParseConfidence("all")
	assert.Error(t, err)
}

func TestParseConfidenceFilter(t *testing.T) {
	// Empty defaults to all
	level, err := valueobjects.ParseConfidenceFilter("")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.ConfidenceAll, level)

	level, err = valueobjects.ParseConfidenceFilter("all")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.ConfidenceAll, level)

	level, err = valueobjects.ParseConfidenceFilter("medium")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.ConfidenceMedium, level)

	_, err = valueobjects.ParseConfidenceFilter("bogus")
	assert.Error(t, err)
}

func TestConfidence_Rank(t *testing.T) {
	assert.Greater(t, valueobjects.ConfidenceHigh.Rank(), valueobjects.ConfidenceMedium.Rank())
	assert.Greater(t, valueobjects.ConfidenceMedium.Rank(), valueobjects.ConfidenceLow.Rank())
	assert.Greater(t, valueobjects.ConfidenceLow.Rank(), valueobjects.Confidence("unknown").Rank())
}
