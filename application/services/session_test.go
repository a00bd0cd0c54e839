package services_test

import (
	"testing"
	"time"

	"superviseme/application/services"
	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *services.SessionManager {
	t.Helper()
	m := services.NewSessionManager(30*time.Minute, zap.NewNop())
	t.Cleanup(m.Stop)
	return m
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	// Arrange
	m := newTestManager(t)

	// Act
	session, err := m.Create(builtIndex(t))
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestSessionManager_CreateRejectsEmptyIndex(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Create(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestSessionManager_GetUnknown(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Get("nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionManager_Delete(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(builtIndex(t))
	require.NoError(t, err)

	require.NoError(t, m.Delete(session.ID))
	assert.Equal(t, 0, m.Count())

	err = m.Delete(session.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionManager_SessionsAreIndependent(t *testing.T) {
	// Two viewers over the same index expand different nodes without
	// seeing each other's state.
	m := newTestManager(t)
	index := builtIndex(t)

	first, err := m.Create(index)
	require.NoError(t, err)
	second, err := m.Create(index)
	require.NoError(t, err)

	err = first.WithGraph(func(g *aggregates.Graph) error {
		return g.Expand(valueobjects.ClusterNodeID("Systems"))
	})
	require.NoError(t, err)

	err = second.WithGraph(func(g *aggregates.Graph) error {
		assert.Equal(t, 2, g.NodeCount())
		return nil
	})
	require.NoError(t, err)

	err = first.WithGraph(func(g *aggregates.Graph) error {
		assert.Equal(t, 4, g.NodeCount())
		return nil
	})
	require.NoError(t, err)
}

func TestSession_WithGraphPropagatesError(t *testing.T) {
	m := newTestManager(t)
	session, err := m.Create(builtIndex(t))
	require.NoError(t, err)

	err = session.WithGraph(func(g *aggregates.Graph) error {
		return g.Expand(valueobjects.ClusterNodeID("Astrology"))
	})
	assert.ErrorIs(t, err, aggregates.ErrNodeNotFound)
}
