package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// memorySelectionStore mimics the Redis set semantics in memory.
type memorySelectionStore struct {
	sets map[string]map[string]bool
}

func newMemorySelectionStore() *memorySelectionStore {
	return &memorySelectionStore{sets: map[string]map[string]bool{}}
}

func (m *memorySelectionStore) Toggle(ctx context.Context, session, noteID string) (bool, error) {
	set, ok := m.sets[session]
	if !ok {
		set = map[string]bool{}
		m.sets[session] = set
	}
	if set[noteID] {
		delete(set, noteID)
		return false, nil
	}
	set[noteID] = true
	return true, nil
}

func (m *memorySelectionStore) Members(ctx context.Context, session string) ([]string, error) {
	var ids []string
	for id := range m.sets[session] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memorySelectionStore) Count(ctx context.Context, session string) (int64, error) {
	return int64(len(m.sets[session])), nil
}

func (m *memorySelectionStore) Clear(ctx context.Context, session string) error {
	delete(m.sets, session)
	return nil
}

func TestSelectionServiceToggle(t *testing.T) {
	svc := NewSelectionService(newMemorySelectionStore(), zap.NewNop())
	ctx := context.Background()

	t.Run("toggle twice is an involution", func(t *testing.T) {
		state, selected, err := svc.Toggle(ctx, "sess-1", "n1")
		require.NoError(t, err)
		assert.True(t, selected)
		assert.Equal(t, 1, state.Count)

		state, selected, err = svc.Toggle(ctx, "sess-1", "n1")
		require.NoError(t, err)
		assert.False(t, selected)
		assert.Equal(t, 0, state.Count)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		_, _, err := svc.Toggle(ctx, "sess-a", "n1")
		require.NoError(t, err)

		state, err := svc.Get(ctx, "sess-b")
		require.NoError(t, err)
		assert.Equal(t, 0, state.Count)
	})

	t.Run("blank session is rejected", func(t *testing.T) {
		_, _, err := svc.Toggle(ctx, "", "n1")
		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}

func TestSelectionServiceClear(t *testing.T) {
	svc := NewSelectionService(newMemorySelectionStore(), zap.NewNop())
	ctx := context.Background()

	_, _, err := svc.Toggle(ctx, "sess-1", "n1")
	require.NoError(t, err)
	_, _, err = svc.Toggle(ctx, "sess-1", "n2")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess-1"))

	state, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count)
	assert.Empty(t, state.NoteIDs)
}
