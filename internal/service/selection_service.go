package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// SelectionStore is the Redis-backed selection set surface.
type SelectionStore interface {
	Toggle(ctx context.Context, session, noteID string) (bool, error)
	Members(ctx context.Context, session string) ([]string, error)
	Count(ctx context.Context, session string) (int64, error)
	Clear(ctx context.Context, session string) error
}

// SelectionState is what the floating action bar renders from.
type SelectionState struct {
	NoteIDs []string `json:"note_ids"`
	Count   int      `json:"count"`
}

// SelectionService tracks per-session note selections for bulk
// actions.
type SelectionService struct {
	store SelectionStore
	log   *zap.Logger
}

func NewSelectionService(store SelectionStore, log *zap.Logger) *SelectionService {
	return &SelectionService{store: store, log: log}
}

// Toggle flips a note's membership and returns the updated state.
// Toggling twice restores the original membership.
func (s *SelectionService) Toggle(ctx context.Context, session, noteID string) (*SelectionState, bool, error) {
	if session == "" || noteID == "" {
		return nil, false, apperrors.ErrValidation.WithMessage("session and note id are required")
	}

	selected, err := s.store.Toggle(ctx, session, noteID)
	if err != nil {
		return nil, false, apperrors.ErrInternal.Wrap(err)
	}

	state, err := s.Get(ctx, session)
	if err != nil {
		return nil, false, err
	}

	return state, selected, nil
}

func (s *SelectionService) Get(ctx context.Context, session string) (*SelectionState, error) {
	if session == "" {
		return nil, apperrors.ErrValidation.WithMessage("session is required")
	}

	ids, err := s.store.Members(ctx, session)
	if err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	if ids == nil {
		ids = []string{}
	}

	return &SelectionState{NoteIDs: ids, Count: len(ids)}, nil
}

func (s *SelectionService) Clear(ctx context.Context, session string) error {
	if session == "" {
		return apperrors.ErrValidation.WithMessage("session is required")
	}

	if err := s.store.Clear(ctx, session); err != nil {
		return apperrors.ErrInternal.Wrap(err)
	}

	return nil
}
