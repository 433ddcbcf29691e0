package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notevault/vtu-notes-api/internal/service"
)

type stubSelectionProvider struct {
	state    *service.SelectionState
	selected bool
	err      error
	cleared  []string
}

func (s *stubSelectionProvider) Toggle(ctx context.Context, session, noteID string) (*service.SelectionState, bool, error) {
	return s.state, s.selected, s.err
}

func (s *stubSelectionProvider) Get(ctx context.Context, session string) (*service.SelectionState, error) {
	return s.state, s.err
}

func (s *stubSelectionProvider) Clear(ctx context.Context, session string) error {
	s.cleared = append(s.cleared, session)
	return s.err
}

func newSelectionRouter(stub *stubSelectionProvider) *gin.Engine {
	h := NewSelectionHandler(stub)

	r := gin.New()
	r.POST("/selections/:session/toggle", h.Toggle)
	r.GET("/selections/:session", h.Get)
	r.DELETE("/selections/:session", h.Clear)
	return r
}

func TestSelectionHandlerToggle(t *testing.T) {
	t.Run("returns state with selected meta", func(t *testing.T) {
		stub := &stubSelectionProvider{
			state:    &service.SelectionState{NoteIDs: []string{"n1"}, Count: 1},
			selected: true,
		}
		router := newSelectionRouter(stub)

		req := httptest.NewRequest(http.MethodPost, "/selections/sess-1/toggle", strings.NewReader(`{"note_id":"n1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
		assert.Contains(t, w.Body.String(), `"selected":true`)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		router := newSelectionRouter(&stubSelectionProvider{})

		req := httptest.NewRequest(http.MethodPost, "/selections/sess-1/toggle", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSelectionHandlerGet(t *testing.T) {
	stub := &stubSelectionProvider{state: &service.SelectionState{NoteIDs: []string{}, Count: 0}}
	router := newSelectionRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/selections/sess-1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"note_ids":[]`)
}

func TestSelectionHandlerClear(t *testing.T) {
	stub := &stubSelectionProvider{}
	router := newSelectionRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/selections/sess-1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"sess-1"}, stub.cleared)
}
