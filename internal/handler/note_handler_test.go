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

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/internal/service"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

type stubNoteProvider struct {
	listResp    *dto.NoteListResponse
	note        *models.Note
	archive     *service.BulkArchive
	err         error
	downloads   int
	previews    int
	listQueries []dto.NoteListQuery
}

func (s *stubNoteProvider) List(ctx context.Context, query dto.NoteListQuery) (*dto.NoteListResponse, error) {
	s.listQueries = append(s.listQueries, query)
	return s.listResp, s.err
}

func (s *stubNoteProvider) Download(ctx context.Context, id string) (*models.Note, error) {
	s.downloads++
	return s.note, s.err
}

func (s *stubNoteProvider) Preview(ctx context.Context, id string) (*models.Note, error) {
	s.previews++
	return s.note, s.err
}

func (s *stubNoteProvider) BulkDownload(ctx context.Context, req dto.BulkDownloadRequest) (*service.BulkArchive, error) {
	return s.archive, s.err
}

func newNoteRouter(stub *stubNoteProvider) *gin.Engine {
	h := NewNoteHandler(stub, service.NewMetrics())

	r := gin.New()
	r.GET("/notes", h.List)
	r.GET("/notes/:id/download", h.Download)
	r.GET("/notes/:id/preview", h.Preview)
	r.POST("/notes/bulk-download", h.BulkDownload)
	return r
}

func TestNoteHandlerList(t *testing.T) {
	t.Run("binds query params and returns envelope", func(t *testing.T) {
		stub := &stubNoteProvider{listResp: &dto.NoteListResponse{
			Notes:  []models.Note{{ID: "n1", Title: "OS"}},
			Facets: dto.NoteFacets{Universities: []string{"VTU"}},
			Total:  1,
		}}
		router := newNoteRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/notes?category=cse-ise&semester=3&search=os", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, stub.listQueries, 1)
		assert.Equal(t, "cse-ise", stub.listQueries[0].Category)
		assert.Equal(t, "3", stub.listQueries[0].Semester)
		assert.Equal(t, "os", stub.listQueries[0].Search)
		assert.Contains(t, w.Body.String(), `"universities":["VTU"]`)
	})

	t.Run("service error maps to status", func(t *testing.T) {
		stub := &stubNoteProvider{err: apperrors.ErrNotFound}
		router := newNoteRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNoteHandlerDownload(t *testing.T) {
	t.Run("redirects to file url", func(t *testing.T) {
		stub := &stubNoteProvider{note: &models.Note{ID: "n1", FileURL: "https://files.example.com/os.pdf"}}
		router := newNoteRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/notes/n1/download", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://files.example.com/os.pdf", w.Header().Get("Location"))
		assert.Equal(t, 1, stub.downloads)
	})

	t.Run("missing note is 404", func(t *testing.T) {
		stub := &stubNoteProvider{err: apperrors.ErrNotFound}
		router := newNoteRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/notes/ghost/download", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNoteHandlerPreview(t *testing.T) {
	stub := &stubNoteProvider{note: &models.Note{ID: "n1", FileURL: "https://files.example.com/os.pdf"}}
	router := newNoteRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/notes/n1/preview", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, stub.previews)
	assert.Equal(t, 0, stub.downloads)
}

func TestNoteHandlerBulkDownload(t *testing.T) {
	t.Run("streams zip with skip header", func(t *testing.T) {
		stub := &stubNoteProvider{archive: &service.BulkArchive{
			Filename: "vtu-notes-20260901.zip",
			Data:     []byte("PK\x03\x04"),
			Skipped:  []string{"n2"},
		}}
		router := newNoteRouter(stub)

		req := httptest.NewRequest(http.MethodPost, "/notes/bulk-download", strings.NewReader(`{"note_ids":["n1","n2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
		assert.Equal(t, "1", w.Header().Get("X-Skipped-Notes"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".zip")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		router := newNoteRouter(&stubNoteProvider{})

		req := httptest.NewRequest(http.MethodPost, "/notes/bulk-download", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
