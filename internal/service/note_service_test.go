package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/pkg/config"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/jobs"
)

type fakeNoteStore struct {
	notes      []models.Note
	listFilter models.NoteFilter
	listErr    error
	created    *models.Note
	createErr  error
	increments []string
}

func (f *fakeNoteStore) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	f.listFilter = filter
	return f.notes, f.listErr
}

func (f *fakeNoteStore) GetByID(ctx context.Context, id string) (*models.Note, error) {
	for i := range f.notes {
		if f.notes[i].ID == id {
			return &f.notes[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeNoteStore) ListByIDs(ctx context.Context, ids []string) ([]models.Note, error) {
	var out []models.Note
	for _, id := range ids {
		for _, n := range f.notes {
			if n.ID == id {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Create(ctx context.Context, note *models.Note) error {
	f.created = note
	return f.createErr
}

func (f *fakeNoteStore) IncrementDownloadCount(ctx context.Context, id string) error {
	f.increments = append(f.increments, id)
	return nil
}

func (f *fakeNoteStore) Stats(ctx context.Context) (*models.NoteStats, error) {
	return &models.NoteStats{TotalNotes: int64(len(f.notes))}, nil
}

func (f *fakeNoteStore) Recent(ctx context.Context, limit int) ([]models.Note, error) {
	if limit > len(f.notes) {
		limit = len(f.notes)
	}
	return f.notes[:limit], nil
}

type fakeCache struct {
	data map[string][]byte
	gets int
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	f.gets++
	return apperrors.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.data[key] = []byte("set")
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// primedCache serves a fixed note list on every read.
type primedCache struct {
	notes []models.Note
}

func (c *primedCache) Get(ctx context.Context, key string, dest interface{}) error {
	*(dest.(*[]models.Note)) = c.notes
	return nil
}

func (c *primedCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *primedCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveStream(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	f.saved = append(f.saved, key)
	return key, nil
}

func (f *fakeStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://files.example.com/" + key
}

type fakeQueue struct {
	enqueued []jobs.Job
}

func (f *fakeQueue) Enqueue(job jobs.Job) {
	f.enqueued = append(f.enqueued, job)
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "n1", Title: "OS Complete Notes", Subject: "BCS304", Branch: "CSE", Semester: 3, University: "VTU", FileURL: "https://files.example.com/os.pdf", FileName: "os.pdf"},
		{ID: "n2", Title: "DSA Module 1", Subject: "BCS302", Branch: "CSE", Semester: 3, University: "VTU", FileURL: "https://files.example.com/dsa.pdf", FileName: "dsa.pdf"},
		{ID: "n3", Title: "Network Analysis", Subject: "BEC302", Branch: "ECE", Semester: 3, University: "AKTU", FileURL: "https://files.example.com/na.pdf", FileName: "na.pdf"},
	}
}

func newNoteService(store *fakeNoteStore, queue *fakeQueue) (*NoteService, *fakeStorage, *fakeCache) {
	st := &fakeStorage{}
	cache := newFakeCache()
	svc := NewNoteService(
		store, cache, st, queue, &fakeAuditStore{}, NewMetrics(), http.DefaultClient,
		validator.New(), zap.NewNop(),
		config.CatalogConfig{CacheEnabled: true, CacheTTL: time.Minute, MaxResults: 500},
		config.UploadsConfig{MaxFileSizeBytes: 1024 * 1024, AllowedExtensions: []string{"pdf"}},
	)
	return svc, st, cache
}

func TestNoteServiceList(t *testing.T) {
	t.Run("category maps to branch match label", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		svc, _, _ := newNoteService(store, &fakeQueue{})

		_, err := svc.List(context.Background(), dto.NoteListQuery{Category: "cse-ise"})

		require.NoError(t, err)
		assert.Equal(t, "CSE", store.listFilter.Branch)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.List(context.Background(), dto.NoteListQuery{Category: "aero"})

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("all values disable facets", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		svc, _, _ := newNoteService(store, &fakeQueue{})

		_, err := svc.List(context.Background(), dto.NoteListQuery{
			Branch: "all", Semester: "all", University: "all", Subject: "all",
		})

		require.NoError(t, err)
		assert.Equal(t, "", store.listFilter.Branch)
		assert.Equal(t, 0, store.listFilter.Semester)
	})

	t.Run("search post-filters on title or subject", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		svc, _, _ := newNoteService(store, &fakeQueue{})

		resp, err := svc.List(context.Background(), dto.NoteListQuery{Search: "bcs302"})

		require.NoError(t, err)
		require.Len(t, resp.Notes, 1)
		assert.Equal(t, "n2", resp.Notes[0].ID)
	})

	t.Run("facets derive from loaded rows", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		svc, _, _ := newNoteService(store, &fakeQueue{})

		resp, err := svc.List(context.Background(), dto.NoteListQuery{})

		require.NoError(t, err)
		assert.Equal(t, []string{"VTU", "AKTU"}, resp.Facets.Universities)
		assert.Equal(t, []string{"CSE", "ECE"}, resp.Facets.Branches)
		assert.Equal(t, []string{"BCS304", "BCS302", "BEC302"}, resp.Facets.Subjects)
	})

	t.Run("invalid semester is a validation error", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.List(context.Background(), dto.NoteListQuery{Semester: "three"})

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}

func TestNoteServiceCacheMetrics(t *testing.T) {
	catalogCfg := config.CatalogConfig{CacheEnabled: true, CacheTTL: time.Minute}

	t.Run("misses fall through and count", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		metrics := NewMetrics()
		svc := NewNoteService(
			store, newFakeCache(), &fakeStorage{}, &fakeQueue{}, &fakeAuditStore{}, metrics,
			http.DefaultClient, validator.New(), zap.NewNop(),
			catalogCfg, config.UploadsConfig{},
		)

		_, err := svc.List(context.Background(), dto.NoteListQuery{})

		require.NoError(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheMissesTotal))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CacheHitsTotal))
	})

	t.Run("hits serve from cache and count", func(t *testing.T) {
		store := &fakeNoteStore{}
		metrics := NewMetrics()
		svc := NewNoteService(
			store, &primedCache{notes: sampleNotes()}, &fakeStorage{}, &fakeQueue{}, &fakeAuditStore{}, metrics,
			http.DefaultClient, validator.New(), zap.NewNop(),
			catalogCfg, config.UploadsConfig{},
		)

		resp, err := svc.List(context.Background(), dto.NoteListQuery{})

		require.NoError(t, err)
		assert.Len(t, resp.Notes, 3)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHitsTotal))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CacheMissesTotal))
	})
}

func TestNoteServiceDownload(t *testing.T) {
	t.Run("enqueues increment and returns the note", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		queue := &fakeQueue{}
		svc, _, _ := newNoteService(store, queue)

		note, err := svc.Download(context.Background(), "n1")

		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/os.pdf", note.FileURL)
		require.Len(t, queue.enqueued, 1)
		assert.Equal(t, JobIncrementDownload, queue.enqueued[0].Type)
		assert.Equal(t, "n1", queue.enqueued[0].Payload)
	})

	t.Run("preview does not enqueue", func(t *testing.T) {
		store := &fakeNoteStore{notes: sampleNotes()}
		queue := &fakeQueue{}
		svc, _, _ := newNoteService(store, queue)

		_, err := svc.Preview(context.Background(), "n1")

		require.NoError(t, err)
		assert.Empty(t, queue.enqueued)
	})

	t.Run("missing note is not found", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.Download(context.Background(), "ghost")

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestNoteServiceUpload(t *testing.T) {
	makeHeader := func(t *testing.T, name string, content []byte) *multipart.FileHeader {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		reader := multipart.NewReader(&buf, mw.Boundary())
		form, err := reader.ReadForm(1 << 20)
		require.NoError(t, err)
		t.Cleanup(func() { _ = form.RemoveAll() })

		return form.File["file"][0]
	}

	validReq := dto.UploadNoteRequest{
		Title:      "OS Notes",
		University: "VTU",
		Branch:     "CSE",
		Subject:    "BCS304",
		Semester:   3,
	}

	t.Run("stores file then inserts metadata", func(t *testing.T) {
		store := &fakeNoteStore{}
		svc, st, _ := newNoteService(store, &fakeQueue{})
		header := makeHeader(t, "os.pdf", []byte("%PDF-1.4"))

		note, err := svc.Upload(context.Background(), "admin-1", validReq, header)

		require.NoError(t, err)
		require.Len(t, st.saved, 1)
		assert.Equal(t, "https://files.example.com/"+st.saved[0], note.FileURL)
		assert.Equal(t, "pdf", note.FileType)
		assert.Equal(t, "admin-1", note.UploadedBy)
		assert.True(t, note.IsEnabled)
		assert.Equal(t, note, store.created)
	})

	t.Run("persists the module field and records an audit row", func(t *testing.T) {
		store := &fakeNoteStore{}
		audits := &fakeAuditStore{}
		svc := NewNoteService(
			store, newFakeCache(), &fakeStorage{}, &fakeQueue{}, audits, NewMetrics(),
			http.DefaultClient, validator.New(), zap.NewNop(),
			config.CatalogConfig{}, config.UploadsConfig{MaxFileSizeBytes: 1 << 20, AllowedExtensions: []string{"pdf"}},
		)
		header := makeHeader(t, "os.pdf", []byte("%PDF-1.4"))

		req := validReq
		req.Module = "Module 2"
		note, err := svc.Upload(context.Background(), "admin-1", req, header)

		require.NoError(t, err)
		assert.Equal(t, "Module 2", note.Module)
		assert.Equal(t, "Module 2", store.created.Module)
		require.Len(t, audits.entries, 1)
		assert.Equal(t, models.AuditActionUpload, audits.entries[0].Action)
		assert.Equal(t, "admin-1", audits.entries[0].UserID)
		assert.Equal(t, note.ID, audits.entries[0].Detail)
	})

	t.Run("insert failure deletes the stored object", func(t *testing.T) {
		store := &fakeNoteStore{createErr: errors.New("insert failed")}
		svc, st, _ := newNoteService(store, &fakeQueue{})
		header := makeHeader(t, "os.pdf", []byte("%PDF-1.4"))

		_, err := svc.Upload(context.Background(), "admin-1", validReq, header)

		require.Error(t, err)
		require.Len(t, st.saved, 1)
		assert.Equal(t, st.saved, st.deleted)
	})

	t.Run("missing file is a validation error", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.Upload(context.Background(), "admin-1", validReq, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		svc, st, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})
		header := makeHeader(t, "notes.exe", []byte("MZ"))

		_, err := svc.Upload(context.Background(), "admin-1", validReq, header)

		assert.True(t, apperrors.Is(err, apperrors.ErrUnsupportedFileType))
		assert.Empty(t, st.saved)
	})

	t.Run("missing required field is rejected before storage", func(t *testing.T) {
		svc, st, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})
		header := makeHeader(t, "os.pdf", []byte("%PDF-1.4"))

		req := validReq
		req.Title = ""
		_, err := svc.Upload(context.Background(), "admin-1", req, header)

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
		assert.Empty(t, st.saved)
	})
}

func TestNoteServiceBulkDownload(t *testing.T) {
	t.Run("zips fetched notes and reports skips", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/bad.pdf" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("%PDF-1.4 test"))
		}))
		defer upstream.Close()

		notes := []models.Note{
			{ID: "a", FileName: "one.pdf", FileURL: upstream.URL + "/one.pdf"},
			{ID: "b", FileName: "two.pdf", FileURL: upstream.URL + "/bad.pdf"},
		}
		store := &fakeNoteStore{notes: notes}
		svc, _, _ := newNoteService(store, &fakeQueue{})

		archive, err := svc.BulkDownload(context.Background(), dto.BulkDownloadRequest{NoteIDs: []string{"a", "b"}})

		require.NoError(t, err)
		assert.NotEmpty(t, archive.Data)
		assert.Equal(t, []string{"b"}, archive.Skipped)
	})

	t.Run("empty id list fails validation", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.BulkDownload(context.Background(), dto.BulkDownloadRequest{})

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("no matching notes is not found", func(t *testing.T) {
		svc, _, _ := newNoteService(&fakeNoteStore{}, &fakeQueue{})

		_, err := svc.BulkDownload(context.Background(), dto.BulkDownloadRequest{NoteIDs: []string{"ghost"}})

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestNoteServiceStats(t *testing.T) {
	store := &fakeNoteStore{notes: sampleNotes()}
	svc, _, _ := newNoteService(store, &fakeQueue{})

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalNotes)
	assert.Len(t, stats.RecentUploads, 3)
}
