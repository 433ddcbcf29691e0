package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/curriculum"
	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/pkg/config"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/export"
	"github.com/notevault/vtu-notes-api/pkg/jobs"
	"github.com/notevault/vtu-notes-api/pkg/storage"
)

// JobIncrementDownload is the queue job type for download-count bumps.
const JobIncrementDownload = "note.increment_download"

const catalogCacheKey = "catalog:all"

// NoteStore is the repository surface NoteService depends on.
type NoteStore interface {
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	IncrementDownloadCount(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.NoteStats, error)
	Recent(ctx context.Context, limit int) ([]models.Note, error)
}

// CatalogCache is the cache surface NoteService depends on.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Enqueuer submits background jobs.
type Enqueuer interface {
	Enqueue(job jobs.Job)
}

// BulkArchive is an in-memory ZIP of fetched note files.
type BulkArchive struct {
	Filename string
	Data     []byte
	// Skipped lists note ids whose fetch failed; the archive still
	// carries everything that succeeded.
	Skipped []string
}

type NoteService struct {
	repo       NoteStore
	cache      CatalogCache
	store      storage.Storage
	queue      Enqueuer
	audits     AuditStore
	metrics    *Metrics
	client     *http.Client
	validate   *validator.Validate
	log        *zap.Logger
	catalogCfg config.CatalogConfig
	uploadCfg  config.UploadsConfig
}

func NewNoteService(
	repo NoteStore,
	cache CatalogCache,
	store storage.Storage,
	queue Enqueuer,
	audits AuditStore,
	metrics *Metrics,
	client *http.Client,
	validate *validator.Validate,
	log *zap.Logger,
	catalogCfg config.CatalogConfig,
	uploadCfg config.UploadsConfig,
) *NoteService {
	return &NoteService{
		repo:       repo,
		cache:      cache,
		store:      store,
		queue:      queue,
		audits:     audits,
		metrics:    metrics,
		client:     client,
		validate:   validate,
		log:        log,
		catalogCfg: catalogCfg,
		uploadCfg:  uploadCfg,
	}
}

// RegisterJobs binds this service's background handlers. The increment
// handler always reports success: failures are logged and dropped,
// never retried or surfaced.
func (s *NoteService) RegisterJobs(q *jobs.Queue) {
	q.Register(JobIncrementDownload, func(ctx context.Context, payload interface{}) error {
		id, ok := payload.(string)
		if !ok {
			return nil
		}
		if err := s.repo.IncrementDownloadCount(ctx, id); err != nil {
			s.log.Warn("download count increment failed",
				zap.String("note_id", id), zap.Error(err))
		}
		return nil
	})
}

// List returns the filtered catalog plus facets derived from the
// returned rows.
func (s *NoteService) List(ctx context.Context, query dto.NoteListQuery) (*dto.NoteListResponse, error) {
	filter, err := s.buildFilter(query)
	if err != nil {
		return nil, err
	}

	notes, err := s.loadNotes(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query.Search != "" {
		notes = filterBySearch(notes, query.Search)
	}

	return &dto.NoteListResponse{
		Notes:  notes,
		Facets: extractFacets(notes),
		Total:  len(notes),
	}, nil
}

func (s *NoteService) buildFilter(query dto.NoteListQuery) (models.NoteFilter, error) {
	filter := models.NoteFilter{Limit: s.catalogCfg.MaxResults}

	branch := normalizeFacet(query.Branch)
	if branch == "" && query.Category != "" {
		category, err := curriculum.CategoryByID(query.Category)
		if err != nil {
			return filter, err
		}
		branch = category.MatchLabel
	}
	filter.Branch = branch
	filter.University = normalizeFacet(query.University)
	filter.Subject = normalizeFacet(query.Subject)

	if sem := normalizeFacet(query.Semester); sem != "" {
		n, err := strconv.Atoi(sem)
		if err != nil {
			return filter, apperrors.ErrValidation.WithMessage("semester must be an integer")
		}
		filter.Semester = n
	}

	return filter, nil
}

// loadNotes serves unfiltered reads from the cache when enabled and
// degrades to direct reads on any cache failure.
func (s *NoteService) loadNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	unfiltered := filter.Branch == "" && filter.Semester == 0 &&
		filter.University == "" && filter.Subject == ""

	if unfiltered && s.catalogCfg.CacheEnabled {
		var cached []models.Note
		err := s.cache.Get(ctx, catalogCacheKey, &cached)
		if err == nil {
			s.metrics.CacheHitsTotal.Inc()
			return cached, nil
		}
		s.metrics.CacheMissesTotal.Inc()
		if !apperrors.Is(err, apperrors.ErrCacheMiss) {
			s.log.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	notes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if unfiltered && s.catalogCfg.CacheEnabled {
		if err := s.cache.Set(ctx, catalogCacheKey, notes, s.catalogCfg.CacheTTL); err != nil {
			s.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return notes, nil
}

// Download resolves the note and fires the asynchronous download-count
// increment. The caller redirects to the returned note's file URL.
func (s *NoteService) Download(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.queue.Enqueue(jobs.Job{Type: JobIncrementDownload, Payload: note.ID})

	return note, nil
}

// Preview resolves the note without touching the download counter.
func (s *NoteService) Preview(ctx context.Context, id string) (*models.Note, error) {
	return s.repo.GetByID(ctx, id)
}

// BulkDownload fetches each requested note's bytes and packages them
// into one ZIP. Individual fetch failures skip the file rather than
// failing the archive.
func (s *NoteService) BulkDownload(ctx context.Context, req dto.BulkDownloadRequest) (*BulkArchive, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	notes, err := s.repo.ListByIDs(ctx, req.NoteIDs)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, apperrors.ErrNotFound.WithMessage("no notes found for the given ids")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var skipped []string
	seen := make(map[string]int)

	for _, note := range notes {
		data, err := s.fetchNoteBytes(ctx, note.FileURL)
		if err != nil {
			s.log.Warn("bulk download skipping note",
				zap.String("note_id", note.ID), zap.Error(err))
			skipped = append(skipped, note.ID)
			continue
		}

		base := note.FileName
		if base == "" {
			base = curriculum.FilenameFromURL(note.FileURL)
		}
		name := base
		if n := seen[base]; n > 0 {
			ext := filepath.Ext(base)
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), n, ext)
		}
		seen[base]++

		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("create zip entry: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("write zip entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}

	if len(skipped) == len(notes) {
		return nil, apperrors.ErrUpstreamFetch.WithMessage("could not fetch any of the selected notes")
	}

	return &BulkArchive{
		Filename: fmt.Sprintf("vtu-notes-%s.zip", time.Now().Format("20060102-150405")),
		Data:     buf.Bytes(),
		Skipped:  skipped,
	}, nil
}

func (s *NoteService) fetchNoteBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Upload validates the form, stores the file, then inserts the
// metadata row. If the insert fails the stored object is deleted so no
// orphan remains.
func (s *NoteService) Upload(ctx context.Context, uploaderID string, req dto.UploadNoteRequest, header *multipart.FileHeader) (*models.Note, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}
	if header == nil {
		return nil, apperrors.ErrValidation.WithMessage("a file is required")
	}
	if header.Size > s.uploadCfg.MaxFileSizeBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !s.extensionAllowed(ext) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}
	defer file.Close()

	key := generateStorageKey(ext)
	if _, err := s.store.SaveStream(ctx, key, file, header.Size, contentTypeForExt(ext)); err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	note := &models.Note{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Subject:     req.Subject,
		Module:      req.Module,
		Branch:      req.Branch,
		Semester:    req.Semester,
		University:  req.University,
		Description: req.Description,
		FileURL:     s.store.PublicURL(key),
		FileName:    header.Filename,
		FileType:    ext,
		FileSize:    header.Size,
		UploadedBy:  uploaderID,
		IsEnabled:   true,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		_ = s.store.Delete(ctx, key)
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	if s.catalogCfg.CacheEnabled {
		if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
			s.log.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}

	entry := &models.AuditLog{
		ID:     uuid.NewString(),
		UserID: uploaderID,
		Action: models.AuditActionUpload,
		Detail: note.ID,
	}
	if err := s.audits.Create(ctx, entry); err != nil {
		s.log.Warn("audit log write failed",
			zap.String("action", entry.Action), zap.Error(err))
	}

	s.log.Info("note uploaded",
		zap.String("note_id", note.ID),
		zap.String("subject", note.Subject),
		zap.Int64("size", note.FileSize))

	return note, nil
}

func (s *NoteService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalNotes:           stats.TotalNotes,
		TotalDownloads:       stats.TotalDownloads,
		DistinctSubjects:     stats.DistinctSubjects,
		DistinctUniversities: stats.DistinctUniversities,
		RecentUploads:        recent,
	}, nil
}

// Export renders the full catalog through the given exporter.
func (s *NoteService) Export(ctx context.Context, exporter export.Exporter) ([]byte, string, error) {
	notes, err := s.repo.List(ctx, models.NoteFilter{})
	if err != nil {
		return nil, "", err
	}

	ds := export.Dataset{
		Title:   "Note Catalog",
		Headers: []string{"Title", "Subject", "Module", "Branch", "Semester", "University", "File Type", "Size (bytes)", "Downloads", "Uploaded At"},
	}
	for _, n := range notes {
		ds.Rows = append(ds.Rows, []string{
			n.Title, n.Subject, n.Module, n.Branch, strconv.Itoa(n.Semester), n.University,
			n.FileType, strconv.FormatInt(n.FileSize, 10),
			strconv.FormatInt(n.DownloadCount, 10),
			n.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := exporter.Export(ds)
	if err != nil {
		return nil, "", apperrors.ErrInternal.Wrap(err)
	}

	filename := fmt.Sprintf("note-catalog-%s.%s", time.Now().Format("20060102"), exporter.FileExtension())
	return data, filename, nil
}

func (s *NoteService) extensionAllowed(ext string) bool {
	for _, allowed := range s.uploadCfg.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

// generateStorageKey returns "<unix-ms>-<random>.<ext>", the same
// probabilistically unique naming the portal has always used.
func generateStorageKey(ext string) string {
	return fmt.Sprintf("%d-%d.%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "ppt":
		return "application/vnd.ms-powerpoint"
	case "pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	default:
		return "application/octet-stream"
	}
}

func normalizeFacet(value string) string {
	if value == "all" {
		return ""
	}
	return value
}

// filterBySearch keeps notes whose title or subject contains the query
// case-insensitively.
func filterBySearch(notes []models.Note, query string) []models.Note {
	q := strings.ToLower(query)
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Subject), q) {
			out = append(out, n)
		}
	}
	return out
}

// extractFacets derives the filter dropdown values from the loaded
// rows, preserving first-seen order.
func extractFacets(notes []models.Note) dto.NoteFacets {
	facets := dto.NoteFacets{
		Universities: []string{},
		Branches:     []string{},
		Subjects:     []string{},
	}

	seenU := make(map[string]bool)
	seenB := make(map[string]bool)
	seenS := make(map[string]bool)

	for _, n := range notes {
		if !seenU[n.University] {
			seenU[n.University] = true
			facets.Universities = append(facets.Universities, n.University)
		}
		if !seenB[n.Branch] {
			seenB[n.Branch] = true
			facets.Branches = append(facets.Branches, n.Branch)
		}
		if !seenS[n.Subject] {
			seenS[n.Subject] = true
			facets.Subjects = append(facets.Subjects, n.Subject)
		}
	}

	return facets
}
