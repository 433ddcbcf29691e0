package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/curriculum"
	"github.com/notevault/vtu-notes-api/internal/dto"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// Download notice statuses.
const (
	NoticeComingSoon      = "coming_soon"
	NoticeDownloadStarted = "download_started"
)

// CurriculumDownload is a streamed file fetched on a student's behalf.
type CurriculumDownload struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
	// Notice is set instead of Body for the "#" sentinel.
	Notice *dto.DownloadNotice
}

// CurriculumService serves the compiled-in curriculum index and
// proxies note-group downloads.
type CurriculumService struct {
	client  *http.Client
	baseURL string
	log     *zap.Logger
}

// NewCurriculumService builds the service. baseURL anchors the
// site-relative file paths the curriculum tables carry.
func NewCurriculumService(client *http.Client, baseURL string, log *zap.Logger) *CurriculumService {
	return &CurriculumService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (s *CurriculumService) Categories() *dto.CategoryResponse {
	return &dto.CategoryResponse{Categories: curriculum.Categories()}
}

func (s *CurriculumService) Category(id string) (*dto.CategoryDetailResponse, error) {
	c, err := curriculum.CategoryByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDetailResponse{Category: c}, nil
}

func (s *CurriculumService) Subjects(categoryID, semester string) (*dto.SubjectListResponse, error) {
	sem, err := strconv.Atoi(semester)
	if err != nil {
		return nil, apperrors.ErrValidation.WithMessage("semester must be an integer")
	}

	subjects, err := curriculum.SubjectsFor(categoryID, sem)
	if err != nil {
		return nil, err
	}

	return &dto.SubjectListResponse{
		Category: categoryID,
		Semester: sem,
		Subjects: subjects,
	}, nil
}

func (s *CurriculumService) Subject(code string) (*dto.SubjectDetailResponse, error) {
	entry, err := curriculum.EntryByCode(code)
	if err != nil {
		return nil, err
	}

	return &dto.SubjectDetailResponse{
		Subject:              entry,
		InitialExpandedIndex: curriculum.InitialExpandedIndex(entry),
	}, nil
}

func (s *CurriculumService) FirstYearSchemes() *dto.FirstYearSchemesResponse {
	return &dto.FirstYearSchemesResponse{
		Schemes: curriculum.FirstYearSchemes(),
		Cycles:  []string{"p-cycle", "c-cycle"},
	}
}

func (s *CurriculumService) FirstYearSubjects(scheme, cycle string) (*dto.SubjectListResponse, error) {
	subjects, err := curriculum.FirstYearSubjects(scheme, cycle)
	if err != nil {
		return nil, err
	}

	return &dto.SubjectListResponse{
		Category: "first-year",
		Subjects: subjects,
	}, nil
}

// Download resolves a subject's group (and optional module index) to a
// byte stream. The "#" sentinel produces a coming-soon notice without
// touching the network.
func (s *CurriculumService) Download(ctx context.Context, code string, groupIndex int, moduleIndex *int) (*CurriculumDownload, error) {
	entry, err := curriculum.EntryByCode(code)
	if err != nil {
		return nil, err
	}

	if groupIndex < 0 || groupIndex >= len(entry.Groups) {
		return nil, apperrors.ErrNotFound.WithMessage("note group not found")
	}
	group := entry.Groups[groupIndex]

	url := group.URL
	title := group.Title
	if len(group.Modules) > 0 {
		// A group with modules is a container; only its modules are
		// downloadable.
		if moduleIndex == nil {
			return nil, apperrors.ErrValidation.WithMessage("this group requires a module index")
		}
		if *moduleIndex < 0 || *moduleIndex >= len(group.Modules) {
			return nil, apperrors.ErrNotFound.WithMessage("module not found")
		}
		mod := group.Modules[*moduleIndex]
		url = mod.URL
		title = fmt.Sprintf("%s — %s", group.Title, mod.Name)
	}

	if url == curriculum.ComingSoonURL {
		return &CurriculumDownload{
			Notice: &dto.DownloadNotice{
				Status:  NoticeComingSoon,
				Title:   title,
				Message: fmt.Sprintf("%q will be available for download soon.", title),
			},
		}, nil
	}

	body, contentType, err := s.fetch(ctx, url)
	if err != nil {
		s.log.Warn("curriculum download fetch failed",
			zap.String("subject", code),
			zap.String("url", url),
			zap.Error(err))
		return nil, apperrors.ErrUpstreamFetch.Wrap(err)
	}

	return &CurriculumDownload{
		Filename:    curriculum.FilenameFromURL(url),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (s *CurriculumService) fetch(ctx context.Context, url string) (io.ReadCloser, string, error) {
	if strings.HasPrefix(url, "/") {
		url = s.baseURL + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build fetch request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return resp.Body, contentType, nil
}
