package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/internal/service"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/response"
)

// NoteProvider is the service surface the public catalog endpoints
// need.
type NoteProvider interface {
	List(ctx context.Context, query dto.NoteListQuery) (*dto.NoteListResponse, error)
	Download(ctx context.Context, id string) (*models.Note, error)
	Preview(ctx context.Context, id string) (*models.Note, error)
	BulkDownload(ctx context.Context, req dto.BulkDownloadRequest) (*service.BulkArchive, error)
}

type NoteHandler struct {
	service NoteProvider
	metrics *service.Metrics
}

func NewNoteHandler(svc NoteProvider, metrics *service.Metrics) *NoteHandler {
	return &NoteHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List catalog notes with filters and facets
// @Tags Notes
// @Produce json
// @Param search query string false "Free-text search over title and subject"
// @Param category query string false "Branch category id"
// @Param branch query string false "Branch substring"
// @Param semester query int false "Semester"
// @Param university query string false "University substring"
// @Param subject query string false "Subject facet value"
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	var query dto.NoteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.WithMeta(c, result, gin.H{"count": result.Total})
}

// Download godoc
// @Summary Redirect to a note's file and count the download
// @Tags Notes
// @Param id path string true "Note id"
// @Success 302
// @Router /notes/{id}/download [get]
func (h *NoteHandler) Download(c *gin.Context) {
	note, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.DownloadsTotal.WithLabelValues("single").Inc()
	c.Redirect(http.StatusFound, note.FileURL)
}

// Preview godoc
// @Summary Redirect to a note's file without counting
// @Tags Notes
// @Param id path string true "Note id"
// @Success 302
// @Router /notes/{id}/preview [get]
func (h *NoteHandler) Preview(c *gin.Context) {
	note, err := h.service.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.DownloadsTotal.WithLabelValues("preview").Inc()
	c.Redirect(http.StatusFound, note.FileURL)
}

// BulkDownload godoc
// @Summary Download selected notes as one ZIP archive
// @Tags Notes
// @Accept json
// @Produce application/zip
// @Param request body dto.BulkDownloadRequest true "Note ids"
// @Success 200 {file} binary
// @Router /notes/bulk-download [post]
func (h *NoteHandler) BulkDownload(c *gin.Context) {
	var req dto.BulkDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	archive, err := h.service.BulkDownload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.DownloadsTotal.WithLabelValues("bulk").Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
	if len(archive.Skipped) > 0 {
		c.Header("X-Skipped-Notes", fmt.Sprintf("%d", len(archive.Skipped)))
	}
	c.Data(http.StatusOK, "application/zip", archive.Data)
}
