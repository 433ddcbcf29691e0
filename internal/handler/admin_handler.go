package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/internal/service"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/export"
	"github.com/notevault/vtu-notes-api/pkg/response"
)

// AdminNoteProvider is the service surface the admin endpoints need.
type AdminNoteProvider interface {
	Upload(ctx context.Context, uploaderID string, req dto.UploadNoteRequest, header *multipart.FileHeader) (*models.Note, error)
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	Export(ctx context.Context, exporter export.Exporter) ([]byte, string, error)
}

type AdminHandler struct {
	service     AdminNoteProvider
	csvExporter export.Exporter
	pdfExporter export.Exporter
	metrics     *service.Metrics
}

func NewAdminHandler(svc AdminNoteProvider, csv, pdf export.Exporter, metrics *service.Metrics) *AdminHandler {
	return &AdminHandler{
		service:     svc,
		csvExporter: csv,
		pdfExporter: pdf,
		metrics:     metrics,
	}
}

// Upload godoc
// @Summary Upload a new note file with metadata
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param university formData string true "University"
// @Param branch formData string true "Branch"
// @Param subject formData string true "Subject"
// @Param semester formData int true "Semester (1-8)"
// @Param module formData string false "Module"
// @Param description formData string false "Description"
// @Param file formData file true "Note file"
// @Success 201 {object} response.Envelope
// @Router /admin/notes [post]
func (h *AdminHandler) Upload(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UploadNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperrors.ErrValidation.WithMessage("a file is required"))
		return
	}

	note, err := h.service.Upload(c.Request.Context(), claims.UserID, req, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.UploadsTotal.Inc()
	response.Created(c, note)
}

// Stats godoc
// @Summary Catalog totals and recent uploads
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

// ExportCSV godoc
// @Summary Export the catalog as CSV
// @Tags Admin
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {file} binary
// @Router /admin/exports/csv [get]
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	h.export(c, h.csvExporter)
}

// ExportPDF godoc
// @Summary Export the catalog as PDF
// @Tags Admin
// @Security BearerAuth
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /admin/exports/pdf [get]
func (h *AdminHandler) ExportPDF(c *gin.Context) {
	h.export(c, h.pdfExporter)
}

func (h *AdminHandler) export(c *gin.Context, exporter export.Exporter) {
	data, filename, err := h.service.Export(c.Request.Context(), exporter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, exporter.ContentType(), data)
}
