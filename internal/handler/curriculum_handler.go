package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/service"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/response"
)

// CurriculumProvider is the service surface the curriculum endpoints
// need.
type CurriculumProvider interface {
	Categories() *dto.CategoryResponse
	Category(id string) (*dto.CategoryDetailResponse, error)
	Subjects(categoryID, semester string) (*dto.SubjectListResponse, error)
	Subject(code string) (*dto.SubjectDetailResponse, error)
	FirstYearSchemes() *dto.FirstYearSchemesResponse
	FirstYearSubjects(scheme, cycle string) (*dto.SubjectListResponse, error)
	Download(ctx context.Context, code string, groupIndex int, moduleIndex *int) (*service.CurriculumDownload, error)
}

type CurriculumHandler struct {
	service CurriculumProvider
	metrics *service.Metrics
}

func NewCurriculumHandler(svc CurriculumProvider, metrics *service.Metrics) *CurriculumHandler {
	return &CurriculumHandler{service: svc, metrics: metrics}
}

// Branches godoc
// @Summary List branch categories
// @Tags Curriculum
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /curriculum/branches [get]
func (h *CurriculumHandler) Branches(c *gin.Context) {
	response.OK(c, h.service.Categories())
}

// Branch godoc
// @Summary Get one branch category
// @Tags Curriculum
// @Produce json
// @Param category path string true "Category id"
// @Success 200 {object} response.Envelope
// @Router /curriculum/branches/{category} [get]
func (h *CurriculumHandler) Branch(c *gin.Context) {
	result, err := h.service.Category(c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Subjects godoc
// @Summary List subjects for a category and semester
// @Tags Curriculum
// @Produce json
// @Param category path string true "Category id"
// @Param semester path int true "Semester"
// @Success 200 {object} response.Envelope
// @Router /curriculum/branches/{category}/semesters/{semester} [get]
func (h *CurriculumHandler) Subjects(c *gin.Context) {
	result, err := h.service.Subjects(c.Param("category"), c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Subject godoc
// @Summary Get a subject's note groups
// @Tags Curriculum
// @Produce json
// @Param code path string true "Subject code"
// @Success 200 {object} response.Envelope
// @Router /curriculum/subjects/{code} [get]
func (h *CurriculumHandler) Subject(c *gin.Context) {
	result, err := h.service.Subject(c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// FirstYearSchemes godoc
// @Summary List first-year schemes and cycles
// @Tags Curriculum
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /curriculum/first-year/schemes [get]
func (h *CurriculumHandler) FirstYearSchemes(c *gin.Context) {
	response.OK(c, h.service.FirstYearSchemes())
}

// FirstYearSubjects godoc
// @Summary List first-year subjects for a scheme and cycle
// @Tags Curriculum
// @Produce json
// @Param scheme path string true "Scheme year"
// @Param cycle path string true "p-cycle or c-cycle"
// @Success 200 {object} response.Envelope
// @Router /curriculum/first-year/{scheme}/{cycle} [get]
func (h *CurriculumHandler) FirstYearSubjects(c *gin.Context) {
	result, err := h.service.FirstYearSubjects(c.Param("scheme"), c.Param("cycle"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Download godoc
// @Summary Download a note group or one of its modules
// @Tags Curriculum
// @Produce octet-stream
// @Param code path string true "Subject code"
// @Param group path int true "Group index"
// @Param module query int false "Module index"
// @Success 200 {file} binary
// @Success 202 {object} response.Envelope "Coming soon notice"
// @Router /curriculum/subjects/{code}/groups/{group}/download [get]
func (h *CurriculumHandler) Download(c *gin.Context) {
	groupIndex, err := strconv.Atoi(c.Param("group"))
	if err != nil {
		response.Error(c, apperrors.ErrValidation.WithMessage("group must be an integer index"))
		return
	}

	var moduleIndex *int
	if raw := c.Query("module"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperrors.ErrValidation.WithMessage("module must be an integer index"))
			return
		}
		moduleIndex = &i
	}

	result, err := h.service.Download(c.Request.Context(), c.Param("code"), groupIndex, moduleIndex)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Notice != nil {
		response.JSON(c, http.StatusAccepted, result.Notice)
		return
	}
	defer result.Body.Close()

	h.metrics.DownloadsTotal.WithLabelValues("curriculum").Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("Content-Type", result.ContentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, result.Body); err != nil {
		// Headers are gone; nothing useful left to send.
		_ = c.Error(err)
	}
}
