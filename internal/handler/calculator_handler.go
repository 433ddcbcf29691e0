package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/dto"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/response"
)

// CalculatorProvider is the service surface the calculator endpoints
// need.
type CalculatorProvider interface {
	SGPA(req dto.SGPARequest) (*dto.CalculationResponse, error)
	CGPA(req dto.CGPARequest) (*dto.CalculationResponse, error)
	Grades() *dto.GradesResponse
	Template(scheme, branch, semester string) (*dto.TemplateResponse, error)
}

type CalculatorHandler struct {
	service CalculatorProvider
}

func NewCalculatorHandler(service CalculatorProvider) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// SGPA godoc
// @Summary Compute SGPA from grade rows
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.SGPARequest true "Grade rows"
// @Success 200 {object} response.Envelope
// @Router /calculator/sgpa [post]
func (h *CalculatorHandler) SGPA(c *gin.Context) {
	var req dto.SGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	result, err := h.service.SGPA(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// CGPA godoc
// @Summary Compute CGPA from semester rows
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.CGPARequest true "Semester rows"
// @Success 200 {object} response.Envelope
// @Router /calculator/cgpa [post]
func (h *CalculatorHandler) CGPA(c *gin.Context) {
	var req dto.CGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	result, err := h.service.CGPA(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Grades godoc
// @Summary Grade-point table and default rows
// @Tags Calculator
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calculator/grades [get]
func (h *CalculatorHandler) Grades(c *gin.Context) {
	response.OK(c, h.service.Grades())
}

// Template godoc
// @Summary Subject template for a scheme, branch and semester
// @Tags Calculator
// @Produce json
// @Param scheme query string true "Scheme year"
// @Param branch query string true "Branch id"
// @Param semester query int true "Semester"
// @Success 200 {object} response.Envelope
// @Router /calculator/template [get]
func (h *CalculatorHandler) Template(c *gin.Context) {
	result, err := h.service.Template(
		c.Query("scheme"),
		c.Query("branch"),
		c.Query("semester"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
