package service

import (
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/gradecalc"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// CalculatorService wraps the gradecalc arithmetic with validation and
// response shaping.
type CalculatorService struct {
	validate *validator.Validate
	log      *zap.Logger
}

func NewCalculatorService(validate *validator.Validate, log *zap.Logger) *CalculatorService {
	return &CalculatorService{validate: validate, log: log}
}

func (s *CalculatorService) SGPA(req dto.SGPARequest) (*dto.CalculationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	result, err := gradecalc.SGPA(req.Rows)
	if err != nil {
		return nil, err
	}

	return s.toResponse(result), nil
}

func (s *CalculatorService) CGPA(req dto.CGPARequest) (*dto.CalculationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	return s.toResponse(gradecalc.CGPA(req.Rows)), nil
}

// Grades returns the grade-point table and the seed row list clients
// initialize the calculator with.
func (s *CalculatorService) Grades() *dto.GradesResponse {
	letters := gradecalc.Grades()

	grades := make([]dto.GradePoint, 0, len(letters))
	for _, g := range letters {
		points, _ := gradecalc.Points(g)
		grades = append(grades, dto.GradePoint{Grade: g, Points: points})
	}

	sort.SliceStable(grades, func(i, j int) bool { return grades[i].Points > grades[j].Points })

	return &dto.GradesResponse{
		Grades:      grades,
		DefaultRows: gradecalc.DefaultGradeRows(),
	}
}

// Template resolves the scheme/branch/semester subject template. An
// unknown combination is not an error: the response carries an empty
// row list and HasData=false so clients can show a notice.
func (s *CalculatorService) Template(scheme, branch, semester string) (*dto.TemplateResponse, error) {
	sem, err := strconv.Atoi(semester)
	if err != nil {
		return nil, apperrors.ErrValidation.WithMessage("semester must be an integer")
	}

	subjects, ok := gradecalc.SubjectTemplate(scheme, branch, sem)
	if !ok {
		return &dto.TemplateResponse{
			Subjects: []gradecalc.TemplateSubject{},
			Rows:     []gradecalc.GradeRow{},
			HasData:  false,
		}, nil
	}

	return &dto.TemplateResponse{
		Subjects: subjects,
		Rows:     gradecalc.RowsFromTemplate(subjects),
		HasData:  true,
	}, nil
}

func (s *CalculatorService) toResponse(result string) *dto.CalculationResponse {
	value, _ := strconv.ParseFloat(result, 64)
	return &dto.CalculationResponse{
		Result:     result,
		Percentage: gradecalc.Percentage(value),
	}
}
