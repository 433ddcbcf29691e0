package dto

import "github.com/notevault/vtu-notes-api/internal/gradecalc"

type SGPARequest struct {
	Rows []gradecalc.GradeRow `json:"rows" validate:"required,min=1,dive"`
}

type CGPARequest struct {
	Rows []gradecalc.SemesterRow `json:"rows" validate:"required,min=1,dive"`
}

type CalculationResponse struct {
	Result     string  `json:"result"`
	Percentage float64 `json:"percentage"`
}

type GradesResponse struct {
	Grades      []GradePoint         `json:"grades"`
	DefaultRows []gradecalc.GradeRow `json:"default_rows"`
}

type GradePoint struct {
	Grade  string  `json:"grade"`
	Points float64 `json:"points"`
}

type TemplateResponse struct {
	Subjects []gradecalc.TemplateSubject `json:"subjects"`
	Rows     []gradecalc.GradeRow        `json:"rows"`
	// HasData is false when the scheme/branch/semester combination has
	// no template; clients show a notice and an empty row list.
	HasData bool `json:"has_data"`
}
