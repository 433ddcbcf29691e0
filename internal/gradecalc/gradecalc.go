// Package gradecalc implements the VTU SGPA/CGPA arithmetic and the
// grade-row list state machine backing the calculator endpoints.
package gradecalc

import (
	"fmt"
	"sort"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// gradePoints is the fixed VTU grade-to-points table. Ab (absent) maps
// to zero like F.
var gradePoints = map[string]float64{
	"O":  10,
	"A+": 9,
	"A":  8,
	"B+": 7,
	"B":  6,
	"C":  5,
	"P":  4,
	"F":  0,
	"Ab": 0,
}

// GradeRow is one subject's entry in an SGPA computation.
type GradeRow struct {
	Subject string `json:"subject,omitempty"`
	Credits int    `json:"credits" validate:"required,min=1"`
	Grade   string `json:"grade" validate:"required"`
}

// SemesterRow is one semester's entry in a CGPA computation.
type SemesterRow struct {
	SGPA    float64 `json:"sgpa" validate:"min=0,max=10"`
	Credits int     `json:"credits" validate:"required,min=1"`
}

// Points returns the grade points for a grade letter.
func Points(grade string) (float64, error) {
	p, ok := gradePoints[grade]
	if !ok {
		return 0, apperrors.ErrValidation.WithMessage(fmt.Sprintf("unknown grade %q", grade))
	}
	return p, nil
}

// Grades returns the grade letters in descending point order.
func Grades() []string {
	letters := make([]string, 0, len(gradePoints))
	for g := range gradePoints {
		letters = append(letters, g)
	}
	sort.Slice(letters, func(i, j int) bool {
		if gradePoints[letters[i]] != gradePoints[letters[j]] {
			return gradePoints[letters[i]] > gradePoints[letters[j]]
		}
		return letters[i] < letters[j]
	})
	return letters
}

// SGPA computes the weighted grade-point average over the rows and
// renders it to two decimals. Zero total credits yields "0.00".
func SGPA(rows []GradeRow) (string, error) {
	var sum, credits float64
	for _, row := range rows {
		points, err := Points(row.Grade)
		if err != nil {
			return "", err
		}
		sum += float64(row.Credits) * points
		credits += float64(row.Credits)
	}

	return format(sum, credits), nil
}

// CGPA computes the credit-weighted average of semester SGPAs rendered
// to two decimals. Zero total credits yields "0.00".
func CGPA(rows []SemesterRow) string {
	var sum, credits float64
	for _, row := range rows {
		sum += float64(row.Credits) * row.SGPA
		credits += float64(row.Credits)
	}

	return format(sum, credits)
}

// Percentage converts an SGPA/CGPA value using the VTU formula. The
// result is deliberately unclamped.
func Percentage(value float64) float64 {
	return value*10 - 7.5
}

func format(sum, credits float64) string {
	if credits == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", sum/credits)
}

// DefaultGradeRows is the seed state of the SGPA row list.
func DefaultGradeRows() []GradeRow {
	return []GradeRow{
		{Credits: 4, Grade: "O"},
		{Credits: 4, Grade: "A+"},
		{Credits: 3, Grade: "A"},
	}
}

// DefaultSemesterRows is the seed state of the CGPA row list.
func DefaultSemesterRows() []SemesterRow {
	return []SemesterRow{
		{SGPA: 9.0, Credits: 20},
		{SGPA: 8.5, Credits: 22},
	}
}

// NewGradeRow is the row appended by the add operation.
func NewGradeRow() GradeRow {
	return GradeRow{Credits: 3, Grade: "O"}
}

// NewSemesterRow is the row appended by the add operation.
func NewSemesterRow() SemesterRow {
	return SemesterRow{SGPA: 8.0, Credits: 20}
}

// RemoveGradeRow drops the row at index i. Removing from a single-row
// list is a no-op so the list never becomes empty.
func RemoveGradeRow(rows []GradeRow, i int) []GradeRow {
	if len(rows) <= 1 || i < 0 || i >= len(rows) {
		return rows
	}
	return append(rows[:i:i], rows[i+1:]...)
}

// RemoveSemesterRow drops the row at index i with the same floor of
// one row.
func RemoveSemesterRow(rows []SemesterRow, i int) []SemesterRow {
	if len(rows) <= 1 || i < 0 || i >= len(rows) {
		return rows
	}
	return append(rows[:i:i], rows[i+1:]...)
}
