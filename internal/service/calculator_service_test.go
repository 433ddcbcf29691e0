package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/gradecalc"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

func newCalculatorService() *CalculatorService {
	return NewCalculatorService(validator.New(), zap.NewNop())
}

func TestCalculatorServiceSGPA(t *testing.T) {
	svc := newCalculatorService()

	t.Run("computes result and percentage", func(t *testing.T) {
		resp, err := svc.SGPA(dto.SGPARequest{Rows: []gradecalc.GradeRow{
			{Credits: 4, Grade: "O"},
			{Credits: 4, Grade: "A+"},
			{Credits: 3, Grade: "A"},
		}})

		require.NoError(t, err)
		assert.Equal(t, "9.09", resp.Result)
		assert.InDelta(t, 9.09*10-7.5, resp.Percentage, 1e-9)
	})

	t.Run("empty row list fails validation", func(t *testing.T) {
		_, err := svc.SGPA(dto.SGPARequest{})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})

	t.Run("unknown grade fails validation", func(t *testing.T) {
		_, err := svc.SGPA(dto.SGPARequest{Rows: []gradecalc.GradeRow{
			{Credits: 4, Grade: "Z"},
		}})

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}

func TestCalculatorServiceCGPA(t *testing.T) {
	svc := newCalculatorService()

	resp, err := svc.CGPA(dto.CGPARequest{Rows: []gradecalc.SemesterRow{
		{SGPA: 9.0, Credits: 20},
		{SGPA: 8.5, Credits: 22},
	}})

	require.NoError(t, err)
	assert.Equal(t, "8.74", resp.Result)
}

func TestCalculatorServiceGrades(t *testing.T) {
	svc := newCalculatorService()

	resp := svc.Grades()

	require.NotEmpty(t, resp.Grades)
	assert.Equal(t, "O", resp.Grades[0].Grade)
	assert.InDelta(t, 10, resp.Grades[0].Points, 1e-9)
	assert.Equal(t, gradecalc.DefaultGradeRows(), resp.DefaultRows)
}

func TestCalculatorServiceTemplate(t *testing.T) {
	svc := newCalculatorService()

	t.Run("known combination seeds rows", func(t *testing.T) {
		resp, err := svc.Template("2022", "cse", "3")

		require.NoError(t, err)
		assert.True(t, resp.HasData)
		require.NotEmpty(t, resp.Rows)
		for _, row := range resp.Rows {
			assert.Equal(t, "O", row.Grade)
		}
	})

	t.Run("unknown combination returns empty list with notice flag", func(t *testing.T) {
		resp, err := svc.Template("2022", "marine", "3")

		require.NoError(t, err)
		assert.False(t, resp.HasData)
		assert.Empty(t, resp.Rows)
	})

	t.Run("non-integer semester is a validation error", func(t *testing.T) {
		_, err := svc.Template("2022", "cse", "three")

		assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	})
}
