package gradecalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSGPA(t *testing.T) {
	t.Run("computes weighted average to two decimals", func(t *testing.T) {
		rows := []GradeRow{
			{Credits: 4, Grade: "O"},
			{Credits: 4, Grade: "A+"},
			{Credits: 3, Grade: "A"},
		}

		result, err := SGPA(rows)

		require.NoError(t, err)
		// (4*10 + 4*9 + 3*8) / 11 = 100/11
		assert.Equal(t, "9.09", result)
	})

	t.Run("returns 0.00 for empty list", func(t *testing.T) {
		result, err := SGPA(nil)

		require.NoError(t, err)
		assert.Equal(t, "0.00", result)
	})

	t.Run("returns 0.00 for zero total credits", func(t *testing.T) {
		result, err := SGPA([]GradeRow{{Credits: 0, Grade: "O"}})

		require.NoError(t, err)
		assert.Equal(t, "0.00", result)
	})

	t.Run("rejects unknown grade letter", func(t *testing.T) {
		_, err := SGPA([]GradeRow{{Credits: 4, Grade: "Z"}})

		assert.Error(t, err)
	})

	t.Run("treats F and Ab as zero points", func(t *testing.T) {
		result, err := SGPA([]GradeRow{
			{Credits: 2, Grade: "F"},
			{Credits: 2, Grade: "Ab"},
		})

		require.NoError(t, err)
		assert.Equal(t, "0.00", result)
	})
}

func TestCGPA(t *testing.T) {
	t.Run("computes credit-weighted average", func(t *testing.T) {
		rows := []SemesterRow{
			{SGPA: 9.0, Credits: 20},
			{SGPA: 8.5, Credits: 22},
		}

		// (9.0*20 + 8.5*22) / 42 = 8.738...
		assert.Equal(t, "8.74", CGPA(rows))
	})

	t.Run("returns 0.00 for empty list", func(t *testing.T) {
		assert.Equal(t, "0.00", CGPA(nil))
	})
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 82.5, Percentage(9.0), 1e-9)
	// Deliberately unclamped below zero.
	assert.InDelta(t, -7.5, Percentage(0), 1e-9)
}

func TestRemoveGradeRow(t *testing.T) {
	t.Run("removes the indexed row", func(t *testing.T) {
		rows := DefaultGradeRows()

		got := RemoveGradeRow(rows, 1)

		require.Len(t, got, 2)
		assert.Equal(t, "O", got[0].Grade)
		assert.Equal(t, "A", got[1].Grade)
	})

	t.Run("keeps a floor of one row", func(t *testing.T) {
		rows := []GradeRow{{Credits: 3, Grade: "O"}}

		got := RemoveGradeRow(rows, 0)

		assert.Len(t, got, 1)
	})

	t.Run("ignores out-of-range index", func(t *testing.T) {
		rows := DefaultGradeRows()

		assert.Len(t, RemoveGradeRow(rows, 7), 3)
		assert.Len(t, RemoveGradeRow(rows, -1), 3)
	})
}

func TestRemoveSemesterRow(t *testing.T) {
	rows := []SemesterRow{{SGPA: 8.0, Credits: 20}}

	assert.Len(t, RemoveSemesterRow(rows, 0), 1)
}

func TestGrades(t *testing.T) {
	grades := Grades()

	require.NotEmpty(t, grades)
	assert.Equal(t, "O", grades[0])

	// Descending point order.
	for i := 1; i < len(grades); i++ {
		prev, _ := Points(grades[i-1])
		cur, _ := Points(grades[i])
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestSubjectTemplate(t *testing.T) {
	t.Run("known combination seeds one row per subject", func(t *testing.T) {
		subjects, ok := SubjectTemplate("2022", "cse", 3)

		require.True(t, ok)
		require.NotEmpty(t, subjects)

		rows := RowsFromTemplate(subjects)
		require.Len(t, rows, len(subjects))
		for i, row := range rows {
			assert.Equal(t, "O", row.Grade)
			assert.Equal(t, subjects[i].Credits, row.Credits)
			assert.Equal(t, subjects[i].Name, row.Subject)
		}
	})

	t.Run("unknown combination reports no data", func(t *testing.T) {
		_, ok := SubjectTemplate("2022", "aerospace", 3)
		assert.False(t, ok)

		_, ok = SubjectTemplate("1999", "cse", 3)
		assert.False(t, ok)

		_, ok = SubjectTemplate("2022", "cse", 8)
		assert.False(t, ok)
	})
}
