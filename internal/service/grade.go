package service

import (
	"strconv"

	"github.com/madibogo/records-backend/internal/model"
)

const (
	MinMark = 0.0
	MaxMark = 100.0
)

// RoundMark rounds a mark to the two decimal places the marks column keeps,
// so the grade is derived from the value that is actually stored.
func RoundMark(mark float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(mark, 'f', 2, 64), 64)
	if err != nil {
		return mark
	}
	return rounded
}

// ValidateMark rejects marks outside [0, 100].
func ValidateMark(mark float64) error {
	// NaN fails both comparisons, so test the accepted range instead.
	if !(mark >= MinMark && mark <= MaxMark) {
		return ErrMarkOutOfRange
	}
	return nil
}

// GradeFor maps a mark onto a letter grade. Lower bounds are inclusive.
func GradeFor(mark float64) model.Grade {
	switch {
	case mark >= 80:
		return model.GradeA
	case mark >= 70:
		return model.GradeB
	case mark >= 60:
		return model.GradeC
	case mark >= 50:
		return model.GradeD
	default:
		return model.GradeF
	}
}

// Passed reports whether the grade earns the module's credits.
func Passed(g model.Grade) bool {
	return g != model.GradeF
}
