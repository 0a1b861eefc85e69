package service

import (
	"errors"
	"math"
	"testing"

	"github.com/madibogo/records-backend/internal/model"
)

func TestGradeForBoundaries(t *testing.T) {
	tests := []struct {
		mark float64
		want model.Grade
	}{
		{100, model.GradeA},
		{80, model.GradeA},
		{79.99, model.GradeB},
		{70, model.GradeB},
		{69.5, model.GradeC},
		{60, model.GradeC},
		{59.99, model.GradeD},
		{50, model.GradeD},
		{49.99, model.GradeF},
		{0, model.GradeF},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.mark); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.mark, got, tt.want)
		}
	}
}

func TestRoundMark(t *testing.T) {
	tests := []struct {
		mark float64
		want float64
	}{
		{72.5, 72.5},
		{79.996, 80},
		{79.994, 79.99},
		{49.996, 50},
		{69.999, 70},
		{100.004, 100},
		{100.006, 100.01},
	}
	for _, tt := range tests {
		if got := RoundMark(tt.mark); got != tt.want {
			t.Errorf("RoundMark(%v) = %v, want %v", tt.mark, got, tt.want)
		}
	}
	if !math.IsNaN(RoundMark(math.NaN())) {
		t.Error("RoundMark(NaN) should stay NaN")
	}
}

func TestValidateMark(t *testing.T) {
	for _, mark := range []float64{0, 0.01, 50, 99.99, 100} {
		if err := ValidateMark(mark); err != nil {
			t.Errorf("ValidateMark(%v) = %v, want nil", mark, err)
		}
	}
	for _, mark := range []float64{-0.01, -1, 100.01, 101, math.NaN(), math.Inf(1)} {
		if err := ValidateMark(mark); !errors.Is(err, ErrMarkOutOfRange) {
			t.Errorf("ValidateMark(%v) = %v, want ErrMarkOutOfRange", mark, err)
		}
	}
}

func TestPassed(t *testing.T) {
	if Passed(model.GradeF) {
		t.Error("F must not pass")
	}
	for _, g := range []model.Grade{model.GradeA, model.GradeB, model.GradeC, model.GradeD} {
		if !Passed(g) {
			t.Errorf("%s should pass", g)
		}
	}
}
