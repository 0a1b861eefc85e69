package service

import (
	"context"
	"errors"
	"testing"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/rs/zerolog"
)

func record(mark *float64, credits int, status model.EnrollmentStatus) model.EnrollmentRecord {
	return model.EnrollmentRecord{
		Enrollment:  model.Enrollment{MarkObtained: mark, Status: status},
		CreditHours: &credits,
	}
}

func f64(v float64) *float64 { return &v }

func TestBuildTranscript(t *testing.T) {
	records := []model.EnrollmentRecord{
		record(f64(80), 12, model.EnrollmentCompleted),
		record(f64(40), 6, model.EnrollmentCompleted),
		record(nil, 12, model.EnrollmentEnrolled),
		record(f64(90), 12, model.EnrollmentWithdrawn),
	}

	tr := BuildTranscript(records)
	if tr.CreditsAttempted != 18 {
		t.Errorf("attempted = %d, want 18", tr.CreditsAttempted)
	}
	if tr.CreditsEarned != 12 {
		t.Errorf("earned = %d, want 12", tr.CreditsEarned)
	}
	// (80*12 + 40*6) / 18
	if tr.WeightedAverage == nil || *tr.WeightedAverage != 66.67 {
		t.Errorf("weighted average = %v, want 66.67", tr.WeightedAverage)
	}
	if len(tr.Records) != 4 {
		t.Errorf("records = %d, want all 4 listed", len(tr.Records))
	}
}

func TestBuildTranscriptEmpty(t *testing.T) {
	tr := BuildTranscript(nil)
	if tr.Records == nil || tr.WeightedAverage != nil || tr.CreditsAttempted != 0 {
		t.Fatalf("empty transcript = %+v", tr)
	}
}

type stubSummary struct{ sum *model.Summary }

func (s stubSummary) Summary(context.Context) (*model.Summary, error) { return s.sum, nil }

func TestSummaryRoundsAverage(t *testing.T) {
	svc := NewReportService(stubSummary{&model.Summary{AverageMark: f64(66.66666)}}, newFakeEnrollments(), nil, zerolog.Nop())
	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if *sum.AverageMark != 66.67 {
		t.Fatalf("average = %v, want 66.67", *sum.AverageMark)
	}
}

func TestTranscriptUnknownStudent(t *testing.T) {
	students := newStudentService(newFakeStudents(), newFakeEnrollments())
	svc := NewReportService(stubSummary{}, newFakeEnrollments(), students, zerolog.Nop())
	if _, err := svc.Transcript(context.Background(), 5); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("Transcript = %v, want ErrStudentNotFound", err)
	}
}

func TestTranscriptForStudent(t *testing.T) {
	ctx := context.Background()
	enrollments := newFakeEnrollments("CSI141")
	engine := NewEnrollmentService(enrollments, zerolog.Nop())
	id, _ := engine.Enroll(ctx, 1, "CSI141", "2024S1")
	if _, err := engine.RecordMark(ctx, id, 75); err != nil {
		t.Fatalf("RecordMark: %v", err)
	}

	students := newStudentService(newFakeStudents(&model.Student{ID: 1, Email: "a@x"}), enrollments)
	svc := NewReportService(stubSummary{}, enrollments, students, zerolog.Nop())

	tr, err := svc.Transcript(ctx, 1)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr.Student.ID != 1 || tr.CreditsEarned != 12 || *tr.WeightedAverage != 75 {
		t.Fatalf("transcript = %+v", tr)
	}
}
