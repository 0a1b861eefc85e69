package service

import (
	"context"
	"fmt"
	"math"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/rs/zerolog"
)

// SummaryStore computes registry-wide aggregates.
type SummaryStore interface {
	Summary(ctx context.Context) (*model.Summary, error)
}

// TranscriptSource supplies the pieces of a transcript.
type TranscriptSource interface {
	List(ctx context.Context, f model.EnrollmentFilter) ([]model.EnrollmentRecord, error)
}

// ReportService builds the admin summary and student transcripts.
type ReportService struct {
	summary     SummaryStore
	enrollments TranscriptSource
	students    *StudentService
	log         zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(summary SummaryStore, enrollments TranscriptSource, students *StudentService, log zerolog.Logger) *ReportService {
	return &ReportService{
		summary:     summary,
		enrollments: enrollments,
		students:    students,
		log:         log.With().Str("component", "report_service").Logger(),
	}
}

// Summary returns counts, mean mark and grade distribution.
func (s *ReportService) Summary(ctx context.Context) (*model.Summary, error) {
	sum, err := s.summary.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}
	if sum.AverageMark != nil {
		avg := round2(*sum.AverageMark)
		sum.AverageMark = &avg
	}
	return sum, nil
}

// Transcript returns a student's enrollments with credit totals and the
// credit-weighted mean of graded modules.
func (s *ReportService) Transcript(ctx context.Context, studentID int) (*model.Transcript, error) {
	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.enrollments.List(ctx, model.EnrollmentFilter{StudentID: &studentID})
	if err != nil {
		return nil, fmt.Errorf("list transcript records: %w", err)
	}

	t := BuildTranscript(records)
	t.Student = student
	return t, nil
}

// BuildTranscript totals credits over the records. Withdrawn enrollments are
// listed but count towards nothing.
func BuildTranscript(records []model.EnrollmentRecord) *model.Transcript {
	t := &model.Transcript{Records: records}
	if t.Records == nil {
		t.Records = []model.EnrollmentRecord{}
	}

	var weighted float64
	var weight int
	for _, r := range records {
		if r.Status == model.EnrollmentWithdrawn || r.MarkObtained == nil {
			continue
		}
		credits := 0
		if r.CreditHours != nil {
			credits = *r.CreditHours
		}
		t.CreditsAttempted += credits
		if Passed(GradeFor(*r.MarkObtained)) {
			t.CreditsEarned += credits
		}
		weighted += *r.MarkObtained * float64(credits)
		weight += credits
	}

	if weight > 0 {
		avg := round2(weighted / float64(weight))
		t.WeightedAverage = &avg
	}
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
