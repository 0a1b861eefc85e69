package service

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/rs/zerolog"
)

type recordingCatalogue struct {
	order []string
}

func (r *recordingCatalogue) UpsertFaculty(_ context.Context, f *model.Faculty) error {
	r.order = append(r.order, "faculty:"+f.Code)
	return nil
}

func (r *recordingCatalogue) UpsertProgramme(_ context.Context, p *model.Programme) error {
	r.order = append(r.order, "programme:"+p.Code)
	return nil
}

func (r *recordingCatalogue) UpsertSemester(_ context.Context, s *model.Semester) error {
	r.order = append(r.order, "semester:"+s.Code)
	return nil
}

func (r *recordingCatalogue) UpsertModule(_ context.Context, m *model.Module) error {
	r.order = append(r.order, "module:"+m.Code)
	return nil
}

const smallCatalogue = `
faculties:
  - code: FSCI
    name: Faculty of Science
programmes:
  - code: BSCCS
    name: BSc Computer Science
    faculty: FSCI
semesters:
  - code: 2024S1
    academicYear: 2024
    number: 1
modules:
  - code: CSI141
    name: Programming Principles
    creditHours: 12
    yearLevel: 1
    semester: 1
    programme: BSCCS
students:
  - name: Existing Student
    email: taken@x
    password: pw
  - name: New Student
    email: new@x
    password: pw
    programme: BSCCS
`

func TestParseCatalogue(t *testing.T) {
	c, err := ParseCatalogue(strings.NewReader(smallCatalogue))
	if err != nil {
		t.Fatalf("ParseCatalogue: %v", err)
	}
	if len(c.Faculties) != 1 || len(c.Programmes) != 1 || len(c.Semesters) != 1 || len(c.Modules) != 1 || len(c.Students) != 2 {
		t.Fatalf("catalogue = %+v", c)
	}
	if c.Programmes[0].FacultyCode != "FSCI" || c.Semesters[0].SemesterNumber != 1 {
		t.Fatalf("yaml keys not mapped: %+v %+v", c.Programmes[0], c.Semesters[0])
	}
	m := c.Modules[0]
	if m.SemesterOffered == nil || *m.SemesterOffered != 1 || m.ProgrammeCode == nil || *m.ProgrammeCode != "BSCCS" {
		t.Fatalf("module = %+v", m)
	}
}

func TestParseCatalogueRejectsUnknownKeys(t *testing.T) {
	_, err := ParseCatalogue(strings.NewReader("faculties:\n  - code: X\n    dean: Someone\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseCatalogueEmpty(t *testing.T) {
	c, err := ParseCatalogue(strings.NewReader(""))
	if err != nil || c == nil {
		t.Fatalf("ParseCatalogue(empty) = %v, %v", c, err)
	}
}

func TestParseBundledCatalogue(t *testing.T) {
	f, err := os.Open("../../seed/catalogue.yaml")
	if err != nil {
		t.Skipf("bundled catalogue not found: %v", err)
	}
	defer f.Close()

	c, err := ParseCatalogue(f)
	if err != nil {
		t.Fatalf("ParseCatalogue: %v", err)
	}
	if len(c.Modules) == 0 || len(c.Semesters) == 0 {
		t.Fatalf("bundled catalogue is empty: %+v", c)
	}
	for _, s := range c.Semesters {
		if s.StartDate == nil || s.EndDate == nil || !s.StartDate.Before(*s.EndDate) {
			t.Errorf("semester %s has bad dates", s.Code)
		}
	}
}

func TestSeedApply(t *testing.T) {
	c, err := ParseCatalogue(strings.NewReader(smallCatalogue))
	if err != nil {
		t.Fatalf("ParseCatalogue: %v", err)
	}
	writer := &recordingCatalogue{}
	students := newFakeStudents(&model.Student{Email: "taken@x"})
	svc := NewSeedService(writer, students, plainHasher{}, zerolog.Nop())

	res, err := svc.Apply(context.Background(), c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Faculties != 1 || res.Programmes != 1 || res.Semesters != 1 || res.Modules != 1 {
		t.Fatalf("result = %+v", res)
	}
	if res.StudentsCreated != 1 || res.StudentsSkipped != 1 {
		t.Fatalf("students created %d skipped %d, want 1 and 1", res.StudentsCreated, res.StudentsSkipped)
	}

	want := []string{"faculty:FSCI", "programme:BSCCS", "semester:2024S1", "module:CSI141"}
	if strings.Join(writer.order, ",") != strings.Join(want, ",") {
		t.Fatalf("order = %v, want %v", writer.order, want)
	}

	created, err := students.GetByEmail(context.Background(), "new@x")
	if err != nil {
		t.Fatalf("seeded student missing: %v", err)
	}
	if created.PasswordHash != "hashed:pw" || created.EnrollmentStatus != model.StudentActive {
		t.Fatalf("seeded student = %+v", created)
	}
}
