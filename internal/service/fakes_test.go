package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

// fakeEnrollments is an in-memory EnrollmentStore that enforces the same
// uniqueness and reference rules as the schema.
type fakeEnrollments struct {
	mu      sync.Mutex
	nextID  int
	rows    map[int]*model.Enrollment
	modules map[string]int // module code -> credit hours
	// skipExists makes Exists always report false so the insert path runs.
	skipExists bool
	failWith   error
}

func newFakeEnrollments(modules ...string) *fakeEnrollments {
	f := &fakeEnrollments{rows: map[int]*model.Enrollment{}, modules: map[string]int{}}
	for _, m := range modules {
		f.modules[m] = 12
	}
	return f
}

func (f *fakeEnrollments) List(_ context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []model.EnrollmentRecord{}
	for _, e := range f.rows {
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		if filter.GradedOnly && e.MarkObtained == nil {
			continue
		}
		credits := f.modules[e.ModuleCode]
		out = append(out, model.EnrollmentRecord{Enrollment: *e, CreditHours: &credits})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEnrollments) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEnrollments) Exists(_ context.Context, studentID int, moduleCode, semesterCode string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	if f.skipExists {
		return false, nil
	}
	return f.findLocked(studentID, moduleCode, semesterCode), nil
}

func (f *fakeEnrollments) findLocked(studentID int, moduleCode, semesterCode string) bool {
	for _, e := range f.rows {
		if e.StudentID == studentID && e.ModuleCode == moduleCode && e.SemesterCode == semesterCode {
			return true
		}
	}
	return false
}

func (f *fakeEnrollments) Create(_ context.Context, e *model.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.modules[e.ModuleCode]; !ok {
		return fmt.Errorf("%w (student_enrollments_module_code_fkey)", repository.ErrForeignKeyViolation)
	}
	if f.findLocked(e.StudentID, e.ModuleCode, e.SemesterCode) {
		return fmt.Errorf("%w (uq_enrollment_triple)", repository.ErrUniqueViolation)
	}
	f.nextID++
	e.ID = f.nextID
	e.Status = model.EnrollmentEnrolled
	e.EnrollmentDate = time.Now().Truncate(24 * time.Hour)
	cp := *e
	f.rows[e.ID] = &cp
	return nil
}

func (f *fakeEnrollments) SetMark(_ context.Context, id int, mark float64, grade model.Grade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.MarkObtained = &mark
	e.Grade = &grade
	return nil
}

func (f *fakeEnrollments) TransitionFromEnrolled(_ context.Context, id int, status model.EnrollmentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[id]
	if !ok || e.Status != model.EnrollmentEnrolled {
		return false, nil
	}
	e.Status = status
	return true, nil
}

func (f *fakeEnrollments) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeEnrollments) CountByModule(_ context.Context, code string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.rows {
		if e.ModuleCode == code {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollments) CountByStudent(_ context.Context, id int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.rows {
		if e.StudentID == id {
			n++
		}
	}
	return n, nil
}

// fakeModules is an in-memory ModuleStore.
type fakeModules struct {
	rows       map[string]*model.Module
	programmes map[string]bool
	// deleteErr, when set, is returned by Delete instead of removing the row.
	deleteErr error
}

func newFakeModules(programmes ...string) *fakeModules {
	f := &fakeModules{rows: map[string]*model.Module{}, programmes: map[string]bool{}}
	for _, p := range programmes {
		f.programmes[p] = true
	}
	return f
}

func (f *fakeModules) List(context.Context) ([]model.Module, error) {
	out := []model.Module{}
	for _, m := range f.rows {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (f *fakeModules) ListByProgramme(_ context.Context, code string) ([]model.Module, error) {
	out := []model.Module{}
	for _, m := range f.rows {
		if m.ProgrammeCode != nil && *m.ProgrammeCode == code {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeModules) GetByCode(_ context.Context, code string) (*model.Module, error) {
	m, ok := f.rows[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeModules) Create(_ context.Context, m *model.Module) error {
	if _, ok := f.rows[m.Code]; ok {
		return repository.ErrUniqueViolation
	}
	if m.ProgrammeCode != nil && !f.programmes[*m.ProgrammeCode] {
		return repository.ErrForeignKeyViolation
	}
	cp := *m
	f.rows[m.Code] = &cp
	return nil
}

func (f *fakeModules) Update(_ context.Context, code string, req *model.UpdateModuleRequest) error {
	m, ok := f.rows[code]
	if !ok {
		return repository.ErrNotFound
	}
	if req.ProgrammeCode != nil && !f.programmes[*req.ProgrammeCode] {
		return repository.ErrForeignKeyViolation
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.CreditHours != nil {
		m.CreditHours = *req.CreditHours
	}
	if req.YearLevel != nil {
		m.YearLevel = *req.YearLevel
	}
	if req.ProgrammeCode != nil {
		m.ProgrammeCode = req.ProgrammeCode
	}
	return nil
}

func (f *fakeModules) Delete(_ context.Context, code string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.rows[code]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, code)
	return nil
}

// fakeStudents is an in-memory StudentStore and StudentFinder.
type fakeStudents struct {
	nextID int
	rows   map[int]*model.Student
}

func newFakeStudents(students ...*model.Student) *fakeStudents {
	f := &fakeStudents{rows: map[int]*model.Student{}}
	for _, s := range students {
		if s.ID == 0 {
			f.nextID++
			s.ID = f.nextID
		} else if s.ID > f.nextID {
			f.nextID = s.ID
		}
		f.rows[s.ID] = s
	}
	return f
}

func (f *fakeStudents) GetByID(_ context.Context, id int) (*model.Student, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudents) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range f.rows {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudents) List(_ context.Context, filter model.StudentFilter, limit, offset int) ([]model.Student, int, error) {
	all := []model.Student{}
	for _, s := range f.rows {
		if filter.Status != "" && s.EnrollmentStatus != filter.Status {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeStudents) Create(_ context.Context, s *model.Student) error {
	for _, existing := range f.rows {
		if existing.Email == s.Email {
			return repository.ErrUniqueViolation
		}
	}
	f.nextID++
	s.ID = f.nextID
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeStudents) Update(_ context.Context, s *model.Student) error {
	existing, ok := f.rows[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range f.rows {
		if id != s.ID && other.Email == s.Email {
			return repository.ErrUniqueViolation
		}
	}
	hash := existing.PasswordHash
	cp := *s
	cp.PasswordHash = hash
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeStudents) UpdatePassword(_ context.Context, id int, hash string) error {
	s, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.PasswordHash = hash
	return nil
}

func (f *fakeStudents) Delete(_ context.Context, id int) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeStudents) ListCredentials(context.Context) ([]repository.Credential, error) {
	out := []repository.Credential{}
	for _, s := range f.rows {
		out = append(out, repository.Credential{ID: s.ID, Password: s.PasswordHash})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeAdmins is an in-memory AdminFinder and AdminCreator.
type fakeAdmins struct {
	rows []*model.Admin
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range f.rows {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdmins) Create(_ context.Context, a *model.Admin) error {
	for _, existing := range f.rows {
		if existing.Email == a.Email {
			return repository.ErrUniqueViolation
		}
	}
	a.ID = len(f.rows) + 1
	cp := *a
	f.rows = append(f.rows, &cp)
	return nil
}

// plainHasher "hashes" by prefixing, keeping tests fast and readable.
type plainHasher struct{}

func (plainHasher) HashPassword(p string) (string, error) { return "hashed:" + p, nil }

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}
