package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/testdriven/employee-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubEmployeeRepo struct {
	mu        sync.Mutex
	rows      map[int64]*domain.Employee
	nextID    int64
	now       func() time.Time
	insertErr error // if set, Insert returns this error
	existsErr error // if set, ExistsByEmail returns this error
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{
		rows: make(map[int64]*domain.Employee),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	clone := *e
	if e.UpdatedAt != nil {
		ts := *e.UpdatedAt
		clone.UpdatedAt = &ts
	}
	return &clone
}

func (r *stubEmployeeRepo) Insert(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	for _, row := range r.rows {
		if row.Email == e.Email {
			return nil, domain.ErrDuplicateEmail // mirrors the unique index
		}
	}
	r.nextID++
	row := cloneEmployee(e)
	row.ID = r.nextID
	row.CreatedAt = r.now()
	row.UpdatedAt = nil
	r.rows[row.ID] = row
	return cloneEmployee(row), nil
}

func (r *stubEmployeeRepo) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.ID == 0 {
		return r.Insert(ctx, e)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[e.ID]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	row.FirstName = e.FirstName
	row.LastName = e.LastName
	row.Email = e.Email
	ts := r.now()
	row.UpdatedAt = &ts
	return cloneEmployee(row), nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(row), nil
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	return r.filter(func(*domain.Employee) bool { return true }), nil
}

func (r *stubEmployeeRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *stubEmployeeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	found := r.filter(func(e *domain.Employee) bool { return e.Email == email })
	if len(found) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return found[0], nil
}

func (r *stubEmployeeRepo) FindByFullName(_ context.Context, firstName, lastName string) (*domain.Employee, error) {
	found := r.filter(func(e *domain.Employee) bool { return e.FirstName == firstName && e.LastName == lastName })
	if len(found) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return found[0], nil
}

func (r *stubEmployeeRepo) SearchByNames(_ context.Context, query string) ([]*domain.Employee, error) {
	q := strings.ToLower(query)
	return r.filter(func(e *domain.Employee) bool {
		return strings.Contains(strings.ToLower(e.FirstName), q) || strings.Contains(strings.ToLower(e.LastName), q)
	}), nil
}

func (r *stubEmployeeRepo) FindByRangedIDs(_ context.Context, lo, hi int64) ([]*domain.Employee, error) {
	return r.filter(func(e *domain.Employee) bool { return e.ID >= lo && e.ID <= hi }), nil
}

func (r *stubEmployeeRepo) FindByEmailContaining(_ context.Context, query string) ([]*domain.Employee, error) {
	q := strings.ToLower(query)
	return r.filter(func(e *domain.Employee) bool { return strings.Contains(strings.ToLower(e.Email), q) }), nil
}

func (r *stubEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return len(r.filter(func(e *domain.Employee) bool { return e.Email == email })) > 0, nil
}

func (r *stubEmployeeRepo) filter(keep func(*domain.Employee) bool) []*domain.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Employee{}
	for _, row := range r.rows {
		if keep(row) {
			out = append(out, cloneEmployee(row))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type stubStudentRepo struct {
	rows      []*domain.Student
	insertErr error
}

func (r *stubStudentRepo) Insert(_ context.Context, s *domain.Student) (*domain.Student, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	clone := *s
	clone.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, &clone)
	out := clone
	return &out, nil
}

func (r *stubStudentRepo) FindAll(_ context.Context) ([]*domain.Student, error) {
	out := make([]*domain.Student, 0, len(r.rows))
	for _, s := range r.rows {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

// stubLocker records reservations and can be told to refuse or fail.
type stubLocker struct {
	deny     bool
	err      error
	reserved []string
	released int
}

func (l *stubLocker) Reserve(_ context.Context, email string) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.deny {
		return nil, false, nil
	}
	l.reserved = append(l.reserved, email)
	return func() { l.released++ }, true, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func johnDoe() *domain.Employee {
	return &domain.Employee{FirstName: "John", LastName: "Doe", Email: "john.doe@gmail.com"}
}
