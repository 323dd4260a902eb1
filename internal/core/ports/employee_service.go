package ports

import (
	"context"

	"github.com/testdriven/employee-api/internal/core/domain"
)

// EmployeeService holds the business rules for employees: email uniqueness
// on writes and not-found reporting on reads.
type EmployeeService interface {
	Save(ctx context.Context, candidate *domain.Employee) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, candidate *domain.Employee, id int64) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error

	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByFullName(ctx context.Context, firstName, lastName string) (*domain.Employee, error)
	SearchByNames(ctx context.Context, query string) ([]*domain.Employee, error)
	FindByRangedIDs(ctx context.Context, lo, hi int64) ([]*domain.Employee, error)
	FindByEmailContaining(ctx context.Context, query string) ([]*domain.Employee, error)
}

// EmailLocker reserves an email address for the duration of a
// check-then-write sequence. Reserve returns a release func; ok is false when
// another writer already holds the reservation.
type EmailLocker interface {
	Reserve(ctx context.Context, email string) (release func(), ok bool, err error)
}
