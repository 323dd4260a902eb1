package ports

import (
	"context"

	"github.com/testdriven/employee-api/internal/core/domain"
)

// EmployeeRepository is the record store plus the fixed set of derived
// queries over the employees table.
type EmployeeRepository interface {
	// Insert assigns a fresh id, stamps CreatedAt and leaves UpdatedAt nil.
	Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// Save inserts when e.ID is zero; otherwise it overwrites the mutable
	// fields of the existing row, stamps UpdatedAt and keeps CreatedAt.
	Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// FindByID returns domain.ErrEmployeeNotFound when the id is absent.
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	// DeleteByID is idempotent: an unknown id is not an error.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// FindByEmail is an exact, case-sensitive match.
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	// FindByFullName is an exact, case-sensitive match on both names.
	FindByFullName(ctx context.Context, firstName, lastName string) (*domain.Employee, error)
	// SearchByNames matches rows whose first or last name contains query,
	// ignoring case.
	SearchByNames(ctx context.Context, query string) ([]*domain.Employee, error)
	// FindByRangedIDs returns rows with lo <= id <= hi.
	FindByRangedIDs(ctx context.Context, lo, hi int64) ([]*domain.Employee, error)
	// FindByEmailContaining matches rows whose email contains query, ignoring case.
	FindByEmailContaining(ctx context.Context, query string) ([]*domain.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
