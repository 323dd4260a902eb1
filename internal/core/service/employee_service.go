package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/testdriven/employee-api/internal/core/domain"
	"github.com/testdriven/employee-api/internal/core/ports"
)

type EmployeeService struct {
	repo   ports.EmployeeRepository
	locker ports.EmailLocker
	logger zerolog.Logger
}

// NewEmployeeService wires the service to its store. locker may be nil, in
// which case the unique index on email is the only guard against concurrent
// writers.
func NewEmployeeService(repo ports.EmployeeRepository, locker ports.EmailLocker, logger zerolog.Logger) *EmployeeService {
	if locker == nil {
		locker = noopLocker{}
	}
	return &EmployeeService{repo: repo, locker: locker, logger: logger}
}

// Save creates a new employee. The email must not belong to any existing row.
// Server-owned fields on candidate are ignored.
func (s *EmployeeService) Save(ctx context.Context, candidate *domain.Employee) (*domain.Employee, error) {
	s.logger.Info().Str("email", candidate.Email).Msg("saving employee")

	release, err := s.reserve(ctx, candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}
	defer release()

	exists, err := s.repo.ExistsByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}
	if exists {
		s.logger.Warn().Str("email", candidate.Email).Msg("email already in use")
		return nil, fmt.Errorf("save employee: %w", domain.ErrDuplicateEmail)
	}

	created, err := s.repo.Insert(ctx, &domain.Employee{
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Email:     candidate.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}

	s.logger.Info().Int64("id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	return employees, nil
}

// FindByID returns domain.ErrEmployeeNotFound when the id does not resolve.
func (s *EmployeeService) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.logger.Warn().Int64("id", id).Msg("employee not found")
		}
		return nil, fmt.Errorf("find employee %d: %w", id, err)
	}
	return e, nil
}

// Update replaces the mutable fields of employee id with those of candidate.
// Any id carried by candidate is ignored.
func (s *EmployeeService) Update(ctx context.Context, candidate *domain.Employee, id int64) (*domain.Employee, error) {
	s.logger.Info().Int64("id", id).Str("email", candidate.Email).Msg("updating employee")

	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	if existing.EmailChanged(candidate.Email) {
		release, err := s.reserve(ctx, candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("update employee: %w", err)
		}
		defer release()

		exists, err := s.repo.ExistsByEmail(ctx, candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("update employee: %w", err)
		}
		if exists {
			s.logger.Warn().Int64("id", id).Str("email", candidate.Email).Msg("email already in use")
			return nil, fmt.Errorf("update employee: %w", domain.ErrDuplicateEmail)
		}
	}

	updated, err := s.repo.Save(ctx, &domain.Employee{
		ID:        id,
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Email:     candidate.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return updated, nil
}

// Delete removes employee id. Deleting an unknown id succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("id", id).Msg("deleting employee")

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}

func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) FindByFullName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	e, err := s.repo.FindByFullName(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("find employee by name: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) SearchByNames(ctx context.Context, query string) ([]*domain.Employee, error) {
	employees, err := s.repo.SearchByNames(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) FindByRangedIDs(ctx context.Context, lo, hi int64) ([]*domain.Employee, error) {
	employees, err := s.repo.FindByRangedIDs(ctx, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("find employees in range [%d, %d]: %w", lo, hi, err)
	}
	return employees, nil
}

func (s *EmployeeService) FindByEmailContaining(ctx context.Context, query string) ([]*domain.Employee, error) {
	employees, err := s.repo.FindByEmailContaining(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search employees by email: %w", err)
	}
	return employees, nil
}

// reserve takes the email reservation. A failing locker is logged and
// skipped: the unique index still rejects the second writer.
func (s *EmployeeService) reserve(ctx context.Context, email string) (func(), error) {
	release, ok, err := s.locker.Reserve(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("email reservation failed, relying on unique index")
		return func() {}, nil
	}
	if !ok {
		s.logger.Warn().Str("email", email).Msg("email reserved by a concurrent writer")
		return nil, domain.ErrDuplicateEmail
	}
	return release, nil
}

type noopLocker struct{}

func (noopLocker) Reserve(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}

var _ ports.EmployeeService = (*EmployeeService)(nil)
