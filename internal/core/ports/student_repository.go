package ports

import (
	"context"

	"github.com/testdriven/employee-api/internal/core/domain"
)

// StudentRepository persists students. There is no update or delete.
type StudentRepository interface {
	Insert(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindAll(ctx context.Context) ([]*domain.Student, error)
}
