package ports

import (
	"context"

	"github.com/testdriven/employee-api/internal/core/domain"
)

type StudentService interface {
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindAll(ctx context.Context) ([]*domain.Student, error)
}
