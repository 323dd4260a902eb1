package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/testdriven/employee-api/internal/core/domain"
	"github.com/testdriven/employee-api/internal/core/ports"
)

type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

func (s *StudentService) Create(ctx context.Context, in *domain.Student) (*domain.Student, error) {
	s.logger.Info().Str("email", in.Email).Msg("saving student")

	created, err := s.repo.Insert(ctx, &domain.Student{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return created, nil
}

func (s *StudentService) FindAll(ctx context.Context) ([]*domain.Student, error) {
	s.logger.Debug().Msg("finding all students")

	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find students: %w", err)
	}
	return students, nil
}

var _ ports.StudentService = (*StudentService)(nil)
