package relational

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/testdriven/employee-api/internal/core/domain"
	"github.com/testdriven/employee-api/internal/core/ports"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Insert(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	rec := studentRecord{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]*domain.Student, error) {
	var records []studentRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]*domain.Student, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

var _ ports.StudentRepository = (*StudentRepository)(nil)
