package relational

import (
	"time"

	"github.com/testdriven/employee-api/internal/core/domain"
)

// Timestamps are written explicitly by the repository, so GORM's automatic
// tracking is switched off for both columns.
type employeeRecord struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string     `gorm:"column:first_name;size:255;not null"`
	LastName  string     `gorm:"column:last_name;size:255;not null"`
	Email     string     `gorm:"column:email;size:255;not null;uniqueIndex:idx_employees_email"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (employeeRecord) TableName() string { return "employees" }

func (r *employeeRecord) toDomain() *domain.Employee {
	e := &domain.Employee{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.UpdatedAt != nil {
		ts := r.UpdatedAt.UTC()
		e.UpdatedAt = &ts
	}
	return e
}

func employeesToDomain(records []employeeRecord) []*domain.Employee {
	out := make([]*domain.Employee, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out
}

type studentRecord struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;size:255"`
	LastName  string `gorm:"column:last_name;size:255"`
	Email     string `gorm:"column:email;size:255"`
}

func (studentRecord) TableName() string { return "students" }

func (r *studentRecord) toDomain() *domain.Student {
	return &domain.Student{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
