package relational

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/testdriven/employee-api/internal/core/domain"
	"github.com/testdriven/employee-api/internal/core/ports"
)

type EmployeeRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:  db,
		now: storeNow,
	}
}

// storeNow truncates to the coarsest precision of the supported drivers so a
// returned row equals the row read back later.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	rec := employeeRecord{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		CreatedAt: r.now(),
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *EmployeeRepository) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.ID == 0 {
		return r.Insert(ctx, e)
	}

	res := r.db.WithContext(ctx).
		Model(&employeeRecord{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"first_name": e.FirstName,
			"last_name":  e.LastName,
			"email":      e.Email,
			"updated_at": r.now(),
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update employee %d: %w", e.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	return r.FindByID(ctx, e.ID)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.first(ctx, "find employee", "id = ?", id)
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	return r.find("list employees", r.db.WithContext(ctx))
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeeRecord{}).Error; err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&employeeRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.first(ctx, "find employee by email", "email = ?", email)
}

func (r *EmployeeRepository) FindByFullName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	return r.first(ctx, "find employee by name", "first_name = ? AND last_name = ?", firstName, lastName)
}

func (r *EmployeeRepository) SearchByNames(ctx context.Context, query string) ([]*domain.Employee, error) {
	pattern := containsPattern(query)
	tx := r.db.WithContext(ctx).
		Where(`LOWER(first_name) LIKE ? ESCAPE '\'`, pattern).
		Or(`LOWER(last_name) LIKE ? ESCAPE '\'`, pattern)
	return r.find("search employees", tx)
}

func (r *EmployeeRepository) FindByRangedIDs(ctx context.Context, lo, hi int64) ([]*domain.Employee, error) {
	tx := r.db.WithContext(ctx).Where("id BETWEEN ? AND ?", lo, hi)
	return r.find("find employees by id range", tx)
}

func (r *EmployeeRepository) FindByEmailContaining(ctx context.Context, query string) ([]*domain.Employee, error) {
	tx := r.db.WithContext(ctx).Where(`LOWER(email) LIKE ? ESCAPE '\'`, containsPattern(query))
	return r.find("search employees by email", tx)
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&employeeRecord{}).
		Where("email = ?", email).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check employee email: %w", err)
	}
	return n > 0, nil
}

func (r *EmployeeRepository) first(ctx context.Context, op string, query string, args ...any) (*domain.Employee, error) {
	var rec employeeRecord
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec.toDomain(), nil
}

func (r *EmployeeRepository) find(op string, tx *gorm.DB) ([]*domain.Employee, error) {
	var records []employeeRecord
	if err := tx.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return employeesToDomain(records), nil
}

// containsPattern builds a lower-cased LIKE pattern matching query anywhere
// in the column. LIKE metacharacters in query match literally.
func containsPattern(query string) string {
	escaped := likeEscaper.Replace(strings.ToLower(query))
	return "%" + escaped + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)
