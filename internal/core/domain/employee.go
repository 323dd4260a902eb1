package domain

import "time"

// Employee is the primary aggregate. ID, CreatedAt and UpdatedAt are owned by
// the store: callers never set them.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time // nil until the first update
}

// EmailChanged reports whether candidate would move this employee to a new
// email address. Comparison is exact and case-sensitive.
func (e *Employee) EmailChanged(candidate string) bool {
	return e.Email != candidate
}
