package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/testdriven/employee-api/internal/core/domain"
)

type stubEmployeeService struct {
	saveFn                  func(ctx context.Context, candidate *domain.Employee) (*domain.Employee, error)
	findAllFn               func(ctx context.Context) ([]*domain.Employee, error)
	findByIDFn              func(ctx context.Context, id int64) (*domain.Employee, error)
	updateFn                func(ctx context.Context, candidate *domain.Employee, id int64) (*domain.Employee, error)
	deleteFn                func(ctx context.Context, id int64) error
	findByEmailFn           func(ctx context.Context, email string) (*domain.Employee, error)
	findByFullNameFn        func(ctx context.Context, firstName, lastName string) (*domain.Employee, error)
	searchByNamesFn         func(ctx context.Context, query string) ([]*domain.Employee, error)
	findByRangedIDsFn       func(ctx context.Context, lo, hi int64) ([]*domain.Employee, error)
	findByEmailContainingFn func(ctx context.Context, query string) ([]*domain.Employee, error)
}

func (s *stubEmployeeService) Save(ctx context.Context, candidate *domain.Employee) (*domain.Employee, error) {
	return s.saveFn(ctx, candidate)
}

func (s *stubEmployeeService) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	return s.findAllFn(ctx)
}

func (s *stubEmployeeService) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubEmployeeService) Update(ctx context.Context, candidate *domain.Employee, id int64) (*domain.Employee, error) {
	return s.updateFn(ctx, candidate, id)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubEmployeeService) FindByFullName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	return s.findByFullNameFn(ctx, firstName, lastName)
}

func (s *stubEmployeeService) SearchByNames(ctx context.Context, query string) ([]*domain.Employee, error) {
	return s.searchByNamesFn(ctx, query)
}

func (s *stubEmployeeService) FindByRangedIDs(ctx context.Context, lo, hi int64) ([]*domain.Employee, error) {
	return s.findByRangedIDsFn(ctx, lo, hi)
}

func (s *stubEmployeeService) FindByEmailContaining(ctx context.Context, query string) ([]*domain.Employee, error) {
	return s.findByEmailContainingFn(ctx, query)
}

type stubStudentService struct {
	createFn  func(ctx context.Context, s *domain.Student) (*domain.Student, error)
	findAllFn func(ctx context.Context) ([]*domain.Student, error)
}

func (s *stubStudentService) Create(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	return s.createFn(ctx, st)
}

func (s *stubStudentService) FindAll(ctx context.Context) ([]*domain.Student, error) {
	return s.findAllFn(ctx)
}

// newContext builds an echo context for target with the validator installed.
// pathID, when non-empty, is bound to the :id parameter.
func newContext(method, target, body, pathID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathID != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathID)
	}
	return c, rec
}

// httpCode extracts the status from an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
