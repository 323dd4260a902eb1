package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/testdriven/employee-api/internal/core/domain"
)

func TestStudentHandler_Create(t *testing.T) {
	stub := &stubStudentService{
		createFn: func(_ context.Context, s *domain.Student) (*domain.Student, error) {
			if s.ID != 0 {
				t.Fatalf("body id must be dropped, got %d", s.ID)
			}
			out := *s
			out.ID = 1
			return &out, nil
		},
	}
	h := NewStudentHandler(stub)
	c, rec := newContext(http.MethodPost, "/api/v1/students", `{"id":9,"firstName":"Ann","lastName":"Lee","email":"ann@x.com"}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp studentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 1 || resp.Email != "ann@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestStudentHandler_Create_PartialBody(t *testing.T) {
	stub := &stubStudentService{
		createFn: func(_ context.Context, s *domain.Student) (*domain.Student, error) {
			if s.FirstName != "Ann" || s.LastName != "" || s.Email != "" {
				t.Fatalf("unexpected student: %+v", s)
			}
			out := *s
			out.ID = 1
			return &out, nil
		},
	}
	h := NewStudentHandler(stub)
	c, rec := newContext(http.MethodPost, "/api/v1/students", `{"firstName":"Ann"}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestStudentHandler_Create_ValidationError(t *testing.T) {
	h := NewStudentHandler(&stubStudentService{})
	body := `{"firstName":"` + strings.Repeat("a", 256) + `"}`
	c, _ := newContext(http.MethodPost, "/api/v1/students", body, "")

	if code := httpCode(h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestStudentHandler_List(t *testing.T) {
	stub := &stubStudentService{
		findAllFn: func(context.Context) ([]*domain.Student, error) {
			return []*domain.Student{{ID: 1, FirstName: "Ann"}, {ID: 2, FirstName: "Bob"}}, nil
		},
	}
	h := NewStudentHandler(stub)
	c, rec := newContext(http.MethodGet, "/api/v1/students", "", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []studentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 students, got %d", len(resp))
	}
}
