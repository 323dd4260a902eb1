package handler

import (
	"github.com/testdriven/employee-api/internal/core/domain"
)

// --- Request → domain ---

func toEmployee(req employeeRequest) *domain.Employee {
	return &domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
}

func toStudent(req studentRequest) *domain.Student {
	return &domain.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
}

// --- domain → HTTP response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	resp := employeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		CreatedAt: e.CreatedAt.UTC(),
	}
	if e.UpdatedAt != nil {
		ts := e.UpdatedAt.UTC()
		resp.UpdatedAt = &ts
	}
	return resp
}

func toEmployeeListResponse(employees []*domain.Employee) []employeeResponse {
	out := make([]employeeResponse, len(employees))
	for i, e := range employees {
		out[i] = toEmployeeResponse(e)
	}
	return out
}

func toStudentResponse(s *domain.Student) studentResponse {
	return studentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

func toStudentListResponse(students []*domain.Student) []studentResponse {
	out := make([]studentResponse, len(students))
	for i, s := range students {
		out[i] = toStudentResponse(s)
	}
	return out
}
