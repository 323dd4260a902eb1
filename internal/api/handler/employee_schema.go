package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// employeeRequest carries the client-writable fields. Any id or timestamp in
// the body is dropped by the decoder.
type employeeRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName"  validate:"required,max=255"`
	Email     string `json:"email"     validate:"required,email,max=255"`
}

type employeeResponse struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// studentRequest only bounds field length; students accept partial bodies.
type studentRequest struct {
	FirstName string `json:"firstName" validate:"max=255"`
	LastName  string `json:"lastName"  validate:"max=255"`
	Email     string `json:"email"     validate:"max=255"`
}

type studentResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
