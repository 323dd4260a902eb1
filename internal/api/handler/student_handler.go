package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testdriven/employee-api/internal/api/metrics"
	"github.com/testdriven/employee-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for student operations.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create handles POST /api/v1/students.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student"
// @Success      201   {object}  studentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toStudent(req))
	if err != nil {
		return err
	}

	metrics.StudentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toStudentResponse(created))
}

// List handles GET /api/v1/students.
//
// @Summary      List all students
// @Tags         students
// @Produce      json
// @Success      200  {array}   studentResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentListResponse(students))
}
