package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/testdriven/employee-api/internal/api/metrics"
	"github.com/testdriven/employee-api/internal/core/domain"
	"github.com/testdriven/employee-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/v1/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}   employeeResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Get handles GET /api/v1/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	e, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// Create handles POST /api/v1/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	created, err := h.service.Save(c.Request().Context(), toEmployee(req))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.EmailConflictsTotal.WithLabelValues("create").Inc()
		}
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// Update handles PUT /api/v1/employees/:id. The id in the path wins over
// any id in the body.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.service.FindByID(ctx, id); err != nil {
		return err
	}

	updated, err := h.service.Update(ctx, toEmployee(req), id)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.EmailConflictsTotal.WithLabelValues("update").Inc()
		}
		return err
	}

	metrics.EmployeesUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /api/v1/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id   path  int  true  "Employee id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.service.FindByID(ctx, id); err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EmployeesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Lookup handles GET /api/v1/employees/lookup. Exactly one employee is
// returned, matched either by email or by first and last name.
//
// @Summary      Find one employee by email or full name
// @Tags         employees
// @Produce      json
// @Param        email      query     string  false  "Exact email"
// @Param        firstName  query     string  false  "Exact first name"
// @Param        lastName   query     string  false  "Exact last name"
// @Success      200        {object}  employeeResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/v1/employees/lookup [get]
func (h *EmployeeHandler) Lookup(c echo.Context) error {
	ctx := c.Request().Context()
	email := c.QueryParam("email")
	firstName, lastName := c.QueryParam("firstName"), c.QueryParam("lastName")

	var (
		e   *domain.Employee
		err error
	)
	switch {
	case email != "":
		e, err = h.service.FindByEmail(ctx, email)
	case firstName != "" && lastName != "":
		e, err = h.service.FindByFullName(ctx, firstName, lastName)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "email or firstName and lastName are required")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// Search handles GET /api/v1/employees/search. Matching is by substring and
// ignores case.
//
// @Summary      Search employees by name or email fragment
// @Tags         employees
// @Produce      json
// @Param        name   query     string  false  "Fragment of first or last name"
// @Param        email  query     string  false  "Fragment of email"
// @Success      200    {array}   employeeResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/v1/employees/search [get]
func (h *EmployeeHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	params := c.QueryParams()

	var (
		employees []*domain.Employee
		err       error
	)
	switch {
	case params.Has("name"):
		employees, err = h.service.SearchByNames(ctx, params.Get("name"))
	case params.Has("email"):
		employees, err = h.service.FindByEmailContaining(ctx, params.Get("email"))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "name or email is required")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Range handles GET /api/v1/employees/range. Both bounds are inclusive; an
// inverted range yields an empty list.
//
// @Summary      List employees with ids in a range
// @Tags         employees
// @Produce      json
// @Param        from  query     int  true  "Lowest id"
// @Param        to    query     int  true  "Highest id"
// @Success      200   {array}   employeeResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/employees/range [get]
func (h *EmployeeHandler) Range(c echo.Context) error {
	lo, err := strconv.ParseInt(c.QueryParam("from"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be an integer")
	}
	hi, err := strconv.ParseInt(c.QueryParam("to"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must be an integer")
	}

	employees, err := h.service.FindByRangedIDs(c.Request().Context(), lo, hi)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	return id, nil
}

func bindEmployee(c echo.Context) (employeeRequest, error) {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}
