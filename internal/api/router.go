package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/testdriven/employee-api/docs"
	"github.com/testdriven/employee-api/internal/api/handler"
	"github.com/testdriven/employee-api/internal/api/middleware"
	"github.com/testdriven/employee-api/internal/core/ports"
	"github.com/testdriven/employee-api/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the router wires into handlers.
// Redis is optional. A nil Metrics registry means the Prometheus default.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Employees ports.EmployeeService
	Students  ports.StudentService
	Logger    zerolog.Logger
	Metrics   *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "employee_api",
		Registerer: registerer,
	}))

	// --- Employees ---
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	employees := e.Group("/api/v1/employees")
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create)
	employees.GET("/lookup", employeeHandler.Lookup)
	employees.GET("/search", employeeHandler.Search)
	employees.GET("/range", employeeHandler.Range)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	// --- Students ---
	studentHandler := handler.NewStudentHandler(deps.Students)
	students := e.Group("/api/v1/students")
	students.GET("", studentHandler.List)
	students.POST("", studentHandler.Create)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
